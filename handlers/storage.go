package handlers

import (
	"net/http"
	"time"

	userRepo "reabilitepro/database/repository/user"
	"reabilitepro/middleware"
	"reabilitepro/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StorageHandler struct {
	Storage storage.StorageService
	Users   userRepo.Repository
}

func NewStorageHandler(storageSvc storage.StorageService, users userRepo.Repository) *StorageHandler {
	return &StorageHandler{Storage: storageSvc, Users: users}
}

// UploadAvatarHandler handles POST /api/storage/avatar. The uploaded image
// replaces any previous avatar for the authenticated user.
func (h *StorageHandler) UploadAvatarHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read file upload"})
		return
	}
	defer file.Close()

	userID := c.GetString(middleware.CtxUserID)
	url, err := h.Storage.UploadAvatar(c.Request.Context(), file, userID)
	if err != nil {
		zap.L().Error("Avatar upload failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	if err := h.Users.UpdateFields(c.Request.Context(), userID, map[string]any{"avatarUrl": url}); err != nil {
		zap.L().Error("Failed to persist avatar URL", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save avatar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}

// DownloadURLHandler handles GET /api/storage/download-url and returns a
// short-lived signed URL for a stored asset.
func (h *StorageHandler) DownloadURLHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}
	resourceType := c.DefaultQuery("resourceType", "image")

	url, err := h.Storage.GetSecureDownloadURL(c.Request.Context(), resourceType, publicID, 15*time.Minute)
	if err != nil {
		zap.L().Error("Failed to sign download URL", zap.String("publicID", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
