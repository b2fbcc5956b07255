package handlers

import (
	"net/http"

	userRepo "reabilitepro/database/repository/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler groups the operator-only endpoints.
type AdminHandler struct {
	Users userRepo.Repository
}

func NewAdminHandler(users userRepo.Repository) *AdminHandler {
	return &AdminHandler{Users: users}
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetAdminHandler handles PUT /api/admin/users/:id/admin and toggles the
// admin flag on an identity.
func (h *AdminHandler) SetAdminHandler(c *gin.Context) {
	var req struct {
		Admin bool `json:"admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.Users.SetAdmin(c.Request.Context(), id, req.Admin); err != nil {
		zap.L().Error("Failed to update admin flag", zap.String("userID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "admin": req.Admin})
}
