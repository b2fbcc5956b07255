package handlers

import (
	"errors"
	"net/http"

	"reabilitepro/middleware"
	"reabilitepro/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	Auth auth.Service
}

func NewAuthHandler(authSvc auth.Service) *AuthHandler {
	return &AuthHandler{Auth: authSvc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Auth.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, auth.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			zap.L().Error("Registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": auth.ErrUnknown.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": auth.ErrUnknown.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout. The current token is
// denylisted until its natural expiry.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token := c.GetString(middleware.CtxToken)
	if err := h.Auth.Revoke(c.Request.Context(), token); err != nil {
		zap.L().Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// FCMTokenHandler handles PUT /api/auth/fcm-token and stores the device
// token push notifications are sent to.
func (h *AuthHandler) FCMTokenHandler(c *gin.Context) {
	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	if err := h.Auth.UpdateFCMToken(c.Request.Context(), userID, req.FCMToken); err != nil {
		zap.L().Error("Failed to store FCM token", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store device token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device token updated"})
}

// MeHandler handles GET /api/auth/me. A session without a matching
// identity record is rejected so the client signs out.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	user, err := h.Auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrProfileMissing.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
