package handlers

import (
	"net/http"

	"reabilitepro/middleware"
	"reabilitepro/models"
	"reabilitepro/services/professional"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfessionalHandler exposes the public directory and the professional's
// own profile endpoints.
type ProfessionalHandler struct {
	Professionals professional.Service
}

func NewProfessionalHandler(professionalSvc professional.Service) *ProfessionalHandler {
	return &ProfessionalHandler{Professionals: professionalSvc}
}

// ListHandler handles GET /api/professionals?specialty=... (public).
func (h *ProfessionalHandler) ListHandler(c *gin.Context) {
	professionals, err := h.Professionals.List(c.Request.Context(), c.Query("specialty"))
	if err != nil {
		zap.L().Error("Failed to list professionals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, professionals)
}

// GetByIDHandler handles GET /api/professionals/:id (public).
func (h *ProfessionalHandler) GetByIDHandler(c *gin.Context) {
	id := c.Param("id")
	prof, err := h.Professionals.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "professional not found"})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// GetMyProfileHandler handles GET /api/professionals/me.
func (h *ProfessionalHandler) GetMyProfileHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	prof, err := h.Professionals.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "professional profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":         prof,
		"profileComplete": prof.ProfileComplete(),
	})
}

// UpdateMyProfileHandler handles PUT /api/professionals/me.
func (h *ProfessionalHandler) UpdateMyProfileHandler(c *gin.Context) {
	var req models.Professional
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.GetString(middleware.CtxUserID)

	updated, err := h.Professionals.Update(c.Request.Context(), req)
	if err != nil {
		zap.L().Error("Failed to update professional profile", zap.String("professionalID", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
