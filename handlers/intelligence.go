package handlers

import (
	"net/http"

	"reabilitepro/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IntelligenceHandler struct {
	Intelligence intelligence.Service
}

func NewIntelligenceHandler(svc intelligence.Service) *IntelligenceHandler {
	return &IntelligenceHandler{Intelligence: svc}
}

// SummarizeHandler handles POST /api/ai/summarize-health-history
// (professional access).
func (h *IntelligenceHandler) SummarizeHandler(c *gin.Context) {
	var req struct {
		PatientID string `json:"patientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.Intelligence.SummarizeHealthHistory(c.Request.Context(), req.PatientID)
	if err != nil {
		zap.L().Error("Failed to summarize health history", zap.String("patientID", req.PatientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
