package handlers

import (
	"errors"
	"net/http"

	"reabilitepro/middleware"
	"reabilitepro/services/finance"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FinanceHandler exposes the professional revenue view and consultation
// payments.
type FinanceHandler struct {
	Finance finance.Service
}

func NewFinanceHandler(financeSvc finance.Service) *FinanceHandler {
	return &FinanceHandler{Finance: financeSvc}
}

// SummaryHandler handles GET /api/finances/summary (professional access).
func (h *FinanceHandler) SummaryHandler(c *gin.Context) {
	summary, err := h.Finance.Summary(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		zap.L().Error("Failed to build finance summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// PaymentIntentHandler handles POST /api/finances/payment-intent (patient
// access).
func (h *FinanceHandler) PaymentIntentHandler(c *gin.Context) {
	var req struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.Finance.CreatePaymentIntent(c.Request.Context(), req.AppointmentID, c.GetString(middleware.CtxUserID))
	if err != nil {
		if errors.Is(err, finance.ErrNotPayable) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("Failed to create payment intent", zap.String("appointmentID", req.AppointmentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
