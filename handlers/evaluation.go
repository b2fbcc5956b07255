package handlers

import (
	"errors"
	"net/http"

	"reabilitepro/middleware"
	"reabilitepro/models"
	"reabilitepro/services/evaluation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EvaluationHandler exposes the clinical-note endpoints (avaliações).
type EvaluationHandler struct {
	Evaluations evaluation.Service
}

func NewEvaluationHandler(evaluationSvc evaluation.Service) *EvaluationHandler {
	return &EvaluationHandler{Evaluations: evaluationSvc}
}

// CreateHandler handles POST /api/evaluations (professional access).
func (h *EvaluationHandler) CreateHandler(c *gin.Context) {
	var req models.Evaluation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProfessionalID = c.GetString(middleware.CtxUserID)

	created, err := h.Evaluations.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListByPatientHandler handles GET /api/evaluations/patient/:id.
func (h *EvaluationHandler) ListByPatientHandler(c *gin.Context) {
	evaluations, err := h.Evaluations.ListByPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Failed to list evaluations", zap.String("patientID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, evaluations)
}

// GetHandler handles GET /api/evaluations/:id.
func (h *EvaluationHandler) GetHandler(c *gin.Context) {
	found, err := h.Evaluations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "evaluation not found"})
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateHandler handles PUT /api/evaluations/:id (author only).
func (h *EvaluationHandler) UpdateHandler(c *gin.Context) {
	var req models.Evaluation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.Evaluations.Update(c.Request.Context(), c.GetString(middleware.CtxUserID), req)
	if err != nil {
		if errors.Is(err, evaluation.ErrNotAuthor) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHandler handles DELETE /api/evaluations/:id (author only).
func (h *EvaluationHandler) DeleteHandler(c *gin.Context) {
	if err := h.Evaluations.Delete(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("id")); err != nil {
		if errors.Is(err, evaluation.ErrNotAuthor) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Evaluation deleted"})
}
