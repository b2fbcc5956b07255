package handlers

import (
	"net/http"

	"reabilitepro/middleware"
	"reabilitepro/models"
	"reabilitepro/services/patient"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PatientHandler exposes patient profile endpoints, both the user's own
// profile and the records a professional manages.
type PatientHandler struct {
	Patients patient.Service
}

func NewPatientHandler(patientSvc patient.Service) *PatientHandler {
	return &PatientHandler{Patients: patientSvc}
}

// GetMyProfileHandler handles GET /api/patients/me.
func (h *PatientHandler) GetMyProfileHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	p, err := h.Patients.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateMyProfileHandler handles PUT /api/patients/me.
func (h *PatientHandler) UpdateMyProfileHandler(c *gin.Context) {
	var req models.Patient
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.GetString(middleware.CtxUserID)

	updated, err := h.Patients.Update(c.Request.Context(), req)
	if err != nil {
		zap.L().Error("Failed to update patient profile", zap.String("patientID", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetPatientHandler handles GET /api/patients/:id (professional access).
func (h *PatientHandler) GetPatientHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Patients.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateManagedHandler handles POST /api/patients (professional access).
func (h *PatientHandler) CreateManagedHandler(c *gin.Context) {
	var req models.Patient
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	professionalID := c.GetString(middleware.CtxUserID)
	created, err := h.Patients.CreateManaged(c.Request.Context(), professionalID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListManagedHandler handles GET /api/patients (professional access).
func (h *PatientHandler) ListManagedHandler(c *gin.Context) {
	professionalID := c.GetString(middleware.CtxUserID)
	patients, err := h.Patients.ListManaged(c.Request.Context(), professionalID)
	if err != nil {
		zap.L().Error("Failed to list managed patients", zap.String("professionalID", professionalID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

// UpdatePatientHandler handles PUT /api/patients/:id (professional access).
func (h *PatientHandler) UpdatePatientHandler(c *gin.Context) {
	var req models.Patient
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.Patients.Update(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteManagedHandler handles DELETE /api/patients/:id (professional
// access, creator only).
func (h *PatientHandler) DeleteManagedHandler(c *gin.Context) {
	professionalID := c.GetString(middleware.CtxUserID)
	if err := h.Patients.DeleteManaged(c.Request.Context(), professionalID, c.Param("id")); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient record deleted"})
}
