package handlers

import (
	"errors"
	"net/http"
	"time"

	appointmentRepo "reabilitepro/database/repository/appointment"
	"reabilitepro/middleware"
	"reabilitepro/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking, status updates and the merged
// per-user listings.
type AppointmentHandler struct {
	Schedule schedule.Service
}

func NewAppointmentHandler(scheduleSvc schedule.Service) *AppointmentHandler {
	return &AppointmentHandler{Schedule: scheduleSvc}
}

// BookHandler handles POST /api/appointments (patient access).
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	var req struct {
		ProfessionalID string    `json:"professionalId" binding:"required"`
		DateTime       time.Time `json:"dateTime" binding:"required"`
		Notes          string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.Schedule.Book(c.Request.Context(), schedule.BookRequest{
		PatientID:      c.GetString(middleware.CtxUserID),
		ProfessionalID: req.ProfessionalID,
		DateTime:       req.DateTime,
		Notes:          req.Notes,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrPastDateTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("Booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// UpdateStatusHandler handles PUT /api/appointments/:id/status
// (professional access). The request carries the version the client read;
// a stale version yields 409.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	var req struct {
		Status  string `json:"status" binding:"required"`
		Version int64  `json:"version" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	professionalID := c.GetString(middleware.CtxUserID)
	updated, err := h.Schedule.UpdateStatus(c.Request.Context(), id, professionalID, req.Status, req.Version)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, schedule.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, appointmentRepo.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, appointmentRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			zap.L().Error("Status update failed", zap.String("appointmentID", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetHandler handles GET /api/appointments/:id (participants only).
func (h *AppointmentHandler) GetHandler(c *gin.Context) {
	appointment, err := h.Schedule.GetByID(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		if errors.Is(err, schedule.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// UpcomingHandler handles GET /api/appointments/upcoming.
func (h *AppointmentHandler) UpcomingHandler(c *gin.Context) {
	appointments, err := h.Schedule.Upcoming(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		zap.L().Error("Failed to load upcoming appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// HistoryHandler handles GET /api/appointments.
func (h *AppointmentHandler) HistoryHandler(c *gin.Context) {
	appointments, err := h.Schedule.History(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		zap.L().Error("Failed to load appointment history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}
