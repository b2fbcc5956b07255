package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appointmentRepo "reabilitepro/database/repository/appointment"
	"reabilitepro/middleware"
	"reabilitepro/models"
	"reabilitepro/services/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduleService struct {
	booked    *models.Appointment
	bookErr   error
	updated   *models.Appointment
	updateErr error
	listed    []models.Appointment
}

func (s *stubScheduleService) Book(ctx context.Context, req schedule.BookRequest) (*models.Appointment, error) {
	return s.booked, s.bookErr
}

func (s *stubScheduleService) UpdateStatus(ctx context.Context, id, professionalID, status string, version int64) (*models.Appointment, error) {
	return s.updated, s.updateErr
}

func (s *stubScheduleService) GetByID(ctx context.Context, id, userID string) (*models.Appointment, error) {
	return s.booked, s.bookErr
}

func (s *stubScheduleService) ListForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return s.listed, nil
}

func (s *stubScheduleService) Upcoming(ctx context.Context, userID string) ([]models.Appointment, error) {
	return s.listed, nil
}

func (s *stubScheduleService) History(ctx context.Context, userID string) ([]models.Appointment, error) {
	return s.listed, nil
}

func setupRouter(svc schedule.Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
	})

	h := NewAppointmentHandler(svc)
	r.POST("/api/appointments", h.BookHandler)
	r.PUT("/api/appointments/:id/status", h.UpdateStatusHandler)
	r.GET("/api/appointments/upcoming", h.UpcomingHandler)
	return r
}

func TestBookHandlerCreated(t *testing.T) {
	booked := &models.Appointment{
		ID: "a1", PatientID: "pat-1", ProfessionalID: "prof-1",
		Status: models.StatusScheduled, Version: 1,
		DateTime: time.Now().Add(24 * time.Hour),
	}
	r := setupRouter(&stubScheduleService{booked: booked}, "pat-1")

	body := `{"professionalId":"prof-1","dateTime":"` + booked.DateTime.Format(time.RFC3339) + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, models.StatusScheduled, got.Status)
}

func TestBookHandlerRejectsMissingFields(t *testing.T) {
	r := setupRouter(&stubScheduleService{}, "pat-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{"notes":"oi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid status", schedule.ErrInvalidStatus, http.StatusBadRequest},
		{"not owner", schedule.ErrNotOwner, http.StatusForbidden},
		{"version conflict", appointmentRepo.ErrVersionConflict, http.StatusConflict},
		{"not found", appointmentRepo.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(&stubScheduleService{updateErr: tc.err}, "prof-1")

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/appointments/a1/status",
				strings.NewReader(`{"status":"confirmed","version":1}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestUpcomingHandlerReturnsList(t *testing.T) {
	listed := []models.Appointment{
		{ID: "a1", Status: models.StatusConfirmed},
		{ID: "a2", Status: models.StatusScheduled},
	}
	r := setupRouter(&stubScheduleService{listed: listed}, "pat-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/appointments/upcoming", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
