package finance

import (
	"context"
	"testing"
	"time"

	"reabilitepro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedAt(year int, month time.Month) models.Appointment {
	return models.Appointment{
		Status:   models.StatusCompleted,
		DateTime: time.Date(year, month, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestSummarizeGroupsByMonth(t *testing.T) {
	appointments := []models.Appointment{
		completedAt(2026, time.June),
		completedAt(2026, time.June),
		completedAt(2026, time.July),
		{Status: models.StatusCancelled, DateTime: time.Date(2026, time.June, 20, 10, 0, 0, 0, time.UTC)},
		{Status: models.StatusScheduled, DateTime: time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)},
	}

	summary := summarize(appointments, 150)

	assert.Equal(t, 3, summary.CompletedCount)
	assert.Equal(t, 450.0, summary.TotalRevenue)
	require.Len(t, summary.Monthly, 2)
	assert.Equal(t, models.MonthlyRevenue{Month: "2026-06", Appointments: 2, Revenue: 300}, summary.Monthly[0])
	assert.Equal(t, models.MonthlyRevenue{Month: "2026-07", Appointments: 1, Revenue: 150}, summary.Monthly[1])
}

func TestSummarizeEmpty(t *testing.T) {
	summary := summarize(nil, 150)

	assert.Zero(t, summary.CompletedCount)
	assert.Zero(t, summary.TotalRevenue)
	assert.Empty(t, summary.Monthly)
}

type stubProfessionalRepo struct {
	prof *models.Professional
}

func (s *stubProfessionalRepo) Create(ctx context.Context, professional *models.Professional) error {
	return nil
}

func (s *stubProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	return s.prof, nil
}

func (s *stubProfessionalRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return nil
}

func (s *stubProfessionalRepo) List(ctx context.Context, specialty string) ([]models.Professional, error) {
	return nil, nil
}

type stubAppointmentRepo struct {
	byID           map[string]*models.Appointment
	byProfessional []models.Appointment
}

func (s *stubAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	return nil
}

func (s *stubAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return s.byID[id], nil
}

func (s *stubAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.Appointment, error) {
	return s.byProfessional, nil
}

func (s *stubAppointmentRepo) UpdateStatus(ctx context.Context, id, status string, expectedVersion int64) (*models.Appointment, error) {
	return nil, nil
}

func TestSummaryUsesProfessionalFee(t *testing.T) {
	svc := &DefaultFinanceService{
		Appointments: &stubAppointmentRepo{byProfessional: []models.Appointment{
			completedAt(2026, time.May),
		}},
		Professionals: &stubProfessionalRepo{prof: &models.Professional{ID: "prof-1", ConsultationFee: 200}},
	}

	summary, err := svc.Summary(context.Background(), "prof-1")
	require.NoError(t, err)
	assert.Equal(t, "prof-1", summary.ProfessionalID)
	assert.Equal(t, 200.0, summary.ConsultationFee)
	assert.Equal(t, 200.0, summary.TotalRevenue)
}

func TestCreatePaymentIntentValidation(t *testing.T) {
	confirmed := &models.Appointment{
		ID: "a1", PatientID: "pat-1", ProfessionalID: "prof-1",
		Status: models.StatusScheduled,
	}
	svc := &DefaultFinanceService{
		Appointments:  &stubAppointmentRepo{byID: map[string]*models.Appointment{"a1": confirmed}},
		Professionals: &stubProfessionalRepo{prof: &models.Professional{ID: "prof-1", ConsultationFee: 200}},
	}

	// Wrong patient.
	_, err := svc.CreatePaymentIntent(context.Background(), "a1", "pat-other")
	assert.Error(t, err)

	// Not confirmed yet.
	_, err = svc.CreatePaymentIntent(context.Background(), "a1", "pat-1")
	assert.ErrorIs(t, err, ErrNotPayable)
}
