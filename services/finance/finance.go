package finance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	appointmentRepo "reabilitepro/database/repository/appointment"
	professionalRepo "reabilitepro/database/repository/professional"
	"reabilitepro/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// ErrNotPayable is returned when a payment intent is requested for an
// appointment that is not in the confirmed state.
var ErrNotPayable = errors.New("only confirmed appointments can be paid")

// Service derives the professional's revenue view and creates
// consultation-fee payment intents.
type Service interface {
	Summary(ctx context.Context, professionalID string) (*models.FinanceSummary, error)
	// CreatePaymentIntent returns the Stripe client secret for the
	// appointment's consultation fee.
	CreatePaymentIntent(ctx context.Context, appointmentID, patientID string) (string, error)
}

// DefaultFinanceService is the production implementation.
type DefaultFinanceService struct {
	Appointments  appointmentRepo.Repository
	Professionals professionalRepo.Repository
}

// Summary aggregates completed appointments times the consultation fee,
// grouped by month.
func (s *DefaultFinanceService) Summary(ctx context.Context, professionalID string) (*models.FinanceSummary, error) {
	prof, err := s.Professionals.GetByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	appointments, err := s.Appointments.ListByProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	summary := summarize(appointments, prof.ConsultationFee)
	summary.ProfessionalID = professionalID
	return summary, nil
}

// summarize is the pure aggregation over an appointment set.
func summarize(appointments []models.Appointment, fee float64) *models.FinanceSummary {
	byMonth := make(map[string]*models.MonthlyRevenue)
	summary := &models.FinanceSummary{ConsultationFee: fee}

	for _, appointment := range appointments {
		if appointment.Status != models.StatusCompleted {
			continue
		}
		summary.CompletedCount++
		summary.TotalRevenue += fee

		month := appointment.DateTime.Format("2006-01")
		entry, ok := byMonth[month]
		if !ok {
			entry = &models.MonthlyRevenue{Month: month}
			byMonth[month] = entry
		}
		entry.Appointments++
		entry.Revenue += fee
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		summary.Monthly = append(summary.Monthly, *byMonth[month])
	}
	return summary
}

// CreatePaymentIntent charges the consultation fee for a confirmed
// appointment booked by the requesting patient.
func (s *DefaultFinanceService) CreatePaymentIntent(ctx context.Context, appointmentID, patientID string) (string, error) {
	appointment, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return "", err
	}
	if appointment.PatientID != patientID {
		return "", fmt.Errorf("appointment %s does not belong to patient %s", appointmentID, patientID)
	}
	if appointment.Status != models.StatusConfirmed {
		return "", ErrNotPayable
	}

	prof, err := s.Professionals.GetByID(ctx, appointment.ProfessionalID)
	if err != nil {
		return "", err
	}
	if prof.ConsultationFee <= 0 {
		return "", fmt.Errorf("professional %s has no consultation fee configured", prof.ID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(prof.ConsultationFee * 100))),
		Currency: stripe.String(string(stripe.CurrencyBRL)),
	}
	params.AddMetadata("appointmentId", appointment.ID)
	params.AddMetadata("professionalId", prof.ID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
