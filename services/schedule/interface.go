package schedule

import (
	"context"
	"errors"
	"time"

	appointmentRepo "reabilitepro/database/repository/appointment"
	professionalRepo "reabilitepro/database/repository/professional"
	"reabilitepro/models"
	"reabilitepro/services/notification"
)

var (
	ErrInvalidStatus  = errors.New("invalid appointment status")
	ErrNotOwner       = errors.New("only the appointment's professional may change its status")
	ErrNotParticipant = errors.New("user is not a participant of this appointment")
	ErrPastDateTime   = errors.New("appointment must be scheduled in the future")
)

// BookRequest carries a patient's booking submission.
type BookRequest struct {
	PatientID      string
	ProfessionalID string
	DateTime       time.Time
	Notes          string
}

// ReminderEnqueuer schedules an appointment reminder for later delivery.
type ReminderEnqueuer interface {
	EnqueueAppointmentReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// Service manages appointment booking, status updates and the merged
// per-user listings.
type Service interface {
	Book(ctx context.Context, req BookRequest) (*models.Appointment, error)
	// UpdateStatus is restricted to the owning professional and is
	// conditional on the version the caller read.
	UpdateStatus(ctx context.Context, id, professionalID, status string, version int64) (*models.Appointment, error)
	GetByID(ctx context.Context, id, userID string) (*models.Appointment, error)
	// ListForUser returns the duplicate-free union of the user's
	// appointments as patient and as professional, unordered.
	ListForUser(ctx context.Context, userID string) ([]models.Appointment, error)
	// Upcoming returns future appointments, soonest first.
	Upcoming(ctx context.Context, userID string) ([]models.Appointment, error)
	// History returns all appointments, newest first.
	History(ctx context.Context, userID string) ([]models.Appointment, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo          appointmentRepo.Repository
	Professionals professionalRepo.Repository
	Notifier      notification.Service
	Reminders     ReminderEnqueuer
	ReminderLead  time.Duration
}
