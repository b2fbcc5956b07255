package appointmentRepo

import (
	"context"
	"errors"

	"reabilitepro/models"
)

// ErrVersionConflict is returned when a conditional status update loses to
// a concurrent writer: the appointment exists but not at the supplied
// version.
var ErrVersionConflict = errors.New("appointment was modified concurrently")

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// Repository persists appointments. Appointments are never deleted.
//
// The store's access model only supports a single equality filter per
// query, so the union of a user's appointments is produced by the two
// scoped listings plus a merge in the service layer.
type Repository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]models.Appointment, error)
	// UpdateStatus sets the status only if the stored version matches
	// expectedVersion, bumping the version on success. It returns the
	// updated document, ErrVersionConflict on a lost race, or ErrNotFound.
	UpdateStatus(ctx context.Context, id, status string, expectedVersion int64) (*models.Appointment, error)
}
