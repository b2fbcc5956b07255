package patientRepo

import (
	"context"

	"reabilitepro/models"
)

// Repository persists patient profiles.
type Repository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// ListByCreator returns the patient records a professional manages.
	ListByCreator(ctx context.Context, professionalID string) ([]models.Patient, error)
	Delete(ctx context.Context, id string) error
}
