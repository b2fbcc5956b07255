package professionalRepo

import (
	"context"

	"reabilitepro/models"
)

// Repository persists professional profiles.
type Repository interface {
	Create(ctx context.Context, professional *models.Professional) error
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// List returns the public directory, optionally filtered by specialty.
	List(ctx context.Context, specialty string) ([]models.Professional, error)
}
