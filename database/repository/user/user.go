package userRepo

import (
	"context"

	"reabilitepro/models"
)

// Repository persists the normalized identity records.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no identity matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	SetAdmin(ctx context.Context, id string, admin bool) error
	GetAll(ctx context.Context) ([]models.User, error)
}
