package evaluationRepo

import (
	"context"

	"reabilitepro/models"
)

// Repository persists evaluation records (avaliações).
type Repository interface {
	Create(ctx context.Context, evaluation *models.Evaluation) error
	GetByID(ctx context.Context, id string) (*models.Evaluation, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Evaluation, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
