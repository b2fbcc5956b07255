package evaluation

import (
	"context"
	"errors"
	"fmt"

	evaluationRepo "reabilitepro/database/repository/evaluation"
	"reabilitepro/models"

	"github.com/google/uuid"
)

// ErrNotAuthor is returned when a professional touches another
// professional's evaluation.
var ErrNotAuthor = errors.New("only the authoring professional may modify this evaluation")

// Service manages the clinical notes a professional keeps per patient.
type Service interface {
	Create(ctx context.Context, evaluation models.Evaluation) (*models.Evaluation, error)
	GetByID(ctx context.Context, id string) (*models.Evaluation, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Evaluation, error)
	Update(ctx context.Context, professionalID string, evaluation models.Evaluation) (*models.Evaluation, error)
	Delete(ctx context.Context, professionalID, id string) error
}

// DefaultEvaluationService is the production implementation.
type DefaultEvaluationService struct {
	Repo evaluationRepo.Repository
}

func (s *DefaultEvaluationService) Create(ctx context.Context, evaluation models.Evaluation) (*models.Evaluation, error) {
	if evaluation.PatientID == "" || evaluation.ProfessionalID == "" {
		return nil, fmt.Errorf("patientId and professionalId are required")
	}
	if evaluation.Content == "" {
		return nil, fmt.Errorf("evaluation content must not be empty")
	}

	evaluation.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, &evaluation); err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (s *DefaultEvaluationService) GetByID(ctx context.Context, id string) (*models.Evaluation, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultEvaluationService) ListByPatient(ctx context.Context, patientID string) ([]models.Evaluation, error) {
	return s.Repo.ListByPatient(ctx, patientID)
}

func (s *DefaultEvaluationService) Update(ctx context.Context, professionalID string, evaluation models.Evaluation) (*models.Evaluation, error) {
	existing, err := s.Repo.GetByID(ctx, evaluation.ID)
	if err != nil {
		return nil, err
	}
	if existing.ProfessionalID != professionalID {
		return nil, ErrNotAuthor
	}

	fields := map[string]any{}
	if evaluation.Title != "" {
		fields["title"] = evaluation.Title
	}
	if evaluation.Date != "" {
		fields["date"] = evaluation.Date
	}
	if evaluation.Content != "" {
		fields["content"] = evaluation.Content
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(ctx, evaluation.ID, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, evaluation.ID)
}

func (s *DefaultEvaluationService) Delete(ctx context.Context, professionalID, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ProfessionalID != professionalID {
		return ErrNotAuthor
	}
	return s.Repo.Delete(ctx, id)
}
