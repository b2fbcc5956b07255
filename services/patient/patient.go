package patient

import (
	"context"
	"fmt"

	patientRepo "reabilitepro/database/repository/patient"
	"reabilitepro/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service manages patient profiles, both self-owned and the records a
// professional keeps for people they treat.
type Service interface {
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	Update(ctx context.Context, patient models.Patient) (*models.Patient, error)
	CreateManaged(ctx context.Context, professionalID string, patient models.Patient) (*models.Patient, error)
	ListManaged(ctx context.Context, professionalID string) ([]models.Patient, error)
	DeleteManaged(ctx context.Context, professionalID, patientID string) error
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo patientRepo.Repository
}

func (s *DefaultPatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update applies the non-empty fields of the submitted profile.
func (s *DefaultPatientService) Update(ctx context.Context, patient models.Patient) (*models.Patient, error) {
	if patient.ID == "" {
		return nil, fmt.Errorf("patient ID is required for update")
	}

	fields := map[string]any{}
	if patient.FullName != "" {
		fields["fullName"] = patient.FullName
	}
	if patient.Email != "" {
		fields["email"] = patient.Email
	}
	if patient.Phone != "" {
		fields["phone"] = patient.Phone
	}
	if patient.BirthDate != "" {
		fields["birthDate"] = patient.BirthDate
	}
	if patient.CPF != "" {
		fields["cpf"] = patient.CPF
	}
	if patient.Address != "" {
		fields["address"] = patient.Address
	}
	if patient.AvatarURL != "" {
		fields["avatarUrl"] = patient.AvatarURL
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(ctx, patient.ID, fields); err != nil {
		zap.L().Error("Failed to update patient", zap.String("patientID", patient.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return s.Repo.GetByID(ctx, patient.ID)
}

// CreateManaged adds a patient record owned by the professional.
func (s *DefaultPatientService) CreateManaged(ctx context.Context, professionalID string, patient models.Patient) (*models.Patient, error) {
	if patient.FullName == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	patient.ID = uuid.New().String()
	patient.CreatedBy = professionalID
	if err := s.Repo.Create(ctx, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *DefaultPatientService) ListManaged(ctx context.Context, professionalID string) ([]models.Patient, error) {
	return s.Repo.ListByCreator(ctx, professionalID)
}

// DeleteManaged removes a managed record; only the creating professional
// may delete it.
func (s *DefaultPatientService) DeleteManaged(ctx context.Context, professionalID, patientID string) error {
	patient, err := s.Repo.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient.CreatedBy != professionalID {
		return fmt.Errorf("patient %s is not managed by professional %s", patientID, professionalID)
	}
	return s.Repo.Delete(ctx, patientID)
}
