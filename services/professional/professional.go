package professional

import (
	"context"
	"fmt"

	professionalRepo "reabilitepro/database/repository/professional"
	"reabilitepro/models"

	"go.uber.org/zap"
)

// Service manages professional profiles and the public directory.
type Service interface {
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	Update(ctx context.Context, professional models.Professional) (*models.Professional, error)
	List(ctx context.Context, specialty string) ([]models.Professional, error)
}

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo professionalRepo.Repository
}

func (s *DefaultProfessionalService) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update applies the non-empty fields of the submitted profile.
func (s *DefaultProfessionalService) Update(ctx context.Context, professional models.Professional) (*models.Professional, error) {
	if professional.ID == "" {
		return nil, fmt.Errorf("professional ID is required for update")
	}

	fields := map[string]any{}
	if professional.Name != "" {
		fields["name"] = professional.Name
	}
	if professional.Specialty != "" {
		fields["specialty"] = professional.Specialty
	}
	if professional.Bio != "" {
		fields["bio"] = professional.Bio
	}
	if professional.ConsultationFee > 0 {
		fields["consultationFee"] = professional.ConsultationFee
	}
	if professional.Location != "" {
		fields["location"] = professional.Location
	}
	if professional.AvatarURL != "" {
		fields["avatarUrl"] = professional.AvatarURL
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(ctx, professional.ID, fields); err != nil {
		zap.L().Error("Failed to update professional", zap.String("professionalID", professional.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update professional: %w", err)
	}
	return s.Repo.GetByID(ctx, professional.ID)
}

func (s *DefaultProfessionalService) List(ctx context.Context, specialty string) ([]models.Professional, error) {
	return s.Repo.List(ctx, specialty)
}
