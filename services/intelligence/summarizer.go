package intelligence

import (
	"context"
	"fmt"
	"strings"

	evaluationRepo "reabilitepro/database/repository/evaluation"
	patientRepo "reabilitepro/database/repository/patient"
	"reabilitepro/models"
)

// ContentGenerator is the slice of the Gemini client the summarizer needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service produces the health-history summary shown on the professional's
// patient page.
type Service interface {
	SummarizeHealthHistory(ctx context.Context, patientID string) (string, error)
}

// DefaultIntelligenceService is the production implementation.
type DefaultIntelligenceService struct {
	Generator   ContentGenerator
	Evaluations evaluationRepo.Repository
	Patients    patientRepo.Repository
}

// SummarizeHealthHistory assembles the patient's evaluations into a prompt
// and asks Gemini for a concise clinical summary.
func (s *DefaultIntelligenceService) SummarizeHealthHistory(ctx context.Context, patientID string) (string, error) {
	if s.Generator == nil {
		return "", fmt.Errorf("health-history summarizer is not configured")
	}
	patient, err := s.Patients.GetByID(ctx, patientID)
	if err != nil {
		return "", err
	}
	evaluations, err := s.Evaluations.ListByPatient(ctx, patientID)
	if err != nil {
		return "", err
	}
	if len(evaluations) == 0 {
		return "", fmt.Errorf("patient %s has no evaluations to summarize", patientID)
	}

	return s.Generator.GenerateContent(ctx, buildPrompt(patient, evaluations))
}

func buildPrompt(patient *models.Patient, evaluations []models.Evaluation) string {
	var sb strings.Builder
	sb.WriteString("You are a clinical assistant. Summarize the following evaluation history ")
	sb.WriteString("for patient ")
	sb.WriteString(patient.FullName)
	sb.WriteString(" in a few short paragraphs, highlighting trends and open concerns. ")
	sb.WriteString("Answer in Brazilian Portuguese.\n\n")
	for _, evaluation := range evaluations {
		sb.WriteString(fmt.Sprintf("- %s (%s):\n%s\n\n", evaluation.Title, evaluation.Date, evaluation.Content))
	}
	return sb.String()
}
