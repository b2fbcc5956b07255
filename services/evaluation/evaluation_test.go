package evaluation

import (
	"context"
	"errors"
	"testing"

	"reabilitepro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvaluationRepo struct {
	byID    map[string]*models.Evaluation
	deleted []string
}

func newFakeRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{byID: map[string]*models.Evaluation{}}
}

func (f *fakeEvaluationRepo) Create(ctx context.Context, evaluation *models.Evaluation) error {
	f.byID[evaluation.ID] = evaluation
	return nil
}

func (f *fakeEvaluationRepo) GetByID(ctx context.Context, id string) (*models.Evaluation, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, errors.New("evaluation not found")
}

func (f *fakeEvaluationRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Evaluation, error) {
	var out []models.Evaluation
	for _, e := range f.byID {
		if e.PatientID == patientID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEvaluationRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	e := f.byID[id]
	if title, ok := fields["title"].(string); ok {
		e.Title = title
	}
	if date, ok := fields["date"].(string); ok {
		e.Date = date
	}
	if content, ok := fields["content"].(string); ok {
		e.Content = content
	}
	return nil
}

func (f *fakeEvaluationRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreateAssignsID(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultEvaluationService{Repo: repo}

	created, err := svc.Create(context.Background(), models.Evaluation{
		PatientID:      "pat-1",
		ProfessionalID: "prof-1",
		Title:          "Avaliação inicial",
		Date:           "2026-08-01",
		Content:        "Paciente relata dor lombar.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, repo.byID, 1)
}

func TestCreateRequiresContent(t *testing.T) {
	svc := &DefaultEvaluationService{Repo: newFakeRepo()}

	_, err := svc.Create(context.Background(), models.Evaluation{
		PatientID:      "pat-1",
		ProfessionalID: "prof-1",
	})
	assert.Error(t, err)
}

func TestUpdateOnlyByAuthor(t *testing.T) {
	repo := newFakeRepo()
	repo.byID["e1"] = &models.Evaluation{ID: "e1", PatientID: "pat-1", ProfessionalID: "prof-1", Content: "nota"}
	svc := &DefaultEvaluationService{Repo: repo}

	_, err := svc.Update(context.Background(), "prof-other", models.Evaluation{ID: "e1", Content: "alterada"})
	assert.ErrorIs(t, err, ErrNotAuthor)

	updated, err := svc.Update(context.Background(), "prof-1", models.Evaluation{ID: "e1", Content: "alterada"})
	require.NoError(t, err)
	assert.Equal(t, "alterada", updated.Content)
}

func TestDeleteOnlyByAuthor(t *testing.T) {
	repo := newFakeRepo()
	repo.byID["e1"] = &models.Evaluation{ID: "e1", PatientID: "pat-1", ProfessionalID: "prof-1", Content: "nota"}
	svc := &DefaultEvaluationService{Repo: repo}

	assert.ErrorIs(t, svc.Delete(context.Background(), "prof-other", "e1"), ErrNotAuthor)
	require.NoError(t, svc.Delete(context.Background(), "prof-1", "e1"))
	assert.Equal(t, []string{"e1"}, repo.deleted)
}
