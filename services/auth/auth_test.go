package auth

import (
	"context"
	"errors"
	"testing"

	"reabilitepro/models"
	"reabilitepro/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*models.User{}, byEmail: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return nil
}

func (f *fakeUserRepo) SetAdmin(ctx context.Context, id string, admin bool) error { return nil }

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) { return nil, nil }

type fakePatientRepo struct {
	created []*models.Patient
}

func (f *fakePatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	f.created = append(f.created, patient)
	return nil
}

func (f *fakePatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return nil, errors.New("not found")
}

func (f *fakePatientRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return nil
}

func (f *fakePatientRepo) ListByCreator(ctx context.Context, professionalID string) ([]models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeProfessionalRepo struct {
	created []*models.Professional
}

func (f *fakeProfessionalRepo) Create(ctx context.Context, professional *models.Professional) error {
	f.created = append(f.created, professional)
	return nil
}

func (f *fakeProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	return nil, errors.New("not found")
}

func (f *fakeProfessionalRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return nil
}

func (f *fakeProfessionalRepo) List(ctx context.Context, specialty string) ([]models.Professional, error) {
	return nil, nil
}

func newTestService() (*DefaultAuthService, *fakeUserRepo, *fakePatientRepo, *fakeProfessionalRepo) {
	users := newFakeUserRepo()
	patients := &fakePatientRepo{}
	professionals := &fakeProfessionalRepo{}
	svc := &DefaultAuthService{
		Users:         users,
		Patients:      patients,
		Professionals: professionals,
		Tokens:        utils.NewTokenManager("test-secret"),
	}
	return svc, users, patients, professionals
}

func TestRegisterPatientCreatesIdentityAndProfile(t *testing.T) {
	svc, users, patients, professionals := newTestService()

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "joao@example.com",
		Password: "segredo123",
		FullName: "João Silva",
		Role:     models.RolePatient,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, models.RolePatient, resp.Role)

	require.Len(t, patients.created, 1)
	assert.Equal(t, resp.ID, patients.created[0].ID)
	assert.Empty(t, professionals.created)

	// The stored password is hashed, never plaintext.
	stored := users.byEmail["joao@example.com"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo123")))

	claims, err := svc.Tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, models.RolePatient, claims.Role)
}

func TestRegisterProfessionalCreatesProfileWithSpecialty(t *testing.T) {
	svc, _, patients, professionals := newTestService()

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "ana@example.com",
		Password:  "segredo123",
		FullName:  "Dra. Ana",
		Role:      models.RoleProfessional,
		Specialty: models.SpecialtyPhysiotherapist,
	})
	require.NoError(t, err)

	require.Len(t, professionals.created, 1)
	assert.Equal(t, resp.ID, professionals.created[0].ID)
	assert.Equal(t, models.SpecialtyPhysiotherapist, professionals.created[0].Specialty)
	assert.Empty(t, patients.created)
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "x@example.com",
		Password: "segredo123",
		FullName: "X",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := RegisterRequest{
		Email:    "joao@example.com",
		Password: "segredo123",
		FullName: "João Silva",
		Role:     models.RolePatient,
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "joao@example.com",
		Password: "segredo123",
		FullName: "João Silva",
		Role:     models.RolePatient,
	})
	require.NoError(t, err)

	resp, err := svc.Authenticate(context.Background(), "joao@example.com", "segredo123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	// Wrong password and unknown email report the same fixed error.
	_, err = svc.Authenticate(context.Background(), "joao@example.com", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(context.Background(), "ninguem@example.com", "segredo123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUserMissingProfile(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CurrentUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileMissing)
}

func TestRevokeIgnoresInvalidToken(t *testing.T) {
	svc, _, _, _ := newTestService()

	assert.NoError(t, svc.Revoke(context.Background(), "not-a-jwt"))
}
