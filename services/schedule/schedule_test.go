package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	appointmentRepo "reabilitepro/database/repository/appointment"
	"reabilitepro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentRepo struct {
	byPatient      map[string][]models.Appointment
	byProfessional map[string][]models.Appointment
	byID           map[string]*models.Appointment
	created        []*models.Appointment

	patientErr      error
	professionalErr error
	updateErr       error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	f.created = append(f.created, appointment)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	if f.patientErr != nil {
		return nil, f.patientErr
	}
	return f.byPatient[patientID], nil
}

func (f *fakeAppointmentRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.Appointment, error) {
	if f.professionalErr != nil {
		return nil, f.professionalErr
	}
	return f.byProfessional[professionalID], nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, status string, expectedVersion int64) (*models.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	a, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	if a.Version != expectedVersion {
		return nil, appointmentRepo.ErrVersionConflict
	}
	updated := *a
	updated.Status = status
	updated.Version++
	f.byID[id] = &updated
	return &updated, nil
}

type fakeProfessionalRepo struct {
	profiles map[string]*models.Professional
}

func (f *fakeProfessionalRepo) Create(ctx context.Context, professional *models.Professional) error {
	return nil
}

func (f *fakeProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, errors.New("professional not found")
}

func (f *fakeProfessionalRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return nil
}

func (f *fakeProfessionalRepo) List(ctx context.Context, specialty string) ([]models.Professional, error) {
	return nil, nil
}

type recordingNotifier struct {
	pushes []string
}

func (r *recordingNotifier) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	r.pushes = append(r.pushes, userID)
	return nil
}

type recordingEnqueuer struct {
	payloads []models.ReminderPayload
	fireAts  []time.Time
}

func (r *recordingEnqueuer) EnqueueAppointmentReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	r.payloads = append(r.payloads, payload)
	r.fireAts = append(r.fireAts, fireAt)
	return nil
}

func newTestService(repo *fakeAppointmentRepo) (*DefaultScheduleService, *recordingNotifier, *recordingEnqueuer) {
	notifier := &recordingNotifier{}
	enqueuer := &recordingEnqueuer{}
	svc := &DefaultScheduleService{
		Repo: repo,
		Professionals: &fakeProfessionalRepo{profiles: map[string]*models.Professional{
			"prof-1": {ID: "prof-1", Name: "Dra. Ana", ConsultationFee: 150},
		}},
		Notifier:     notifier,
		Reminders:    enqueuer,
		ReminderLead: 30 * time.Minute,
	}
	return svc, notifier, enqueuer
}

func appt(id, patientID, professionalID, status string, dateTime time.Time) models.Appointment {
	return models.Appointment{
		ID:             id,
		PatientID:      patientID,
		ProfessionalID: professionalID,
		Status:         status,
		DateTime:       dateTime,
		Version:        1,
	}
}

func TestBookCreatesScheduledAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[string]*models.Appointment{}}
	svc, notifier, enqueuer := newTestService(repo)

	when := time.Now().Add(48 * time.Hour)
	created, err := svc.Book(context.Background(), BookRequest{
		PatientID:      "pat-1",
		ProfessionalID: "prof-1",
		DateTime:       when,
		Notes:          "primeira consulta",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusScheduled, created.Status)
	assert.Equal(t, int64(1), created.Version)
	assert.NotEmpty(t, created.ID)
	require.Len(t, repo.created, 1)

	// The professional gets the booking push, the patient gets the
	// scheduled reminder.
	assert.Equal(t, []string{"prof-1"}, notifier.pushes)
	require.Len(t, enqueuer.payloads, 1)
	assert.Equal(t, "pat-1", enqueuer.payloads[0].UserID)
	assert.WithinDuration(t, when.Add(-30*time.Minute), enqueuer.fireAts[0], time.Second)
}

func TestBookRejectsPastDateTime(t *testing.T) {
	svc, _, _ := newTestService(&fakeAppointmentRepo{byID: map[string]*models.Appointment{}})

	_, err := svc.Book(context.Background(), BookRequest{
		PatientID:      "pat-1",
		ProfessionalID: "prof-1",
		DateTime:       time.Now().Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrPastDateTime)
}

func TestBookRejectsUnknownProfessional(t *testing.T) {
	svc, _, _ := newTestService(&fakeAppointmentRepo{byID: map[string]*models.Appointment{}})

	_, err := svc.Book(context.Background(), BookRequest{
		PatientID:      "pat-1",
		ProfessionalID: "prof-missing",
		DateTime:       time.Now().Add(time.Hour),
	})
	assert.Error(t, err)
}

func TestBookRejectsSelfBooking(t *testing.T) {
	svc, _, _ := newTestService(&fakeAppointmentRepo{byID: map[string]*models.Appointment{}})

	_, err := svc.Book(context.Background(), BookRequest{
		PatientID:      "prof-1",
		ProfessionalID: "prof-1",
		DateTime:       time.Now().Add(time.Hour),
	})
	assert.Error(t, err)
}

func TestListForUserMergesBothSides(t *testing.T) {
	later := time.Now().Add(time.Hour)
	repo := &fakeAppointmentRepo{
		byPatient: map[string][]models.Appointment{
			"dual": {appt("a1", "dual", "prof-1", models.StatusScheduled, later)},
		},
		byProfessional: map[string][]models.Appointment{
			"dual": {
				appt("a2", "pat-2", "dual", models.StatusConfirmed, later),
				appt("a3", "pat-3", "dual", models.StatusScheduled, later),
			},
		},
	}
	svc, _, _ := newTestService(repo)

	merged, err := svc.ListForUser(context.Background(), "dual")
	require.NoError(t, err)
	require.Len(t, merged, 3)

	ids := map[string]bool{}
	for _, a := range merged {
		ids[a.ID] = true
	}
	assert.True(t, ids["a1"] && ids["a2"] && ids["a3"])
}

func TestListForUserDeduplicatesSharedID(t *testing.T) {
	later := time.Now().Add(time.Hour)
	shared := appt("same", "dual", "dual", models.StatusScheduled, later)
	repo := &fakeAppointmentRepo{
		byPatient:      map[string][]models.Appointment{"dual": {shared}},
		byProfessional: map[string][]models.Appointment{"dual": {shared}},
	}
	svc, _, _ := newTestService(repo)

	merged, err := svc.ListForUser(context.Background(), "dual")
	require.NoError(t, err)
	assert.Len(t, merged, 1)
}

func TestListForUserFailsWhenEitherQueryFails(t *testing.T) {
	boom := errors.New("store unavailable")

	svc, _, _ := newTestService(&fakeAppointmentRepo{patientErr: boom})
	_, err := svc.ListForUser(context.Background(), "u1")
	assert.ErrorIs(t, err, boom)

	svc, _, _ = newTestService(&fakeAppointmentRepo{professionalErr: boom})
	_, err = svc.ListForUser(context.Background(), "u1")
	assert.ErrorIs(t, err, boom)
}

func TestUpcomingFiltersAndSorts(t *testing.T) {
	now := time.Now()
	appointments := []models.Appointment{
		appt("past", "p", "d", models.StatusCompleted, now.Add(-time.Hour)),
		appt("soon", "p", "d", models.StatusConfirmed, now.Add(time.Hour)),
		appt("later", "p", "d", models.StatusScheduled, now.Add(3*time.Hour)),
		appt("cancelled", "p", "d", models.StatusCancelled, now.Add(2*time.Hour)),
	}

	got := upcomingSorted(appointments, now)
	require.Len(t, got, 2)
	assert.Equal(t, "soon", got[0].ID)
	assert.Equal(t, "later", got[1].ID)
}

func TestHistorySortsNewestFirst(t *testing.T) {
	now := time.Now()
	repo := &fakeAppointmentRepo{
		byPatient: map[string][]models.Appointment{
			"pat-1": {
				appt("old", "pat-1", "prof-1", models.StatusCompleted, now.Add(-48*time.Hour)),
				appt("new", "pat-1", "prof-1", models.StatusScheduled, now.Add(24*time.Hour)),
				appt("mid", "pat-1", "prof-1", models.StatusCancelled, now.Add(-time.Hour)),
			},
		},
	}
	svc, _, _ := newTestService(repo)

	history, err := svc.History(context.Background(), "pat-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "new", history[0].ID)
	assert.Equal(t, "mid", history[1].ID)
	assert.Equal(t, "old", history[2].ID)
}

func TestUpdateStatusHappyPath(t *testing.T) {
	a := appt("a1", "pat-1", "prof-1", models.StatusScheduled, time.Now().Add(time.Hour))
	repo := &fakeAppointmentRepo{byID: map[string]*models.Appointment{"a1": &a}}
	svc, notifier, _ := newTestService(repo)

	updated, err := svc.UpdateStatus(context.Background(), "a1", "prof-1", models.StatusConfirmed, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, int64(2), updated.Version)
	assert.Equal(t, []string{"pat-1"}, notifier.pushes)
}

func TestUpdateStatusRejectsNonOwner(t *testing.T) {
	a := appt("a1", "pat-1", "prof-1", models.StatusScheduled, time.Now().Add(time.Hour))
	repo := &fakeAppointmentRepo{byID: map[string]*models.Appointment{"a1": &a}}
	svc, _, _ := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), "a1", "prof-other", models.StatusConfirmed, 1)
	assert.ErrorIs(t, err, ErrNotOwner)

	// Patients never change statuses, not even on their own appointments.
	_, err = svc.UpdateStatus(context.Background(), "a1", "pat-1", models.StatusCancelled, 1)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateStatusRejectsInvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(&fakeAppointmentRepo{byID: map[string]*models.Appointment{}})

	_, err := svc.UpdateStatus(context.Background(), "a1", "prof-1", "postponed", 1)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusSurfacesVersionConflict(t *testing.T) {
	a := appt("a1", "pat-1", "prof-1", models.StatusScheduled, time.Now().Add(time.Hour))
	repo := &fakeAppointmentRepo{byID: map[string]*models.Appointment{"a1": &a}}
	svc, _, _ := newTestService(repo)

	// First writer wins.
	_, err := svc.UpdateStatus(context.Background(), "a1", "prof-1", models.StatusConfirmed, 1)
	require.NoError(t, err)

	// Second writer still holds version 1 and must conflict.
	_, err = svc.UpdateStatus(context.Background(), "a1", "prof-1", models.StatusCancelled, 1)
	assert.ErrorIs(t, err, appointmentRepo.ErrVersionConflict)
}

func TestGetByIDRequiresParticipant(t *testing.T) {
	a := appt("a1", "pat-1", "prof-1", models.StatusScheduled, time.Now().Add(time.Hour))
	repo := &fakeAppointmentRepo{byID: map[string]*models.Appointment{"a1": &a}}
	svc, _, _ := newTestService(repo)

	got, err := svc.GetByID(context.Background(), "a1", "pat-1")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	_, err = svc.GetByID(context.Background(), "a1", "stranger")
	assert.ErrorIs(t, err, ErrNotParticipant)
}
