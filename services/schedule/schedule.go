package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"reabilitepro/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Book creates a "scheduled" appointment, notifies the professional and
// schedules the reminder push.
func (s *DefaultScheduleService) Book(ctx context.Context, req BookRequest) (*models.Appointment, error) {
	logger := zap.L()

	if req.PatientID == "" || req.ProfessionalID == "" {
		return nil, fmt.Errorf("patientId and professionalId are required")
	}
	if req.PatientID == req.ProfessionalID {
		return nil, fmt.Errorf("patient and professional must differ")
	}
	if !req.DateTime.After(time.Now()) {
		return nil, ErrPastDateTime
	}

	// The professional must exist before the booking is accepted.
	prof, err := s.Professionals.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("professional not found: %w", err)
	}

	appointment := &models.Appointment{
		ID:             uuid.New().String(),
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		DateTime:       req.DateTime,
		Status:         models.StatusScheduled,
		Notes:          req.Notes,
		Version:        1,
	}
	if err := s.Repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	// Notification and reminder are best-effort; the booking stands even
	// if delivery fails.
	if err := s.Notifier.SendPush(ctx, req.ProfessionalID,
		"Nova consulta agendada",
		fmt.Sprintf("Consulta marcada para %s", appointment.DateTime.Format("02/01/2006 15:04")),
		map[string]string{"appointmentId": appointment.ID},
	); err != nil {
		logger.Warn("Book: failed to notify professional", zap.String("appointmentID", appointment.ID), zap.Error(err))
	}

	if s.Reminders != nil {
		fireAt := appointment.DateTime.Add(-s.ReminderLead)
		if fireAt.After(time.Now()) {
			payload := models.ReminderPayload{
				AppointmentID: appointment.ID,
				UserID:        req.PatientID,
				Title:         fmt.Sprintf("Consulta com %s", prof.Name),
				Body:          fmt.Sprintf("Sua consulta começa às %s", appointment.DateTime.Format("15:04")),
				FireDate:      fireAt.Format(time.RFC3339),
			}
			if err := s.Reminders.EnqueueAppointmentReminder(ctx, payload, fireAt); err != nil {
				logger.Warn("Book: failed to enqueue reminder", zap.String("appointmentID", appointment.ID), zap.Error(err))
			}
		}
	}

	return appointment, nil
}

// UpdateStatus moves an appointment between statuses. Only the owning
// professional may do so, and the write is conditional on the version the
// caller read.
func (s *DefaultScheduleService) UpdateStatus(ctx context.Context, id, professionalID, status string, version int64) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.ProfessionalID != professionalID {
		return nil, ErrNotOwner
	}

	updated, err := s.Repo.UpdateStatus(ctx, id, status, version)
	if err != nil {
		return nil, err
	}

	if err := s.Notifier.SendPush(ctx, updated.PatientID,
		"Consulta atualizada",
		fmt.Sprintf("Sua consulta de %s agora está: %s", updated.DateTime.Format("02/01/2006 15:04"), status),
		map[string]string{"appointmentId": updated.ID, "status": status},
	); err != nil {
		zap.L().Warn("UpdateStatus: failed to notify patient", zap.String("appointmentID", id), zap.Error(err))
	}

	return updated, nil
}

// GetByID returns the appointment if userID participates in it.
func (s *DefaultScheduleService) GetByID(ctx context.Context, id, userID string) (*models.Appointment, error) {
	appointment, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.CounterpartyOf(userID) == "" {
		return nil, ErrNotParticipant
	}
	return appointment, nil
}

// ListForUser issues the two scoped queries concurrently and merges their
// results into a unique-by-id set. The store's access rules only allow an
// equality filter on one field per query, so the union cannot be expressed
// as a single disjunctive query. Either query's failure fails the whole
// call; no partial result is surfaced.
func (s *DefaultScheduleService) ListForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	var asPatient, asProfessional []models.Appointment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		asPatient, err = s.Repo.ListByPatient(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		asProfessional, err = s.Repo.ListByProfessional(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeUnique(asPatient, asProfessional), nil
}

// mergeUnique combines the two scoped result sets keyed by appointment id,
// last write wins. An id can only show up in both sets when the user is
// somehow both participants; the merge tolerates that.
func mergeUnique(sets ...[]models.Appointment) []models.Appointment {
	byID := make(map[string]models.Appointment)
	var order []string
	for _, set := range sets {
		for _, appointment := range set {
			if _, seen := byID[appointment.ID]; !seen {
				order = append(order, appointment.ID)
			}
			byID[appointment.ID] = appointment
		}
	}
	merged := make([]models.Appointment, 0, len(byID))
	for _, id := range order {
		merged = append(merged, byID[id])
	}
	return merged
}

// Upcoming returns the user's future appointments, soonest first.
func (s *DefaultScheduleService) Upcoming(ctx context.Context, userID string) ([]models.Appointment, error) {
	all, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return upcomingSorted(all, time.Now()), nil
}

// History returns every appointment the user participates in, newest first.
func (s *DefaultScheduleService) History(ctx context.Context, userID string) ([]models.Appointment, error) {
	all, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DateTime.After(all[j].DateTime) })
	return all, nil
}

func upcomingSorted(appointments []models.Appointment, now time.Time) []models.Appointment {
	upcoming := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.DateTime.After(now) && appointment.Status != models.StatusCancelled {
			upcoming = append(upcoming, appointment)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].DateTime.Before(upcoming[j].DateTime) })
	return upcoming
}
