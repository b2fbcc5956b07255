package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reabilitepro/models"
	"reabilitepro/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// Enqueuer schedules reminder tasks on the Redis-backed queue.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(redisOpt asynq.RedisClientOpt) *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(redisOpt)}
}

// EnqueueAppointmentReminder schedules the reminder push for fireAt.
func (e *Enqueuer) EnqueueAppointmentReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, data)
	if _, err := e.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

func (e *Enqueuer) Close() error {
	return e.client.Close()
}

// StartReminderWorker runs the asynq worker in the background and returns
// the server so main can stop it at shutdown.
func StartReminderWorker(redisOpt asynq.RedisClientOpt, notifier notification.Service) *asynq.Server {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifier))

	go func() {
		if err := srv.Run(mux); err != nil {
			zap.L().Error("reminder worker stopped", zap.Error(err))
		}
	}()
	return srv
}

func handleReminderTask(notifier notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			zap.L().Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		data := map[string]string{
			"appointmentId": p.AppointmentID,
			"fireDate":      p.FireDate,
		}
		if err := notifier.SendPush(ctx, p.UserID, p.Title, p.Body, data); err != nil {
			zap.L().Warn("failed to deliver reminder",
				zap.String("appointmentID", p.AppointmentID), zap.Error(err))
			return err
		}
		return nil
	}
}
