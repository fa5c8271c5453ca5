package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"thalibook/models"
)

// Task types handled by the queue worker.
const (
	TypeNotificationSend = "notification:send"
	TypeReminderSend     = "reminder:send"
)

// AsynqSink enqueues notification tasks on the Redis-backed queue.
type AsynqSink struct {
	Client *asynq.Client
}

func NewAsynqSink(client *asynq.Client) *AsynqSink {
	return &AsynqSink{Client: client}
}

func (s *AsynqSink) Notify(ctx context.Context, userID, message string) error {
	payload := models.NotificationPayload{
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	task := asynq.NewTask(TypeNotificationSend, b)
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("enqueue notification for user %s: %w", userID, err)
	}
	return nil
}

func (s *AsynqSink) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, b)
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("enqueue reminder for booking %s: %w", payload.BookingID, err)
	}
	return nil
}
