package notification

import (
	"context"
	"time"

	"thalibook/models"
)

// Sink delivers user-facing messages. Delivery is best-effort and
// fire-and-forget: callers log failures and never roll back on them.
type Sink interface {
	Notify(ctx context.Context, userID, message string) error
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}
