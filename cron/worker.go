package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"thalibook/models"
	"thalibook/services/notification"
	"thalibook/utils"
)

// InitNotificationWorker runs the asynq worker in the background. It drains
// the notification and reminder queues; delivery here is a log line, real
// email or push transport being outside this service.
func InitNotificationWorker(redisOpt asynq.RedisClientOpt) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeNotificationSend, handleNotificationTask)
	mux.HandleFunc(notification.TypeReminderSend, handleReminderTask)

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting notification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("notification worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("notification worker gave up after max attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNotificationTask(ctx context.Context, t *asynq.Task) error {
	var payload models.NotificationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}
	utils.GetLogger().Info("notification delivered",
		zap.String("user", payload.UserID),
		zap.String("message", payload.Message))
	return nil
}

func handleReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}
	utils.GetLogger().Info("reservation reminder delivered",
		zap.String("user", payload.UserID),
		zap.String("booking", payload.BookingID),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time))
	return nil
}
