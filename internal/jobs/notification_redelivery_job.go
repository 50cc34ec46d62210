package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// NotificationRedelivery is the queue the job drains and refills.
type NotificationRedelivery interface {
	// TakeFailed drains the notifications whose delivery failed.
	TakeFailed() []ports.Notification

	// Notify hands a notification back for another delivery attempt.
	Notify(ctx context.Context, notification ports.Notification) error
}

// NotificationRedeliveryJob periodically re-queues notifications whose
// delivery failed. Runs every thirty seconds.
type NotificationRedeliveryJob struct {
	dispatcher NotificationRedelivery
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationRedeliveryJob creates a redelivery job draining the given
// dispatcher.
func NewNotificationRedeliveryJob(dispatcher NotificationRedelivery, logger *slog.Logger) *NotificationRedeliveryJob {
	return &NotificationRedeliveryJob{
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_redelivery_job"),
	}
}

// Start begins the redelivery job, running every thirty seconds.
func (j *NotificationRedeliveryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		failed := j.dispatcher.TakeFailed()
		if len(failed) == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Re-queueing failed notifications", "count", len(failed))
		for _, notification := range failed {
			if err := j.dispatcher.Notify(ctx, notification); err != nil {
				j.logger.ErrorContext(ctx, "Redelivery hand-off failed",
					"recipient", notification.RecipientEmail, "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification redelivery job started (running every thirty seconds)")
	return nil
}

// Stop stops the redelivery job.
func (j *NotificationRedeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification redelivery job stopped")
}
