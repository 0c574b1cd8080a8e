package jobs

import (
	"context"
	"log/slog"

	"travelorders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// relayBatchSize caps how many pending notifications one tick may send.
const relayBatchSize = 100

// NotificationRelayJob periodically drains the pending notification backlog
// and sends the external copy of each message through the mailer.
type NotificationRelayJob struct {
	handler commands.RelayNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRelayJob creates a job that relays pending notifications
// once a minute.
func NewNotificationRelayJob(handler commands.RelayNotificationsCommandHandler, logger *slog.Logger) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "notification_relay_job"),
	}
}

// Start begins the relay job on a one-minute schedule.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRelayNotificationsCommand(relayBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Notification relay job misconfigured", "error", cmdErr)
			return
		}

		sent, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification relay job failed", "error", handleErr)
			return
		}

		if sent > 0 {
			j.logger.InfoContext(ctx, "Relayed notifications", "count", sent)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every minute)")
	return nil
}

// Stop stops the relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
