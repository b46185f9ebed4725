package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"verification/internal/core/application/usecases/commands"
	"verification/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// AttentionReminderJob surfaces orders stuck with pending observations.
// Runs every minute and pushes a warning notification per flagged order so
// back-office operators can chase the missing corrections.
type AttentionReminderJob struct {
	uowFactory commands.OrderUoWFactory
	sink       ports.NotificationSink
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewAttentionReminderJob creates a new reminder job over the given unit of
// work factory and notification sink.
func NewAttentionReminderJob(
	uowFactory commands.OrderUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) *AttentionReminderJob {
	return &AttentionReminderJob{
		uowFactory: uowFactory,
		sink:       sink,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "attention_reminder_job"),
	}
}

// Start begins the attention reminder job to run every minute.
func (j *AttentionReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		uow := j.uowFactory.Create()
		flagged, err := uow.OrderRepository().GetAllRequiringAttention(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Attention reminder job failed", "error", err)
			return
		}

		for _, flaggedOrder := range flagged {
			message := fmt.Sprintf("order %s has %d pending observation(s)",
				flaggedOrder.OrderCode().Value(), flaggedOrder.PendingObservationCount())
			j.sink.ShowWarning(message, "Orders requiring attention", 5000)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Attention reminder job started (running every minute)")
	return nil
}

// Stop stops the attention reminder job.
func (j *AttentionReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Attention reminder job stopped")
}
