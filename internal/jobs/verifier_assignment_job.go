package jobs

import (
	"context"
	"errors"
	"log/slog"

	"verification/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// VerifierAssignmentJob manages the scheduled dispatch of pending orders.
// Runs every 30 seconds to match pending orders with eligible verifiers.
type VerifierAssignmentJob struct {
	handler commands.AssignPendingOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewVerifierAssignmentJob creates a new job for dispatching pending orders.
// Uses AssignPendingOrderCommandHandler to process one pending order per run.
func NewVerifierAssignmentJob(handler commands.AssignPendingOrderCommandHandler, logger *slog.Logger) *VerifierAssignmentJob {
	return &VerifierAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "verifier_assignment_job"),
	}
}

// Start begins the verifier assignment job to run every 30 seconds.
func (j *VerifierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignPendingOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrderFound) && !errors.Is(err, commands.ErrNoActiveVerifiersFound) {
				j.logger.ErrorContext(ctx, "Verifier assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Verifier assignment job started (running every 30 seconds)")
	return nil
}

// Stop stops the verifier assignment job.
func (j *VerifierAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Verifier assignment job stopped")
}
