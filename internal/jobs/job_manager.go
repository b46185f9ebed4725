package jobs

import (
	"fmt"
	"log/slog"

	"verification/internal/core/application/usecases/commands"
	"verification/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	verifierAssignmentJob *VerifierAssignmentJob
	attentionReminderJob  *AttentionReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the assignment handler and the reminder dependencies to wire up job
// execution.
func NewJobManager(
	assignPendingOrderHandler commands.AssignPendingOrderCommandHandler,
	orderUoWFactory commands.OrderUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		verifierAssignmentJob: NewVerifierAssignmentJob(assignPendingOrderHandler, logger),
		attentionReminderJob:  NewAttentionReminderJob(orderUoWFactory, sink, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.verifierAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start verifier assignment job: %w", err)
	}

	if err := jm.attentionReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.verifierAssignmentJob.Stop()
		return fmt.Errorf("failed to start attention reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.attentionReminderJob.Stop()
	jm.verifierAssignmentJob.Stop()
}
