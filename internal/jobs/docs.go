// Package jobs provides scheduled background tasks for the verification system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the verification service.
//
// # Available Jobs
//
// 1. VerifierAssignmentJob - Runs every 30 seconds to dispatch pending orders to eligible verifiers
// 2. AttentionReminderJob - Runs every minute to surface orders stuck with pending observations
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(assignPendingOrderHandler, uowFactory, sink, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no pending orders, no active verifiers)
// - Reminder job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
