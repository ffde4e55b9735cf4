// Package jobs provides scheduled background tasks for the freight marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. FundingReminderJob - Periodically flags escrow payments still unfunded past the grace period
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindHandler, schedule, gracePeriod, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reminder job schedule is configurable; a typical deployment runs it
// hourly ("0 0 * * * *"). Reminders are pure notifications: the job never
// mutates ledger state, so an occasional duplicate run is harmless.
package jobs
