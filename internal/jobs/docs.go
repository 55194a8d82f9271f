// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. StatusReconciliationJob - Periodically asks the delivery provider for the
// current status of every non-terminal order and overwrites the stored status
// with the provider's answer.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(repository, provider, updateStatusHandler, schedule, logger)
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
// The reconciliation schedule is a six-field cron expression (with seconds)
// supplied through configuration, "0 * * * * *" by default.
//
// # Error Handling
//
// Per-order lookup failures are logged and skipped; the remaining orders in
// the pass are still reconciled. Failed job starts stop the manager startup.
package jobs
