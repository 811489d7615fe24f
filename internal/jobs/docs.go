// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order processing service.
//
// # Available Jobs
//
// 1. LowStockDigestJob - Runs daily to send each wholesaler a digest of
// products whose stock fell below their restocking threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(db, dispatcher, logger)
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
// - Digest job logs query failures and carries on; a failed run is retried
// on the next schedule
// - Failed job starts will stop any already running jobs
package jobs
