package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockDigestJob *LowStockDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(db *gorm.DB, dispatcher ports.Dispatcher, logger *slog.Logger) *JobManager {
	return &JobManager{
		lowStockDigestJob: NewLowStockDigestJob(db, dispatcher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockDigestJob.Stop()
}
