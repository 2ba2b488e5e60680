package jobs

import (
	"fmt"
	"log/slog"

	"transportation/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderInitializerJob *OrderInitializerJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	initializeOrdersHandler commands.InitializeOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderInitializerJob: NewOrderInitializerJob(initializeOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderInitializerJob.Start(); err != nil {
		return fmt.Errorf("failed to start order initializer job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderInitializerJob.Stop()
}
