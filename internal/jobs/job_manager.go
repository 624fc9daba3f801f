package jobs

import (
	"fmt"
	"log/slog"

	"pizzeria/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kitchenReportJob   *KitchenReportJob
	staleOrderAlertJob *StaleOrderAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	pendingHandler queries.GetPendingOrdersQueryHandler,
	inProgressHandler queries.GetInProgressOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenReportJob:   NewKitchenReportJob(pendingHandler, inProgressHandler, logger),
		staleOrderAlertJob: NewStaleOrderAlertJob(pendingHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen report job: %w", err)
	}

	if err := jm.staleOrderAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.kitchenReportJob.Stop()
		return fmt.Errorf("failed to start stale order alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.kitchenReportJob.Stop()
	jm.staleOrderAlertJob.Stop()
}
