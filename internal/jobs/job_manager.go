package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatsReportJob *OrderStatsReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statsHandler OrderStatsHandler,
	recorder StatsRecorder,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatsReportJob: NewOrderStatsReportJob(statsHandler, recorder, statsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsReportJob.Stop()
}
