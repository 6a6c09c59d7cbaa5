package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	batteryLevelJob *BatteryLevelJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(reader BatteryLevelReader, batterySink *slog.Logger, batterySchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		batteryLevelJob: NewBatteryLevelJob(reader, batterySink, batterySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.batteryLevelJob.Start(); err != nil {
		return fmt.Errorf("failed to start battery level job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.batteryLevelJob.Stop()
}
