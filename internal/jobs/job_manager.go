package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	backupOrderOutboxJob *BackupOrderOutboxJob
}

// NewJobManager wires the jobs to their command handlers.
func NewJobManager(
	backupOrders BackupOrderProcessor,
	outbox OutboxSettings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		backupOrderOutboxJob: NewBackupOrderOutboxJob(backupOrders, outbox, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.backupOrderOutboxJob.Start(); err != nil {
		return fmt.Errorf("failed to start backup order outbox job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	jm.backupOrderOutboxJob.Stop()
}
