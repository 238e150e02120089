package jobs

import (
	"context"
	"log/slog"

	"catering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxSchedule runs the outbox every five seconds.
const DefaultOutboxSchedule = "*/5 * * * * *"

// BackupOrderProcessor is satisfied by commands.ProcessBackupOrdersCommandHandler.
type BackupOrderProcessor interface {
	Handle(ctx context.Context, cmd commands.ProcessBackupOrdersCommand) (commands.ProcessBackupOrdersResult, error)
}

// OutboxSettings controls how often and how much of the outbox is drained.
type OutboxSettings struct {
	Schedule    string
	BatchSize   int
	MaxAttempts int
}

// BackupOrderOutboxJob retries backup orders for declined orders whose
// inline creation failed.
type BackupOrderOutboxJob struct {
	processor BackupOrderProcessor
	settings  OutboxSettings
	cron      *cron.Cron
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewBackupOrderOutboxJob(processor BackupOrderProcessor, settings OutboxSettings, logger *slog.Logger) *BackupOrderOutboxJob {
	if settings.Schedule == "" {
		settings.Schedule = DefaultOutboxSchedule
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &BackupOrderOutboxJob{
		processor: processor,
		settings:  settings,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "backup_order_outbox_job"),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start validates the settings and schedules the job.
func (j *BackupOrderOutboxJob) Start() error {
	cmd, err := commands.NewProcessBackupOrdersCommand(j.settings.BatchSize, j.settings.MaxAttempts)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.settings.Schedule, func() { j.run(cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Backup order outbox job started", "schedule", j.settings.Schedule)
	return nil
}

func (j *BackupOrderOutboxJob) run(cmd commands.ProcessBackupOrdersCommand) {
	result, err := j.processor.Handle(j.ctx, cmd)
	if err != nil {
		if j.ctx.Err() == nil {
			j.logger.ErrorContext(j.ctx, "Backup order outbox job failed",
				"error", err, "processed", result.Processed, "failed", result.Failed)
		}
		return
	}
	if result.Processed > 0 || result.Failed > 0 {
		j.logger.InfoContext(j.ctx, "Backup order outbox drained",
			"processed", result.Processed, "failed", result.Failed)
	}
}

// Stop cancels a running batch and waits for it to return.
func (j *BackupOrderOutboxJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.Info("Backup order outbox job stopped")
}
