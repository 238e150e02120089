// Package jobs provides scheduled background tasks for the catering service.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// BackupOrderOutboxJob drains pending backup order requests written when a
// provider declines an order and the inline backup creation did not finish.
// Runs on OUTBOX_SCHEDULE (every five seconds by default); overlapping runs
// are skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(processBackupOrdersHandler, jobs.OutboxSettings{
//		Schedule:    "*/5 * * * * *",
//		BatchSize:   50,
//		MaxAttempts: 10,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. Each failed request
// records its attempt in the outbox and is abandoned after MaxAttempts.
package jobs
