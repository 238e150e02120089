package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/jobs"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type processorStub struct {
	calls  atomic.Int32
	ran    chan commands.ProcessBackupOrdersCommand
	result commands.ProcessBackupOrdersResult
	err    error
}

func newProcessorStub(result commands.ProcessBackupOrdersResult, err error) *processorStub {
	return &processorStub{ran: make(chan commands.ProcessBackupOrdersCommand, 16), result: result, err: err}
}

func (p *processorStub) Handle(
	_ context.Context,
	cmd commands.ProcessBackupOrdersCommand,
) (commands.ProcessBackupOrdersResult, error) {
	p.calls.Add(1)
	select {
	case p.ran <- cmd:
	default:
	}
	return p.result, p.err
}

func waitForRun(t *testing.T, stub *processorStub) commands.ProcessBackupOrdersCommand {
	t.Helper()
	select {
	case cmd := <-stub.ran:
		return cmd
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run")
		return commands.ProcessBackupOrdersCommand{}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBackupOrderOutboxJob_RunsWithSettings(t *testing.T) {
	stub := newProcessorStub(commands.ProcessBackupOrdersResult{}, nil)
	job := jobs.NewBackupOrderOutboxJob(stub, jobs.OutboxSettings{
		Schedule:    "@every 1s",
		BatchSize:   25,
		MaxAttempts: 3,
	}, discardLogger())

	require.NoError(t, job.Start())
	cmd := waitForRun(t, stub)
	job.Stop()

	assert.Equal(t, 25, cmd.BatchSize())
	assert.Equal(t, 3, cmd.MaxAttempts())
}

func TestBackupOrderOutboxJob_LogsOutcome(t *testing.T) {
	tests := []struct {
		name    string
		result  commands.ProcessBackupOrdersResult
		err     error
		message string
	}{
		{
			name:    "drained",
			result:  commands.ProcessBackupOrdersResult{Processed: 2, Failed: 1},
			message: "Backup order outbox drained",
		},
		{
			name:    "failure",
			err:     errors.New("connection refused"),
			message: "Backup order outbox job failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			stub := newProcessorStub(tt.result, tt.err)
			job := jobs.NewBackupOrderOutboxJob(stub, jobs.OutboxSettings{
				Schedule:    "@every 1s",
				BatchSize:   10,
				MaxAttempts: 5,
			}, slog.New(slog.NewTextHandler(&buf, nil)))

			require.NoError(t, job.Start())
			waitForRun(t, stub)
			job.Stop()

			out := buf.String()
			assert.Contains(t, out, tt.message)
			assert.Contains(t, out, "component=backup_order_outbox_job")
		})
	}
}

func TestBackupOrderOutboxJob_StartRejectsSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings jobs.OutboxSettings
		target   error
	}{
		{
			name:     "zero batch",
			settings: jobs.OutboxSettings{Schedule: "@every 1s", BatchSize: 0, MaxAttempts: 1},
			target:   errs.ErrValueIsOutOfRange,
		},
		{
			name:     "zero attempts",
			settings: jobs.OutboxSettings{Schedule: "@every 1s", BatchSize: 1, MaxAttempts: 0},
			target:   errs.ErrValueIsOutOfRange,
		},
		{
			name:     "bad schedule",
			settings: jobs.OutboxSettings{Schedule: "every now and then", BatchSize: 1, MaxAttempts: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newProcessorStub(commands.ProcessBackupOrdersResult{}, nil)
			job := jobs.NewBackupOrderOutboxJob(stub, tt.settings, discardLogger())

			err := job.Start()
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			job.Stop()
			assert.Zero(t, stub.calls.Load())
		})
	}
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	stub := newProcessorStub(commands.ProcessBackupOrdersResult{}, nil)
	manager := jobs.NewJobManager(stub, jobs.OutboxSettings{
		Schedule:    "@every 1s",
		BatchSize:   5,
		MaxAttempts: 2,
	}, discardLogger())

	require.NoError(t, manager.StartAll())
	waitForRun(t, stub)
	manager.StopAll()

	calls := stub.calls.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, calls, stub.calls.Load(), "no run after StopAll")
}

func TestJobManager_StartAllWrapsError(t *testing.T) {
	manager := jobs.NewJobManager(newProcessorStub(commands.ProcessBackupOrdersResult{}, nil),
		jobs.OutboxSettings{Schedule: "@every 1s"}, discardLogger())

	err := manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup order outbox job")
	manager.StopAll()
}
