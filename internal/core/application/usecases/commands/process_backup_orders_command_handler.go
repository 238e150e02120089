package commands

import (
	"context"

	"catering/internal/core/domain/model/outbox"
)

// ProcessBackupOrdersResult counts the outcome of one run.
type ProcessBackupOrdersResult struct {
	Processed int
	Failed    int
}

// ProcessBackupOrdersCommandHandler retries backup order creation for
// declined orders whose inline attempt did not complete.
//
// Each request is handled in its own transaction by the BackupOrderCreator,
// which is idempotent, so overlapping runs create at most one backup order
// per declined order.
type ProcessBackupOrdersCommandHandler struct {
	uowFactory OutboxUoWFactory
	backups    BackupOrderCreator
}

func NewProcessBackupOrdersCommandHandler(uowFactory OutboxUoWFactory, backups BackupOrderCreator) ProcessBackupOrdersCommandHandler {
	return ProcessBackupOrdersCommandHandler{uowFactory: uowFactory, backups: backups}
}

// Handle stops early when ctx is cancelled and returns what was done so far.
func (h ProcessBackupOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessBackupOrdersCommand,
) (ProcessBackupOrdersResult, error) {
	var result ProcessBackupOrdersResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	pending, err := h.pending(ctx, cmd)
	if err != nil {
		return result, err
	}

	for _, msg := range pending {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		backupCmd, err := NewCreateBackupOrderCommand(msg.AggregateID())
		if err == nil {
			_, err = h.backups.Handle(ctx, backupCmd)
		}
		if err == nil {
			result.Processed++
			continue
		}

		result.Failed++
		if recordErr := h.recordFailure(ctx, msg, err); recordErr != nil {
			return result, recordErr
		}
	}

	return result, nil
}

func (h ProcessBackupOrdersCommandHandler) pending(ctx context.Context, cmd ProcessBackupOrdersCommand) ([]*outbox.Message, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OutboxRepository().ListPending(ctx, outbox.BackupOrderRequested, cmd.MaxAttempts(), cmd.BatchSize())
}

func (h ProcessBackupOrdersCommandHandler) recordFailure(ctx context.Context, msg *outbox.Message, cause error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	msg.RecordFailure(cause)
	if err := uow.OutboxRepository().Update(ctx, msg); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
