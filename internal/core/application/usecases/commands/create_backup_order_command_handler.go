package commands

import (
	"context"
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/outbox"
	"catering/internal/pkg/errs"
)

// CreateBackupOrderCommandHandler derives and stores the backup order of a
// declined order and marks the matching outbox message processed, both in
// one transaction.
//
// Handling is idempotent: when the derived order already exists it is
// returned as-is. An order without a backup provider yields (nil, nil).
type CreateBackupOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateBackupOrderCommandHandler(uowFactory OrderUoWFactory) CreateBackupOrderCommandHandler {
	return CreateBackupOrderCommandHandler{uowFactory: uowFactory}
}

func (h CreateBackupOrderCommandHandler) Handle(ctx context.Context, cmd CreateBackupOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	derived, err := h.create(ctx, cmd.OrderID())
	if err == nil || errors.Is(err, errs.ErrObjectNotFound) {
		return derived, err
	}

	// a concurrent run may have stored the derived order first
	existing, lookupErr := h.existing(ctx, cmd.OrderID())
	if lookupErr == nil {
		return existing, nil
	}
	return nil, err
}

func (h CreateBackupOrderCommandHandler) create(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	original, err := orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	derived, err := orders.GetBySourceOrder(ctx, orderID)
	switch {
	case err == nil:
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	default:
		derived, err = original.DeriveBackupOrder()
		if errors.Is(err, order.ErrNoBackupProvider) {
			derived = nil
			break
		}
		if err != nil {
			return nil, err
		}
		if err = orders.Add(ctx, derived); err != nil {
			return nil, err
		}
	}

	if err = markBackupRequestProcessed(ctx, uow, orderID); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return derived, nil
}

func (h CreateBackupOrderCommandHandler) existing(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetBySourceOrder(ctx, orderID)
}

func markBackupRequestProcessed(ctx context.Context, uow OutboxRepoFactory, orderID kernel.UUID) error {
	repo := uow.OutboxRepository()
	msg, err := repo.GetByAggregate(ctx, outbox.BackupOrderRequested, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if msg.IsProcessed() {
		return nil
	}
	msg.MarkProcessed(time.Now())
	return repo.Update(ctx, msg)
}
