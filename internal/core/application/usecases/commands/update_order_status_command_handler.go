package commands

import (
	"context"
	"errors"
	"fmt"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/outbox"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// BackupOrderCreator creates the backup order of a declined order.
type BackupOrderCreator interface {
	Handle(ctx context.Context, cmd CreateBackupOrderCommand) (*order.Order, error)
}

// UpdateOrderStatusCommandHandler records a provider decision.
//
// A decline of an order with a backup provider writes a BackupOrderRequested
// outbox message in the same transaction as the status change. After commit
// the backup order is created inline; when that fails the decline stands,
// the caller is told through a PartialFailureError notification and the
// outbox job retries.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, backups, notifier)
//	cmd, _ := NewUpdateOrderStatusCommand(session, orderID, order.Declined)
//	declined, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrForbidden):
//	    // caller is not the primary provider
//	case errors.Is(err, order.ErrStatusTransitionNotAllowed):
//	    // order was already decided or cancelled
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	backups    BackupOrderCreator
	notifier   ports.Notifier
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	backups BackupOrderCreator,
	notifier ports.Notifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory, backups: backups, notifier: notifier}
}

// Handle returns the decided order.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	decided, err := h.decide(ctx, cmd)
	if err = report(ctx, h.notifier, "Order", fmt.Sprintf("Order %s", cmd.Status()), err); err != nil {
		return nil, err
	}

	if decided.NeedsBackup() {
		h.spawnBackup(ctx, decided)
	}
	return decided, nil
}

func (h UpdateOrderStatusCommandHandler) decide(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = authorizeDecision(ctx, uow.ProviderRepository(), cmd.Session(), o); err != nil {
		return nil, err
	}

	if err = o.Decide(cmd.Status()); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if o.NeedsBackup() {
		msg, err := outbox.NewMessage(outbox.BackupOrderRequested, o.ID())
		if err != nil {
			return nil, err
		}
		if err = uow.OutboxRepository().Add(ctx, msg); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

// spawnBackup runs after the decline is committed and never fails it.
func (h UpdateOrderStatusCommandHandler) spawnBackup(ctx context.Context, declined *order.Order) {
	cmd, err := NewCreateBackupOrderCommand(declined.ID())
	if err == nil {
		_, err = h.backups.Handle(ctx, cmd)
	}
	if err != nil {
		err = errs.NewPartialFailureError("decline", "backup order creation", err)
	}
	_ = report(ctx, h.notifier, "Backup order", "Order forwarded to the backup provider", err)
}

// authorizeDecision allows admins and the provider profile that is the
// order's primary provider.
func authorizeDecision(ctx context.Context, providers ports.ProviderRepository, session identity.Session, o *order.Order) error {
	if session.IsAdmin() {
		return nil
	}
	if !session.Role().IsProvider() {
		return errs.NewForbiddenError("updateOrderStatus", "only the primary provider or an admin may decide")
	}

	profile, err := providers.GetByUserID(ctx, session.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewForbiddenError("updateOrderStatus", "user has no provider profile")
	}
	if err != nil {
		return err
	}
	if !profile.ID().IsEqual(o.PrimaryProviderID()) {
		return errs.NewForbiddenError("updateOrderStatus", "only the primary provider or an admin may decide")
	}
	return nil
}
