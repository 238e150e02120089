package commands

import (
	"context"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// CancelOrderCommandHandler lets the customer who placed an order, or an
// admin, cancel it while it is pending.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cancelled, err := h.cancel(ctx, cmd)
	return cancelled, report(ctx, h.notifier, "Order", "Order cancelled", err)
}

func (h CancelOrderCommandHandler) cancel(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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
	session := cmd.Session()
	if !session.IsAdmin() && !o.IsPlacedBy(session.UserID()) {
		return nil, errs.NewForbiddenError("cancelOrder", "order was placed by another user")
	}

	if err = o.Cancel(); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
