package commands

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// CreateOrderCommandHandler places a pending order with a snapshot of the
// cart lines.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// placed is pending and waits for the primary provider
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle checks ownership of the cart, the event it belongs to and the stated
// totals, then persists the order in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := h.handle(ctx, cmd)
	return placed, report(ctx, h.notifier, "Order", "Order placed", err)
}

func (h CreateOrderCommandHandler) handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	in := cmd.Input()
	c, err := uow.CartRepository().Get(ctx, in.CartID)
	if err != nil {
		return nil, err
	}
	if !c.IsOwnedBy(cmd.Session().UserID()) {
		return nil, errs.NewForbiddenError("createOrder", "cart belongs to another user")
	}
	if !c.EventID().IsEqual(in.EventID) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"eventId is invalid",
			fmt.Errorf("cart %s belongs to event %s", c.ID(), c.EventID()),
		)
	}
	if err = checkTotals(c.Totals(), in); err != nil {
		return nil, err
	}

	providers := uow.ProviderRepository()
	if _, err = providers.Get(ctx, in.PrimaryProviderID); err != nil {
		return nil, err
	}
	if in.BackupProviderID != nil {
		if _, err = providers.Get(ctx, *in.BackupProviderID); err != nil {
			return nil, err
		}
	}

	items := c.Items()
	lines := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		line, err := order.LineFromCartItem(item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	placed, err := order.NewOrder(
		in.EventID, in.CartID, cmd.Session().UserID(),
		in.PrimaryProviderID, in.BackupProviderID,
		lines, in.SpecialInstructions,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return placed, nil
}

func checkTotals(actual cart.Totals, in OrderInput) error {
	if !actual.Primary.IsEqual(in.TotalPrimary) || !actual.Backup.IsEqual(in.TotalBackup) {
		return errs.NewValueIsInvalidErrorWithCause(
			"totals are invalid",
			fmt.Errorf("cart totals are primary %s, backup %s; got primary %s, backup %s",
				actual.Primary, actual.Backup, in.TotalPrimary, in.TotalBackup),
		)
	}
	return nil
}
