package commands

import (
	"context"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// UpdateCartItemQuantityCommandHandler applies last-write-wins quantity updates.
type UpdateCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
	notifier   ports.Notifier
}

func NewUpdateCartItemQuantityCommandHandler(
	uowFactory CartUoWFactory,
	notifier ports.Notifier,
) UpdateCartItemQuantityCommandHandler {
	return UpdateCartItemQuantityCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle returns the updated line, or nil when the line was removed.
func (h UpdateCartItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemQuantityCommand) (*cart.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.RemovesItem() {
		err := removeCartItem(ctx, h.uowFactory, cmd.Session(), cmd.ItemID())
		return nil, report(ctx, h.notifier, "Cart", "Item removed from cart", err)
	}

	item, err := h.update(ctx, cmd)
	return item, report(ctx, h.notifier, "Cart", "Quantity updated", err)
}

func (h UpdateCartItemQuantityCommandHandler) update(ctx context.Context, cmd UpdateCartItemQuantityCommand) (*cart.Item, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CartRepository().GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}
	if !c.IsOwnedBy(cmd.Session().UserID()) {
		return nil, errs.NewForbiddenError("updateQuantity", "cart belongs to another user")
	}

	item, err := c.UpdateQuantity(cmd.ItemID(), cmd.Quantity())
	if err != nil {
		return nil, err
	}
	if err = uow.CartRepository().UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}
