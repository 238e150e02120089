package commands

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// RemoveCartItemCommandHandler deletes a line of a cart the caller owns.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	notifier   ports.Notifier
}

func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory, notifier ports.Notifier) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle succeeds for lines that no longer exist.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := removeCartItem(ctx, h.uowFactory, cmd.Session(), cmd.ItemID())
	return report(ctx, h.notifier, "Cart", "Item removed from cart", err)
}

func removeCartItem(ctx context.Context, uowFactory CartUoWFactory, session identity.Session, itemID kernel.UUID) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CartRepository().GetByItemID(ctx, itemID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !c.IsOwnedBy(session.UserID()) {
		return errs.NewForbiddenError("removeItem", "cart belongs to another user")
	}

	c.RemoveItem(itemID)
	if err = uow.CartRepository().RemoveItem(ctx, itemID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
