package commands

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// GetOrCreateCartCommandHandler returns the single cart of a (event, customer)
// pair. Two concurrent first accesses may both try to create it; the loser
// reads the winner's cart.
type GetOrCreateCartCommandHandler struct {
	uowFactory CartUoWFactory
	notifier   ports.Notifier
}

func NewGetOrCreateCartCommandHandler(uowFactory CartUoWFactory, notifier ports.Notifier) GetOrCreateCartCommandHandler {
	return GetOrCreateCartCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle fetches or creates the cart. Only failures are notified.
func (h GetOrCreateCartCommandHandler) Handle(ctx context.Context, cmd GetOrCreateCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.getOrCreate(ctx, cmd)
	if errors.Is(err, ports.ErrAlreadyExists) {
		c, err = h.getOrCreate(ctx, cmd)
	}
	if err != nil {
		return nil, report(ctx, h.notifier, "Cart", "", err)
	}
	return c, nil
}

func (h GetOrCreateCartCommandHandler) getOrCreate(ctx context.Context, cmd GetOrCreateCartCommand) (*cart.Cart, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerID := cmd.Session().UserID()
	existing, err := uow.CartRepository().GetByEventAndCustomer(ctx, cmd.EventID(), customerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if _, err = uow.EventRepository().Get(ctx, cmd.EventID()); err != nil {
		return nil, err
	}

	created, err := cart.NewCart(cmd.EventID(), customerID)
	if err != nil {
		return nil, err
	}
	if err = uow.CartRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}
