package commands

import (
	"context"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// AddedCartItem is the new line with the names shown next to it.
type AddedCartItem struct {
	Item         *cart.Item
	FoodItemName string
	ProviderName string
}

// AddCartItemCommandHandler appends a line after checking that the cart
// belongs to the caller and that the food item and provider exist.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	notifier   ports.Notifier
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, notifier ports.Notifier) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (AddedCartItem, error) {
	if err := cmd.Validate(); err != nil {
		return AddedCartItem{}, err
	}

	added, err := h.handle(ctx, cmd)
	return added, report(ctx, h.notifier, "Cart", "Item added to cart", err)
}

func (h AddCartItemCommandHandler) handle(ctx context.Context, cmd AddCartItemCommand) (AddedCartItem, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddedCartItem{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CartRepository().Get(ctx, cmd.CartID())
	if err != nil {
		return AddedCartItem{}, err
	}
	if !c.IsOwnedBy(cmd.Session().UserID()) {
		return AddedCartItem{}, errs.NewForbiddenError("addItem", "cart belongs to another user")
	}

	in := cmd.Input()
	foodItem, err := uow.FoodItemRepository().Get(ctx, in.FoodItemID)
	if err != nil {
		return AddedCartItem{}, err
	}
	provider, err := uow.ProviderRepository().Get(ctx, in.ProviderID)
	if err != nil {
		return AddedCartItem{}, err
	}

	item, err := c.AddItem(in.FoodItemID, in.TraySize, in.Quantity, in.ProviderID, in.UnitPrice, in.IsBackupProvider)
	if err != nil {
		return AddedCartItem{}, err
	}
	if err = uow.CartRepository().AddItem(ctx, item); err != nil {
		return AddedCartItem{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddedCartItem{}, err
	}

	return AddedCartItem{Item: item, FoodItemName: foodItem.Name(), ProviderName: provider.Name()}, nil
}
