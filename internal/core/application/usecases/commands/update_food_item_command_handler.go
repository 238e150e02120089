package commands

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

type UpdateFoodItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	notifier   ports.Notifier
}

func NewUpdateFoodItemCommandHandler(uowFactory CatalogUoWFactory, notifier ports.Notifier) UpdateFoodItemCommandHandler {
	return UpdateFoodItemCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle applies the changes when the dish belongs to the caller's provider
// profile. Any other caller is forbidden.
func (h UpdateFoodItemCommandHandler) Handle(ctx context.Context, cmd UpdateFoodItemCommand) (*catalog.FoodItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := h.update(ctx, cmd)
	return item, report(ctx, h.notifier, "Food item", "Food item updated", err)
}

func (h UpdateFoodItemCommandHandler) update(ctx context.Context, cmd UpdateFoodItemCommand) (*catalog.FoodItem, error) {
	session := cmd.Session()
	if !session.Role().IsProvider() {
		return nil, errs.NewForbiddenError("updateFoodItem", "restaurant or caterer role required")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	provider, err := uow.ProviderRepository().GetByUserID(ctx, session.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewForbiddenError("updateFoodItem", "user has no provider profile")
	}
	if err != nil {
		return nil, err
	}

	item, err := uow.FoodItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}
	if !item.ProviderID().IsEqual(provider.ID()) {
		return nil, errs.NewForbiddenError("updateFoodItem", "food item belongs to another provider")
	}

	if err = item.Update(cmd.Changes()); err != nil {
		return nil, err
	}
	if err = uow.FoodItemRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}
