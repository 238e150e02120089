package commands

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

type CreateFoodItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	notifier   ports.Notifier
}

func NewCreateFoodItemCommandHandler(uowFactory CatalogUoWFactory, notifier ports.Notifier) CreateFoodItemCommandHandler {
	return CreateFoodItemCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle attaches the dish to the caller's provider profile. Users without
// a profile are forbidden.
func (h CreateFoodItemCommandHandler) Handle(ctx context.Context, cmd CreateFoodItemCommand) (*catalog.FoodItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := h.create(ctx, cmd)
	return item, report(ctx, h.notifier, "Food item", "Food item created", err)
}

func (h CreateFoodItemCommandHandler) create(ctx context.Context, cmd CreateFoodItemCommand) (*catalog.FoodItem, error) {
	session := cmd.Session()
	if !session.Role().IsProvider() {
		return nil, errs.NewForbiddenError("createFoodItem", "restaurant or caterer role required")
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
		return nil, errs.NewForbiddenError("createFoodItem", "user has no provider profile")
	}
	if err != nil {
		return nil, err
	}

	in := cmd.Input()
	item, err := catalog.NewFoodItem(provider.ID(), in.Name, in.Description, in.CuisineType, in.PricePerTray, in.TraySize, in.Dietary)
	if err != nil {
		return nil, err
	}
	if err = uow.FoodItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}
