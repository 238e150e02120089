package commands

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

type CreateMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
	notifier   ports.Notifier
}

func NewCreateMenuCommandHandler(uowFactory CatalogUoWFactory, notifier ports.Notifier) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle attaches the menu to the caller's provider profile.
func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (*catalog.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	menu, err := h.create(ctx, cmd)
	return menu, report(ctx, h.notifier, "Menu", "Menu created", err)
}

func (h CreateMenuCommandHandler) create(ctx context.Context, cmd CreateMenuCommand) (*catalog.Menu, error) {
	session := cmd.Session()
	if !session.Role().IsProvider() {
		return nil, errs.NewForbiddenError("createMenu", "restaurant or caterer role required")
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
		return nil, errs.NewForbiddenError("createMenu", "user has no provider profile")
	}
	if err != nil {
		return nil, err
	}

	menu, err := catalog.NewMenu(provider.ID(), cmd.Title(), cmd.Description())
	if err != nil {
		return nil, err
	}
	if err = uow.MenuRepository().Add(ctx, menu); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return menu, nil
}
