package commands

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// CreateProviderCommandHandler creates the one provider profile a
// restaurant or caterer user may have.
type CreateProviderCommandHandler struct {
	uowFactory CatalogUoWFactory
	notifier   ports.Notifier
}

func NewCreateProviderCommandHandler(uowFactory CatalogUoWFactory, notifier ports.Notifier) CreateProviderCommandHandler {
	return CreateProviderCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h CreateProviderCommandHandler) Handle(ctx context.Context, cmd CreateProviderCommand) (*catalog.Provider, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := h.create(ctx, cmd)
	if errors.Is(err, ports.ErrAlreadyExists) {
		err = errs.NewForbiddenError("createProvider", "user already has a provider profile")
	}
	return p, report(ctx, h.notifier, "Provider", "Provider profile created", err)
}

func (h CreateProviderCommandHandler) create(ctx context.Context, cmd CreateProviderCommand) (*catalog.Provider, error) {
	session := cmd.Session()
	if !session.Role().IsProvider() {
		return nil, errs.NewForbiddenError("createProvider", "restaurant or caterer role required")
	}

	in := cmd.Input()
	p, err := catalog.NewProvider(session.UserID(), in.Name, in.Description, in.Location, in.Type, in.Contact)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProviderRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}
