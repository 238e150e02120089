package commands

import (
	"context"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

type SetProviderActiveCommandHandler struct {
	uowFactory CatalogUoWFactory
	notifier   ports.Notifier
}

func NewSetProviderActiveCommandHandler(uowFactory CatalogUoWFactory, notifier ports.Notifier) SetProviderActiveCommandHandler {
	return SetProviderActiveCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle is a no-op write when the flag already has the requested value.
func (h SetProviderActiveCommandHandler) Handle(ctx context.Context, cmd SetProviderActiveCommand) (*catalog.Provider, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	success := "Provider deactivated"
	if cmd.Active() {
		success = "Provider activated"
	}
	p, err := h.set(ctx, cmd)
	return p, report(ctx, h.notifier, "Provider", success, err)
}

func (h SetProviderActiveCommandHandler) set(ctx context.Context, cmd SetProviderActiveCommand) (*catalog.Provider, error) {
	if !cmd.Session().IsAdmin() {
		return nil, errs.NewForbiddenError("setProviderActive", "admin role required")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProviderRepository().Get(ctx, cmd.ProviderID())
	if err != nil {
		return nil, err
	}
	if !p.SetActive(cmd.Active()) {
		return p, nil
	}
	if err = uow.ProviderRepository().Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}
