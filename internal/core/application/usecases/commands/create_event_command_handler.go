package commands

import (
	"context"

	"catering/internal/core/domain/model/event"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// CreateEventCommandHandler stores a new event in planning status.
// Customers, organizers and admins plan events; providers do not.
type CreateEventCommandHandler struct {
	uowFactory EventUoWFactory
	notifier   ports.Notifier
}

func NewCreateEventCommandHandler(uowFactory EventUoWFactory, notifier ports.Notifier) CreateEventCommandHandler {
	return CreateEventCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h CreateEventCommandHandler) Handle(ctx context.Context, cmd CreateEventCommand) (*event.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := h.create(ctx, cmd)
	return created, report(ctx, h.notifier, "Event", "Event created", err)
}

func (h CreateEventCommandHandler) create(ctx context.Context, cmd CreateEventCommand) (*event.Event, error) {
	session := cmd.Session()
	if !session.Role().PlansEvents() {
		return nil, errs.NewForbiddenError("createEvent", session.Role().String()+" cannot plan events")
	}

	e, err := event.NewEvent(session.UserID(), cmd.Details())
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

	if err = uow.EventRepository().Add(ctx, e); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return e, nil
}
