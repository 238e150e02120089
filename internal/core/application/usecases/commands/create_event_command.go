package commands

import (
	"errors"

	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/identity"
	"catering/internal/pkg/guard"
)

var ErrCreateEventCommandIsNotConstructed = errors.New(
	"CreateEventCommand must be created via NewCreateEventCommand constructor",
)

// CreateEventCommand plans a new event for the caller.
type CreateEventCommand struct {
	session identity.Session
	details event.Details

	guard guard.ConstructorGuard
}

func NewCreateEventCommand(session identity.Session, details event.Details) (CreateEventCommand, error) {
	if err := session.Require("createEvent"); err != nil {
		return CreateEventCommand{}, err
	}
	return CreateEventCommand{session: session, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateEventCommand) Validate() error {
	return c.guard.Validate(ErrCreateEventCommandIsNotConstructed)
}

func (c CreateEventCommand) Session() identity.Session {
	return c.session
}

func (c CreateEventCommand) Details() event.Details {
	return c.details
}
