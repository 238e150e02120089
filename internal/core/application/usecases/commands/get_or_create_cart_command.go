package commands

import (
	"errors"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetOrCreateCartCommandIsNotConstructed = errors.New(
	"GetOrCreateCartCommand must be created via NewGetOrCreateCartCommand constructor",
)

// GetOrCreateCartCommand asks for the caller's cart for an event, creating an
// empty one on first access.
type GetOrCreateCartCommand struct {
	session identity.Session
	eventID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrCreateCartCommand(session identity.Session, eventID kernel.UUID) (GetOrCreateCartCommand, error) {
	if err := session.Require("getOrCreateCart"); err != nil {
		return GetOrCreateCartCommand{}, err
	}
	if err := eventID.Validate(); err != nil {
		return GetOrCreateCartCommand{}, err
	}
	return GetOrCreateCartCommand{session: session, eventID: eventID, guard: guard.NewConstructorGuard()}, nil
}

func (c GetOrCreateCartCommand) Validate() error {
	return c.guard.Validate(ErrGetOrCreateCartCommandIsNotConstructed)
}

func (c GetOrCreateCartCommand) Session() identity.Session {
	return c.session
}

func (c GetOrCreateCartCommand) EventID() kernel.UUID {
	return c.eventID
}
