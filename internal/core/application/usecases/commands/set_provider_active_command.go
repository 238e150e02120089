package commands

import (
	"errors"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrSetProviderActiveCommandIsNotConstructed = errors.New(
	"SetProviderActiveCommand must be created via NewSetProviderActiveCommand constructor",
)

// SetProviderActiveCommand is an admin moderation action.
type SetProviderActiveCommand struct {
	session    identity.Session
	providerID kernel.UUID
	active     bool

	guard guard.ConstructorGuard
}

func NewSetProviderActiveCommand(session identity.Session, providerID kernel.UUID, active bool) (SetProviderActiveCommand, error) {
	if err := session.Require("setProviderActive"); err != nil {
		return SetProviderActiveCommand{}, err
	}
	if err := providerID.Validate(); err != nil {
		return SetProviderActiveCommand{}, err
	}
	return SetProviderActiveCommand{
		session:    session,
		providerID: providerID,
		active:     active,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetProviderActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetProviderActiveCommandIsNotConstructed)
}

func (c SetProviderActiveCommand) Session() identity.Session {
	return c.session
}

func (c SetProviderActiveCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c SetProviderActiveCommand) Active() bool {
	return c.active
}
