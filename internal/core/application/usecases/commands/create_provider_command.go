package commands

import (
	"errors"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/identity"
	"catering/internal/pkg/guard"
)

var ErrCreateProviderCommandIsNotConstructed = errors.New(
	"CreateProviderCommand must be created via NewCreateProviderCommand constructor",
)

// ProviderInput are the profile fields of a new provider.
type ProviderInput struct {
	Name        string
	Description string
	Location    string
	Type        catalog.ProviderType
	Contact     catalog.Contact
}

// CreateProviderCommand registers the provider profile of the caller.
type CreateProviderCommand struct {
	session identity.Session
	input   ProviderInput

	guard guard.ConstructorGuard
}

func NewCreateProviderCommand(session identity.Session, input ProviderInput) (CreateProviderCommand, error) {
	if err := session.Require("createProvider"); err != nil {
		return CreateProviderCommand{}, err
	}
	if err := input.Type.Validate(); err != nil {
		return CreateProviderCommand{}, err
	}
	return CreateProviderCommand{session: session, input: input, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateProviderCommand) Validate() error {
	return c.guard.Validate(ErrCreateProviderCommandIsNotConstructed)
}

func (c CreateProviderCommand) Session() identity.Session {
	return c.session
}

func (c CreateProviderCommand) Input() ProviderInput {
	return c.input
}
