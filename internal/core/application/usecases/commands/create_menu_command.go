package commands

import (
	"errors"

	"catering/internal/core/domain/model/identity"
	"catering/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// CreateMenuCommand adds a menu to the caller's provider profile.
type CreateMenuCommand struct {
	session     identity.Session
	title       string
	description string

	guard guard.ConstructorGuard
}

func NewCreateMenuCommand(session identity.Session, title, description string) (CreateMenuCommand, error) {
	if err := session.Require("createMenu"); err != nil {
		return CreateMenuCommand{}, err
	}
	return CreateMenuCommand{
		session:     session,
		title:       title,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) Session() identity.Session {
	return c.session
}

func (c CreateMenuCommand) Title() string {
	return c.title
}

func (c CreateMenuCommand) Description() string {
	return c.description
}
