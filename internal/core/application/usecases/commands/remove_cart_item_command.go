package commands

import (
	"errors"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand deletes a cart line. Unknown lines are a no-op.
type RemoveCartItemCommand struct {
	session identity.Session
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(session identity.Session, itemID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := session.Require("removeItem"); err != nil {
		return RemoveCartItemCommand{}, err
	}
	if err := itemID.Validate(); err != nil {
		return RemoveCartItemCommand{}, err
	}
	return RemoveCartItemCommand{session: session, itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) Session() identity.Session {
	return c.session
}

func (c RemoveCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
