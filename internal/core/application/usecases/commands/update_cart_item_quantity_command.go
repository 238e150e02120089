package commands

import (
	"errors"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrUpdateCartItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartItemQuantityCommand must be created via NewUpdateCartItemQuantityCommand constructor",
)

// UpdateCartItemQuantityCommand sets the quantity of a line. A quantity of
// zero or less removes the line.
type UpdateCartItemQuantityCommand struct {
	session  identity.Session
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemQuantityCommand(
	session identity.Session,
	itemID kernel.UUID,
	quantity int,
) (UpdateCartItemQuantityCommand, error) {
	if err := session.Require("updateQuantity"); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}
	if err := itemID.Validate(); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}
	return UpdateCartItemQuantityCommand{
		session:  session,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

func (c UpdateCartItemQuantityCommand) Session() identity.Session {
	return c.session
}

func (c UpdateCartItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

// RemovesItem reports whether the command deletes the line.
func (c UpdateCartItemQuantityCommand) RemovesItem() bool {
	return c.quantity <= 0
}
