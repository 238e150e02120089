package commands

import (
	"errors"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrUpdateFoodItemCommandIsNotConstructed = errors.New(
	"UpdateFoodItemCommand must be created via NewUpdateFoodItemCommand constructor",
)

// UpdateFoodItemCommand changes some fields of a dish, availability included.
type UpdateFoodItemCommand struct {
	session identity.Session
	itemID  kernel.UUID
	changes catalog.FoodItemChanges

	guard guard.ConstructorGuard
}

func NewUpdateFoodItemCommand(session identity.Session, itemID kernel.UUID, changes catalog.FoodItemChanges) (UpdateFoodItemCommand, error) {
	if err := session.Require("updateFoodItem"); err != nil {
		return UpdateFoodItemCommand{}, err
	}
	if err := itemID.Validate(); err != nil {
		return UpdateFoodItemCommand{}, err
	}
	if changes.IsEmpty() {
		return UpdateFoodItemCommand{}, errs.NewValueIsRequiredError("changes")
	}
	if changes.TraySize != nil {
		if err := changes.TraySize.Validate(); err != nil {
			return UpdateFoodItemCommand{}, err
		}
	}
	return UpdateFoodItemCommand{
		session: session,
		itemID:  itemID,
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFoodItemCommandIsNotConstructed)
}

func (c UpdateFoodItemCommand) Session() identity.Session {
	return c.session
}

func (c UpdateFoodItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateFoodItemCommand) Changes() catalog.FoodItemChanges {
	return c.changes
}
