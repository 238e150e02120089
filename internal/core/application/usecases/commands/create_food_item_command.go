package commands

import (
	"errors"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCreateFoodItemCommandIsNotConstructed = errors.New(
	"CreateFoodItemCommand must be created via NewCreateFoodItemCommand constructor",
)

// FoodItemInput are the fields of a new dish.
type FoodItemInput struct {
	Name         string
	Description  string
	CuisineType  string
	PricePerTray kernel.Money
	TraySize     cart.TraySize
	Dietary      catalog.Dietary
}

// CreateFoodItemCommand lists a dish under the caller's provider profile.
type CreateFoodItemCommand struct {
	session identity.Session
	input   FoodItemInput

	guard guard.ConstructorGuard
}

func NewCreateFoodItemCommand(session identity.Session, input FoodItemInput) (CreateFoodItemCommand, error) {
	if err := session.Require("createFoodItem"); err != nil {
		return CreateFoodItemCommand{}, err
	}
	if err := input.TraySize.Validate(); err != nil {
		return CreateFoodItemCommand{}, err
	}
	return CreateFoodItemCommand{session: session, input: input, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateFoodItemCommandIsNotConstructed)
}

func (c CreateFoodItemCommand) Session() identity.Session {
	return c.session
}

func (c CreateFoodItemCommand) Input() FoodItemInput {
	return c.input
}
