package commands

import (
	"errors"
	"fmt"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// CartItemInput are the fields of a new cart line.
type CartItemInput struct {
	FoodItemID       kernel.UUID
	TraySize         cart.TraySize
	Quantity         int
	ProviderID       kernel.UUID
	UnitPrice        kernel.Money
	IsBackupProvider bool
}

// AddCartItemCommand appends a line to a cart the caller owns.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(session, cartID, CartItemInput{
//	    FoodItemID: foodItemID,
//	    TraySize:   cart.Full,
//	    Quantity:   2,
//	    ProviderID: providerID,
//	    UnitPrice:  price,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid cart item: %w", err)
//	}
//	added, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct {
	session identity.Session
	cartID  kernel.UUID
	input   CartItemInput

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(session identity.Session, cartID kernel.UUID, input CartItemInput) (AddCartItemCommand, error) {
	if err := session.Require("addItem"); err != nil {
		return AddCartItemCommand{}, err
	}

	var quantityErr error
	if input.Quantity < 1 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is less than 1", input.Quantity))
	}
	if err := errors.Join(
		cartID.Validate(),
		input.FoodItemID.Validate(),
		input.ProviderID.Validate(),
		input.TraySize.Validate(),
		quantityErr,
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return AddCartItemCommand{session: session, cartID: cartID, input: input, guard: guard.NewConstructorGuard()}, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) Session() identity.Session {
	return c.session
}

func (c AddCartItemCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c AddCartItemCommand) Input() CartItemInput {
	return c.input
}
