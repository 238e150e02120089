package commands

import (
	"errors"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order for the lines of a cart.
//
// The caller states the totals it showed the customer; they must match the
// cart's current totals, so an order is never placed at a stale price.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(session, OrderInput{
//	    EventID:           eventID,
//	    CartID:            cartID,
//	    PrimaryProviderID: primaryID,
//	    BackupProviderID:  &backupID,
//	    TotalPrimary:      totals.Primary,
//	    TotalBackup:       totals.Backup,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	session identity.Session
	input   OrderInput

	guard guard.ConstructorGuard
}

// OrderInput are the checkout fields of CreateOrderCommand.
type OrderInput struct {
	EventID             kernel.UUID
	CartID              kernel.UUID
	PrimaryProviderID   kernel.UUID
	BackupProviderID    *kernel.UUID
	TotalPrimary        kernel.Money
	TotalBackup         kernel.Money
	SpecialInstructions string
}

func NewCreateOrderCommand(session identity.Session, input OrderInput) (CreateOrderCommand, error) {
	if err := session.Require("createOrder"); err != nil {
		return CreateOrderCommand{}, err
	}

	var backupErr error
	if input.BackupProviderID != nil {
		backupErr = input.BackupProviderID.Validate()
	}
	if err := errors.Join(
		input.EventID.Validate(),
		input.CartID.Validate(),
		input.PrimaryProviderID.Validate(),
		backupErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{session: session, input: input, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Session() identity.Session {
	return c.session
}

func (c CreateOrderCommand) Input() OrderInput {
	return c.input
}
