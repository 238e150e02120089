package commands

import (
	"errors"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand withdraws a pending order on behalf of its customer.
type CancelOrderCommand struct {
	session identity.Session
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(session identity.Session, orderID kernel.UUID) (CancelOrderCommand, error) {
	if err := session.Require("cancelOrder"); err != nil {
		return CancelOrderCommand{}, err
	}
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{session: session, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Session() identity.Session {
	return c.session
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
