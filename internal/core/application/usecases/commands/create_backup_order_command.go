package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCreateBackupOrderCommandIsNotConstructed = errors.New(
	"CreateBackupOrderCommand must be created via NewCreateBackupOrderCommand constructor",
)

// CreateBackupOrderCommand asks for the backup order of a declined order.
// It carries no session: it runs on behalf of the system, right after the
// decline or later from the outbox.
type CreateBackupOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateBackupOrderCommand(orderID kernel.UUID) (CreateBackupOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateBackupOrderCommand{}, err
	}
	return CreateBackupOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateBackupOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateBackupOrderCommandIsNotConstructed)
}

// OrderID returns the declined order.
func (c CreateBackupOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
