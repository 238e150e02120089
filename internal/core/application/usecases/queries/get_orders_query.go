package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New("GetOrdersQuery must be created via NewGetOrdersQuery constructor")

// GetOrdersQuery lists the orders visible to the caller:
//   - customer: orders they placed
//   - restaurant, caterer: orders where their provider is primary, backup or
//     the current provider
//   - admin: every order
//   - organizer: none
type GetOrdersQuery struct {
	session identity.Session

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(session identity.Session) (GetOrdersQuery, error) {
	if err := session.Require("fetch orders"); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{session: session, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

type OrderResponse struct {
	ID                  kernel.UUID
	EventID             kernel.UUID
	CartID              kernel.UUID
	CustomerID          kernel.UUID
	PrimaryProviderID   kernel.UUID
	BackupProviderID    *kernel.UUID
	SourceOrderID       *kernel.UUID
	Items               []OrderItemResponse
	TotalPrimary        kernel.Money
	TotalBackup         kernel.Money
	TotalAmount         kernel.Money
	Status              order.Status
	SpecialInstructions string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type OrderItemResponse struct {
	ID               kernel.UUID
	FoodItemID       kernel.UUID
	FoodItemName     string
	ProviderID       kernel.UUID
	TraySize         cart.TraySize
	Quantity         int
	UnitPrice        kernel.Money
	IsBackupProvider bool
}
