package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New("GetCartQuery must be created via NewGetCartQuery constructor")

// GetCartQuery reads a cart with its lines and totals. The cart must belong
// to the session user.
type GetCartQuery struct {
	session identity.Session
	cartID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(session identity.Session, cartID kernel.UUID) (GetCartQuery, error) {
	if err := session.Require("get cart"); err != nil {
		return GetCartQuery{}, err
	}
	if err := cartID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{session: session, cartID: cartID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CartView is a cart as shown to its owner.
type CartView struct {
	ID         kernel.UUID
	EventID    kernel.UUID
	CustomerID kernel.UUID
	CreatedAt  time.Time
	Items      []CartItemView
	Totals     cart.Totals
}

// CartItemView is one line with the names of the dish and the provider.
// Names are empty when the referenced row no longer exists.
type CartItemView struct {
	ID               kernel.UUID
	FoodItemID       kernel.UUID
	FoodItemName     string
	ProviderID       kernel.UUID
	ProviderName     string
	TraySize         cart.TraySize
	Quantity         int
	UnitPrice        kernel.Money
	Subtotal         kernel.Money
	IsBackupProvider bool
	CreatedAt        time.Time
}
