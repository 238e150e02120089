package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListFoodItemsQueryIsNotConstructed = errors.New(
	"ListFoodItemsQuery must be created via NewListFoodItemsQuery constructor",
)

// ListFoodItemsQuery lists the available dishes of one provider.
type ListFoodItemsQuery struct {
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListFoodItemsQuery(providerID kernel.UUID) (ListFoodItemsQuery, error) {
	if err := providerID.Validate(); err != nil {
		return ListFoodItemsQuery{}, err
	}
	return ListFoodItemsQuery{providerID: providerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListFoodItemsQuery) Validate() error {
	return q.guard.Validate(ErrListFoodItemsQueryIsNotConstructed)
}

type FoodItemResponse struct {
	ID           kernel.UUID
	ProviderID   kernel.UUID
	Name         string
	Description  string
	CuisineType  string
	PricePerTray kernel.Money
	TraySize     cart.TraySize
	Dietary      catalog.Dietary
	IsAvailable  bool
	CreatedAt    time.Time
}
