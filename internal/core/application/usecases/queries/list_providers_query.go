package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListProvidersQueryIsNotConstructed = errors.New(
	"ListProvidersQuery must be created via NewListProvidersQuery constructor",
)

// ListProvidersQuery lists active providers ordered by name, optionally
// restricted to one provider type.
//
// Example:
//
//	kitchens := catalog.CloudKitchen
//	query, err := NewListProvidersQuery(&kitchens)
//	providers, err := handler.Handle(ctx, query)
type ListProvidersQuery struct {
	providerType *catalog.ProviderType

	guard guard.ConstructorGuard
}

// NewListProvidersQuery accepts nil for every type.
func NewListProvidersQuery(providerType *catalog.ProviderType) (ListProvidersQuery, error) {
	if providerType != nil {
		if err := providerType.Validate(); err != nil {
			return ListProvidersQuery{}, err
		}
	}
	return ListProvidersQuery{providerType: providerType, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProvidersQuery) Validate() error {
	return q.guard.Validate(ErrListProvidersQueryIsNotConstructed)
}

// ProviderResponse is the provider read model shared by the directory queries.
type ProviderResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Name        string
	Description string
	Location    string
	Type        catalog.ProviderType
	Contact     catalog.Contact
	IsActive    bool
	CreatedAt   time.Time
}
