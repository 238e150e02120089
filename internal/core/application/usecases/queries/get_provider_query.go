package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetProviderQueryIsNotConstructed = errors.New(
	"GetProviderQuery must be created via NewGetProviderQuery constructor",
)

// GetProviderQuery reads one provider, active or not.
type GetProviderQuery struct {
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProviderQuery(providerID kernel.UUID) (GetProviderQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetProviderQuery{}, err
	}
	return GetProviderQuery{providerID: providerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProviderQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderQueryIsNotConstructed)
}
