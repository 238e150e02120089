package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrResolveProviderQueryIsNotConstructed = errors.New(
	"ResolveProviderQuery must be created via NewResolveProviderQuery constructor",
)

// ResolveProviderQuery maps a user to the provider profile they operate.
type ResolveProviderQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResolveProviderQuery(userID kernel.UUID) (ResolveProviderQuery, error) {
	if err := userID.Validate(); err != nil {
		return ResolveProviderQuery{}, err
	}
	return ResolveProviderQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolveProviderQuery) Validate() error {
	return q.guard.Validate(ErrResolveProviderQueryIsNotConstructed)
}
