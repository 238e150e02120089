package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListReviewsQueryIsNotConstructed = errors.New(
	"ListReviewsQuery must be created via NewListReviewsQuery constructor",
)

// ListReviewsQuery lists what customers wrote about one provider.
type ListReviewsQuery struct {
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListReviewsQuery(providerID kernel.UUID) (ListReviewsQuery, error) {
	if err := providerID.Validate(); err != nil {
		return ListReviewsQuery{}, err
	}
	return ListReviewsQuery{providerID: providerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListReviewsQueryIsNotConstructed)
}

type ReviewResponse struct {
	ID         kernel.UUID
	ProviderID kernel.UUID
	CustomerID kernel.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
