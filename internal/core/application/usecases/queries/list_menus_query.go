package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListMenusQueryIsNotConstructed = errors.New("ListMenusQuery must be created via NewListMenusQuery constructor")

// ListMenusQuery lists the menus of one provider. Without a provider id it
// lists the menus of the caller's own provider profile.
type ListMenusQuery struct {
	session    identity.Session
	providerID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListMenusQuery(session identity.Session, providerID *kernel.UUID) (ListMenusQuery, error) {
	if providerID == nil {
		if err := session.Require("fetch menus"); err != nil {
			return ListMenusQuery{}, err
		}
	} else if err := providerID.Validate(); err != nil {
		return ListMenusQuery{}, err
	}
	return ListMenusQuery{session: session, providerID: providerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenusQuery) Validate() error {
	return q.guard.Validate(ErrListMenusQueryIsNotConstructed)
}

type MenuResponse struct {
	ID          kernel.UUID
	ProviderID  kernel.UUID
	Title       string
	Description string
	CreatedAt   time.Time
}
