package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListEventsQueryIsNotConstructed = errors.New(
	"ListEventsQuery must be created via NewListEventsQuery constructor",
)

// ListEventsQuery lists the events planned by the caller.
type ListEventsQuery struct {
	session identity.Session

	guard guard.ConstructorGuard
}

func NewListEventsQuery(session identity.Session) (ListEventsQuery, error) {
	if err := session.Require("list events"); err != nil {
		return ListEventsQuery{}, err
	}
	return ListEventsQuery{session: session, guard: guard.NewConstructorGuard()}, nil
}

func (q ListEventsQuery) Validate() error {
	return q.guard.Validate(ErrListEventsQueryIsNotConstructed)
}

type EventResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Name        string
	Date        time.Time
	Location    string
	GuestCount  int
	CuisineType string
	Budget      *kernel.Money
	Status      event.Status
	CreatedAt   time.Time
}
