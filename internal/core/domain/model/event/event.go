// Package event models the occasion a customer caters for. Carts are
// scoped to one event.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// Status is the planning state of an event. New events start in Planning.
type Status string

const (
	Planning  Status = "planning"
	Booked    Status = "booked"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

func (s Status) Validate() error {
	switch s {
	case Planning, Booked, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("event status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// Details are the user supplied fields of an event.
type Details struct {
	Name        string
	Date        time.Time
	Location    string
	GuestCount  int
	CuisineType string
	Budget      *kernel.Money
}

// Event is owned by the user who planned it.
type Event struct {
	id        kernel.UUID
	userID    kernel.UUID
	details   Details
	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewEvent plans a new event for userID.
func NewEvent(userID kernel.UUID, d Details) (*Event, error) {
	now := time.Now().UTC()
	return RestoreEvent(kernel.NewUUID(), userID, d, Planning, now, now)
}

// RestoreEvent rebuilds a stored event.
func RestoreEvent(id, userID kernel.UUID, d Details, status Status, createdAt, updatedAt time.Time) (*Event, error) {
	var guestErr, nameErr, locationErr, dateErr error
	if d.GuestCount < 1 {
		guestErr = errs.NewValueIsInvalidErrorWithCause("guestCount is invalid", fmt.Errorf("%d is less than 1", d.GuestCount))
	}
	if strings.TrimSpace(d.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(d.Location) == "" {
		locationErr = errs.NewValueIsRequiredError("location")
	}
	if d.Date.IsZero() {
		dateErr = errs.NewValueIsRequiredError("date")
	}
	if err := errors.Join(id.Validate(), userID.Validate(), nameErr, locationErr, dateErr, guestErr, status.Validate()); err != nil {
		return nil, err
	}

	d.Name = strings.TrimSpace(d.Name)
	d.Location = strings.TrimSpace(d.Location)
	return &Event{
		id:            id,
		userID:        userID,
		details:       d,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

func (e *Event) ID() kernel.UUID {
	return e.id
}

func (e *Event) UserID() kernel.UUID {
	return e.userID
}

func (e *Event) Details() Details {
	return e.details
}

func (e *Event) Status() Status {
	return e.status
}

func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Event) UpdatedAt() time.Time {
	return e.updatedAt
}

// IsOwnedBy reports whether userID planned the event.
func (e *Event) IsOwnedBy(userID kernel.UUID) bool {
	return e.userID.IsEqual(userID)
}
