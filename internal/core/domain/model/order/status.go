package order

import (
	"errors"
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// ErrStatusTransitionNotAllowed is wrapped by every error returned for a
// transition out of a terminal status.
var ErrStatusTransitionNotAllowed = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	          ┌──> Confirmed
//	Pending ──┼──> Declined   (spawns a backup order when a backup provider is set)
//	          └──> Cancelled
//
// Confirmed, Declined and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. The primary provider has not decided yet.
	Pending

	// Confirmed indicates the primary provider accepted the order.
	Confirmed

	// Declined indicates the primary provider rejected the order.
	Declined

	// Cancelled indicates the customer withdrew the order before a decision.
	Cancelled
)

// getStatusStrings returns the persisted names of all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Declined:  "declined",
		Cancelled: "cancelled",
	}
}

// ParseStatus maps a persisted or transport name to a Status, ignoring case.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Unknown (0) and any value outside the declared constants are invalid.
// This method is used to ensure Status values read from the database are
// valid before use.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Declined || s == Cancelled
}

// IsDecision reports whether s is a status a provider may set on an order.
func (s Status) IsDecision() bool {
	return s == Confirmed || s == Declined
}

// transitionTo moves from Pending to target.
//
// Returns:
//   - (target, nil) when the current status is Pending
//   - (0, error wrapping ErrStatusTransitionNotAllowed) otherwise
func (s Status) transitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if s != Pending {
		return 0, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionNotAllowed, s, target)
	}
	return target, nil
}

// Confirm transitions Pending to Confirmed.
func (s Status) Confirm() (Status, error) {
	return s.transitionTo(Confirmed)
}

// Decline transitions Pending to Declined.
func (s Status) Decline() (Status, error) {
	return s.transitionTo(Declined)
}

// Cancel transitions Pending to Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.transitionTo(Cancelled)
}
