package identity

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// Role is the closed set of user roles.
//
// The legacy value "provider" is accepted by ParseRole and mapped to
// Restaurant; it never appears as a Role value.
type Role int

const (
	// UnknownRole is the zero value and is never valid.
	UnknownRole Role = iota
	Customer
	Restaurant
	Caterer
	Organizer
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Restaurant:  "restaurant",
		Caterer:     "caterer",
		Organizer:   "organizer",
		Admin:       "admin",
	}
}

// roleAliases maps accepted spellings to roles at the ingest boundary.
var roleAliases = map[string]Role{
	"customer":   Customer,
	"restaurant": Restaurant,
	"provider":   Restaurant,
	"caterer":    Caterer,
	"organizer":  Organizer,
	"admin":      Admin,
}

// ParseRole normalizes a role coming from a token or a request.
// Matching ignores case and surrounding whitespace.
func ParseRole(s string) (Role, error) {
	role, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%q is not a known role", s),
		)
	}
	return role, nil
}

// Validate rejects UnknownRole and out of range values.
func (r Role) Validate() error {
	if r <= UnknownRole || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical lower-case name.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// IsProvider reports whether the role operates a provider profile.
func (r Role) IsProvider() bool {
	return r == Restaurant || r == Caterer
}

// PlansEvents reports whether the role may create events and carts.
func (r Role) PlansEvents() bool {
	return r == Customer || r == Organizer || r == Admin
}
