package identity

import (
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

// Session is the authenticated caller of an operation. It is passed
// explicitly into every command and query; the zero value means anonymous.
type Session struct {
	userID kernel.UUID
	role   Role

	guard guard.ConstructorGuard
}

// NewSession builds a session from a verified identity.
func NewSession(userID kernel.UUID, role Role) (Session, error) {
	if err := userID.Validate(); err != nil {
		return Session{}, err
	}
	if err := role.Validate(); err != nil {
		return Session{}, err
	}
	return Session{userID: userID, role: role, guard: guard.NewConstructorGuard()}, nil
}

// Anonymous returns the session of a caller without credentials.
func Anonymous() Session {
	return Session{}
}

// IsAuthenticated reports whether the session carries a user.
func (s Session) IsAuthenticated() bool {
	return s.guard.Validate(nil) == nil
}

// Require returns a NotAuthenticatedError naming operation when the session is anonymous.
func (s Session) Require(operation string) error {
	if !s.IsAuthenticated() {
		return errs.NewNotAuthenticatedError(operation)
	}
	return nil
}

// UserID returns the caller's user identifier.
func (s Session) UserID() kernel.UUID {
	return s.userID
}

// Role returns the caller's role.
func (s Session) Role() Role {
	return s.role
}

// IsAdmin is a shorthand for Role() == Admin on an authenticated session.
func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.role == Admin
}
