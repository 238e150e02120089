// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values can be told apart from values
// built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was created by its
// constructor. The zero value is "not constructed".
//
// Example:
//
//	var ErrEventNotConstructed = errors.New("Event must be created via NewEvent")
//
//	type Event struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewEvent(name string) (Event, error) {
//	    if name == "" {
//	        return Event{}, errors.New("name is required")
//	    }
//	    return Event{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (e Event) Validate() error {
//	    return e.guard.Validate(ErrEventNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
