// Package pgerrs translates PostgreSQL driver and GORM errors into the
// errors of the ports and errs packages.
package pgerrs

import (
	"errors"
	"fmt"

	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation pq.ErrorCode = "23505"

// Translate maps a unique constraint violation to ports.ErrAlreadyExists and
// returns any other error unchanged.
func Translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ports.ErrAlreadyExists, pqErr.Constraint)
	}
	return err
}

// NotFound maps gorm.ErrRecordNotFound to an ObjectNotFoundError for param.
func NotFound(err error, param string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return err
}
