package commands

import (
	"errors"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrProcessBackupOrdersCommandIsNotConstructed = errors.New(
	"ProcessBackupOrdersCommand must be created via NewProcessBackupOrdersCommand constructor",
)

// ProcessBackupOrdersCommand drains up to batchSize pending backup requests.
// Requests that failed maxAttempts times are left alone.
type ProcessBackupOrdersCommand struct {
	batchSize   int
	maxAttempts int

	guard guard.ConstructorGuard
}

func NewProcessBackupOrdersCommand(batchSize, maxAttempts int) (ProcessBackupOrdersCommand, error) {
	var batchErr, attemptsErr error
	if batchSize < 1 {
		batchErr = errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}
	if maxAttempts < 1 {
		attemptsErr = errs.NewValueIsOutOfRangeError("maxAttempts", maxAttempts, 1, "unbounded")
	}
	if err := errors.Join(batchErr, attemptsErr); err != nil {
		return ProcessBackupOrdersCommand{}, err
	}
	return ProcessBackupOrdersCommand{batchSize: batchSize, maxAttempts: maxAttempts, guard: guard.NewConstructorGuard()}, nil
}

func (c ProcessBackupOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessBackupOrdersCommandIsNotConstructed)
}

func (c ProcessBackupOrdersCommand) BatchSize() int {
	return c.batchSize
}

func (c ProcessBackupOrdersCommand) MaxAttempts() int {
	return c.maxAttempts
}
