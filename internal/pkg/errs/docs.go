// Package errs provides the error types shared by the catering service.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the details, usable with errors.As
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Types:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation
//   - ObjectNotFoundError: a referenced cart, order, provider or item does not exist
//   - NotAuthenticatedError: the operation needs a signed-in user
//   - ForbiddenError: the caller's role or ownership forbids the operation
//   - PartialFailureError: a dependent step failed after the primary step was committed
//
// Errors that match none of these sentinels are treated as store failures
// by the transport layer.
package errs
