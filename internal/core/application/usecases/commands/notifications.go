package commands

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

const genericFailureMessage = "Something went wrong. Please try again."

// report sends one notification for the outcome of an operation and returns
// err unchanged. An empty success message suppresses the success notification.
func report(ctx context.Context, notifier ports.Notifier, title, success string, err error) error {
	if err != nil {
		notifier.Notify(ctx, ports.Notification{Title: title, Message: UserMessage(err), Kind: ports.NotificationError})
		return err
	}
	if success != "" {
		notifier.Notify(ctx, ports.Notification{Title: title, Message: success, Kind: ports.NotificationInfo})
	}
	return nil
}

// UserMessage renders err for a person. Classified errors keep their text;
// store failures get a generic message.
func UserMessage(err error) string {
	if IsClassified(err) {
		return err.Error()
	}
	return genericFailureMessage
}

// IsClassified reports whether err is one of the errs kinds surfaced to
// callers. Everything else is a store failure.
func IsClassified(err error) bool {
	for _, target := range []error{
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrObjectNotFound,
		errs.ErrNotAuthenticated,
		errs.ErrForbidden,
		errs.ErrPartialFailure,
		order.ErrStatusTransitionNotAllowed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
