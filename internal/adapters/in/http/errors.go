package http

import (
	"errors"
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/generated/servers"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var statusByError = []struct {
	target error
	status int
}{
	{errs.ErrNotAuthenticated, http.StatusUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden},
	{errs.ErrObjectNotFound, http.StatusNotFound},
	{order.ErrStatusTransitionNotAllowed, http.StatusConflict},
	{ports.ErrAlreadyExists, http.StatusConflict},
	{errs.ErrValueIsRequired, http.StatusBadRequest},
	{errs.ErrValueIsInvalid, http.StatusBadRequest},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest},
}

// StatusCode maps an application error to the HTTP status sent to clients.
// Unclassified errors are store failures and map to 500.
func StatusCode(err error) int {
	for _, entry := range statusByError {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

func writeError(ctx echo.Context, err error) error {
	status := StatusCode(err)
	message := commands.UserMessage(err)
	if status == http.StatusInternalServerError {
		ctx.Logger().Error(err)
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}
