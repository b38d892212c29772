package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor classifies an application error. Persistence failures are checked
// first: their cause chain may carry validation errors from corrupt rows.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrPersistenceFailure):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, commands.ErrInvalidProduct):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the JSON error for err. Server-side failures are logged and
// answered with a generic message.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(code, Error{Code: code, Message: "Internal server error"})
	}
	return c.JSON(code, Error{Code: code, Message: err.Error()})
}

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: "Forbidden"})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
