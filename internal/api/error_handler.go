package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// errorResponse is the error envelope for non-auth, non-validation errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders 401/403 and validation failures as JSON arrays of message
//     strings (the mobile client contract).
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Echo's own errors, including those raised by the auth middleware and
	// the request validator.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msgs, ok := he.Message.([]string); ok {
			return he.Code, msgs
		}
		msg := fmt.Sprintf("%v", he.Message)
		if he.Code == http.StatusUnauthorized || he.Code == http.StatusForbidden {
			return he.Code, []string{msg}
		}
		return he.Code, errorResponse{Error: msg}
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, []string{"Invalid credentials"}
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusUnauthorized, []string{"Account is inactive"}
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, errorResponse{Error: "too many login attempts, try again later"}
	case errors.Is(err, domain.ErrResetTokenInvalid):
		return http.StatusBadRequest, []string{"Reset token is invalid or expired"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Error: "user already exists"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrOwnerNotFound):
		return http.StatusNotFound, errorResponse{Error: "owner not found"}
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, errorResponse{Error: "pet not found"}
	case errors.Is(err, domain.ErrAppointmentNotFound):
		return http.StatusNotFound, errorResponse{Error: "appointment not found"}
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, errorResponse{Error: "task not found"}
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
