package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawdesk/clinic-api/internal/api/middleware"
	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// ctxIdentity extracts the identity attached by the Authenticate middleware.
// Its presence proves the middleware ran; handlers on protected routes call
// this before any service work.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, []string{"Authentication required"})
	}
	return identity, nil
}
