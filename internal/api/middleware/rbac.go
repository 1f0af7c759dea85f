package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawdesk/clinic-api/internal/api/metrics"
	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// RequireRole enforces role-based access control on a route. The admin role
// is the universal override and is checked before the route's own
// requirement.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := CurrentIdentity(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, []string{"Authentication required"})
			}

			if identity.Role == domain.RoleAdmin || identity.Role == required {
				return next(c)
			}

			metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
			return echo.NewHTTPError(http.StatusForbidden, []string{fmt.Sprintf("Requires %s role", required)})
		}
	}
}
