package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawdesk/clinic-api/internal/api/metrics"
	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
	"github.com/pawdesk/clinic-api/internal/pkg/token"
)

// identityKey is the Echo context key the resolved identity is stored under.
const identityKey = "identity"

// CurrentIdentity returns the authenticated identity attached by
// Authenticate, if any.
func CurrentIdentity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// Authenticate resolves the session for every request it wraps: it extracts
// a token from the configured sources, verifies it, loads the current user
// record by the token's subject, and attaches the safe identity projection
// to the context. The user record is re-read on every request so role and
// active-status edits take effect immediately; the token is only trusted
// for the subject reference.
//
// Responses follow the mobile client contract: 401 bodies are JSON arrays
// of message strings.
func Authenticate(codec *token.Codec, users ports.UserRepository, sources ...CredentialSource) echo.MiddlewareFunc {
	if len(sources) == 0 {
		sources = DefaultSources()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := extractToken(c, sources)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, []string{"Authentication required"})
			}

			subject, err := codec.Verify(tok)
			if err != nil {
				if errors.Is(err, token.ErrNoSecret) {
					// Misconfiguration, not a client fault.
					return fmt.Errorf("verify token: %w", err)
				}
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, []string{"Invalid token"})
			}

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// The user was deleted after the token was issued.
					metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, []string{"User no longer exists"})
				}
				return fmt.Errorf("resolve session user: %w", err)
			}

			if !user.Active {
				metrics.AuthFailuresTotal.WithLabelValues("inactive_user").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, []string{"Account is inactive"})
			}

			c.Set(identityKey, user.Identity())
			return next(c)
		}
	}
}
