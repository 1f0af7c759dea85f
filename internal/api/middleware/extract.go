package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// TokenCookieName is the cookie browser clients carry the session token in.
const TokenCookieName = "token"

// CredentialSource locates a candidate session token on an inbound request.
// Sources are tried in priority order; the first hit wins.
type CredentialSource interface {
	Extract(c echo.Context) (token string, ok bool)
}

// HeaderSource reads a bearer token from the Authorization header. Native
// mobile clients use this transport because they cannot reliably persist
// cookies cross-origin.
type HeaderSource struct{}

func (HeaderSource) Extract(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// CookieSource reads the token cookie set at login. Browser clients use
// this transport.
type CookieSource struct {
	Name string
}

func (s CookieSource) Extract(c echo.Context) (string, bool) {
	name := s.Name
	if name == "" {
		name = TokenCookieName
	}

	cookie, err := c.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// DefaultSources returns the standard transport priority: header first, so
// a mobile caller that also happens to send a stale cookie is never
// short-circuited by it.
func DefaultSources() []CredentialSource {
	return []CredentialSource{HeaderSource{}, CookieSource{}}
}

// extractToken walks the sources in order and returns the first token found.
func extractToken(c echo.Context, sources []CredentialSource) (string, bool) {
	for _, src := range sources {
		if tok, ok := src.Extract(c); ok {
			return tok, true
		}
	}
	return "", false
}
