package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawdesk/clinic-api/internal/api/metrics"
	"github.com/pawdesk/clinic-api/internal/api/middleware"
	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
)

// AuthHandler exposes account and session endpoints. Successful logins set
// the token cookie for browser clients and return the token in the body for
// mobile clients; both transports carry the same credential.
type AuthHandler struct {
	authService ports.AuthService
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL}
}

// Register creates a new staff account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {array}   string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tok, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Role:      domain.Role(req.Role),
		LastName:  req.LastName,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	})
	if err != nil {
		return err
	}

	h.setTokenCookie(c, tok)
	identity := user.Identity()
	return c.JSON(http.StatusCreated, authResponse{Token: tok, User: &identity})
}

// Login authenticates a user and issues a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {array}   string
// @Failure      401   {array}   string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tok, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	h.setTokenCookie(c, tok)
	identity := user.Identity()
	return c.JSON(http.StatusOK, authResponse{Token: tok, User: &identity})
}

// Logout clears the token cookie. The server keeps no session state, so
// mobile clients simply discard their token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// ForgotPassword issues a password reset token. The response is identical
// whether or not the email exists.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      202   {object}  messageResponse
// @Failure      400   {array}   string
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, messageResponse{Message: "if the account exists, a reset link has been sent"})
}

// ResetPassword exchanges a valid reset token for a new password and a
// fresh session.
//
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Reset token and new password"
// @Success      200   {object}  authResponse
// @Failure      400   {array}   string
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tok, user, err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.Password)
	if err != nil {
		return err
	}

	h.setTokenCookie(c, tok)
	identity := user.Identity()
	return c.JSON(http.StatusOK, authResponse{Token: tok, User: &identity})
}

// Me returns the authenticated identity.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Identity
// @Failure      401  {array}   string
// @Router       /v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// loginResult maps a login error to its metric label.
func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserInactive):
		return "inactive"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "failure"
	}
}

func (h *AuthHandler) setTokenCookie(c echo.Context, tok string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
