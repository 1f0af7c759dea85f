package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
)

// UserHandler exposes admin-only user management. Because identities are
// re-derived per request, role and active edits made here bind on the
// target user's next call.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /v1/users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Update handles PATCH /v1/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var role *domain.Role
	if req.Role != nil {
		r := domain.Role(*req.Role)
		role = &r
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Role:      role,
		Active:    req.Active,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
