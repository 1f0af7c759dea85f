package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawdesk/clinic-api/internal/core/ports"
)

// OwnerHandler handles HTTP requests for pet owners.
type OwnerHandler struct {
	service ports.OwnerService
}

func NewOwnerHandler(service ports.OwnerService) *OwnerHandler {
	return &OwnerHandler{service: service}
}

// Create handles POST /v1/owners.
func (h *OwnerHandler) Create(c echo.Context) error {
	var req createOwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	owner, err := h.service.CreateOwner(c.Request().Context(), ports.OwnerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, owner)
}

// Get handles GET /v1/owners/:id.
func (h *OwnerHandler) Get(c echo.Context) error {
	owner, err := h.service.GetOwner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, owner)
}

// List handles GET /v1/owners.
func (h *OwnerHandler) List(c echo.Context) error {
	owners, err := h.service.ListOwners(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, owners)
}

// Update handles PATCH /v1/owners/:id.
func (h *OwnerHandler) Update(c echo.Context) error {
	var req updateOwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	owner, err := h.service.UpdateOwner(c.Request().Context(), c.Param("id"), ports.UpdateOwnerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, owner)
}

// Delete handles DELETE /v1/owners/:id.
func (h *OwnerHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteOwner(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
