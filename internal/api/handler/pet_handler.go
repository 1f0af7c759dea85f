package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
)

// PetHandler handles HTTP requests for pets.
type PetHandler struct {
	service ports.PetService
}

func NewPetHandler(service ports.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// Create handles POST /v1/pets.
//
// @Summary      Register a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPetRequest  true  "Pet details"
// @Success      201   {object}  domain.Pet
// @Failure      400   {array}   string
// @Failure      401   {array}   string
// @Failure      403   {array}   string
// @Router       /v1/pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	var req createPetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pet, err := h.service.CreatePet(c.Request().Context(), ports.PetInput{
		OwnerID:   req.OwnerID,
		Name:      req.Name,
		Species:   domain.PetSpecies(req.Species),
		Breed:     req.Breed,
		Sex:       req.Sex,
		BirthDate: req.BirthDate,
		WeightKg:  req.WeightKg,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pet)
}

// Get handles GET /v1/pets/:id.
func (h *PetHandler) Get(c echo.Context) error {
	pet, err := h.service.GetPet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// List handles GET /v1/pets with an optional owner_id filter.
func (h *PetHandler) List(c echo.Context) error {
	pets, err := h.service.ListPets(c.Request().Context(), c.QueryParam("owner_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pets)
}

// Update handles PATCH /v1/pets/:id.
func (h *PetHandler) Update(c echo.Context) error {
	var req updatePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pet, err := h.service.UpdatePet(c.Request().Context(), c.Param("id"), ports.UpdatePetInput{
		Name:     req.Name,
		Breed:    req.Breed,
		WeightKg: req.WeightKg,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// Delete handles DELETE /v1/pets/:id.
func (h *PetHandler) Delete(c echo.Context) error {
	if err := h.service.DeletePet(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
