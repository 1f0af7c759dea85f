package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawdesk/clinic-api/internal/api/metrics"
	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointments.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create handles POST /v1/appointments.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {array}   string
// @Failure      401   {array}   string
// @Failure      403   {array}   string
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appt, err := h.service.CreateAppointment(c.Request().Context(), ports.CreateAppointmentInput{
		PetID:    req.PetID,
		OwnerID:  req.OwnerID,
		VetID:    req.VetID,
		StartsAt: req.StartsAt,
		Reason:   req.Reason,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, appt)
}

// Get handles GET /v1/appointments/:id.
func (h *AppointmentHandler) Get(c echo.Context) error {
	appt, err := h.service.GetAppointment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appt)
}

// List handles GET /v1/appointments with optional filters. A vet sees their
// own schedule by default; admins and receptionists see everything.
func (h *AppointmentHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	filter := ports.AppointmentFilter{
		VetID:   c.QueryParam("vet_id"),
		OwnerID: c.QueryParam("owner_id"),
		Status:  domain.AppointmentStatus(c.QueryParam("status")),
	}
	if identity.Role == domain.RoleVet && filter.VetID == "" {
		filter.VetID = identity.ID
	}
	if from := c.QueryParam("date_from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.DateFrom = t
		}
	}
	if to := c.QueryParam("date_to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.DateTo = t
		}
	}

	appts, err := h.service.ListAppointments(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appts)
}

// UpdateStatus handles PATCH /v1/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	var req updateAppointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appt, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.AppointmentStatus(req.Status), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appt)
}
