package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for clinic tasks.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /v1/tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// List handles GET /v1/tasks. Vets see their own open tasks by default.
func (h *TaskHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	assigneeID := c.QueryParam("assignee_id")
	if identity.Role == domain.RoleVet && assigneeID == "" {
		assigneeID = identity.ID
	}
	includeDone := c.QueryParam("include_done") == "true"

	tasks, err := h.service.ListTasks(c.Request().Context(), assigneeID, includeDone)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Complete handles POST /v1/tasks/:id/complete.
func (h *TaskHandler) Complete(c echo.Context) error {
	task, err := h.service.CompleteTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /v1/tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
