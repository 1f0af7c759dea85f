package ports

import (
	"context"
	"time"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
	AssigneeID  string
	Priority    domain.TaskPriority
	DueDate     time.Time
}

// TaskService defines use-case operations for clinic tasks.
type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, assigneeID string, includeDone bool) ([]domain.Task, error)
	CompleteTask(ctx context.Context, id string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
