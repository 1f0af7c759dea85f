package ports

import (
	"context"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// TaskRepository defines persistence for clinic tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, assigneeID string, includeDone bool) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}
