package ports

import (
	"context"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// OwnerRepository defines persistence for pet owners.
type OwnerRepository interface {
	Create(ctx context.Context, owner *domain.Owner) (*domain.Owner, error)
	FindByID(ctx context.Context, id string) (*domain.Owner, error)
	List(ctx context.Context) ([]domain.Owner, error)
	Update(ctx context.Context, owner *domain.Owner) error
	Delete(ctx context.Context, id string) error
}
