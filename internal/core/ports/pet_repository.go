package ports

import (
	"context"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// PetRepository defines persistence for pets.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	FindByID(ctx context.Context, id string) (*domain.Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Pet, error)
	List(ctx context.Context) ([]domain.Pet, error)
	Update(ctx context.Context, pet *domain.Pet) error
	Delete(ctx context.Context, id string) error
}
