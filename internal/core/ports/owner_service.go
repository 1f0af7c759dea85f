package ports

import (
	"context"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// OwnerInput carries the editable fields of an owner.
type OwnerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// UpdateOwnerInput is the partial-update variant: nil fields are unchanged.
type UpdateOwnerInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
}

// OwnerService defines use-case operations for pet owners.
type OwnerService interface {
	CreateOwner(ctx context.Context, input OwnerInput) (*domain.Owner, error)
	GetOwner(ctx context.Context, id string) (*domain.Owner, error)
	ListOwners(ctx context.Context) ([]domain.Owner, error)
	UpdateOwner(ctx context.Context, id string, input UpdateOwnerInput) (*domain.Owner, error)
	DeleteOwner(ctx context.Context, id string) error
}
