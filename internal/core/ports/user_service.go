package ports

import (
	"context"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// UpdateUserInput carries the admin-editable fields of a user. Nil fields
// are left unchanged.
type UpdateUserInput struct {
	Role      *domain.Role
	Active    *bool
	LastName  *string
	Phone     *string
	Specialty *string
}

// UserService defines admin user-management use-cases.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.Identity, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.Identity, error)
}
