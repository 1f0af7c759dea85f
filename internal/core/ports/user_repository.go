package ports

import (
	"context"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// UserRepository defines persistence for user records. The auth core only
// ever reads single documents by reference; it owns no multi-step
// transactions.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByResetDigest(ctx context.Context, digest string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}
