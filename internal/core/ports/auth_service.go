package ports

import (
	"context"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new user account.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	Role      domain.Role
	LastName  string
	Phone     string
	Specialty string
}

// AuthService defines account and credential use-cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) (string, *domain.User, error)
}
