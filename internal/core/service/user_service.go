package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
)

// UserService implements admin user management. Role and active-flag edits
// take effect on the target user's very next request because identities are
// re-derived from the store per request.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.Identity, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	identities := make([]domain.Identity, 0, len(users))
	for i := range users {
		identities = append(identities, users[i].Identity())
	}
	return identities, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.Identity, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *input.Role
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Specialty != nil {
		user.Specialty = *input.Specialty
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Bool("active", user.Active).Msg("user updated")
	identity := user.Identity()
	return &identity, nil
}
