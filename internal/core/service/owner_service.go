package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
)

// OwnerService implements CRUD use-cases for pet owners.
type OwnerService struct {
	repo   ports.OwnerRepository
	logger zerolog.Logger
}

func NewOwnerService(repo ports.OwnerRepository, logger zerolog.Logger) *OwnerService {
	return &OwnerService{repo: repo, logger: logger}
}

func (s *OwnerService) CreateOwner(ctx context.Context, input ports.OwnerInput) (*domain.Owner, error) {
	now := time.Now().UTC()
	owner := &domain.Owner{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, owner)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("owner_id", created.ID).Msg("owner created")
	return created, nil
}

func (s *OwnerService) GetOwner(ctx context.Context, id string) (*domain.Owner, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OwnerService) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	return s.repo.List(ctx)
}

func (s *OwnerService) UpdateOwner(ctx context.Context, id string, input ports.UpdateOwnerInput) (*domain.Owner, error) {
	owner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		owner.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		owner.LastName = *input.LastName
	}
	if input.Email != nil {
		owner.Email = *input.Email
	}
	if input.Phone != nil {
		owner.Phone = *input.Phone
	}
	if input.Address != nil {
		owner.Address = *input.Address
	}
	owner.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *OwnerService) DeleteOwner(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
