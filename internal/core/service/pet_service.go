package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
)

// PetService implements CRUD use-cases for pets.
type PetService struct {
	repo   ports.PetRepository
	owners ports.OwnerRepository
	logger zerolog.Logger
}

func NewPetService(repo ports.PetRepository, owners ports.OwnerRepository, logger zerolog.Logger) *PetService {
	return &PetService{repo: repo, owners: owners, logger: logger}
}

func (s *PetService) CreatePet(ctx context.Context, input ports.PetInput) (*domain.Pet, error) {
	// The owner reference must exist before a pet can be registered.
	if _, err := s.owners.FindByID(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pet := &domain.Pet{
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		Species:   input.Species,
		Breed:     input.Breed,
		Sex:       input.Sex,
		BirthDate: input.BirthDate,
		WeightKg:  input.WeightKg,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, pet)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("pet_id", created.ID).Str("owner_id", created.OwnerID).Msg("pet registered")
	return created, nil
}

func (s *PetService) GetPet(ctx context.Context, id string) (*domain.Pet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PetService) ListPets(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	if ownerID != "" {
		return s.repo.ListByOwner(ctx, ownerID)
	}
	return s.repo.List(ctx)
}

func (s *PetService) UpdatePet(ctx context.Context, id string, input ports.UpdatePetInput) (*domain.Pet, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		pet.Name = *input.Name
	}
	if input.Breed != nil {
		pet.Breed = *input.Breed
	}
	if input.WeightKg != nil {
		pet.WeightKg = *input.WeightKg
	}
	if input.Notes != nil {
		pet.Notes = *input.Notes
	}
	pet.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *PetService) DeletePet(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
