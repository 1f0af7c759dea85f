package ports

import (
	"context"
	"time"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// PetInput carries the editable fields of a pet.
type PetInput struct {
	OwnerID   string
	Name      string
	Species   domain.PetSpecies
	Breed     string
	Sex       string
	BirthDate time.Time
	WeightKg  float64
	Notes     string
}

// UpdatePetInput is the partial-update variant: nil fields are unchanged.
type UpdatePetInput struct {
	Name     *string
	Breed    *string
	WeightKg *float64
	Notes    *string
}

// PetService defines use-case operations for pets.
type PetService interface {
	CreatePet(ctx context.Context, input PetInput) (*domain.Pet, error)
	GetPet(ctx context.Context, id string) (*domain.Pet, error)
	ListPets(ctx context.Context, ownerID string) ([]domain.Pet, error)
	UpdatePet(ctx context.Context, id string, input UpdatePetInput) (*domain.Pet, error)
	DeletePet(ctx context.Context, id string) error
}
