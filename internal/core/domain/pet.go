package domain

import (
	"errors"
	"time"
)

var ErrPetNotFound = errors.New("pet not found")

// PetSpecies enumerates the animal kinds the clinic treats.
type PetSpecies string

const (
	SpeciesDog    PetSpecies = "dog"
	SpeciesCat    PetSpecies = "cat"
	SpeciesBird   PetSpecies = "bird"
	SpeciesRabbit PetSpecies = "rabbit"
	SpeciesOther  PetSpecies = "other"
)

// Pet is an animal registered under an owner.
type Pet struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	OwnerID   string     `json:"owner_id" bson:"owner_id"`
	Name      string     `json:"name" bson:"name"`
	Species   PetSpecies `json:"species" bson:"species"`
	Breed     string     `json:"breed,omitempty" bson:"breed,omitempty"`
	Sex       string     `json:"sex" bson:"sex"`
	BirthDate time.Time  `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	WeightKg  float64    `json:"weight_kg,omitempty" bson:"weight_kg,omitempty"`
	Notes     string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}
