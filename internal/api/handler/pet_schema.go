package handler

import "time"

type createPetRequest struct {
	OwnerID   string    `json:"owner_id"   validate:"required"`
	Name      string    `json:"name"       validate:"required"`
	Species   string    `json:"species"    validate:"required,oneof=dog cat bird rabbit other"`
	Breed     string    `json:"breed"`
	Sex       string    `json:"sex"        validate:"required,oneof=male female"`
	BirthDate time.Time `json:"birth_date"`
	WeightKg  float64   `json:"weight_kg"  validate:"omitempty,gt=0"`
	Notes     string    `json:"notes"`
}

// updatePetRequest is the partial-update variant: every field is optional
// but, when present, keeps its original constraint.
type updatePetRequest struct {
	Name     *string  `json:"name"      validate:"omitempty,min=1"`
	Breed    *string  `json:"breed"`
	WeightKg *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	Notes    *string  `json:"notes"`
}
