package handler

import "time"

type createAppointmentRequest struct {
	PetID    string    `json:"pet_id"    validate:"required"`
	OwnerID  string    `json:"owner_id"`
	VetID    string    `json:"vet_id"    validate:"required"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	Reason   string    `json:"reason"    validate:"required,min=3"`
	Notes    string    `json:"notes"`
}

type updateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
	Notes  string `json:"notes"`
}
