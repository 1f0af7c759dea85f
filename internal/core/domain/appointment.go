package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// validAppointmentTransitions defines the allowed state machine transitions.
var validAppointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
}

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrInvalidTransition = errors.New("invalid appointment status transition")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validAppointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a scheduled visit for a pet with a vet.
type Appointment struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	PetID     string            `json:"pet_id" bson:"pet_id"`
	OwnerID   string            `json:"owner_id" bson:"owner_id"`
	VetID     string            `json:"vet_id" bson:"vet_id"`
	StartsAt  time.Time         `json:"starts_at" bson:"starts_at"`
	Reason    string            `json:"reason" bson:"reason"`
	Status    AppointmentStatus `json:"status" bson:"status"`
	Notes     string            `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" bson:"updated_at"`
}
