package ports

import (
	"context"
	"time"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// CreateAppointmentInput carries all data needed to book an appointment.
type CreateAppointmentInput struct {
	PetID    string
	OwnerID  string
	VetID    string
	StartsAt time.Time
	Reason   string
	Notes    string
}

// AppointmentService defines use-case operations for appointments.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*domain.Appointment, error)
	ListAppointments(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, notes string) (*domain.Appointment, error)
}
