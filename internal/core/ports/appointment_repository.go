package ports

import (
	"context"
	"time"

	"github.com/pawdesk/clinic-api/internal/core/domain"
)

// AppointmentFilter narrows appointment listings. Zero values mean "any".
type AppointmentFilter struct {
	VetID    string
	OwnerID  string
	Status   domain.AppointmentStatus
	DateFrom time.Time
	DateTo   time.Time
}

// AppointmentRepository defines persistence for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) error
}
