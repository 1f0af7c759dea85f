package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
)

// AppointmentService implements booking and status management.
type AppointmentService struct {
	repo   ports.AppointmentRepository
	pets   ports.PetRepository
	logger zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, pets ports.PetRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, pets: pets, logger: logger}
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	pet, err := s.pets.FindByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}

	ownerID := input.OwnerID
	if ownerID == "" {
		ownerID = pet.OwnerID
	}

	now := time.Now().UTC()
	appt := &domain.Appointment{
		PetID:     input.PetID,
		OwnerID:   ownerID,
		VetID:     input.VetID,
		StartsAt:  input.StartsAt.UTC(),
		Reason:    input.Reason,
		Status:    domain.AppointmentPending,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, appt)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", created.ID).
		Str("pet_id", created.PetID).
		Str("vet_id", created.VetID).
		Msg("appointment booked")
	return created, nil
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AppointmentService) ListAppointments(ctx context.Context, filter ports.AppointmentFilter) ([]domain.Appointment, error) {
	return s.repo.List(ctx, filter)
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, notes string) (*domain.Appointment, error) {
	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appt.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	appt.Status = status
	if notes != "" {
		appt.Notes = notes
	}
	appt.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, appt); err != nil {
		return nil, err
	}

	s.logger.Info().Str("appointment_id", appt.ID).Str("status", string(status)).Msg("appointment status updated")
	return appt, nil
}
