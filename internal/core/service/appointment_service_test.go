package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
)

type stubApptRepo struct {
	appts  map[string]*domain.Appointment
	nextID int
}

func newStubApptRepo() *stubApptRepo {
	return &stubApptRepo{appts: make(map[string]*domain.Appointment)}
}

func (r *stubApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created := *appt
	r.nextID++
	created.ID = "a" + string(rune('0'+r.nextID))
	r.appts[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubApptRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubApptRepo) List(_ context.Context, _ ports.AppointmentFilter) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range r.appts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubApptRepo) Update(_ context.Context, appt *domain.Appointment) error {
	if _, ok := r.appts[appt.ID]; !ok {
		return domain.ErrAppointmentNotFound
	}
	clone := *appt
	r.appts[appt.ID] = &clone
	return nil
}

type stubPetRepo struct {
	pets map[string]*domain.Pet
}

func newStubPetRepo(pets ...*domain.Pet) *stubPetRepo {
	r := &stubPetRepo{pets: make(map[string]*domain.Pet)}
	for _, p := range pets {
		r.pets[p.ID] = p
	}
	return r
}

func (r *stubPetRepo) Create(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	r.pets[pet.ID] = pet
	return pet, nil
}

func (r *stubPetRepo) FindByID(_ context.Context, id string) (*domain.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, domain.ErrPetNotFound
	}
	return p, nil
}

func (r *stubPetRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Pet, error) {
	var out []domain.Pet
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPetRepo) List(_ context.Context) ([]domain.Pet, error) {
	var out []domain.Pet
	for _, p := range r.pets {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPetRepo) Update(_ context.Context, pet *domain.Pet) error {
	r.pets[pet.ID] = pet
	return nil
}

func (r *stubPetRepo) Delete(_ context.Context, id string) error {
	delete(r.pets, id)
	return nil
}

func TestAppointmentService_Create_InheritsPetOwner(t *testing.T) {
	pets := newStubPetRepo(&domain.Pet{ID: "p1", OwnerID: "o1", Name: "Milo"})
	svc := NewAppointmentService(newStubApptRepo(), pets, zerolog.Nop())

	appt, err := svc.CreateAppointment(context.Background(), ports.CreateAppointmentInput{
		PetID:    "p1",
		VetID:    "v1",
		StartsAt: time.Now().Add(24 * time.Hour),
		Reason:   "annual checkup",
	})
	if err != nil {
		t.Fatalf("CreateAppointment returned error: %v", err)
	}
	if appt.OwnerID != "o1" {
		t.Fatalf("expected owner inherited from pet, got %q", appt.OwnerID)
	}
	if appt.Status != domain.AppointmentPending {
		t.Fatalf("expected pending status, got %q", appt.Status)
	}
}

func TestAppointmentService_Create_UnknownPet(t *testing.T) {
	svc := NewAppointmentService(newStubApptRepo(), newStubPetRepo(), zerolog.Nop())

	_, err := svc.CreateAppointment(context.Background(), ports.CreateAppointmentInput{
		PetID:    "missing",
		VetID:    "v1",
		StartsAt: time.Now().Add(time.Hour),
		Reason:   "checkup",
	})
	if !errors.Is(err, domain.ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}

func TestAppointmentService_UpdateStatus_ValidTransition(t *testing.T) {
	repo := newStubApptRepo()
	pets := newStubPetRepo(&domain.Pet{ID: "p1", OwnerID: "o1"})
	svc := NewAppointmentService(repo, pets, zerolog.Nop())

	appt, err := svc.CreateAppointment(context.Background(), ports.CreateAppointmentInput{
		PetID:    "p1",
		VetID:    "v1",
		StartsAt: time.Now().Add(time.Hour),
		Reason:   "checkup",
	})
	if err != nil {
		t.Fatalf("CreateAppointment returned error: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), appt.ID, domain.AppointmentConfirmed, "")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != domain.AppointmentConfirmed {
		t.Fatalf("expected confirmed, got %q", updated.Status)
	}
}

func TestAppointmentService_UpdateStatus_InvalidTransition(t *testing.T) {
	repo := newStubApptRepo()
	pets := newStubPetRepo(&domain.Pet{ID: "p1", OwnerID: "o1"})
	svc := NewAppointmentService(repo, pets, zerolog.Nop())

	appt, err := svc.CreateAppointment(context.Background(), ports.CreateAppointmentInput{
		PetID:    "p1",
		VetID:    "v1",
		StartsAt: time.Now().Add(time.Hour),
		Reason:   "checkup",
	})
	if err != nil {
		t.Fatalf("CreateAppointment returned error: %v", err)
	}

	// Pending appointments must be confirmed before completion.
	_, err = svc.UpdateStatus(context.Background(), appt.ID, domain.AppointmentCompleted, "")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), appt.ID)
	if stored.Status != domain.AppointmentPending {
		t.Fatalf("status mutated on rejected transition: %q", stored.Status)
	}
}
