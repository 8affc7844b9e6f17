package inmem

import (
	"context"
	"sort"
	"time"

	"lexsched/internal/domain"
)

type AppointmentRepo struct {
	store
	appointments map[string]domain.Appointment
}

func NewAppointmentRepository() *AppointmentRepo {
	return &AppointmentRepo{
		appointments: make(map[string]domain.Appointment),
	}
}

func (r *AppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	r.appointments[appointment.ID] = appointment

	return appointment.ID, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return &appointment, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, appointment domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.appointments[appointment.ID]
	if !ok {
		return domain.ErrNotFound
	}

	appointment.CreatedAt = existing.CreatedAt
	appointment.UpdatedAt = time.Now()
	r.appointments[appointment.ID] = appointment

	return nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.appointments, id)

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context) ([]domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]domain.Appointment, 0, len(r.appointments))
	for _, appointment := range r.appointments {
		appointments = append(appointments, appointment)
	}
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].DateTime.Before(appointments[j].DateTime)
	})

	return appointments, nil
}
