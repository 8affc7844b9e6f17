package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"lexsched/internal/domain"
	"lexsched/internal/repository"
	"lexsched/internal/scheduling"
)

type AppointmentServiceImpl struct {
	repo   repository.AppointmentRepository
	logger *zap.Logger
}

func NewAppointmentService(repo repository.AppointmentRepository, logger *zap.Logger) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *AppointmentServiceImpl) Create(ctx context.Context, form domain.AppointmentForm) (string, error) {
	if errs := scheduling.Validate(form); errs != nil {
		s.logger.Debug("appointment form rejected", zap.Error(errs))
		return "", errs
	}

	appointment, err := scheduling.NewAppointment(form, "")
	if err != nil {
		// Validate guarantees date and time are present, so this is a
		// programming error and must not be masked.
		return "", err
	}

	id, err := s.repo.Create(ctx, appointment)
	if err != nil {
		s.logger.Error("failed to create appointment", zap.Error(err))
		return "", errors.New("could not save appointment")
	}

	return id, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to load appointment", zap.String("id", id), zap.Error(err))
		return nil, errors.New("could not load appointment")
	}
	return appointment, nil
}

// Update replaces the whole appointment from a fresh form submission.
// The dateTime is regenerated from the form's date and time; it is never
// patched independently of them.
func (s *AppointmentServiceImpl) Update(ctx context.Context, id string, form domain.AppointmentForm) error {
	if errs := scheduling.Validate(form); errs != nil {
		s.logger.Debug("appointment form rejected", zap.String("id", id), zap.Error(errs))
		return errs
	}

	appointment, err := scheduling.NewAppointment(form, id)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to update appointment", zap.String("id", id), zap.Error(err))
		return errors.New("could not update appointment")
	}

	return nil
}

// Delete is terminal; there is no soft-delete or undo.
func (s *AppointmentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to delete appointment", zap.String("id", id), zap.Error(err))
		return errors.New("could not delete appointment")
	}

	return nil
}

func (s *AppointmentServiceImpl) List(ctx context.Context, scope domain.AppointmentScope, asOf time.Time) ([]domain.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list appointments", zap.Error(err))
		return nil, errors.New("could not load appointments")
	}

	// The repository returns ascending order; the partition keeps it.
	switch scope {
	case domain.AppointmentScopeUpcoming:
		upcoming, _ := scheduling.PartitionByTime(appointments, asOf)
		return upcoming, nil
	case domain.AppointmentScopePast:
		_, past := scheduling.PartitionByTime(appointments, asOf)
		return past, nil
	default:
		return appointments, nil
	}
}

func (s *AppointmentServiceImpl) ListByDay(ctx context.Context, day domain.Date) ([]domain.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list appointments", zap.Error(err))
		return nil, errors.New("could not load appointments")
	}

	byDay := scheduling.GroupByDay(appointments)
	result := byDay[day.String()]
	scheduling.SortByDateTime(result)

	return result, nil
}
