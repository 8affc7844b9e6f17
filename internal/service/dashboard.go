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

// DashboardServiceImpl assembles the read-only derived views the
// dashboard renders: status counters, per-lawyer workload, and the
// per-day appointment density used to mark calendar days.
type DashboardServiceImpl struct {
	appointmentRepo repository.AppointmentRepository
	lawyerRepo      repository.LawyerRepository
	logger          *zap.Logger
}

func NewDashboardService(
	appointmentRepo repository.AppointmentRepository,
	lawyerRepo repository.LawyerRepository,
	logger *zap.Logger,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		appointmentRepo: appointmentRepo,
		lawyerRepo:      lawyerRepo,
		logger:          logger,
	}
}

func (s *DashboardServiceImpl) Stats(ctx context.Context, asOf time.Time) (*domain.DashboardStats, error) {
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list appointments for dashboard", zap.Error(err))
		return nil, errors.New("could not load dashboard data")
	}

	lawyers, err := s.lawyerRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list lawyers for dashboard", zap.Error(err))
		return nil, errors.New("could not load dashboard data")
	}

	perDay := make(map[string]int)
	for day, group := range scheduling.GroupByDay(appointments) {
		perDay[day] = len(group)
	}

	return &domain.DashboardStats{
		Summary:            scheduling.StatusSummary(appointments, asOf),
		LawyerLoad:         scheduling.CountByLawyer(appointments, lawyers),
		AppointmentsPerDay: perDay,
	}, nil
}
