package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"lexsched/internal/domain"
	"lexsched/internal/repository"
	"lexsched/pkg/validator"
)

type FirmServiceImpl struct {
	repo   repository.FirmRepository
	logger *zap.Logger
}

func NewFirmService(repo repository.FirmRepository, logger *zap.Logger) *FirmServiceImpl {
	return &FirmServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the saved profile, or a default placeholder profile when
// nothing has been saved yet. The header always has a name to show.
func (s *FirmServiceImpl) Get(ctx context.Context) (*domain.LawFirm, error) {
	firm, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.LawFirm{Name: domain.DefaultFirmName}, nil
		}
		s.logger.Error("failed to load firm profile", zap.Error(err))
		return nil, errors.New("could not load firm profile")
	}
	return firm, nil
}

// Save replaces the profile wholesale; there are no partial updates.
func (s *FirmServiceImpl) Save(ctx context.Context, firm domain.LawFirm) error {
	errs := domain.ValidationErrors{}
	firm.Name = strings.TrimSpace(firm.Name)
	if firm.Name == "" {
		errs["name"] = "firm name is required"
	}
	if firm.Email != "" && !validator.ValidateEmail(firm.Email) {
		errs["email"] = "invalid email"
	}
	if firm.Phone != "" && !validator.ValidatePhone(firm.Phone) {
		errs["phone"] = "invalid phone number"
	}
	if len(errs) > 0 {
		return errs
	}

	if err := s.repo.Save(ctx, firm); err != nil {
		s.logger.Error("failed to save firm profile", zap.Error(err))
		return errors.New("could not save firm profile")
	}

	return nil
}
