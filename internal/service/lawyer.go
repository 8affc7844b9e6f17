package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexsched/internal/domain"
	"lexsched/internal/repository"
	"lexsched/pkg/validator"
)

type LawyerServiceImpl struct {
	repo   repository.LawyerRepository
	logger *zap.Logger
}

func NewLawyerService(repo repository.LawyerRepository, logger *zap.Logger) *LawyerServiceImpl {
	return &LawyerServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func validateLawyerInput(input domain.LawyerInput) domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	if !validator.ValidateNamePart(strings.TrimSpace(input.Name)) {
		errs["name"] = "a name is required"
	}
	if !validator.ValidateEmail(input.Email) {
		errs["email"] = "a valid email is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (s *LawyerServiceImpl) Create(ctx context.Context, input domain.LawyerInput) (string, error) {
	if errs := validateLawyerInput(input); errs != nil {
		return "", errs
	}

	lawyer := domain.Lawyer{
		ID:    uuid.New().String(),
		Name:  strings.TrimSpace(input.Name),
		Email: strings.TrimSpace(input.Email),
	}

	id, err := s.repo.Create(ctx, lawyer)
	if err != nil {
		s.logger.Error("failed to create lawyer", zap.Error(err))
		return "", errors.New("could not save lawyer")
	}

	return id, nil
}

func (s *LawyerServiceImpl) GetByID(ctx context.Context, id string) (*domain.Lawyer, error) {
	lawyer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to load lawyer", zap.String("id", id), zap.Error(err))
		return nil, errors.New("could not load lawyer")
	}
	return lawyer, nil
}

func (s *LawyerServiceImpl) Update(ctx context.Context, id string, input domain.LawyerInput) error {
	if errs := validateLawyerInput(input); errs != nil {
		return errs
	}

	lawyer := domain.Lawyer{
		ID:    id,
		Name:  strings.TrimSpace(input.Name),
		Email: strings.TrimSpace(input.Email),
	}

	if err := s.repo.Update(ctx, lawyer); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to update lawyer", zap.String("id", id), zap.Error(err))
		return errors.New("could not update lawyer")
	}

	return nil
}

// Delete removes the roster entry only. Appointments assigned to the
// lawyer are left untouched; their reference simply stops resolving.
func (s *LawyerServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to delete lawyer", zap.String("id", id), zap.Error(err))
		return errors.New("could not delete lawyer")
	}

	return nil
}

func (s *LawyerServiceImpl) List(ctx context.Context) ([]domain.Lawyer, error) {
	lawyers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list lawyers", zap.Error(err))
		return nil, errors.New("could not load lawyers")
	}
	return lawyers, nil
}
