package service

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexsched/internal/domain"
	"lexsched/internal/repository"
	"lexsched/internal/storage"
)

// ErrStorageUnavailable is returned when document endpoints are used
// without object storage configured.
var ErrStorageUnavailable = errors.New("document storage is not configured")

const presignExpiry = 15 * time.Minute

type DocumentServiceImpl struct {
	repo            repository.DocumentRepository
	appointmentRepo repository.AppointmentRepository
	files           storage.FileStorage
	logger          *zap.Logger
}

func NewDocumentService(
	repo repository.DocumentRepository,
	appointmentRepo repository.AppointmentRepository,
	files storage.FileStorage,
	logger *zap.Logger,
) *DocumentServiceImpl {
	return &DocumentServiceImpl{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		files:           files,
		logger:          logger,
	}
}

func (s *DocumentServiceImpl) Attach(ctx context.Context, appointmentID string, data []byte, filename string) (*domain.AppointmentDocument, error) {
	if s.files == nil {
		return nil, ErrStorageUnavailable
	}

	if _, err := s.appointmentRepo.GetByID(ctx, appointmentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to load appointment for attachment", zap.String("appointmentID", appointmentID), zap.Error(err))
		return nil, errors.New("could not load appointment")
	}

	key, err := s.files.Upload(ctx, data, filename)
	if err != nil {
		s.logger.Error("failed to upload document", zap.Error(err))
		return nil, err
	}

	document := domain.AppointmentDocument{
		ID:            uuid.New().String(),
		AppointmentID: appointmentID,
		FileName:      filepath.Base(filename),
		StorageKey:    key,
		UploadedAt:    time.Now(),
	}

	if _, err := s.repo.Create(ctx, document); err != nil {
		// Keep the bucket consistent with the database.
		if cleanupErr := s.files.Delete(ctx, key); cleanupErr != nil {
			s.logger.Warn("failed to clean up orphaned object", zap.String("key", key), zap.Error(cleanupErr))
		}
		s.logger.Error("failed to record document", zap.Error(err))
		return nil, errors.New("could not save document")
	}

	if url, err := s.files.PresignedURL(ctx, key, presignExpiry); err == nil {
		document.FileURL = url
	}

	return &document, nil
}

func (s *DocumentServiceImpl) ListByAppointment(ctx context.Context, appointmentID string) ([]domain.AppointmentDocument, error) {
	if _, err := s.appointmentRepo.GetByID(ctx, appointmentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to load appointment for documents", zap.String("appointmentID", appointmentID), zap.Error(err))
		return nil, errors.New("could not load appointment")
	}

	documents, err := s.repo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		s.logger.Error("failed to list documents", zap.String("appointmentID", appointmentID), zap.Error(err))
		return nil, errors.New("could not load documents")
	}

	if s.files != nil {
		for i := range documents {
			url, err := s.files.PresignedURL(ctx, documents[i].StorageKey, presignExpiry)
			if err != nil {
				s.logger.Warn("failed to presign document URL", zap.String("id", documents[i].ID), zap.Error(err))
				continue
			}
			documents[i].FileURL = url
		}
	}

	return documents, nil
}

func (s *DocumentServiceImpl) Detach(ctx context.Context, appointmentID, documentID string) error {
	document, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to load document", zap.String("id", documentID), zap.Error(err))
		return errors.New("could not load document")
	}
	if document.AppointmentID != appointmentID {
		return domain.ErrNotFound
	}

	if s.files != nil {
		if err := s.files.Delete(ctx, document.StorageKey); err != nil {
			s.logger.Warn("failed to delete stored object", zap.String("key", document.StorageKey), zap.Error(err))
		}
	}

	if err := s.repo.Delete(ctx, documentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to delete document record", zap.String("id", documentID), zap.Error(err))
		return errors.New("could not delete document")
	}

	return nil
}
