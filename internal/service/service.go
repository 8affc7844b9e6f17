package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lexsched/config"
	"lexsched/internal/domain"
	"lexsched/internal/repository"
	"lexsched/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
}

type Services struct {
	Appointment AppointmentService
	Lawyer      LawyerService
	Firm        FirmService
	Dashboard   DashboardService
	Document    DocumentService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Appointment: NewAppointmentService(deps.Repos.Appointment, deps.Logger),
		Lawyer:      NewLawyerService(deps.Repos.Lawyer, deps.Logger),
		Firm:        NewFirmService(deps.Repos.Firm, deps.Logger),
		Dashboard:   NewDashboardService(deps.Repos.Appointment, deps.Repos.Lawyer, deps.Logger),
		Document:    NewDocumentService(deps.Repos.Document, deps.Repos.Appointment, deps.FileStorage, deps.Logger),
	}
}

// AppointmentService owns the write path (validated form in, canonical
// appointment out) and the time-scoped read views. Validation failures
// come back as domain.ValidationErrors; missing records as
// domain.ErrNotFound.
type AppointmentService interface {
	Create(ctx context.Context, form domain.AppointmentForm) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, id string, form domain.AppointmentForm) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope domain.AppointmentScope, asOf time.Time) ([]domain.Appointment, error)
	ListByDay(ctx context.Context, day domain.Date) ([]domain.Appointment, error)
}

type LawyerService interface {
	Create(ctx context.Context, input domain.LawyerInput) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Lawyer, error)
	Update(ctx context.Context, id string, input domain.LawyerInput) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Lawyer, error)
}

type FirmService interface {
	Get(ctx context.Context) (*domain.LawFirm, error)
	Save(ctx context.Context, firm domain.LawFirm) error
}

type DashboardService interface {
	Stats(ctx context.Context, asOf time.Time) (*domain.DashboardStats, error)
}

type DocumentService interface {
	Attach(ctx context.Context, appointmentID string, data []byte, filename string) (*domain.AppointmentDocument, error)
	ListByAppointment(ctx context.Context, appointmentID string) ([]domain.AppointmentDocument, error)
	Detach(ctx context.Context, appointmentID, documentID string) error
}
