package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"lexsched/internal/domain"
)

type Repositories struct {
	Appointment AppointmentRepository
	Lawyer      LawyerRepository
	Firm        FirmRepository
	Document    DocumentRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Appointment: NewAppointmentRepository(db),
		Lawyer:      NewLawyerRepository(db),
		Firm:        NewFirmRepository(db),
		Document:    NewDocumentRepository(db),
	}
}

// AppointmentRepository is the durable store for appointments. List
// returns every record ordered ascending by instant; the derivations the
// dashboard needs are computed in memory above this layer.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment domain.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, appointment domain.Appointment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Appointment, error)
}

type LawyerRepository interface {
	Create(ctx context.Context, lawyer domain.Lawyer) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Lawyer, error)
	Update(ctx context.Context, lawyer domain.Lawyer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Lawyer, error)
}

// FirmRepository holds the single firm profile row. Get returns
// domain.ErrNotFound until the first save.
type FirmRepository interface {
	Get(ctx context.Context) (*domain.LawFirm, error)
	Save(ctx context.Context, firm domain.LawFirm) error
}

type DocumentRepository interface {
	Create(ctx context.Context, document domain.AppointmentDocument) (string, error)
	GetByID(ctx context.Context, id string) (*domain.AppointmentDocument, error)
	ListByAppointment(ctx context.Context, appointmentID string) ([]domain.AppointmentDocument, error)
	Delete(ctx context.Context, id string) error
}
