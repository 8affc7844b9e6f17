// Package inmem implements the repository interfaces over in-process
// maps. It backs the STORAGE_DRIVER=memory mode and the service tests;
// behavior matches the postgres driver, including list ordering and
// ErrNotFound semantics.
package inmem

import (
	"sync"

	"lexsched/internal/repository"
)

func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Appointment: NewAppointmentRepository(),
		Lawyer:      NewLawyerRepository(),
		Firm:        NewFirmRepository(),
		Document:    NewDocumentRepository(),
	}
}

type store struct {
	mu sync.RWMutex
}
