package inmem

import (
	"context"
	"sort"
	"time"

	"lexsched/internal/domain"
)

type DocumentRepo struct {
	store
	documents map[string]domain.AppointmentDocument
}

func NewDocumentRepository() *DocumentRepo {
	return &DocumentRepo{
		documents: make(map[string]domain.AppointmentDocument),
	}
}

func (r *DocumentRepo) Create(ctx context.Context, document domain.AppointmentDocument) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	document.UploadedAt = time.Now()
	r.documents[document.ID] = document

	return document.ID, nil
}

func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*domain.AppointmentDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	document, ok := r.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return &document, nil
}

func (r *DocumentRepo) ListByAppointment(ctx context.Context, appointmentID string) ([]domain.AppointmentDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var documents []domain.AppointmentDocument
	for _, document := range r.documents {
		if document.AppointmentID == appointmentID {
			documents = append(documents, document)
		}
	}
	sort.Slice(documents, func(i, j int) bool {
		return documents[i].UploadedAt.Before(documents[j].UploadedAt)
	})

	return documents, nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.documents[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.documents, id)

	return nil
}
