package inmem

import (
	"context"

	"lexsched/internal/domain"
)

type FirmRepo struct {
	store
	firm *domain.LawFirm
}

func NewFirmRepository() *FirmRepo {
	return &FirmRepo{}
}

func (r *FirmRepo) Get(ctx context.Context) (*domain.LawFirm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.firm == nil {
		return nil, domain.ErrNotFound
	}

	firm := *r.firm
	return &firm, nil
}

func (r *FirmRepo) Save(ctx context.Context, firm domain.LawFirm) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.firm = &firm

	return nil
}
