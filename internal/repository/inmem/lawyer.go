package inmem

import (
	"context"
	"sort"

	"lexsched/internal/domain"
)

type LawyerRepo struct {
	store
	lawyers map[string]domain.Lawyer
}

func NewLawyerRepository() *LawyerRepo {
	return &LawyerRepo{
		lawyers: make(map[string]domain.Lawyer),
	}
}

func (r *LawyerRepo) Create(ctx context.Context, lawyer domain.Lawyer) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lawyers[lawyer.ID] = lawyer

	return lawyer.ID, nil
}

func (r *LawyerRepo) GetByID(ctx context.Context, id string) (*domain.Lawyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lawyer, ok := r.lawyers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return &lawyer, nil
}

func (r *LawyerRepo) Update(ctx context.Context, lawyer domain.Lawyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lawyers[lawyer.ID]; !ok {
		return domain.ErrNotFound
	}
	r.lawyers[lawyer.ID] = lawyer

	return nil
}

// Delete removes only the roster entry; appointments keep whatever
// assigned lawyer id they reference.
func (r *LawyerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lawyers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.lawyers, id)

	return nil
}

func (r *LawyerRepo) List(ctx context.Context) ([]domain.Lawyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lawyers := make([]domain.Lawyer, 0, len(r.lawyers))
	for _, lawyer := range r.lawyers {
		lawyers = append(lawyers, lawyer)
	}
	sort.Slice(lawyers, func(i, j int) bool {
		return lawyers[i].Name < lawyers[j].Name
	})

	return lawyers, nil
}
