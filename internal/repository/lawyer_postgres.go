package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lexsched/internal/domain"
)

type LawyerRepo struct {
	db *pgxpool.Pool
}

func NewLawyerRepository(db *pgxpool.Pool) *LawyerRepo {
	return &LawyerRepo{
		db: db,
	}
}

func (r *LawyerRepo) Create(ctx context.Context, lawyer domain.Lawyer) (string, error) {
	query := `
		INSERT INTO lawyers (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id string
	err := r.db.QueryRow(ctx, query, lawyer.ID, lawyer.Name, lawyer.Email, time.Now()).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting lawyer: %w", err)
	}

	return id, nil
}

func (r *LawyerRepo) GetByID(ctx context.Context, id string) (*domain.Lawyer, error) {
	var lawyer domain.Lawyer
	err := r.db.QueryRow(ctx, "SELECT id, name, email FROM lawyers WHERE id = $1", id).
		Scan(&lawyer.ID, &lawyer.Name, &lawyer.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("selecting lawyer: %w", err)
	}

	return &lawyer, nil
}

func (r *LawyerRepo) Update(ctx context.Context, lawyer domain.Lawyer) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE lawyers SET name = $2, email = $3 WHERE id = $1",
		lawyer.ID, lawyer.Name, lawyer.Email,
	)
	if err != nil {
		return fmt.Errorf("updating lawyer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes only the roster entry. Appointments referencing the
// lawyer keep their assigned_lawyer_id; a dangling reference is a
// tolerated state and readers guard with a lookup.
func (r *LawyerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM lawyers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting lawyer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *LawyerRepo) List(ctx context.Context) ([]domain.Lawyer, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, email FROM lawyers ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("listing lawyers: %w", err)
	}
	defer rows.Close()

	var lawyers []domain.Lawyer
	for rows.Next() {
		var lawyer domain.Lawyer
		if err := rows.Scan(&lawyer.ID, &lawyer.Name, &lawyer.Email); err != nil {
			return nil, fmt.Errorf("scanning lawyer: %w", err)
		}
		lawyers = append(lawyers, lawyer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading lawyers: %w", err)
	}

	return lawyers, nil
}
