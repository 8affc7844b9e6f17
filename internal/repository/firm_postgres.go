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

// firmRecordID pins the profile to one well-known row; saves upsert it.
const firmRecordID = "mainDetails"

type FirmRepo struct {
	db *pgxpool.Pool
}

func NewFirmRepository(db *pgxpool.Pool) *FirmRepo {
	return &FirmRepo{
		db: db,
	}
}

func (r *FirmRepo) Get(ctx context.Context) (*domain.LawFirm, error) {
	var firm domain.LawFirm
	err := r.db.QueryRow(ctx,
		"SELECT id, name, address, phone, email FROM firm_info WHERE id = $1",
		firmRecordID,
	).Scan(&firm.ID, &firm.Name, &firm.Address, &firm.Phone, &firm.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("selecting firm profile: %w", err)
	}

	return &firm, nil
}

func (r *FirmRepo) Save(ctx context.Context, firm domain.LawFirm) error {
	query := `
		INSERT INTO firm_info (id, name, address, phone, email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, address = EXCLUDED.address, phone = EXCLUDED.phone, email = EXCLUDED.email, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query, firmRecordID, firm.Name, firm.Address, firm.Phone, firm.Email, time.Now())
	if err != nil {
		return fmt.Errorf("saving firm profile: %w", err)
	}

	return nil
}
