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

type DocumentRepo struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{
		db: db,
	}
}

func (r *DocumentRepo) Create(ctx context.Context, document domain.AppointmentDocument) (string, error) {
	query := `
		INSERT INTO appointment_documents (id, appointment_id, file_name, storage_key, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id string
	err := r.db.QueryRow(ctx, query,
		document.ID,
		document.AppointmentID,
		document.FileName,
		document.StorageKey,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting document record: %w", err)
	}

	return id, nil
}

func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*domain.AppointmentDocument, error) {
	var document domain.AppointmentDocument
	err := r.db.QueryRow(ctx,
		"SELECT id, appointment_id, file_name, storage_key, uploaded_at FROM appointment_documents WHERE id = $1",
		id,
	).Scan(&document.ID, &document.AppointmentID, &document.FileName, &document.StorageKey, &document.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("selecting document record: %w", err)
	}

	return &document, nil
}

func (r *DocumentRepo) ListByAppointment(ctx context.Context, appointmentID string) ([]domain.AppointmentDocument, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, appointment_id, file_name, storage_key, uploaded_at FROM appointment_documents WHERE appointment_id = $1 ORDER BY uploaded_at ASC",
		appointmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing document records: %w", err)
	}
	defer rows.Close()

	var documents []domain.AppointmentDocument
	for rows.Next() {
		var document domain.AppointmentDocument
		if err := rows.Scan(&document.ID, &document.AppointmentID, &document.FileName, &document.StorageKey, &document.UploadedAt); err != nil {
			return nil, fmt.Errorf("scanning document record: %w", err)
		}
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading document records: %w", err)
	}

	return documents, nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM appointment_documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting document record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
