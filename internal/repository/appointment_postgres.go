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

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

func (r *AppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) (string, error) {
	query := `
		INSERT INTO appointments (id, title, date_time, description, court_name, case_number, client_name, assigned_lawyer_id, form_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id
	`

	now := time.Now()
	var id string
	err := r.db.QueryRow(ctx, query,
		appointment.ID,
		appointment.Title,
		appointment.DateTime,
		appointment.Description,
		appointment.CourtName,
		appointment.CaseNumber,
		appointment.ClientName,
		appointment.AssignedLawyerID,
		appointment.FormData,
		now,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting appointment: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `
		SELECT id, title, date_time, description, court_name, case_number, client_name, assigned_lawyer_id, form_data, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`

	var appointment domain.Appointment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.Title,
		&appointment.DateTime,
		&appointment.Description,
		&appointment.CourtName,
		&appointment.CaseNumber,
		&appointment.ClientName,
		&appointment.AssignedLawyerID,
		&appointment.FormData,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("selecting appointment: %w", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, appointment domain.Appointment) error {
	query := `
		UPDATE appointments
		SET title = $2, date_time = $3, description = $4, court_name = $5, case_number = $6, client_name = $7, assigned_lawyer_id = $8, form_data = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		appointment.ID,
		appointment.Title,
		appointment.DateTime,
		appointment.Description,
		appointment.CourtName,
		appointment.CaseNumber,
		appointment.ClientName,
		appointment.AssignedLawyerID,
		appointment.FormData,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("updating appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM appointments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context) ([]domain.Appointment, error) {
	query := `
		SELECT id, title, date_time, description, court_name, case_number, client_name, assigned_lawyer_id, form_data, created_at, updated_at
		FROM appointments
		ORDER BY date_time ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var appointment domain.Appointment
		err := rows.Scan(
			&appointment.ID,
			&appointment.Title,
			&appointment.DateTime,
			&appointment.Description,
			&appointment.CourtName,
			&appointment.CaseNumber,
			&appointment.ClientName,
			&appointment.AssignedLawyerID,
			&appointment.FormData,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning appointment: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading appointments: %w", err)
	}

	return appointments, nil
}
