package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulops/dashboard/internal/model"
)

type AbsenceRepository struct {
	pool *pgxpool.Pool
}

func NewAbsenceRepository(pool *pgxpool.Pool) *AbsenceRepository {
	return &AbsenceRepository{pool: pool}
}

// Create inserts a new absence record
func (r *AbsenceRepository) Create(ctx context.Context, absence *model.Absence) error {
	query := `
		INSERT INTO absences (teacher_id, reason, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(
		ctx, query,
		absence.TeacherID,
		absence.Reason,
		absence.StartDate,
		absence.EndDate,
	).Scan(&absence.ID)

	if err != nil {
		return fmt.Errorf("create absence: %w", err)
	}

	return nil
}

// GetByID returns one absence record or nil if not found
func (r *AbsenceRepository) GetByID(ctx context.Context, id int64) (*model.Absence, error) {
	query := `
		SELECT id, teacher_id, reason, start_date, end_date
		FROM absences
		WHERE id = $1
	`

	var absence model.Absence
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&absence.ID,
		&absence.TeacherID,
		&absence.Reason,
		&absence.StartDate,
		&absence.EndDate,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get absence by id: %w", err)
	}

	return &absence, nil
}

// List returns every absence record
func (r *AbsenceRepository) List(ctx context.Context) ([]*model.Absence, error) {
	query := `
		SELECT id, teacher_id, reason, start_date, end_date
		FROM absences
		ORDER BY start_date DESC
	`

	return r.queryMany(ctx, query)
}

// ListActiveOn returns the absences whose closed date interval covers the given date
func (r *AbsenceRepository) ListActiveOn(ctx context.Context, date time.Time) ([]*model.Absence, error) {
	query := `
		SELECT id, teacher_id, reason, start_date, end_date
		FROM absences
		WHERE start_date <= $1 AND end_date >= $1
		ORDER BY teacher_id
	`

	return r.queryMany(ctx, query, date)
}

// Update rewrites an absence record
func (r *AbsenceRepository) Update(ctx context.Context, absence *model.Absence) error {
	query := `
		UPDATE absences
		SET teacher_id = $1, reason = $2, start_date = $3, end_date = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(
		ctx, query,
		absence.TeacherID,
		absence.Reason,
		absence.StartDate,
		absence.EndDate,
		absence.ID,
	)
	if err != nil {
		return fmt.Errorf("update absence: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("absence not found")
	}

	return nil
}

// Delete removes an absence record
func (r *AbsenceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM absences WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete absence: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("absence not found")
	}

	return nil
}

func (r *AbsenceRepository) queryMany(ctx context.Context, query string, args ...any) ([]*model.Absence, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query absences: %w", err)
	}
	defer rows.Close()

	var absences []*model.Absence
	for rows.Next() {
		var absence model.Absence
		err := rows.Scan(
			&absence.ID,
			&absence.TeacherID,
			&absence.Reason,
			&absence.StartDate,
			&absence.EndDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan absence: %w", err)
		}
		absences = append(absences, &absence)
	}

	return absences, nil
}
