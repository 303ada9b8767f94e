package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulops/dashboard/internal/model"
)

type DutyRepository struct {
	pool *pgxpool.Pool
}

func NewDutyRepository(pool *pgxpool.Pool) *DutyRepository {
	return &DutyRepository{pool: pool}
}

// Create inserts a new duty record. A nil PeriodID is stored as NULL (all-day duty).
func (r *DutyRepository) Create(ctx context.Context, duty *model.Duty) error {
	query := `
		INSERT INTO duties (day_of_week, teacher_id, location_id, period_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(
		ctx, query,
		duty.DayOfWeek,
		duty.TeacherID,
		duty.LocationID,
		duty.PeriodID,
	).Scan(&duty.ID)

	if err != nil {
		return fmt.Errorf("create duty: %w", err)
	}

	return nil
}

// GetByID returns one duty record or nil if not found
func (r *DutyRepository) GetByID(ctx context.Context, id int64) (*model.Duty, error) {
	query := `
		SELECT id, day_of_week, teacher_id, location_id, period_id
		FROM duties
		WHERE id = $1
	`

	var duty model.Duty
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&duty.ID,
		&duty.DayOfWeek,
		&duty.TeacherID,
		&duty.LocationID,
		&duty.PeriodID,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get duty by id: %w", err)
	}

	return &duty, nil
}

// List returns every duty record
func (r *DutyRepository) List(ctx context.Context) ([]*model.Duty, error) {
	query := `
		SELECT id, day_of_week, teacher_id, location_id, period_id
		FROM duties
		ORDER BY day_of_week, location_id
	`

	return r.queryMany(ctx, query)
}

// ListByDay returns all duty records for one weekday
func (r *DutyRepository) ListByDay(ctx context.Context, dayOfWeek int) ([]*model.Duty, error) {
	query := `
		SELECT id, day_of_week, teacher_id, location_id, period_id
		FROM duties
		WHERE day_of_week = $1
		ORDER BY location_id
	`

	return r.queryMany(ctx, query, dayOfWeek)
}

// Update rewrites a duty record
func (r *DutyRepository) Update(ctx context.Context, duty *model.Duty) error {
	query := `
		UPDATE duties
		SET day_of_week = $1, teacher_id = $2, location_id = $3, period_id = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(
		ctx, query,
		duty.DayOfWeek,
		duty.TeacherID,
		duty.LocationID,
		duty.PeriodID,
		duty.ID,
	)
	if err != nil {
		return fmt.Errorf("update duty: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("duty not found")
	}

	return nil
}

// Delete removes a duty record
func (r *DutyRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM duties WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete duty: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("duty not found")
	}

	return nil
}

func (r *DutyRepository) queryMany(ctx context.Context, query string, args ...any) ([]*model.Duty, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query duties: %w", err)
	}
	defer rows.Close()

	var duties []*model.Duty
	for rows.Next() {
		var duty model.Duty
		err := rows.Scan(
			&duty.ID,
			&duty.DayOfWeek,
			&duty.TeacherID,
			&duty.LocationID,
			&duty.PeriodID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan duty: %w", err)
		}
		duties = append(duties, &duty)
	}

	return duties, nil
}
