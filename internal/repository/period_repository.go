package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulops/dashboard/internal/model"
)

type PeriodRepository struct {
	pool *pgxpool.Pool
}

func NewPeriodRepository(pool *pgxpool.Pool) *PeriodRepository {
	return &PeriodRepository{pool: pool}
}

// Create inserts a new bell period
func (r *PeriodRepository) Create(ctx context.Context, period *model.Period) error {
	query := `
		INSERT INTO periods (ord, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, period.Order, period.StartTime, period.EndTime).Scan(&period.ID)
	if err != nil {
		return fmt.Errorf("create period: %w", err)
	}

	return nil
}

// GetByID returns one period or nil if it does not exist
func (r *PeriodRepository) GetByID(ctx context.Context, id int64) (*model.Period, error) {
	query := `
		SELECT id, ord, start_time, end_time
		FROM periods
		WHERE id = $1
	`

	var period model.Period
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&period.ID,
		&period.Order,
		&period.StartTime,
		&period.EndTime,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get period by id: %w", err)
	}

	return &period, nil
}

// List returns the whole bell period catalog ordered by ord
func (r *PeriodRepository) List(ctx context.Context) ([]*model.Period, error) {
	query := `
		SELECT id, ord, start_time, end_time
		FROM periods
		ORDER BY ord
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()

	var periods []*model.Period
	for rows.Next() {
		var period model.Period
		err := rows.Scan(&period.ID, &period.Order, &period.StartTime, &period.EndTime)
		if err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		periods = append(periods, &period)
	}

	return periods, nil
}

// Update rewrites a period
func (r *PeriodRepository) Update(ctx context.Context, period *model.Period) error {
	query := `
		UPDATE periods
		SET ord = $1, start_time = $2, end_time = $3
		WHERE id = $4
	`

	result, err := r.pool.Exec(ctx, query, period.Order, period.StartTime, period.EndTime, period.ID)
	if err != nil {
		return fmt.Errorf("update period: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("period not found")
	}

	return nil
}

// Delete removes a period
func (r *PeriodRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM periods WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete period: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("period not found")
	}

	return nil
}
