package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulops/dashboard/internal/model"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// Create inserts a new lesson record
func (r *ScheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	query := `
		INSERT INTO schedules (day_of_week, period_id, teacher_id, class_id, subject_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(
		ctx, query,
		schedule.DayOfWeek,
		schedule.PeriodID,
		schedule.TeacherID,
		schedule.ClassID,
		schedule.SubjectID,
	).Scan(&schedule.ID)

	if err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}

	return nil
}

// GetByID returns one lesson record or nil if not found
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*model.Schedule, error) {
	query := `
		SELECT id, day_of_week, period_id, teacher_id, class_id, subject_id
		FROM schedules
		WHERE id = $1
	`

	var schedule model.Schedule
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.DayOfWeek,
		&schedule.PeriodID,
		&schedule.TeacherID,
		&schedule.ClassID,
		&schedule.SubjectID,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule by id: %w", err)
	}

	return &schedule, nil
}

// List returns every lesson record
func (r *ScheduleRepository) List(ctx context.Context) ([]*model.Schedule, error) {
	query := `
		SELECT id, day_of_week, period_id, teacher_id, class_id, subject_id
		FROM schedules
		ORDER BY day_of_week, period_id
	`

	return r.queryMany(ctx, query)
}

// ListByTeacher returns one teacher's lesson records
func (r *ScheduleRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*model.Schedule, error) {
	query := `
		SELECT id, day_of_week, period_id, teacher_id, class_id, subject_id
		FROM schedules
		WHERE teacher_id = $1
		ORDER BY day_of_week, period_id
	`

	return r.queryMany(ctx, query, teacherID)
}

// ListByDay returns all lesson records for one weekday
func (r *ScheduleRepository) ListByDay(ctx context.Context, dayOfWeek int) ([]*model.Schedule, error) {
	query := `
		SELECT id, day_of_week, period_id, teacher_id, class_id, subject_id
		FROM schedules
		WHERE day_of_week = $1
		ORDER BY period_id
	`

	return r.queryMany(ctx, query, dayOfWeek)
}

// Update rewrites a lesson record
func (r *ScheduleRepository) Update(ctx context.Context, schedule *model.Schedule) error {
	query := `
		UPDATE schedules
		SET day_of_week = $1, period_id = $2, teacher_id = $3, class_id = $4, subject_id = $5
		WHERE id = $6
	`

	result, err := r.pool.Exec(
		ctx, query,
		schedule.DayOfWeek,
		schedule.PeriodID,
		schedule.TeacherID,
		schedule.ClassID,
		schedule.SubjectID,
		schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule not found")
	}

	return nil
}

// Delete removes a lesson record
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM schedules WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule not found")
	}

	return nil
}

func (r *ScheduleRepository) queryMany(ctx context.Context, query string, args ...any) ([]*model.Schedule, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*model.Schedule
	for rows.Next() {
		var schedule model.Schedule
		err := rows.Scan(
			&schedule.ID,
			&schedule.DayOfWeek,
			&schedule.PeriodID,
			&schedule.TeacherID,
			&schedule.ClassID,
			&schedule.SubjectID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		schedules = append(schedules, &schedule)
	}

	return schedules, nil
}
