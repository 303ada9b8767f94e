package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulops/dashboard/internal/model"
	"github.com/okulops/dashboard/internal/repository/base"
)

type SubjectRepository struct {
	*base.Repository
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{Repository: base.NewRepository(pool)}
}

// Create inserts a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	query := `
		INSERT INTO subjects (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.QueryRow(ctx, query, subject.Name).Scan(&subject.ID)
	if err != nil {
		return fmt.Errorf("create subject: %w", err)
	}

	return nil
}

// GetByID returns one subject or nil if not found
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*model.Subject, error) {
	query := `
		SELECT id, name
		FROM subjects
		WHERE id = $1
	`

	var subject model.Subject
	err := r.QueryRow(ctx, query, id).Scan(&subject.ID, &subject.Name)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subject by id: %w", err)
	}

	return &subject, nil
}

// List returns all subjects ordered by name
func (r *SubjectRepository) List(ctx context.Context) ([]*model.Subject, error) {
	query := `
		SELECT id, name
		FROM subjects
		ORDER BY name
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*model.Subject
	for rows.Next() {
		var subject model.Subject
		if err := rows.Scan(&subject.ID, &subject.Name); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, &subject)
	}

	return subjects, nil
}

// Update rewrites a subject
func (r *SubjectRepository) Update(ctx context.Context, subject *model.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1
		WHERE id = $2
	`

	affected, err := r.ExecAffected(ctx, query, subject.Name, subject.ID)
	if err != nil {
		return fmt.Errorf("update subject: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("subject not found")
	}

	return nil
}

// Delete removes a subject
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM subjects WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("subject not found")
	}

	return nil
}
