package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulops/dashboard/internal/model"
	"github.com/okulops/dashboard/internal/repository/base"
)

type ClassRepository struct {
	*base.Repository
}

func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{Repository: base.NewRepository(pool)}
}

// Create inserts a new class
func (r *ClassRepository) Create(ctx context.Context, class *model.ClassRoom) error {
	query := `
		INSERT INTO classes (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.QueryRow(ctx, query, class.Name).Scan(&class.ID)
	if err != nil {
		return fmt.Errorf("create class: %w", err)
	}

	return nil
}

// GetByID returns one class or nil if not found
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*model.ClassRoom, error) {
	query := `
		SELECT id, name
		FROM classes
		WHERE id = $1
	`

	var class model.ClassRoom
	err := r.QueryRow(ctx, query, id).Scan(&class.ID, &class.Name)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get class by id: %w", err)
	}

	return &class, nil
}

// List returns all classes ordered by name
func (r *ClassRepository) List(ctx context.Context) ([]*model.ClassRoom, error) {
	query := `
		SELECT id, name
		FROM classes
		ORDER BY name
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var classes []*model.ClassRoom
	for rows.Next() {
		var class model.ClassRoom
		if err := rows.Scan(&class.ID, &class.Name); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, &class)
	}

	return classes, nil
}

// Update rewrites a class
func (r *ClassRepository) Update(ctx context.Context, class *model.ClassRoom) error {
	query := `
		UPDATE classes
		SET name = $1
		WHERE id = $2
	`

	affected, err := r.ExecAffected(ctx, query, class.Name, class.ID)
	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("class not found")
	}

	return nil
}

// Delete removes a class
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM classes WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("class not found")
	}

	return nil
}
