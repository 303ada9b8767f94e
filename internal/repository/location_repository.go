package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulops/dashboard/internal/model"
	"github.com/okulops/dashboard/internal/repository/base"
)

type LocationRepository struct {
	*base.Repository
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{Repository: base.NewRepository(pool)}
}

// Create inserts a new duty location
func (r *LocationRepository) Create(ctx context.Context, location *model.DutyLocation) error {
	query := `
		INSERT INTO duty_locations (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.QueryRow(ctx, query, location.Name).Scan(&location.ID)
	if err != nil {
		return fmt.Errorf("create location: %w", err)
	}

	return nil
}

// GetByID returns one duty location or nil if not found
func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*model.DutyLocation, error) {
	query := `
		SELECT id, name
		FROM duty_locations
		WHERE id = $1
	`

	var location model.DutyLocation
	err := r.QueryRow(ctx, query, id).Scan(&location.ID, &location.Name)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by id: %w", err)
	}

	return &location, nil
}

// List returns all duty locations ordered by name
func (r *LocationRepository) List(ctx context.Context) ([]*model.DutyLocation, error) {
	query := `
		SELECT id, name
		FROM duty_locations
		ORDER BY name
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []*model.DutyLocation
	for rows.Next() {
		var location model.DutyLocation
		if err := rows.Scan(&location.ID, &location.Name); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, &location)
	}

	return locations, nil
}

// Update rewrites a duty location
func (r *LocationRepository) Update(ctx context.Context, location *model.DutyLocation) error {
	query := `
		UPDATE duty_locations
		SET name = $1
		WHERE id = $2
	`

	affected, err := r.ExecAffected(ctx, query, location.Name, location.ID)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("location not found")
	}

	return nil
}

// Delete removes a duty location
func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM duty_locations WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("location not found")
	}

	return nil
}
