package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"RentRate/internal/core/properties"
)

type postgresPropertyRepo struct {
	db *sql.DB
}

// NewPropertyRepository creates a new PostgreSQL property repository
func NewPropertyRepository(db *sql.DB) properties.PropertyRepository {
	return &postgresPropertyRepo{db: db}
}

// Create inserts a new property
func (r *postgresPropertyRepo) Create(ctx context.Context, property *properties.Property) (*properties.Property, error) {
	query := `
		INSERT INTO properties (address, city, property_type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, property.Address, property.City, property.PropertyType).
		Scan(&property.ID, &property.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return property, nil
}

// GetByID retrieves a property by its ID
func (r *postgresPropertyRepo) GetByID(ctx context.Context, id int64) (*properties.Property, error) {
	property := &properties.Property{}
	query := `SELECT id, address, city, property_type, created_at FROM properties WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&property.ID, &property.Address, &property.City, &property.PropertyType, &property.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, properties.ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return property, nil
}

// GetByAddress performs an exact address match, oldest row first in case a
// concurrent first review created a duplicate.
func (r *postgresPropertyRepo) GetByAddress(ctx context.Context, address string) (*properties.Property, error) {
	property := &properties.Property{}
	query := `
		SELECT id, address, city, property_type, created_at
		FROM properties
		WHERE address = $1
		ORDER BY id
		LIMIT 1`

	err := r.db.QueryRowContext(ctx, query, address).
		Scan(&property.ID, &property.Address, &property.City, &property.PropertyType, &property.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, properties.ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property by address: %w", err)
	}

	return property, nil
}

// List returns all properties, newest first, with review aggregates
func (r *postgresPropertyRepo) List(ctx context.Context) ([]*properties.PropertySummary, error) {
	query := `
		SELECT p.id, p.address, p.city, p.property_type, p.created_at,
			COUNT(rv.id) AS review_count,
			COALESCE(AVG(rv.rating), 0) AS average_rating
		FROM properties p
		LEFT JOIN reviews rv ON rv.property_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var result []*properties.PropertySummary
	for rows.Next() {
		summary := &properties.PropertySummary{}
		err := rows.Scan(&summary.ID, &summary.Address, &summary.City, &summary.PropertyType,
			&summary.CreatedAt, &summary.ReviewCount, &summary.AverageRating)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		result = append(result, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	return result, nil
}

// GetSummary returns one property with its review aggregates
func (r *postgresPropertyRepo) GetSummary(ctx context.Context, id int64) (*properties.PropertySummary, error) {
	query := `
		SELECT p.id, p.address, p.city, p.property_type, p.created_at,
			COUNT(rv.id) AS review_count,
			COALESCE(AVG(rv.rating), 0) AS average_rating
		FROM properties p
		LEFT JOIN reviews rv ON rv.property_id = p.id
		WHERE p.id = $1
		GROUP BY p.id`

	summary := &properties.PropertySummary{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&summary.ID, &summary.Address, &summary.City, &summary.PropertyType,
			&summary.CreatedAt, &summary.ReviewCount, &summary.AverageRating)
	if err == sql.ErrNoRows {
		return nil, properties.ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property summary: %w", err)
	}

	return summary, nil
}
