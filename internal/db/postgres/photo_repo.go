package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"RentRate/internal/core/photos"
)

type postgresPhotoRepo struct {
	db *sql.DB
}

// NewPhotoRepository creates a new PostgreSQL photo repository
func NewPhotoRepository(db *sql.DB) photos.PhotoRepository {
	return &postgresPhotoRepo{db: db}
}

// Create inserts a new photo row
func (r *postgresPhotoRepo) Create(ctx context.Context, photo *photos.Photo) (*photos.Photo, error) {
	query := `
		INSERT INTO photos (review_id, filename, filepath)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, photo.ReviewID, photo.Filename, photo.Filepath).
		Scan(&photo.ID, &photo.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	return photo, nil
}

// ListByReview returns the photos of a review, oldest first
func (r *postgresPhotoRepo) ListByReview(ctx context.Context, reviewID int64) ([]*photos.Photo, error) {
	query := `
		SELECT id, review_id, filename, filepath, created_at
		FROM photos
		WHERE review_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var result []*photos.Photo
	for rows.Next() {
		photo := &photos.Photo{}
		if err := rows.Scan(&photo.ID, &photo.ReviewID, &photo.Filename, &photo.Filepath, &photo.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		result = append(result, photo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}

	return result, nil
}

// DeleteByReview removes all photo rows of a review
func (r *postgresPhotoRepo) DeleteByReview(ctx context.Context, reviewID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE review_id = $1`, reviewID); err != nil {
		return fmt.Errorf("failed to delete photos: %w", err)
	}
	return nil
}
