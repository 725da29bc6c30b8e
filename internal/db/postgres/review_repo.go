package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"RentRate/internal/core/photos"
	"RentRate/internal/core/properties"
	"RentRate/internal/core/reviews"
)

type postgresReviewRepo struct {
	db *sql.DB
}

// NewReviewRepository creates a new PostgreSQL review repository
func NewReviewRepository(db *sql.DB) reviews.ReviewRepository {
	return &postgresReviewRepo{db: db}
}

const reviewColumns = `
	rv.id, rv.property_id, rv.user_id, rv.reviewer_name, rv.rating, rv.review_text,
	rv.landlord_name, rv.landlord_rating, rv.created_at,
	p.id, p.address, p.city, p.property_type, p.created_at`

// Create inserts a new review
func (r *postgresReviewRepo) Create(ctx context.Context, review *reviews.Review) (*reviews.Review, error) {
	query := `
		INSERT INTO reviews (property_id, user_id, reviewer_name, rating, review_text, landlord_name, landlord_rating)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		review.PropertyID, review.UserID, review.ReviewerName, review.Rating,
		review.ReviewText, review.LandlordName, review.LandlordRating).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	review.Photos = []*photos.Photo{}
	return review, nil
}

// GetByID retrieves a review with its property and photos
func (r *postgresReviewRepo) GetByID(ctx context.Context, id int64) (*reviews.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews rv
		JOIN properties p ON p.id = rv.property_id
		WHERE rv.id = $1`, reviewColumns)

	review, err := r.scanReview(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, reviews.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if err := r.attachPhotos(ctx, []*reviews.Review{review}); err != nil {
		return nil, err
	}

	return review, nil
}

// List returns reviews newest first. propertyID == 0 means all reviews.
func (r *postgresReviewRepo) List(ctx context.Context, propertyID int64) ([]*reviews.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews rv
		JOIN properties p ON p.id = rv.property_id
		WHERE ($1 = 0 OR rv.property_id = $1)
		ORDER BY rv.created_at DESC, rv.id DESC`, reviewColumns)

	return r.list(ctx, query, propertyID)
}

// ListByUser returns the given user's reviews, newest first
func (r *postgresReviewRepo) ListByUser(ctx context.Context, userID int64) ([]*reviews.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews rv
		JOIN properties p ON p.id = rv.property_id
		WHERE rv.user_id = $1
		ORDER BY rv.created_at DESC, rv.id DESC`, reviewColumns)

	return r.list(ctx, query, userID)
}

// Delete removes the review. Photo rows go with it via the FK cascade.
func (r *postgresReviewRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return reviews.ErrReviewNotFound
	}

	return nil
}

func (r *postgresReviewRepo) list(ctx context.Context, query string, arg interface{}) ([]*reviews.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var result []*reviews.Review
	for rows.Next() {
		review, err := r.scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		result = append(result, review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	if err := r.attachPhotos(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *postgresReviewRepo) scanReview(row rowScanner) (*reviews.Review, error) {
	review := &reviews.Review{Property: &properties.Property{}}
	var userID sql.NullInt64
	var landlordName sql.NullString
	var landlordRating sql.NullInt64

	err := row.Scan(
		&review.ID, &review.PropertyID, &userID, &review.ReviewerName, &review.Rating,
		&review.ReviewText, &landlordName, &landlordRating, &review.CreatedAt,
		&review.Property.ID, &review.Property.Address, &review.Property.City,
		&review.Property.PropertyType, &review.Property.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		review.UserID = &userID.Int64
	}
	review.LandlordName = landlordName.String
	if landlordRating.Valid {
		rating := int(landlordRating.Int64)
		review.LandlordRating = &rating
	}
	review.Photos = []*photos.Photo{}

	return review, nil
}

// attachPhotos loads the photos of the given reviews in one query.
func (r *postgresReviewRepo) attachPhotos(ctx context.Context, list []*reviews.Review) error {
	if len(list) == 0 {
		return nil
	}

	byID := make(map[int64]*reviews.Review, len(list))
	ids := make([]int64, 0, len(list))
	for _, review := range list {
		byID[review.ID] = review
		ids = append(ids, review.ID)
	}

	query := `
		SELECT id, review_id, filename, filepath, created_at
		FROM photos
		WHERE review_id = ANY($1)
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load review photos: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	for rows.Next() {
		photo := &photos.Photo{}
		if err := rows.Scan(&photo.ID, &photo.ReviewID, &photo.Filename, &photo.Filepath, &photo.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan photo row: %w", err)
		}
		if review, ok := byID[photo.ReviewID]; ok {
			review.Photos = append(review.Photos, photo)
		}
	}

	return rows.Err()
}
