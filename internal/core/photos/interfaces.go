package photos

import (
	"context"
	"io"
)

// PhotoRepository defines the interface for photo data persistence
type PhotoRepository interface {
	Create(ctx context.Context, photo *Photo) (*Photo, error)
	ListByReview(ctx context.Context, reviewID int64) ([]*Photo, error)
	DeleteByReview(ctx context.Context, reviewID int64) error
}

// PhotoService defines the interface for photo upload business logic
type PhotoService interface {
	// SavePhoto validates the upload (extension, size), writes the file under
	// the upload directory with a generated name and records it.
	SavePhoto(ctx context.Context, reviewID int64, filename string, size int64, content io.Reader) (*Photo, error)

	ListPhotos(ctx context.Context, reviewID int64) ([]*Photo, error)

	// RemoveReviewPhotos deletes the stored files and rows for a review.
	// Called when the review itself is deleted.
	RemoveReviewPhotos(ctx context.Context, reviewID int64) error
}
