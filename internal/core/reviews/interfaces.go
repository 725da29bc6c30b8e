package reviews

import "context"

// ReviewRepository defines the interface for review data persistence.
// Reads embed the property and photos of each review.
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) (*Review, error)
	GetByID(ctx context.Context, id int64) (*Review, error)

	// List returns reviews newest first. propertyID == 0 means all reviews.
	List(ctx context.Context, propertyID int64) ([]*Review, error)

	// ListByUser returns the given user's reviews, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*Review, error)

	// Delete removes the review and its photo rows.
	Delete(ctx context.Context, id int64) error
}

// ReviewService defines the interface for review business logic
type ReviewService interface {
	// CreateReview validates the request, matches or creates the property by
	// address, and stores the review attributed to userID.
	CreateReview(ctx context.Context, userID int64, req CreateReviewRequest) (*Review, error)

	GetReview(ctx context.Context, id int64) (*Review, error)
	ListReviews(ctx context.Context, propertyID int64) ([]*Review, error)
	ListMyReviews(ctx context.Context, userID int64) ([]*Review, error)

	// DeleteReview removes the caller's own review.
	// Returns ErrNotAuthor when userID did not write the review.
	DeleteReview(ctx context.Context, userID, reviewID int64) error
}
