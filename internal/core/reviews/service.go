package reviews

import (
	"context"
	"strings"

	"RentRate/internal/core/photos"
	"RentRate/internal/core/properties"
)

type reviewService struct {
	reviewRepo   ReviewRepository
	propertySvc  properties.PropertyService
	photoService photos.PhotoService
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo ReviewRepository, propertySvc properties.PropertyService, photoService photos.PhotoService) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		propertySvc:  propertySvc,
		photoService: photoService,
	}
}

// CreateReview validates the request, matches or creates the property by
// address, and stores the review attributed to userID.
func (s *reviewService) CreateReview(ctx context.Context, userID int64, req CreateReviewRequest) (*Review, error) {
	if err := validateCreateRequest(&req); err != nil {
		return nil, err
	}

	property, err := s.propertySvc.GetOrCreate(ctx, req.Address, req.City, req.PropertyType)
	if err != nil {
		return nil, err
	}

	review := &Review{
		PropertyID:     property.ID,
		ReviewerName:   req.ReviewerName,
		Rating:         req.Rating,
		ReviewText:     req.ReviewText,
		LandlordName:   strings.TrimSpace(req.LandlordName),
		LandlordRating: req.LandlordRating,
	}
	if userID > 0 {
		review.UserID = &userID
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, err
	}
	created.Property = property

	return created, nil
}

func (s *reviewService) GetReview(ctx context.Context, id int64) (*Review, error) {
	if id <= 0 {
		return nil, ErrReviewNotFound
	}
	return s.reviewRepo.GetByID(ctx, id)
}

func (s *reviewService) ListReviews(ctx context.Context, propertyID int64) ([]*Review, error) {
	return s.reviewRepo.List(ctx, propertyID)
}

func (s *reviewService) ListMyReviews(ctx context.Context, userID int64) ([]*Review, error) {
	return s.reviewRepo.ListByUser(ctx, userID)
}

// DeleteReview removes the caller's own review along with its photos.
func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID == nil || *review.UserID != userID {
		return ErrNotAuthor
	}

	// Files first: a failed row delete leaves orphan rows, which the FK
	// cascade cleans up; orphan files would not be cleaned up by anything.
	if err := s.photoService.RemoveReviewPhotos(ctx, reviewID); err != nil {
		return err
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}

func validateCreateRequest(req *CreateReviewRequest) error {
	req.Address = strings.TrimSpace(req.Address)
	req.City = strings.TrimSpace(req.City)
	req.ReviewerName = strings.TrimSpace(req.ReviewerName)

	required := []struct {
		name  string
		value string
	}{
		{"address", req.Address},
		{"city", req.City},
		{"property_type", req.PropertyType},
		{"reviewer_name", req.ReviewerName},
		{"review_text", req.ReviewText},
	}
	for _, f := range required {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}

	if req.Rating < 1 || req.Rating > 5 {
		return &InvalidRatingError{Field: "rating", Value: req.Rating}
	}
	if req.LandlordRating != nil && (*req.LandlordRating < 1 || *req.LandlordRating > 5) {
		return &InvalidRatingError{Field: "landlord_rating", Value: *req.LandlordRating}
	}

	return nil
}
