package reviews

import (
	"time"

	"RentRate/internal/core/photos"
	"RentRate/internal/core/properties"
)

// Review is a tenant's review of a rental property, optionally covering the
// landlord as well. UserID is nil for reviews imported before accounts existed.
type Review struct {
	ID             int64                `json:"id" db:"id"`
	PropertyID     int64                `json:"property_id" db:"property_id"`
	UserID         *int64               `json:"user_id,omitempty" db:"user_id"`
	ReviewerName   string               `json:"reviewer_name" db:"reviewer_name"`
	Rating         int                  `json:"rating" db:"rating"`
	ReviewText     string               `json:"review_text" db:"review_text"`
	LandlordName   string               `json:"landlord_name,omitempty" db:"landlord_name"`
	LandlordRating *int                 `json:"landlord_rating,omitempty" db:"landlord_rating"`
	CreatedAt      time.Time            `json:"created_at" db:"created_at"`
	Property       *properties.Property `json:"property,omitempty"`
	Photos         []*photos.Photo      `json:"photos"`
}

// CreateReviewRequest represents the input for submitting a new review.
// The property is matched by address and created if it does not exist yet.
type CreateReviewRequest struct {
	Address        string `json:"address"`
	City           string `json:"city"`
	PropertyType   string `json:"property_type"`
	ReviewerName   string `json:"reviewer_name"`
	Rating         int    `json:"rating"`
	ReviewText     string `json:"review_text"`
	LandlordName   string `json:"landlord_name,omitempty"`
	LandlordRating *int   `json:"landlord_rating,omitempty"`
}
