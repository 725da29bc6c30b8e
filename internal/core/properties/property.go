package properties

import (
	"time"
)

// Property types accepted by review submission.
const (
	TypeRoom      = "room"
	TypeApartment = "apartment"
	TypeHouse     = "house"
)

// Property is a rental unit identified by its street address.
// Properties are created implicitly the first time someone reviews an address.
type Property struct {
	ID           int64     `json:"id" db:"id"`
	Address      string    `json:"address" db:"address"`
	City         string    `json:"city" db:"city"`
	PropertyType string    `json:"property_type" db:"property_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PropertySummary is a property together with its review aggregates,
// as returned by the property listing endpoints.
type PropertySummary struct {
	Property
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

// ValidType reports whether t is one of the accepted property types.
func ValidType(t string) bool {
	switch t {
	case TypeRoom, TypeApartment, TypeHouse:
		return true
	}
	return false
}
