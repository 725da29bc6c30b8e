package reviews

import (
	"errors"
	"fmt"
)

// Sentinel errors for review operations
var (
	// ErrReviewNotFound is returned when a review lookup finds no matching record
	ErrReviewNotFound = errors.New("review not found")

	// ErrNotAuthor is returned when a user tries to modify a review they did not write
	ErrNotAuthor = errors.New("only the author may modify this review")
)

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

type InvalidRatingError struct {
	Field string
	Value int
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("%s must be an integer between 1 and 5, got %d", e.Field, e.Value)
}
