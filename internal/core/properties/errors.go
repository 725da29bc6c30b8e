package properties

import (
	"errors"
	"fmt"
)

// ErrPropertyNotFound is returned when a property lookup finds no matching record
var ErrPropertyNotFound = errors.New("property not found")

type InvalidPropertyTypeError struct {
	PropertyType string
}

func (e *InvalidPropertyTypeError) Error() string {
	return fmt.Sprintf("invalid property type %q: must be room, apartment or house", e.PropertyType)
}
