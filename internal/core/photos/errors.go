package photos

import (
	"errors"
	"fmt"
)

// Sentinel errors for photo operations
var (
	// ErrPhotoNotFound is returned when a photo lookup finds no matching record
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrFileTooLarge is returned when an upload exceeds MaxFileSize
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
)

type UnsupportedFileTypeError struct {
	Extension string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q: allowed types are jpg, jpeg, png, gif, webp", e.Extension)
}
