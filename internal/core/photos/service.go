package photos

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the largest accepted upload, in bytes.
const MaxFileSize = 5 << 20 // 5 MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type photoService struct {
	photoRepo PhotoRepository
	uploadDir string
}

// NewPhotoService creates a new photo service storing files under uploadDir.
// The directory is created if it does not exist.
func NewPhotoService(photoRepo PhotoRepository, uploadDir string) (PhotoService, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", uploadDir, err)
	}
	return &photoService{photoRepo: photoRepo, uploadDir: uploadDir}, nil
}

// SavePhoto validates the upload and stores it under a uuid-based filename.
// The original filename is kept only as display metadata, never as a path.
func (s *photoService) SavePhoto(ctx context.Context, reviewID int64, filename string, size int64, content io.Reader) (*Photo, error) {
	if size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, &UnsupportedFileTypeError{Extension: ext}
	}

	storedName := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.uploadDir, storedName))
	if err != nil {
		return nil, fmt.Errorf("failed to create photo file: %w", err)
	}
	defer dst.Close()

	// Copy one byte past the limit so oversized bodies with a lying
	// Content-Length are still rejected.
	written, err := io.Copy(dst, io.LimitReader(content, MaxFileSize+1))
	if err != nil {
		s.removeFile(storedName)
		return nil, fmt.Errorf("failed to write photo file: %w", err)
	}
	if written > MaxFileSize {
		s.removeFile(storedName)
		return nil, ErrFileTooLarge
	}

	photo, err := s.photoRepo.Create(ctx, &Photo{
		ReviewID: reviewID,
		Filename: filepath.Base(filename),
		Filepath: storedName,
	})
	if err != nil {
		s.removeFile(storedName)
		return nil, err
	}

	return photo, nil
}

func (s *photoService) ListPhotos(ctx context.Context, reviewID int64) ([]*Photo, error) {
	return s.photoRepo.ListByReview(ctx, reviewID)
}

// RemoveReviewPhotos deletes the stored files and then the rows.
// A missing file is logged and skipped rather than failing the delete.
func (s *photoService) RemoveReviewPhotos(ctx context.Context, reviewID int64) error {
	list, err := s.photoRepo.ListByReview(ctx, reviewID)
	if err != nil {
		return err
	}

	for _, photo := range list {
		s.removeFile(photo.Filepath)
	}

	return s.photoRepo.DeleteByReview(ctx, reviewID)
}

func (s *photoService) removeFile(storedName string) {
	if err := os.Remove(filepath.Join(s.uploadDir, storedName)); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove photo file",
			slog.String("file", storedName),
			slog.String("error", err.Error()),
		)
	}
}
