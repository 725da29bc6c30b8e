package routes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"RentRate/internal/api/handlers"
	"RentRate/internal/api/middleware"
	"RentRate/internal/core/photos"
	"RentRate/internal/core/properties"
	"RentRate/internal/core/reviews"
)

// ReviewHandler handles review CRUD and photo upload endpoints
type ReviewHandler struct {
	reviewService reviews.ReviewService
	photoService  photos.PhotoService
}

// RegisterReviewRoutes registers review endpoints on the router
func RegisterReviewRoutes(r chi.Router, reviewService reviews.ReviewService, photoService photos.PhotoService, authMiddleware *middleware.AuthMiddleware) {
	h := &ReviewHandler{reviewService: reviewService, photoService: photoService}

	r.Get("/api/reviews", h.ListReviews)
	r.Get("/api/reviews/{id}", h.GetReview)
	r.With(authMiddleware.RequireAuth).Post("/api/reviews", h.CreateReview)
	r.With(authMiddleware.RequireAuth).Delete("/api/reviews/{id}", h.DeleteReview)
	r.With(authMiddleware.RequireAuth).Get("/api/my-reviews", h.MyReviews)
	r.With(authMiddleware.RequireAuth).Post("/api/reviews/{id}/photos", h.UploadPhoto)
}

// ListReviews handles GET /api/reviews with an optional property_id filter
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	var propertyID int64
	if raw := r.URL.Query().Get("property_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "property_id must be an integer")
			return
		}
		propertyID = id
	}

	list, err := h.reviewService.ListReviews(r.Context(), propertyID)
	if err != nil {
		slog.Error("failed to list reviews", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to list reviews")
		return
	}

	if list == nil {
		list = []*reviews.Review{}
	}
	handlers.WriteJSON(w, http.StatusOK, list)
}

// GetReview handles GET /api/reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, ok := reviewID(w, r)
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, review)
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req reviews.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), middleware.GetUserID(r), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, review)
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := reviewID(w, r)
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), middleware.GetUserID(r), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// MyReviews handles GET /api/my-reviews
func (h *ReviewHandler) MyReviews(w http.ResponseWriter, r *http.Request) {
	list, err := h.reviewService.ListMyReviews(r.Context(), middleware.GetUserID(r))
	if err != nil {
		slog.Error("failed to list user reviews", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to list reviews")
		return
	}

	if list == nil {
		list = []*reviews.Review{}
	}
	handlers.WriteJSON(w, http.StatusOK, list)
}

// UploadPhoto handles POST /api/reviews/{id}/photos (multipart form, field "photo")
func (h *ReviewHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := reviewID(w, r)
	if !ok {
		return
	}

	// Only the author may attach photos
	review, err := h.reviewService.GetReview(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	userID := middleware.GetUserID(r)
	if review.UserID == nil || *review.UserID != userID {
		handlers.WriteError(w, http.StatusForbidden, "NotAuthor", "Only the author may add photos to this review")
		return
	}

	if err := r.ParseMultipartForm(photos.MaxFileSize); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Missing photo file")
		return
	}
	defer file.Close()

	photo, err := h.photoService.SavePhoto(r.Context(), id, header.Filename, header.Size, file)
	if err != nil {
		h.handlePhotoError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, photo)
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error) {
	var missingField *reviews.MissingFieldError
	var invalidRating *reviews.InvalidRatingError
	var invalidType *properties.InvalidPropertyTypeError

	switch {
	case errors.Is(err, reviews.ErrReviewNotFound):
		handlers.WriteError(w, http.StatusNotFound, "ReviewNotFound", "Review not found")
	case errors.Is(err, reviews.ErrNotAuthor):
		handlers.WriteError(w, http.StatusForbidden, "NotAuthor", "Only the author may modify this review")
	case errors.As(err, &missingField), errors.As(err, &invalidRating), errors.As(err, &invalidType):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		slog.Error("review operation failed", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Something went wrong")
	}
}

func (h *ReviewHandler) handlePhotoError(w http.ResponseWriter, err error) {
	var unsupported *photos.UnsupportedFileTypeError

	switch {
	case errors.Is(err, photos.ErrFileTooLarge):
		handlers.WriteError(w, http.StatusRequestEntityTooLarge, "FileTooLarge", "Photo exceeds the 5 MB limit")
	case errors.As(err, &unsupported):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		slog.Error("photo upload failed", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to store photo")
	}
}

func reviewID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid review id")
		return 0, false
	}
	return id, true
}
