package routes

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"RentRate/internal/api/handlers"
	"RentRate/internal/core/properties"
	"RentRate/internal/core/reviews"
)

// PropertyHandler handles property listing endpoints
type PropertyHandler struct {
	propertyService properties.PropertyService
	reviewService   reviews.ReviewService
}

// PropertyDetail is the GET /api/properties/{id} response: the property with
// its aggregates plus all of its reviews.
type PropertyDetail struct {
	*properties.PropertySummary
	Reviews []*reviews.Review `json:"reviews"`
}

// RegisterPropertyRoutes registers property endpoints on the router
func RegisterPropertyRoutes(r chi.Router, service properties.PropertyService, reviewService reviews.ReviewService) {
	h := &PropertyHandler{propertyService: service, reviewService: reviewService}

	r.Get("/api/properties", h.ListProperties)
	r.Get("/api/properties/{id}", h.GetProperty)
}

// ListProperties handles GET /api/properties
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	list, err := h.propertyService.ListProperties(r.Context())
	if err != nil {
		slog.Error("failed to list properties", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to list properties")
		return
	}

	if list == nil {
		list = []*properties.PropertySummary{}
	}
	handlers.WriteJSON(w, http.StatusOK, list)
}

// GetProperty handles GET /api/properties/{id}
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid property id")
		return
	}

	property, err := h.propertyService.GetProperty(r.Context(), id)
	if err != nil {
		if errors.Is(err, properties.ErrPropertyNotFound) {
			handlers.WriteError(w, http.StatusNotFound, "PropertyNotFound", "Property not found")
			return
		}
		slog.Error("failed to get property", slog.Int64("id", id), slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to get property")
		return
	}

	propertyReviews, err := h.reviewService.ListReviews(r.Context(), id)
	if err != nil {
		slog.Error("failed to list property reviews", slog.Int64("id", id), slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to get property")
		return
	}
	if propertyReviews == nil {
		propertyReviews = []*reviews.Review{}
	}

	handlers.WriteJSON(w, http.StatusOK, &PropertyDetail{
		PropertySummary: property,
		Reviews:         propertyReviews,
	})
}
