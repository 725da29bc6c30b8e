package routes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"RentRate/internal/api/handlers"
	"RentRate/internal/core/translations"
)

// TranslationHandler exposes the language detection and translation endpoints
type TranslationHandler struct {
	translationService translations.TranslationService
}

// RegisterTranslationRoutes registers translation endpoints on the router
func RegisterTranslationRoutes(r chi.Router, service translations.TranslationService) {
	h := &TranslationHandler{translationService: service}

	r.Post("/api/detect-language", h.DetectLanguage)
	r.Post("/api/translate", h.Translate)
}

// DetectLanguage handles POST /api/detect-language
//
// Request body: { "text": string }
func (h *TranslationHandler) DetectLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	detection, err := h.translationService.DetectLanguage(r.Context(), req.Text)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, detection)
}

// Translate handles POST /api/translate
//
// Request body: { "text": string, "target_lang": string, "source_lang"?: string }
func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translations.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	result, err := h.translationService.Translate(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

// handleServiceError maps pipeline errors to responses. Provider and
// datastore failures both come out as a generic 503; the specific cause was
// already logged by the orchestrator and never reaches the client.
func (h *TranslationHandler) handleServiceError(w http.ResponseWriter, err error) {
	var invalidInput *translations.InvalidInputError

	switch {
	case errors.As(err, &invalidInput):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, translations.ErrDetectionUnavailable):
		handlers.WriteError(w, http.StatusUnprocessableEntity, "DetectionUnavailable", "Language could not be detected")
	case errors.Is(err, translations.ErrTranslationUnavailable):
		handlers.WriteError(w, http.StatusServiceUnavailable, "TranslationUnavailable", "Translation service is temporarily unavailable")
	default:
		slog.Error("translation request failed", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusServiceUnavailable, "TranslationUnavailable", "Translation service is temporarily unavailable")
	}
}
