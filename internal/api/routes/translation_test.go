package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"RentRate/internal/core/translations"
)

// MockTranslationService is a mock implementation of translations.TranslationService
type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) DetectLanguage(ctx context.Context, text string) (*translations.Detection, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*translations.Detection), args.Error(1)
}

func (m *MockTranslationService) Translate(ctx context.Context, req translations.TranslateRequest) (*translations.TranslateResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*translations.TranslateResult), args.Error(1)
}

func newTranslationRouter(service translations.TranslationService) chi.Router {
	r := chi.NewRouter()
	RegisterTranslationRoutes(r, service)
	return r
}

func postJSON(t *testing.T, router chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestTranslateEndpoint(t *testing.T) {
	t.Run("returns the translation result", func(t *testing.T) {
		service := new(MockTranslationService)
		service.On("Translate", mock.Anything, translations.TranslateRequest{
			Text:       "buenos dias",
			SourceLang: "es",
			TargetLang: "en",
		}).Return(&translations.TranslateResult{
			TranslatedText: "good morning",
			SourceLang:     "es",
			TargetLang:     "en",
			FromCache:      true,
		}, nil)

		rec := postJSON(t, newTranslationRouter(service),
			"/api/translate",
			`{"text":"buenos dias","source_lang":"es","target_lang":"en"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var result translations.TranslateResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.Equal(t, "good morning", result.TranslatedText)
		assert.True(t, result.FromCache)
	})

	t.Run("invalid json body returns 400", func(t *testing.T) {
		rec := postJSON(t, newTranslationRouter(new(MockTranslationService)),
			"/api/translate", `{"text":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "InvalidRequest", decodeErrorBody(t, rec)["error"])
	})

	t.Run("missing field returns 400", func(t *testing.T) {
		service := new(MockTranslationService)
		service.On("Translate", mock.Anything, mock.Anything).
			Return(nil, &translations.InvalidInputError{Field: "target_lang"})

		rec := postJSON(t, newTranslationRouter(service),
			"/api/translate", `{"text":"hola"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "InvalidRequest", decodeErrorBody(t, rec)["error"])
	})

	t.Run("provider outage returns 503 without detail", func(t *testing.T) {
		service := new(MockTranslationService)
		service.On("Translate", mock.Anything, mock.Anything).
			Return(nil, translations.ErrTranslationUnavailable)

		rec := postJSON(t, newTranslationRouter(service),
			"/api/translate", `{"text":"hola","target_lang":"en"}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "TranslationUnavailable", body["error"])
		assert.NotContains(t, body["message"], "connection")
	})

	t.Run("unexpected errors also return a generic 503", func(t *testing.T) {
		service := new(MockTranslationService)
		service.On("Translate", mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		rec := postJSON(t, newTranslationRouter(service),
			"/api/translate", `{"text":"hola","target_lang":"en"}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "TranslationUnavailable", decodeErrorBody(t, rec)["error"])
	})
}

func TestDetectLanguageEndpoint(t *testing.T) {
	t.Run("returns the detection", func(t *testing.T) {
		service := new(MockTranslationService)
		service.On("DetectLanguage", mock.Anything, "bonjour tout le monde").
			Return(&translations.Detection{
				Language:   "fr",
				Confidence: 0.97,
				Candidates: []translations.Candidate{{Lang: "fr", Prob: 0.97}},
			}, nil)

		rec := postJSON(t, newTranslationRouter(service),
			"/api/detect-language", `{"text":"bonjour tout le monde"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var detection translations.Detection
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&detection))
		assert.Equal(t, "fr", detection.Language)
		assert.InDelta(t, 0.97, detection.Confidence, 0.0001)
	})

	t.Run("undetectable text returns 422", func(t *testing.T) {
		service := new(MockTranslationService)
		service.On("DetectLanguage", mock.Anything, mock.Anything).
			Return(nil, translations.ErrDetectionUnavailable)

		rec := postJSON(t, newTranslationRouter(service),
			"/api/detect-language", `{"text":"12345"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "DetectionUnavailable", decodeErrorBody(t, rec)["error"])
	})

	t.Run("empty text returns 400", func(t *testing.T) {
		service := new(MockTranslationService)
		service.On("DetectLanguage", mock.Anything, "").
			Return(nil, &translations.InvalidInputError{Field: "text"})

		rec := postJSON(t, newTranslationRouter(service),
			"/api/detect-language", `{"text":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
