package translations

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

type translationService struct {
	translationRepo TranslationRepository
	provider        Provider
	detector        Detector
}

// NewTranslationService creates a new translation service
func NewTranslationService(translationRepo TranslationRepository, provider Provider, detector Detector) TranslationService {
	return &translationService{
		translationRepo: translationRepo,
		provider:        provider,
		detector:        detector,
	}
}

// DetectLanguage delegates to the detector. Results are never cached;
// every call recomputes.
func (s *translationService) DetectLanguage(ctx context.Context, text string) (*Detection, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &InvalidInputError{Field: "text"}
	}

	detection, err := s.detector.Detect(text)
	if err != nil {
		slog.Info("language detection produced no result",
			slog.Int("text_length", len(text)),
			slog.String("error", err.Error()),
		)
		return nil, ErrDetectionUnavailable
	}

	return detection, nil
}

// Translate resolves a translation request against the cache, falling back
// to the provider on a miss and writing the result through on success.
//
// When the caller supplies no source language the cache is not probed first:
// the provider auto-detects, and the resolved source keys the insert. Caching
// against an unknown source would either need a separate "auto" partition or
// risk wrong hits.
func (s *translationService) Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, &InvalidInputError{Field: "text"}
	}

	targetLang := normalizeLang(req.TargetLang)
	if targetLang == "" {
		return nil, &InvalidInputError{Field: "target_lang"}
	}
	sourceLang := normalizeLang(req.SourceLang)

	// Translating a language into itself is a no-op, not a provider request.
	if sourceLang != "" && sourceLang == targetLang {
		sameLanguageShortCircuits.Inc()
		return &TranslateResult{
			TranslatedText: req.Text,
			SourceLang:     sourceLang,
			TargetLang:     targetLang,
			FromCache:      false,
		}, nil
	}

	if sourceLang != "" {
		cached, err := s.translationRepo.Lookup(ctx, req.Text, sourceLang, targetLang)
		if err == nil {
			cacheHits.Inc()
			return &TranslateResult{
				TranslatedText: cached.TranslatedText,
				SourceLang:     sourceLang,
				TargetLang:     targetLang,
				FromCache:      true,
			}, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			slog.Error("translation cache lookup failed",
				slog.String("source_lang", sourceLang),
				slog.String("target_lang", targetLang),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		cacheMisses.Inc()
	}

	slog.Info("translation request",
		slog.String("source_lang", orAuto(sourceLang)),
		slog.String("target_lang", targetLang),
		slog.Int("text_length", len(req.Text)),
	)

	result, err := s.provider.Translate(ctx, req.Text, sourceLang, targetLang)
	if err != nil {
		s.logProviderFailure(err, req.Text, sourceLang, targetLang)
		return nil, ErrTranslationUnavailable
	}

	resolvedSource := normalizeLang(result.ResolvedSourceLang)
	if resolvedSource == "" {
		resolvedSource = sourceLang
	}

	// The provider auto-detected the same language we were asked to translate
	// into. Treat it like an explicit same-language request: hand back the
	// original text and keep the cache free of identity translations.
	if resolvedSource == targetLang {
		sameLanguageShortCircuits.Inc()
		return &TranslateResult{
			TranslatedText: req.Text,
			SourceLang:     resolvedSource,
			TargetLang:     targetLang,
			FromCache:      false,
		}, nil
	}

	if _, err := s.translationRepo.Insert(ctx, &Translation{
		OriginalText:   req.Text,
		SourceLang:     resolvedSource,
		TargetLang:     targetLang,
		TranslatedText: result.TranslatedText,
	}); err != nil {
		slog.Error("failed to cache translation",
			slog.String("source_lang", resolvedSource),
			slog.String("target_lang", targetLang),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	slog.Info("translation successful",
		slog.String("source_lang", resolvedSource),
		slog.String("target_lang", targetLang),
	)

	return &TranslateResult{
		TranslatedText: result.TranslatedText,
		SourceLang:     resolvedSource,
		TargetLang:     targetLang,
		FromCache:      false,
	}, nil
}

// logProviderFailure records the full failure detail, including the outbound
// payload parameters, for diagnosis. Only the generic unavailable error
// crosses the API boundary.
func (s *translationService) logProviderFailure(err error, text, sourceLang, targetLang string) {
	kind := "connectivity"
	attrs := []any{
		slog.String("source_lang", orAuto(sourceLang)),
		slog.String("target_lang", targetLang),
		slog.Int("text_length", len(text)),
		slog.String("error", err.Error()),
	}

	var rejected *ProviderRejectedError
	switch {
	case errors.As(err, &rejected):
		kind = "rejected"
		attrs = append(attrs, slog.Int("status", rejected.Status), slog.String("body", rejected.Body))
	case errors.Is(err, ErrEmptyProviderResponse):
		kind = "empty_response"
	}

	providerFailures.WithLabelValues(kind).Inc()
	slog.Error("translation API error", append([]any{slog.String("kind", kind)}, attrs...)...)
}

// normalizeLang lowercases a language code and strips any region subtag,
// so "EN" and "en-US" both key the cache as "en".
func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(lang, "-_"); idx >= 0 {
		lang = lang[:idx]
	}
	return lang
}

func orAuto(sourceLang string) string {
	if sourceLang == "" {
		return "auto"
	}
	return sourceLang
}
