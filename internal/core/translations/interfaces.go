package translations

import "context"

// TranslationRepository is the narrow cache contract: exact-triple lookup and
// append-only insert. No update, no delete. A race between two concurrent
// misses for the same triple produces a harmless duplicate row; Lookup
// returns the oldest match.
type TranslationRepository interface {
	// Lookup returns ErrCacheMiss (not a nil Translation) when the triple has
	// never been stored.
	Lookup(ctx context.Context, originalText, sourceLang, targetLang string) (*Translation, error)
	Insert(ctx context.Context, translation *Translation) (*Translation, error)
}

// Provider performs one outbound translation call. A single attempt, bounded
// by a timeout; no retries. An empty sourceLang asks the provider to
// auto-detect. Failures are one of ConnectivityError, ProviderRejectedError
// or ErrEmptyProviderResponse.
type Provider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (*ProviderResult, error)
}

// Detector guesses the natural language of a text. Pure over its input.
// Returns ErrDetectionUnavailable when no language matches at all.
type Detector interface {
	Detect(text string) (*Detection, error)
}

// TranslationService is the request-level orchestration of detector, cache
// and provider.
type TranslationService interface {
	DetectLanguage(ctx context.Context, text string) (*Detection, error)
	Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error)
}
