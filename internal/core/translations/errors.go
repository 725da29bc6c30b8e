package translations

import (
	"errors"
	"fmt"
)

// Sentinel errors for the translation pipeline
var (
	// ErrTranslationUnavailable is the single externally-visible failure for
	// every provider-side problem. The specific cause is logged server-side
	// and must never reach the client.
	ErrTranslationUnavailable = errors.New("translation unavailable")

	// ErrCacheMiss is returned by TranslationRepository.Lookup when the triple
	// has no stored translation. Not a failure; the orchestrator falls through
	// to the provider.
	ErrCacheMiss = errors.New("translation not cached")

	// ErrDetectionUnavailable is returned when the detector cannot produce
	// any result for the text. Distinct from a successful low-confidence
	// detection.
	ErrDetectionUnavailable = errors.New("language could not be detected")

	// ErrEmptyProviderResponse is returned by the provider client when the
	// provider answered 200 but the translated text field was empty or missing.
	ErrEmptyProviderResponse = errors.New("provider returned empty translated text")
)

type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// ConnectivityError wraps a network-level failure (connection refused, DNS,
// timeout) reaching the translation provider.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("provider unreachable: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// ProviderRejectedError is a non-success HTTP status from the provider.
// Body is kept for server-side logs only.
type ProviderRejectedError struct {
	Status int
	Body   string
}

func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("provider rejected request: status %d: %s", e.Status, e.Body)
}
