package translations

import (
	"time"
)

// Translation is one cached machine translation, keyed by the
// (original_text, source_lang, target_lang) triple. Rows are append-only:
// never updated, never deleted, no TTL.
type Translation struct {
	ID             int64     `json:"id" db:"id"`
	OriginalText   string    `json:"original_text" db:"original_text"`
	SourceLang     string    `json:"source_lang" db:"source_lang"`
	TargetLang     string    `json:"target_lang" db:"target_lang"`
	TranslatedText string    `json:"translated_text" db:"translated_text"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// TranslateRequest represents the input for a translation request.
// SourceLang may be empty, in which case the provider auto-detects it.
type TranslateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
	SourceLang string `json:"source_lang,omitempty"`
}

// TranslateResult is the uniform response shape for every Translate outcome:
// cache hit, fresh provider translation, or same-language short-circuit.
type TranslateResult struct {
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
	FromCache      bool   `json:"from_cache"`
}

// Candidate is one language guess with its probability.
type Candidate struct {
	Lang string  `json:"lang"`
	Prob float64 `json:"prob"`
}

// Detection is the result of language detection: the best guess plus the
// full ranked candidate list, highest probability first. Never persisted.
type Detection struct {
	Language   string      `json:"detected_language"`
	Confidence float64     `json:"confidence"`
	Candidates []Candidate `json:"all_detected"`
}

// ProviderResult is a successful response from the translation provider.
// ResolvedSourceLang is the source language the provider used: the requested
// one when supplied, or whatever it auto-detected otherwise.
type ProviderResult struct {
	TranslatedText     string
	ResolvedSourceLang string
}
