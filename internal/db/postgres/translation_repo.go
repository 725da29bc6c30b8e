package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"RentRate/internal/core/translations"
)

type postgresTranslationRepo struct {
	db *sql.DB
}

// NewTranslationRepository creates a new PostgreSQL translation cache repository
func NewTranslationRepository(db *sql.DB) translations.TranslationRepository {
	return &postgresTranslationRepo{db: db}
}

// Lookup performs an exact-match read on the cache triple, served by
// idx_translations_lookup. Concurrent misses may have inserted duplicates;
// the oldest row wins.
func (r *postgresTranslationRepo) Lookup(ctx context.Context, originalText, sourceLang, targetLang string) (*translations.Translation, error) {
	translation := &translations.Translation{}
	query := `
		SELECT id, original_text, source_lang, target_lang, translated_text, created_at
		FROM translations
		WHERE original_text = $1 AND source_lang = $2 AND target_lang = $3
		ORDER BY id
		LIMIT 1`

	err := r.db.QueryRowContext(ctx, query, originalText, sourceLang, targetLang).
		Scan(&translation.ID, &translation.OriginalText, &translation.SourceLang,
			&translation.TargetLang, &translation.TranslatedText, &translation.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, translations.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up translation: %w", err)
	}

	return translation, nil
}

// Insert appends a new immutable cache row. No duplicate check: the
// orchestrator already looked, and a concurrent duplicate is tolerated.
func (r *postgresTranslationRepo) Insert(ctx context.Context, translation *translations.Translation) (*translations.Translation, error) {
	query := `
		INSERT INTO translations (original_text, source_lang, target_lang, translated_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		translation.OriginalText, translation.SourceLang, translation.TargetLang, translation.TranslatedText).
		Scan(&translation.ID, &translation.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert translation: %w", err)
	}

	return translation, nil
}
