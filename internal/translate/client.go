// Package translate contains the outbound adapters of the translation
// pipeline: the LibreTranslate HTTP client and the lingua language detector.
// Both implement interfaces declared in internal/core/translations.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"RentRate/internal/core/translations"
)

const (
	// DefaultTimeout bounds a single provider call. A timed-out call is
	// reported as a connectivity failure.
	DefaultTimeout = 10 * time.Second

	maxErrorBodyBytes = 4 << 10
)

// Client is a LibreTranslate API client. One attempt per call, no retries;
// the orchestrator owns caching and failure policy.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a LibreTranslate client for the given base URL.
// apiKey may be empty; it is only sent when configured.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// translateRequest is the LibreTranslate /translate payload.
type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

// translateResponse is the LibreTranslate /translate response.
// DetectedLanguage is only present when source was "auto".
type translateResponse struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage *struct {
		Confidence float64 `json:"confidence"`
		Language   string  `json:"language"`
	} `json:"detectedLanguage,omitempty"`
}

// Translate performs one outbound translation call. An empty sourceLang asks
// LibreTranslate to auto-detect; the detected code comes back in
// ResolvedSourceLang.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (*translations.ProviderResult, error) {
	source := sourceLang
	if source == "" {
		source = "auto"
	}

	payload := translateRequest{
		Q:      text,
		Source: source,
		Target: targetLang,
		Format: "text",
		APIKey: c.apiKey,
	}

	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(&payload); err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		providerDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, &translations.ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	providerDuration.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &translations.ProviderRejectedError{
			Status: resp.StatusCode,
			Body:   string(body),
		}
	}

	var ltResp translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&ltResp); err != nil {
		return nil, &translations.ConnectivityError{Err: fmt.Errorf("decode response: %w", err)}
	}

	if ltResp.TranslatedText == "" {
		return nil, translations.ErrEmptyProviderResponse
	}

	resolved := sourceLang
	if resolved == "" && ltResp.DetectedLanguage != nil {
		resolved = ltResp.DetectedLanguage.Language
	}

	return &translations.ProviderResult{
		TranslatedText:     ltResp.TranslatedText,
		ResolvedSourceLang: resolved,
	}, nil
}
