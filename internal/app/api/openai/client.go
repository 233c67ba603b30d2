package openai

import (
	"errors"

	"github.com/sashabaranov/go-openai"

	apperrors "voice-blog/internal/app/errors"
)

// NewClient builds a client for the given key. A non-empty baseURL
// overrides the API endpoint, which tests use to point at a local server.
func NewClient(apiKey, baseURL string) *openai.Client {
	if baseURL == "" {
		return openai.NewClient(apiKey)
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return openai.NewClientWithConfig(cfg)
}

// classify maps SDK failures onto the pipeline's error taxonomy, keeping
// the HTTP status when the SDK reports one.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apperrors.APIError(apiErr.HTTPStatusCode, err)
	}
	return apperrors.APIError(0, err)
}
