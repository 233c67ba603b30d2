package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"

	apperrors "voice-blog/internal/app/errors"
)

func newClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// classify maps SDK failures onto the pipeline's error taxonomy. The SDK
// reports quota exhaustion in the message text rather than a typed error.
func classify(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED") {
		return apperrors.APIError(429, err)
	}
	return apperrors.APIError(0, err)
}

// extractText concatenates the text parts of the first candidate.
func extractText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return strings.TrimSpace(text)
}
