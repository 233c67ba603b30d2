package gemini

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"voice-blog/internal/app/api"
	apperrors "voice-blog/internal/app/errors"
)

// Generator writes the blog post from a transcript.
type Generator struct {
	apiKey string
	model  string
	logger *zap.SugaredLogger
}

func NewGenerator(apiKey, model string, logger *zap.SugaredLogger) *Generator {
	return &Generator{apiKey: apiKey, model: model, logger: logger}
}

func (g *Generator) Generate(ctx context.Context, transcript string) (string, error) {
	client, err := newClient(ctx, g.apiKey)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to create gemini client")
	}

	g.logger.Debugw("sending blog generation request",
		"transcript_characters", len(transcript), "model", g.model)

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](api.BlogTemperature),
		TopP:            genai.Ptr[float32](api.BlogTopP),
		TopK:            genai.Ptr[float32](api.BlogTopK),
		MaxOutputTokens: api.BlogMaxOutputTokens,
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(api.BlogPrompt+transcript), config)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("blog generation interrupted: %w", ctx.Err())
		}
		return "", classify(err)
	}

	text := extractText(result)
	if text == "" {
		return "", apperrors.EmptyResult("blog post")
	}

	g.logger.Debugw("blog post generated", "characters", len(text))
	return text, nil
}
