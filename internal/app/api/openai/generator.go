package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"voice-blog/internal/app/api"
	apperrors "voice-blog/internal/app/errors"
)

// Generator writes the blog post with a chat completion.
type Generator struct {
	client *openai.Client
	model  string
	logger *zap.SugaredLogger
}

func NewGenerator(client *openai.Client, model string, logger *zap.SugaredLogger) *Generator {
	return &Generator{client: client, model: model, logger: logger}
}

func (g *Generator) Generate(ctx context.Context, transcript string) (string, error) {
	g.logger.Debugw("sending blog generation request",
		"transcript_characters", len(transcript), "model", g.model)

	request := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: api.BlogPrompt + transcript,
			},
		},
		Temperature: api.BlogTemperature,
		TopP:        api.BlogTopP,
		MaxTokens:   api.BlogMaxOutputTokens,
	}

	resp, err := g.client.CreateChatCompletion(ctx, request)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("blog generation interrupted: %w", ctx.Err())
		}
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.EmptyResult("blog post")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", apperrors.EmptyResult("blog post")
	}

	g.logger.Debugw("blog post generated", "characters", len(text))
	return text, nil
}
