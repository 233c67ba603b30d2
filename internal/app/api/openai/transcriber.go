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

// Transcriber implements speech-to-text via the OpenAI audio API. Whisper
// returns unredacted text, so a second chat call applies the light
// redaction; if that call fails the raw transcript is kept rather than
// failing the step.
type Transcriber struct {
	client     *openai.Client
	audioModel string
	chatModel  string
	logger     *zap.SugaredLogger
}

func NewTranscriber(client *openai.Client, audioModel, chatModel string, logger *zap.SugaredLogger) *Transcriber {
	return &Transcriber{client: client, audioModel: audioModel, chatModel: chatModel, logger: logger}
}

func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	t.logger.Debugw("sending transcription request", "audio", audioPath, "model", t.audioModel)

	req := openai.AudioRequest{
		Model:    t.audioModel,
		FilePath: audioPath,
	}
	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("transcription interrupted: %w", ctx.Err())
		}
		return "", classify(err)
	}

	raw := strings.TrimSpace(resp.Text)
	if raw == "" {
		return "", apperrors.EmptyResult("transcript")
	}

	redacted, err := t.redact(ctx, raw)
	if err != nil {
		t.logger.Warnw("light redaction failed, keeping raw transcript", "error", err)
		return raw, nil
	}
	return redacted, nil
}

func (t *Transcriber) redact(ctx context.Context, raw string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: t.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: api.RedactPrompt + "\n\n" + raw,
			},
		},
	}
	resp, err := t.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.EmptyResult("redacted transcript")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", apperrors.EmptyResult("redacted transcript")
	}
	return text, nil
}
