package gemini

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"voice-blog/internal/app/api"
	apperrors "voice-blog/internal/app/errors"
)

// Transcriber sends the whole recording inline with the redaction prompt.
// Inline upload keeps the call to a single request; processed recordings
// are compressed far below the inline size limit.
type Transcriber struct {
	apiKey string
	model  string
	logger *zap.SugaredLogger
}

func NewTranscriber(apiKey, model string, logger *zap.SugaredLogger) *Transcriber {
	return &Transcriber{apiKey: apiKey, model: model, logger: logger}
}

func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	audioData, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to read audio file: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(audioPath))
	if mimeType == "" {
		mimeType = "audio/mpeg"
	}

	t.logger.Debugw("sending transcription request",
		"audio", audioPath, "bytes", len(audioData), "mime", mimeType, "model", t.model)

	client, err := newClient(ctx, t.apiKey)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to create gemini client")
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: api.TranscribePrompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: audioData}},
		},
	}}

	result, err := client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("transcription interrupted: %w", ctx.Err())
		}
		return "", classify(err)
	}

	text := extractText(result)
	if text == "" {
		return "", apperrors.EmptyResult("transcript")
	}

	t.logger.Debugw("transcription complete", "characters", len(text))
	return text, nil
}
