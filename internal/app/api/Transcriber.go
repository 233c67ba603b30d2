package api

import "context"

// Transcriber converts a processed recording into lightly redacted
// transcript text. Implementations are stateless between calls; retries
// are safe.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
