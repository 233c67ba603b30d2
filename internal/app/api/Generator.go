package api

import "context"

// Generator turns a transcript into a web-ready markdown blog post.
// Implementations are stateless between calls; retries are safe.
type Generator interface {
	Generate(ctx context.Context, transcript string) (string, error)
}
