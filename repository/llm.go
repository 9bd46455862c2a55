package repository

import "context"

// TextGenerator abstracts the text-generation provider.
type TextGenerator interface {
	// Generate sends a fully built prompt and returns the model's reply.
	Generate(ctx context.Context, prompt string) (string, error)
}
