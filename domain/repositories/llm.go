package repositories

import "context"

// Dialogue abstracts any chat/LLM provider
type Dialogue interface {
	// Reply takes a single user utterance and returns the model's reply.
	// No conversation history is kept between calls.
	Reply(ctx context.Context, prompt string) (string, error)
}
