package repositories

import "context"

// TextToSpeech abstracts speech synthesis services
type TextToSpeech interface {
	// Synthesize converts reply text to playable audio bytes.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
