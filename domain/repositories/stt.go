package repositories

import "context"

// SpeechToText abstracts speech recognition services
type SpeechToText interface {
	// Transcribe converts a complete recorded utterance to text.
	// An empty transcript is a valid result, not an error.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
