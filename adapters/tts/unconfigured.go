package tts

import (
	"context"

	"github.com/callpipe/callpipe/domain/repositories"
)

// UnconfiguredTextToSpeech stands in when synthesis credentials are
// absent at startup. Startup proceeds; every request fails with the
// original construction error.
type UnconfiguredTextToSpeech struct {
	err error
}

var _ repositories.TextToSpeech = (*UnconfiguredTextToSpeech)(nil)

// Unconfigured wraps a construction error as a failing adapter
func Unconfigured(err error) *UnconfiguredTextToSpeech {
	return &UnconfiguredTextToSpeech{err: err}
}

// Synthesize always fails with the construction error
func (u *UnconfiguredTextToSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return nil, u.err
}
