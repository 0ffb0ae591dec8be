package stt

import (
	"context"

	"github.com/callpipe/callpipe/domain/repositories"
)

// UnconfiguredSpeechToText stands in when transcription credentials are
// absent at startup. Startup proceeds; every request fails with the
// original construction error.
type UnconfiguredSpeechToText struct {
	err error
}

var _ repositories.SpeechToText = (*UnconfiguredSpeechToText)(nil)

// Unconfigured wraps a construction error as a failing adapter
func Unconfigured(err error) *UnconfiguredSpeechToText {
	return &UnconfiguredSpeechToText{err: err}
}

// Transcribe always fails with the construction error
func (u *UnconfiguredSpeechToText) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return "", u.err
}
