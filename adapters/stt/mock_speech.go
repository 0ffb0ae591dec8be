package stt

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/callpipe/callpipe/domain/repositories"
)

// MockSpeechToText is a placeholder implementation for speech recognition
type MockSpeechToText struct {
	logger *zap.Logger

	// Transcript is returned for every call. Err, when set, is
	// returned instead.
	Transcript string
	Err        error

	mu sync.Mutex
	// Calls counts invocations so tests can assert no network was attempted.
	Calls int
}

var _ repositories.SpeechToText = (*MockSpeechToText)(nil)

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) *MockSpeechToText {
	return &MockSpeechToText{
		logger:     logger,
		Transcript: "hello",
	}
}

// Transcribe returns the canned transcript or error
func (m *MockSpeechToText) Transcribe(ctx context.Context, audio []byte) (string, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	m.logger.Info("Mock transcription", zap.Int("audioBytes", len(audio)))
	if m.Err != nil {
		return "", m.Err
	}
	return m.Transcript, nil
}
