package tts

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/callpipe/callpipe/domain/repositories"
)

// MockTextToSpeech is a placeholder implementation for speech synthesis
type MockTextToSpeech struct {
	logger *zap.Logger

	// Audio is returned for every call. Err, when set, wins.
	Audio []byte
	Err   error

	mu sync.Mutex
	// Texts records every synthesized text, in order.
	Texts []string
}

var _ repositories.TextToSpeech = (*MockTextToSpeech)(nil)

// NewMockTextToSpeech creates a new mock text-to-speech service
func NewMockTextToSpeech(logger *zap.Logger) *MockTextToSpeech {
	return &MockTextToSpeech{
		logger: logger,
		Audio:  []byte{0x01, 0x02},
	}
}

// Synthesize returns the canned audio or error
func (m *MockTextToSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	m.mu.Lock()
	m.Texts = append(m.Texts, text)
	m.mu.Unlock()
	m.logger.Info("Mock synthesis", zap.Int("textLength", len(text)))
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Audio, nil
}
