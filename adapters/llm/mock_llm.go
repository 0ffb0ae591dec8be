package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/callpipe/callpipe/domain/repositories"
)

// MockDialogue is a placeholder implementation for the dialogue provider
type MockDialogue struct {
	// Response is returned for every call when set; otherwise a canned
	// reply echoing the prompt is produced. Err, when set, wins.
	Response string
	Err      error

	mu sync.Mutex
	// Prompts records every prompt received, in order.
	Prompts []string
}

var _ repositories.Dialogue = (*MockDialogue)(nil)

// NewMockDialogue creates a new mock dialogue provider
func NewMockDialogue() *MockDialogue {
	return &MockDialogue{}
}

// Reply returns the canned response or error
func (m *MockDialogue) Reply(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return fmt.Sprintf("You said: %s", prompt), nil
}
