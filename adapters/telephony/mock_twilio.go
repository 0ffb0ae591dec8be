package telephony

import (
	"context"

	"github.com/callpipe/callpipe/domain/repositories"
)

// MockOriginator is a placeholder implementation for call origination
type MockOriginator struct {
	// IsConfigured is what Configured reports.
	IsConfigured bool
	// CallSID is returned on success. Err, when set, wins.
	CallSID string
	Err     error

	// Calls records each (to, answerURL) pair received.
	Calls [][2]string
}

var _ repositories.CallOriginator = (*MockOriginator)(nil)

// NewMockOriginator creates a configured mock originator
func NewMockOriginator() *MockOriginator {
	return &MockOriginator{
		IsConfigured: true,
		CallSID:      "CA00000000000000000000000000000000",
	}
}

// Configured implements repositories.CallOriginator
func (m *MockOriginator) Configured() bool {
	return m.IsConfigured
}

// Originate implements repositories.CallOriginator
func (m *MockOriginator) Originate(ctx context.Context, to string, answerURL string) (string, error) {
	m.Calls = append(m.Calls, [2]string{to, answerURL})
	if m.Err != nil {
		return "", m.Err
	}
	return m.CallSID, nil
}
