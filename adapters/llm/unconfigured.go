package llm

import (
	"context"

	"github.com/callpipe/callpipe/domain/repositories"
)

// UnconfiguredDialogue stands in when dialogue credentials are absent
// at startup. Startup proceeds; every request fails with the original
// construction error.
type UnconfiguredDialogue struct {
	err error
}

var _ repositories.Dialogue = (*UnconfiguredDialogue)(nil)

// Unconfigured wraps a construction error as a failing adapter
func Unconfigured(err error) *UnconfiguredDialogue {
	return &UnconfiguredDialogue{err: err}
}

// Reply always fails with the construction error
func (u *UnconfiguredDialogue) Reply(ctx context.Context, prompt string) (string, error) {
	return "", u.err
}
