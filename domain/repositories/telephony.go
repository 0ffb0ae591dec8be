package repositories

import "context"

// CallOriginator abstracts outbound call placement with a telephony provider
type CallOriginator interface {
	// Configured reports whether provider credentials are present.
	// Callers must check this before Originate; an unconfigured
	// originator fails on every call.
	Configured() bool
	// Originate places an outbound call to the given number, directing
	// the answered call to answerURL for its first instruction. Returns
	// the provider-assigned call identifier.
	Originate(ctx context.Context, to string, answerURL string) (string, error)
}
