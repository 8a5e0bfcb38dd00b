package generation

import (
	"context"
)

// Client defines the interface for obtaining a completion from a
// generative-language backend. This interface serves as a boundary between
// the application core and external AI/LLM services, following the hexagonal
// architecture pattern.
type Client interface {
	// Complete sends a system prompt and a user prompt and returns the raw
	// text of the model's reply.
	//
	// Implementations must not panic. Every failure is reported as an error
	// wrapping one of the sentinel errors in errors.go, so callers can branch
	// with errors.Is.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// DisabledSentinel is the fixed reply of NullClient.
const DisabledSentinel = "AI integration disabled"

// NullClient is the Client used when no generative backend is available.
// It never performs I/O and always returns DisabledSentinel.
type NullClient struct{}

// Complete implements Client.
func (NullClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return DisabledSentinel, nil
}

var _ Client = NullClient{}
