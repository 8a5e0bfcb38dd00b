package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/taskflow-api/internal/generation"
)

// MockClient implements generation.Client for testing
type MockClient struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Default response values
	Text string
	Err  error

	// mu protects the call tracking state for concurrent test cases
	mu sync.Mutex

	systemPrompts []string
	userPrompts   []string
}

var _ generation.Client = (*MockClient)(nil)

// Complete implements the generation.Client interface
func (m *MockClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	m.systemPrompts = append(m.systemPrompts, systemPrompt)
	m.userPrompts = append(m.userPrompts, userPrompt)
	m.mu.Unlock()

	// Use custom function if provided
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, systemPrompt, userPrompt)
	}

	return m.Text, m.Err
}

// CallCount returns how many times Complete was called
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.userPrompts)
}

// LastPrompts returns the prompts of the most recent call, or empty strings
// when Complete was never called
func (m *MockClient) LastPrompts() (systemPrompt, userPrompt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.userPrompts) == 0 {
		return "", ""
	}
	last := len(m.userPrompts) - 1
	return m.systemPrompts[last], m.userPrompts[last]
}

// NewMockClientWithText creates a MockClient that replies with text
func NewMockClientWithText(text string) *MockClient {
	return &MockClient{Text: text}
}

// NewMockClientWithError creates a MockClient that fails with err
func NewMockClientWithError(err error) *MockClient {
	return &MockClient{Err: err}
}
