package llm

import (
	"context"
	"sync"
)

// MockProvider is a test double whose Complete returns a fixed content string
// or error. It records every request for later assertion and is safe for
// concurrent use.
type MockProvider struct {
	// Content is returned as the Response content when Err is nil.
	Content string

	// Err, when non-nil, is returned instead of a response.
	Err error

	mu    sync.Mutex
	calls []Request
}

// Compile-time check that MockProvider satisfies the Provider interface.
var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates a mock that always returns content.
func NewMockProvider(content string) *MockProvider {
	return &MockProvider{Content: content}
}

// NewMockProviderErr creates a mock whose Complete always fails with err.
func NewMockProviderErr(err error) *MockProvider {
	return &MockProvider{Err: err}
}

// Complete records the request and returns the canned content or error.
// It respects context cancellation.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	return &Response{
		Content: m.Content,
		Model:   "mock",
		Usage:   Usage{InputTokens: 10, OutputTokens: 5},
	}, nil
}

// Calls returns a copy of all requests received by this mock.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
