package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted replies in order and records requests.
// When a request carries a schema the scripted content is validated
// against it, like the real providers do.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockResponse
	calls   []Request
}

// NewMockProvider creates a mock primed with replies.
func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(m.replies) == 0 {
		return nil, &Error{Kind: KindUnavailable, Provider: ProviderMock}
	}

	next := m.replies[0]
	m.replies = m.replies[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	if err := checkOutput(ProviderMock, req.Schema, next.Content, StopEnd); err != nil {
		return nil, err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: ProviderMock, StopReason: StopEnd}, nil
}

func (m *MockProvider) ModelID() string { return ProviderMock }

// Push appends replies to the script.
func (m *MockProvider) Push(replies ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, replies...)
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of Generate calls.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
