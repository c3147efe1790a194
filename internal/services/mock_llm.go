package services

import (
	"context"
	"sync"
)

// MockLLM is a scriptable LLMService for testing.
type MockLLM struct {
	GenerateFunc func(ctx context.Context, systemPrompt string, userInput string) (string, error)

	// Track calls for assertions.
	GenerateCalls []GenerateCall

	mu sync.Mutex // protects fields above
}

type GenerateCall struct {
	SystemPrompt string
	UserInput    string
}

var _ LLMService = (*MockLLM)(nil)

// NewMockLLM creates a mock that returns an empty response by default.
func NewMockLLM() *MockLLM {
	return &MockLLM{
		GenerateCalls: make([]GenerateCall, 0),
	}
}

func (m *MockLLM) Generate(ctx context.Context, systemPrompt string, userInput string) (string, error) {
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, GenerateCall{
		SystemPrompt: systemPrompt,
		UserInput:    userInput,
	})
	fn := m.GenerateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, systemPrompt, userInput)
	}
	return "{}", nil
}

// CallCount reports how many times Generate was invoked.
func (m *MockLLM) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.GenerateCalls)
}
