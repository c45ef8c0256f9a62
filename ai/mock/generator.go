package mock

import (
	"context"

	"github.com/poiesic/docqa/ai"
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, returns a fixed deterministic answer.
	GenerateFunc func(ctx context.Context, prompt string, opts ai.GenerationOptions) (string, error)

	callCount   int
	lastPrompt  string
	lastOptions ai.GenerationOptions
}

// NewMockGenerator creates a mock generator with default deterministic behavior.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate records the call and returns either the injected behavior's
// result or a fixed placeholder answer.
func (m *MockGenerator) Generate(ctx context.Context, prompt string, opts ai.GenerationOptions) (string, error) {
	m.callCount++
	m.lastPrompt = prompt
	m.lastOptions = opts

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, opts)
	}

	return "mock generated answer", nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// LastPrompt returns the prompt passed to the most recent Generate call.
func (m *MockGenerator) LastPrompt() string {
	return m.lastPrompt
}

// LastOptions returns the options passed to the most recent Generate call.
func (m *MockGenerator) LastOptions() ai.GenerationOptions {
	return m.lastOptions
}

// Reset clears recorded calls and any injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.lastPrompt = ""
	m.lastOptions = ai.GenerationOptions{}
	m.GenerateFunc = nil
}
