package llm

import (
	"context"

	"github.com/tariebi/naijatalk/repository"
)

// MockGenerator is a canned TextGenerator for tests and local development.
// It records every prompt it receives so tests can assert on call order
// and prompt contents.
type MockGenerator struct {
	Reply   string
	Err     error
	Prompts []string
}

// NewMockGenerator creates a mock that always answers with reply
func NewMockGenerator(reply string) *MockGenerator {
	return &MockGenerator{Reply: reply}
}

var _ repository.TextGenerator = (*MockGenerator)(nil)

// Generate implements repository.TextGenerator
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	return "How body? I dey here to help you talk about anything.", nil
}
