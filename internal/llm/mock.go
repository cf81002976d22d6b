package llm

import (
	"context"
	"fmt"
	"sync"
)

// Mock is a deterministic Completer for tests. It returns canned
// responses in FIFO order and records every prompt it receives.
type Mock struct {
	mu        sync.Mutex
	responses []string
	Calls     []string
	Err       error
}

func NewMock(responses ...string) *Mock {
	return &Mock{responses: responses}
}

func (m *Mock) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, prompt)

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.responses) == 0 {
		return "", fmt.Errorf("mock completer: no responses left")
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, nil
}

// CallCount returns how many prompts have been issued.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
