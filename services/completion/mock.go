package completionsvc

import (
	"context"
	"sync"

	"github.com/wcccd/mihistory/core/consult"
)

// ClientMock replays scripted outcomes; the last one repeats. It counts calls
// so tests can assert the absence of transport invocations.
type ClientMock struct {
	mu            sync.Mutex
	outcomes      []consult.Outcome
	completeCalls int
	selfTestCalls int
}

var _ consult.Client = (*ClientMock)(nil)

func NewClientMock(outcomes ...consult.Outcome) *ClientMock {
	if len(outcomes) == 0 {
		outcomes = []consult.Outcome{{Kind: consult.Success, Text: "mock specialist response"}}
	}
	return &ClientMock{outcomes: outcomes}
}

func (m *ClientMock) Complete(_ context.Context, _, _ string) consult.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completeCalls++
	return m.next()
}

func (m *ClientMock) SelfTest(_ context.Context) consult.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selfTestCalls++
	return m.next()
}

func (m *ClientMock) next() consult.Outcome {
	outcome := m.outcomes[0]
	if len(m.outcomes) > 1 {
		m.outcomes = m.outcomes[1:]
	}
	return outcome
}

func (m *ClientMock) CompleteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completeCalls
}

func (m *ClientMock) SelfTestCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selfTestCalls
}
