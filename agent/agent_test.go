package agent_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/knnakr/careeragent/agent"
	"github.com/knnakr/careeragent/notify"
)

// mockClient replays a scripted sequence of completions and records every
// request it receives, so tests can assert on the exact conversation the
// assistant built.
type mockClient struct {
	script   []scripted
	requests []agent.CompleteRequest
}

type scripted struct {
	comp *agent.Completion
	err  error
}

func newMockClient(script ...scripted) *mockClient {
	return &mockClient{script: script}
}

func (m *mockClient) Complete(_ context.Context, req agent.CompleteRequest) (*agent.Completion, error) {
	m.requests = append(m.requests, req)
	i := len(m.requests) - 1
	if i >= len(m.script) {
		return nil, fmt.Errorf("unexpected completion call #%d", i+1)
	}
	s := m.script[i]
	if s.err != nil {
		return nil, s.err
	}
	return s.comp, nil
}

func textCompletion(text string) scripted {
	return scripted{comp: &agent.Completion{Text: text, FinishReason: agent.FinishStop}}
}

func toolCompletion(calls ...agent.ToolCall) scripted {
	return scripted{comp: &agent.Completion{ToolCalls: calls, FinishReason: agent.FinishToolCalls}}
}

func errCompletion(err error) scripted {
	return scripted{err: err}
}

// evalJSON builds an evaluator verdict with every criterion set to score.
func evalJSON(score float64, pass bool) string {
	return fmt.Sprintf(`{
		"professional_tone": %[1]g,
		"clarity": %[1]g,
		"completeness": %[1]g,
		"safety": %[1]g,
		"relevance": %[1]g,
		"overall_score": %[1]g,
		"pass": %[2]t,
		"feedback": "scripted feedback",
		"suggested_improvements": "scripted improvements"
	}`, score, pass)
}

// recordingNotifier captures every event. Safe for concurrent use.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recordingNotifier) Notify(_ context.Context, ev notify.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingNotifier) kinds() []notify.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]notify.Kind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// failingNotifier always fails delivery.
type failingNotifier struct{}

func (failingNotifier) Notify(context.Context, notify.Event) error {
	return fmt.Errorf("channel down")
}
