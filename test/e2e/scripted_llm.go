package e2e

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mgx-dev/mgx/pkg/llm"
	"github.com/mgx-dev/mgx/pkg/models"
)

// Routes distinguish the crew's role calls. A request is routed by the
// marker phrases in its system prompt; anything else (workflow agent
// steps with caller-supplied prompts) lands on RouteAgent.
const (
	RouteAnalyze    = "analyze"
	RoutePlan       = "plan"
	RouteImplement  = "implement"
	RouteWriteTests = "write_tests"
	RouteReview     = "review"
	RouteAgent      = "agent"
)

// scriptedResponse is one queued completion for a route.
type scriptedResponse struct {
	text  string
	err   error
	delay time.Duration
}

// ScriptedCompleter implements llm.Completer with per-route response
// queues. A route with an empty queue falls back to its happy-path
// default, so tests only script the calls they care about.
type ScriptedCompleter struct {
	mu       sync.Mutex
	queues   map[string][]scriptedResponse
	defaults map[string]string
	calls    map[string]int
	requests []*llm.Request
}

// NewScriptedCompleter creates a completer whose defaults drive a run to
// completion in a single round.
func NewScriptedCompleter() *ScriptedCompleter {
	return &ScriptedCompleter{
		queues: make(map[string][]scriptedResponse),
		calls:  make(map[string]int),
		defaults: map[string]string{
			RouteAnalyze: `{"complexity": "S", "files": ["app/main.py"], "test_strategy": "Unit tests for the HTTP handlers."}`,
			RoutePlan: `{"steps": [` +
				`{"role": "engineer", "description": "Implement the endpoint"},` +
				`{"role": "tester", "description": "Write handler tests"}` +
				`], "max_rounds": 2}`,
			RouteImplement:  "FILE: app/main.py\nprint('hello')\n",
			RouteWriteTests: "FILE: tests/test_main.py\nassert True\n",
			RouteReview:     `{"verdict": "approved", "notes": ""}`,
			RouteAgent:      "Step acknowledged.",
		},
	}
}

// Queue appends a scripted response text for a route.
func (s *ScriptedCompleter) Queue(route, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[route] = append(s.queues[route], scriptedResponse{text: text})
}

// QueueError appends a scripted failure for a route.
func (s *ScriptedCompleter) QueueError(route string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[route] = append(s.queues[route], scriptedResponse{err: err})
}

// QueueDelayed appends a response delivered only after delay, honoring
// context cancellation. Used by cancellation and timeout scenarios.
func (s *ScriptedCompleter) QueueDelayed(route, text string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[route] = append(s.queues[route], scriptedResponse{text: text, delay: delay})
}

// CallCount returns how many completions a route has served.
func (s *ScriptedCompleter) CallCount(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// Requests returns a snapshot of every request seen, in order.
func (s *ScriptedCompleter) Requests() []*llm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*llm.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Complete implements llm.Completer.
func (s *ScriptedCompleter) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	route := routeFor(req)

	s.mu.Lock()
	s.calls[route]++
	s.requests = append(s.requests, req)
	next := scriptedResponse{text: s.defaults[route]}
	if q := s.queues[route]; len(q) > 0 {
		next = q[0]
		s.queues[route] = q[1:]
	}
	s.mu.Unlock()

	if next.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, models.WrapFailure(models.KindOf(ctx.Err()), ctx.Err(),
				"completion interrupted")
		case <-time.After(next.delay):
		}
	}
	if next.err != nil {
		return nil, next.err
	}
	return &llm.Response{
		Text:         next.text,
		InputTokens:  120,
		OutputTokens: 80,
		TotalTokens:  200,
		CostEstimate: 0.001,
		FinishReason: "stop",
	}, nil
}

// routeFor classifies a request by the crew's role prompt markers.
func routeFor(req *llm.Request) string {
	sp := req.SystemPrompt
	switch {
	case strings.Contains(sp, "Analyze the task"):
		return RouteAnalyze
	case strings.Contains(sp, "implementation plan"):
		return RoutePlan
	case strings.Contains(sp, "engineer agent"):
		return RouteImplement
	case strings.Contains(sp, "tester agent"):
		return RouteWriteTests
	case strings.Contains(sp, "reviewer agent"):
		return RouteReview
	default:
		return RouteAgent
	}
}

var _ llm.Completer = (*ScriptedCompleter)(nil)
