package llm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

// scriptedCompleter returns canned results in order.
type scriptedCompleter struct {
	mu      sync.Mutex
	results []func() (*Response, error)
	calls   int
}

func (s *scriptedCompleter) Complete(_ context.Context, _ *Request) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	s.calls++
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	return s.results[idx]()
}

func (s *scriptedCompleter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func ok(text string) func() (*Response, error) {
	return func() (*Response, error) { return &Response{Text: text}, nil }
}

func fail(kind models.ErrorKind) func() (*Response, error) {
	return func() (*Response, error) { return nil, models.NewFailure(kind, "boom") }
}

func TestRetryingCompleterSucceedsFirstTry(t *testing.T) {
	inner := &scriptedCompleter{results: []func() (*Response, error){ok("hi")}}
	r := NewRetryingCompleter(inner, 3, time.Millisecond)

	resp, err := r.Complete(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, "hi", resp.Text)
	assert.Equal(t, 1, inner.callCount())
}

func TestRetryingCompleterRetriesTransientFailure(t *testing.T) {
	inner := &scriptedCompleter{results: []func() (*Response, error){
		fail(models.ErrKindLLMFailed),
		fail(models.ErrKindLLMFailed),
		ok("eventually"),
	}}
	r := NewRetryingCompleter(inner, 3, time.Millisecond)

	resp, err := r.Complete(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, "eventually", resp.Text)
	assert.Equal(t, 3, inner.callCount())
}

func TestRetryingCompleterExhaustsAttempts(t *testing.T) {
	inner := &scriptedCompleter{results: []func() (*Response, error){fail(models.ErrKindLLMFailed)}}
	r := NewRetryingCompleter(inner, 3, time.Millisecond)

	_, err := r.Complete(context.Background(), &Request{})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.ErrKindLLMFailed))
	assert.Equal(t, 3, inner.callCount())
}

func TestRetryingCompleterDoesNotRetryNonTransient(t *testing.T) {
	tests := []struct {
		name string
		kind models.ErrorKind
	}{
		{"cancelled", models.ErrKindCancelled},
		{"deadline", models.ErrKindDeadlineExceeded},
		{"invalid input", models.ErrKindInvalidInput},
		{"budget exhausted", models.ErrKindBudgetExhausted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &scriptedCompleter{results: []func() (*Response, error){fail(tt.kind)}}
			r := NewRetryingCompleter(inner, 3, time.Millisecond)

			_, err := r.Complete(context.Background(), &Request{})
			require.Error(t, err)
			assert.True(t, models.IsKind(err, tt.kind))
			assert.Equal(t, 1, inner.callCount())
		})
	}
}

func TestRetryingCompleterStopsOnContextCancel(t *testing.T) {
	inner := &scriptedCompleter{results: []func() (*Response, error){fail(models.ErrKindLLMFailed)}}
	r := NewRetryingCompleter(inner, 5, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := r.Complete(ctx, &Request{})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.ErrKindCancelled))
	assert.Equal(t, 1, inner.callCount())
}
