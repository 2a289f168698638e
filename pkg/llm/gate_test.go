package llm

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingCompleter tracks concurrent in-flight calls.
type countingCompleter struct {
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (c *countingCompleter) Complete(ctx context.Context, _ *Request) (*Response, error) {
	n := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)
	for {
		seen := c.maxSeen.Load()
		if n <= seen || c.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	return &Response{}, nil
}

func TestWorkspaceGateBoundsConcurrency(t *testing.T) {
	inner := &countingCompleter{}
	gated := NewGatedCompleter(inner, NewWorkspaceGate(2))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gated.Complete(context.Background(), &Request{WorkspaceID: "ws-1"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, inner.maxSeen.Load(), int32(2))
}

func TestWorkspaceGateIsPerWorkspace(t *testing.T) {
	gate := NewWorkspaceGate(1)
	ctx := context.Background()

	require.NoError(t, gate.Acquire(ctx, "ws-1"))

	// A different workspace is unaffected by ws-1 holding its only slot.
	acquireCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, gate.Acquire(acquireCtx, "ws-2"))
	gate.Release("ws-2")

	// ws-1 itself is saturated.
	blockedCtx, cancelBlocked := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancelBlocked()
	assert.Error(t, gate.Acquire(blockedCtx, "ws-1"))

	gate.Release("ws-1")
	require.NoError(t, gate.Acquire(ctx, "ws-1"))
	gate.Release("ws-1")
}
