package llm

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// WorkspaceGate bounds in-flight completions per workspace so one noisy
// workspace cannot starve the sidecar for everyone else.
type WorkspaceGate struct {
	mu    sync.Mutex
	limit int64
	gates map[string]*semaphore.Weighted
}

// NewWorkspaceGate creates a gate allowing limit concurrent completions
// per workspace.
func NewWorkspaceGate(limit int) *WorkspaceGate {
	if limit < 1 {
		limit = 1
	}
	return &WorkspaceGate{
		limit: int64(limit),
		gates: make(map[string]*semaphore.Weighted),
	}
}

func (g *WorkspaceGate) gate(workspaceID string) *semaphore.Weighted {
	g.mu.Lock()
	defer g.mu.Unlock()
	sem, ok := g.gates[workspaceID]
	if !ok {
		sem = semaphore.NewWeighted(g.limit)
		g.gates[workspaceID] = sem
	}
	return sem
}

// Acquire blocks until a slot is free for the workspace or ctx ends.
func (g *WorkspaceGate) Acquire(ctx context.Context, workspaceID string) error {
	return g.gate(workspaceID).Acquire(ctx, 1)
}

// Release frees a slot for the workspace.
func (g *WorkspaceGate) Release(workspaceID string) {
	g.gate(workspaceID).Release(1)
}

// GatedCompleter composes the gate in front of a Completer.
type GatedCompleter struct {
	inner Completer
	gate  *WorkspaceGate
}

// NewGatedCompleter wraps inner with per-workspace admission.
func NewGatedCompleter(inner Completer, gate *WorkspaceGate) *GatedCompleter {
	return &GatedCompleter{inner: inner, gate: gate}
}

// Complete waits for a workspace slot, then delegates.
func (c *GatedCompleter) Complete(ctx context.Context, req *Request) (*Response, error) {
	if err := c.gate.Acquire(ctx, req.WorkspaceID); err != nil {
		return nil, err
	}
	defer c.gate.Release(req.WorkspaceID)
	return c.inner.Complete(ctx, req)
}
