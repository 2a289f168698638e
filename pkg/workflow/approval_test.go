package workflow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/models"
)

type fakeApprovalStore struct {
	mu           sync.Mutex
	autoDue      []PendingApproval
	timeoutDue   []PendingApproval
	resolved     map[string]Decision
	conflictWith map[string]bool
}

func newFakeApprovalStore() *fakeApprovalStore {
	return &fakeApprovalStore{
		resolved:     make(map[string]Decision),
		conflictWith: make(map[string]bool),
	}
}

func (s *fakeApprovalStore) Resolve(ctx context.Context, approvalID string, result *ApprovalResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conflictWith[approvalID] {
		return models.NewFailure(models.ErrKindConflict, "approval %s already resolved", approvalID)
	}
	if _, ok := s.resolved[approvalID]; ok {
		return models.NewFailure(models.ErrKindConflict, "approval %s already resolved", approvalID)
	}
	s.resolved[approvalID] = result.Decision
	return nil
}

func (s *fakeApprovalStore) DueAutoApprovals(ctx context.Context, now time.Time) ([]PendingApproval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoDue, nil
}

func (s *fakeApprovalStore) DueTimeouts(ctx context.Context, now time.Time) ([]PendingApproval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeoutDue, nil
}

func TestSweepAutoApprovesBeforeExpiring(t *testing.T) {
	store := newFakeApprovalStore()
	// The same approval shows up in both lists; auto-approval wins
	// because it runs first and the expiry pass then hits a conflict.
	pending := PendingApproval{ID: "app-1", WorkspaceID: "ws-1", WorkflowID: "wf-1", ExecutionID: "exec-1"}
	store.autoDue = []PendingApproval{pending}
	store.timeoutDue = []PendingApproval{pending}

	sink := &nullSink{}
	s := NewSweeper(store, sink, time.Second)
	s.Sweep(context.Background())

	assert.Equal(t, DecisionApproved, store.resolved["app-1"])
	assert.True(t, sink.has(events.EventApprovalGranted))
}

func TestSweepExpiresOverdueApprovals(t *testing.T) {
	store := newFakeApprovalStore()
	store.timeoutDue = []PendingApproval{
		{ID: "app-1", WorkspaceID: "ws-1"},
		{ID: "app-2", WorkspaceID: "ws-1"},
	}

	sink := &nullSink{}
	s := NewSweeper(store, sink, time.Second)
	s.Sweep(context.Background())

	assert.Equal(t, DecisionTimeout, store.resolved["app-1"])
	assert.Equal(t, DecisionTimeout, store.resolved["app-2"])
	assert.True(t, sink.has(events.EventApprovalRejected))
}

func TestSweepIgnoresLostRaces(t *testing.T) {
	store := newFakeApprovalStore()
	store.timeoutDue = []PendingApproval{
		{ID: "won-by-human", WorkspaceID: "ws-1"},
		{ID: "still-pending", WorkspaceID: "ws-1"},
	}
	store.conflictWith["won-by-human"] = true

	sink := &nullSink{}
	s := NewSweeper(store, sink, time.Second)
	s.Sweep(context.Background())

	_, touched := store.resolved["won-by-human"]
	assert.False(t, touched)
	assert.Equal(t, DecisionTimeout, store.resolved["still-pending"])

	// No event for the lost race.
	sink.mu.Lock()
	count := len(sink.types)
	sink.mu.Unlock()
	assert.Equal(t, 1, count)
}

func TestSweeperLoopRunsAndStops(t *testing.T) {
	store := newFakeApprovalStore()
	store.autoDue = []PendingApproval{{ID: "app-1", WorkspaceID: "ws-1"}}

	s := NewSweeper(store, &nullSink{}, 5*time.Millisecond)
	s.Start(context.Background())

	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.resolved["app-1"] == DecisionApproved
	}, 2*time.Second, 5*time.Millisecond)

	s.Stop()
}
