package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/models"
)

// PendingApproval is the sweeper's view of an approval due for a
// transition.
type PendingApproval struct {
	ID          string
	WorkspaceID string
	WorkflowID  string
	ExecutionID string
}

// ApprovalStore is the persistence surface for approval records.
// Implementations resolve under a per-approval row lock so a human
// response and the sweeper race safely: whoever wins sets the status,
// the loser observes it and gets a conflict.
type ApprovalStore interface {
	// Resolve transitions a pending approval to the decision. Returns a
	// conflict failure when the approval is no longer pending.
	Resolve(ctx context.Context, approvalID string, result *ApprovalResult) error

	// DueAutoApprovals lists pending approvals whose auto_approve_after
	// has elapsed at now.
	DueAutoApprovals(ctx context.Context, now time.Time) ([]PendingApproval, error)

	// DueTimeouts lists pending approvals past expires_at at now.
	DueTimeouts(ctx context.Context, now time.Time) ([]PendingApproval, error)
}

// Sweeper drives time-based approval transitions in the background:
// auto-approval first, then expiry. One sweeper per process is enough;
// the row lock makes concurrent sweepers across pods safe.
type Sweeper struct {
	store    ApprovalStore
	sink     EventSink
	interval time.Duration

	stop chan struct{}
	done chan struct{}
}

// NewSweeper creates a sweeper ticking at interval.
func NewSweeper(store ApprovalStore, sink EventSink, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		sink:     sink,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the sweep loop until Stop or ctx cancellation.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Stop halts the loop and waits for the in-flight sweep.
func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

// Sweep performs one pass. Auto-approvals run before timeouts so an
// approval carrying both markers resolves approved.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := time.Now().UTC()

	due, err := s.store.DueAutoApprovals(ctx, now)
	if err != nil {
		slog.Error("Approval sweep failed listing auto-approvals", "error", err)
	}
	for _, p := range due {
		s.resolve(ctx, p, &ApprovalResult{Decision: DecisionApproved, Approver: "auto"},
			events.EventApprovalGranted)
	}

	expired, err := s.store.DueTimeouts(ctx, now)
	if err != nil {
		slog.Error("Approval sweep failed listing timeouts", "error", err)
	}
	for _, p := range expired {
		s.resolve(ctx, p, &ApprovalResult{Decision: DecisionTimeout},
			events.EventApprovalRejected)
	}
}

func (s *Sweeper) resolve(ctx context.Context, p PendingApproval, result *ApprovalResult, eventType string) {
	err := s.store.Resolve(ctx, p.ID, result)
	if err != nil {
		// Lost the race to a human response; nothing to do.
		if models.IsKind(err, models.ErrKindConflict) {
			return
		}
		slog.Error("Approval sweep transition failed", "approval_id", p.ID, "error", err)
		return
	}
	slog.Info("Approval resolved by sweeper", "approval_id", p.ID, "decision", result.Decision)
	if s.sink != nil {
		envelope := events.NewEnvelope(eventType, p.WorkspaceID, map[string]any{
			"approval_id": p.ID,
			"decision":    string(result.Decision),
			"resolved_by": "sweeper",
		})
		envelope.WorkflowID = p.WorkflowID
		envelope.ExecutionID = p.ExecutionID
		s.sink.Emit(envelope)
	}
}
