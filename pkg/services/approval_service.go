package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgx-dev/mgx/ent"
	"github.com/mgx-dev/mgx/ent/stepapproval"
	"github.com/mgx-dev/mgx/ent/workflowexecution"
	"github.com/mgx-dev/mgx/pkg/models"
	"github.com/mgx-dev/mgx/pkg/workflow"
)

// approvalPollInterval is how often a suspended approval step re-checks
// its persisted record. The wait is a poll over the row, not a parked
// channel, so it survives process restart.
const approvalPollInterval = time.Second

// ApprovalService manages persistent human-in-the-loop approvals. It
// implements workflow.ApprovalGate for the engine and
// workflow.ApprovalStore for the background sweeper; human responses come
// in through Respond. All three race under the same per-approval row
// lock: whoever resolves first wins, the losers observe a conflict.
type ApprovalService struct {
	client *ent.Client
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(client *ent.Client) *ApprovalService {
	return &ApprovalService{client: client}
}

// --- workflow.ApprovalGate ---

// CreateApproval persists a pending approval for a step execution.
// Revision lineage comes from the engine: a request_changes response
// chains the replacement approval to its parent.
func (s *ApprovalService) CreateApproval(ctx context.Context, exec *workflow.Execution, stepExecutionID string, cfg *workflow.ApprovalConfig, parentApprovalID string, revisionCount int) (string, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	expiresAfter := cfg.ExpiresAfter
	if expiresAfter <= 0 {
		expiresAfter = 24 * time.Hour
	}

	builder := s.client.StepApproval.Create().
		SetID(uuid.New().String()).
		SetExecutionID(exec.ID).
		SetStepExecutionID(stepExecutionID).
		SetStatus(stepapproval.StatusPending).
		SetTitle(fmt.Sprintf("Approval required for execution #%d", exec.Number)).
		SetRequestedAt(now).
		SetExpiresAt(now.Add(expiresAfter)).
		SetRevisionCount(revisionCount)
	if cfg.AutoApproveAfter > 0 {
		builder.SetAutoApproveAfterSeconds(int(cfg.AutoApproveAfter.Seconds()))
	}
	if len(cfg.RequiredApprovers) > 0 {
		builder.SetRequiredApprovers(cfg.RequiredApprovers)
	}
	if parentApprovalID != "" {
		builder.SetParentApprovalID(parentApprovalID)
	}

	row, err := builder.Save(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to create approval: %w", err)
	}
	return row.ID, nil
}

// AwaitApproval blocks until the approval record leaves pending, honoring
// ctx cancellation. On cancellation the pending record is resolved as
// cancelled (best-effort) so no approval is left dangling.
func (s *ApprovalService) AwaitApproval(ctx context.Context, approvalID string) (*workflow.ApprovalResult, error) {
	ticker := time.NewTicker(approvalPollInterval)
	defer ticker.Stop()

	for {
		result, err := s.lookupResolution(ctx, approvalID)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}

		select {
		case <-ctx.Done():
			cancelCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = s.Resolve(cancelCtx, approvalID, &workflow.ApprovalResult{Decision: workflow.DecisionCancelled})
			cancel()
			return &workflow.ApprovalResult{Decision: workflow.DecisionCancelled}, nil
		case <-ticker.C:
		}
	}
}

// lookupResolution returns the resolved result, or nil while pending.
func (s *ApprovalService) lookupResolution(ctx context.Context, approvalID string) (*workflow.ApprovalResult, error) {
	row, err := s.client.StepApproval.Query().
		Where(stepapproval.IDEQ(approvalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "approval %s not found", approvalID)
		}
		return nil, fmt.Errorf("failed to load approval: %w", err)
	}
	if row.Status == stepapproval.StatusPending {
		return nil, nil
	}

	result := &workflow.ApprovalResult{Decision: workflow.Decision(row.Status)}
	if row.Approver != nil {
		result.Approver = *row.Approver
	}
	if row.Feedback != nil {
		result.Feedback = *row.Feedback
	}
	return result, nil
}

// --- workflow.ApprovalStore ---

// Resolve transitions a pending approval to the given decision under a
// row lock. Exactly one resolution wins; later attempts get conflict.
func (s *ApprovalService) Resolve(ctx context.Context, approvalID string, result *workflow.ApprovalResult) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.StepApproval.Query().
		Where(stepapproval.IDEQ(approvalID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "approval %s not found", approvalID)
		}
		return fmt.Errorf("failed to lock approval: %w", err)
	}
	if row.Status != stepapproval.StatusPending {
		return models.NewFailure(models.ErrKindConflict,
			"approval %s already resolved (%s)", approvalID, row.Status)
	}

	update := row.Update().
		SetStatus(stepapproval.Status(result.Decision)).
		SetRespondedAt(time.Now())
	if result.Approver != "" {
		update.SetApprover(result.Approver)
	}
	if result.Feedback != "" {
		update.SetFeedback(result.Feedback)
	}
	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to resolve approval: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit approval resolution: %w", err)
	}
	return nil
}

// DueAutoApprovals lists pending approvals whose auto-approve delay has
// elapsed at now.
func (s *ApprovalService) DueAutoApprovals(ctx context.Context, now time.Time) ([]workflow.PendingApproval, error) {
	rows, err := s.client.StepApproval.Query().
		Where(
			stepapproval.StatusEQ(stepapproval.StatusPending),
			stepapproval.AutoApproveAfterSecondsNotNil(),
		).
		WithExecution().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query auto-approvals: %w", err)
	}

	var due []workflow.PendingApproval
	for _, row := range rows {
		deadline := row.RequestedAt.Add(time.Duration(*row.AutoApproveAfterSeconds) * time.Second)
		if now.Before(deadline) {
			continue
		}
		due = append(due, pendingView(row))
	}
	return due, nil
}

// DueTimeouts lists pending approvals past expires_at at now.
func (s *ApprovalService) DueTimeouts(ctx context.Context, now time.Time) ([]workflow.PendingApproval, error) {
	rows, err := s.client.StepApproval.Query().
		Where(
			stepapproval.StatusEQ(stepapproval.StatusPending),
			stepapproval.ExpiresAtLT(now),
		).
		WithExecution().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired approvals: %w", err)
	}

	due := make([]workflow.PendingApproval, 0, len(rows))
	for _, row := range rows {
		due = append(due, pendingView(row))
	}
	return due, nil
}

func pendingView(row *ent.StepApproval) workflow.PendingApproval {
	view := workflow.PendingApproval{
		ID:          row.ID,
		ExecutionID: row.ExecutionID,
	}
	if exec := row.Edges.Execution; exec != nil {
		view.WorkspaceID = exec.WorkspaceID
		view.WorkflowID = exec.WorkflowID
	}
	return view
}

// --- API operations ---

// GetApproval retrieves one approval.
func (s *ApprovalService) GetApproval(ctx context.Context, approvalID string) (*ent.StepApproval, error) {
	row, err := s.client.StepApproval.Query().
		Where(stepapproval.IDEQ(approvalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "approval %s not found", approvalID)
		}
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}
	return row, nil
}

// ListPending lists pending approvals, optionally scoped to a workspace,
// oldest first so the longest-waiting request surfaces on top.
func (s *ApprovalService) ListPending(ctx context.Context, workspaceID string) ([]*ent.StepApproval, error) {
	query := s.client.StepApproval.Query().
		Where(stepapproval.StatusEQ(stepapproval.StatusPending))
	if workspaceID != "" {
		query = query.Where(stepapproval.HasExecutionWith(
			workflowexecution.WorkspaceIDEQ(workspaceID)))
	}
	rows, err := query.Order(ent.Asc(stepapproval.FieldRequestedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return rows, nil
}

// Respond routes a human decision into a pending approval. Returns
// conflict when the sweeper or another responder got there first.
func (s *ApprovalService) Respond(ctx context.Context, approvalID string, decision workflow.Decision, req models.ApprovalResponseRequest) error {
	switch decision {
	case workflow.DecisionApproved, workflow.DecisionRejected, workflow.DecisionRequestChanges:
	default:
		return models.NewFailure(models.ErrKindInvalidInput, "decision %q not allowed for a human response", decision)
	}
	if decision == workflow.DecisionRequestChanges && req.Feedback == "" {
		return models.NewFailure(models.ErrKindInvalidInput, "request_changes requires feedback")
	}

	row, err := s.GetApproval(ctx, approvalID)
	if err != nil {
		return err
	}
	if len(row.RequiredApprovers) > 0 && !contains(row.RequiredApprovers, req.Approver) {
		return models.NewFailure(models.ErrKindInvalidInput,
			"approver %q is not in the required approver list", req.Approver)
	}

	if err := s.Resolve(ctx, approvalID, &workflow.ApprovalResult{
		Decision: decision,
		Approver: req.Approver,
		Feedback: req.Feedback,
	}); err != nil {
		return err
	}

	if req.ResponseData != nil {
		if err := s.client.StepApproval.UpdateOneID(approvalID).
			SetResponseData(req.ResponseData).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to record response data: %w", err)
		}
	}
	return nil
}

// CancelPendingForExecution resolves every pending approval of an
// execution as cancelled. Already-resolved approvals are left alone.
func (s *ApprovalService) CancelPendingForExecution(ctx context.Context, executionID string) error {
	rows, err := s.client.StepApproval.Query().
		Where(
			stepapproval.ExecutionIDEQ(executionID),
			stepapproval.StatusEQ(stepapproval.StatusPending),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list execution approvals: %w", err)
	}
	for _, row := range rows {
		err := s.Resolve(ctx, row.ID, &workflow.ApprovalResult{Decision: workflow.DecisionCancelled})
		if err != nil && !models.IsKind(err, models.ErrKindConflict) {
			return err
		}
	}
	return nil
}

func contains(list []string, item string) bool {
	for _, existing := range list {
		if existing == item {
			return true
		}
	}
	return false
}
