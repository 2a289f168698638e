package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mgx-dev/mgx/ent"
	"github.com/mgx-dev/mgx/ent/sandboxexecution"
	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/masking"
	"github.com/mgx-dev/mgx/pkg/models"
	"github.com/mgx-dev/mgx/pkg/sandbox"
)

// SandboxService wraps the container runner with the persistence and
// observability the API exposes: every execution gets a row, output is
// scrubbed before it is stored or streamed, lifecycle events go to the
// stream, and in-flight executions can be stopped.
type SandboxService struct {
	client  *ent.Client
	inner   sandbox.Runner
	masker  *masking.Masker
	emitter *events.Emitter
	logger  *slog.Logger

	mu     sync.Mutex
	active map[string]*activeExecution
}

type activeExecution struct {
	cancel      context.CancelFunc
	workspaceID string
	runID       string
}

// NewSandboxService creates a SandboxService around a runner. emitter may
// be nil in tests.
func NewSandboxService(client *ent.Client, inner sandbox.Runner, masker *masking.Masker, emitter *events.Emitter, logger *slog.Logger) *SandboxService {
	return &SandboxService{
		client:  client,
		inner:   inner,
		masker:  masker,
		emitter: emitter,
		logger:  logger.With("component", "sandbox_service"),
		active:  make(map[string]*activeExecution),
	}
}

// Run implements sandbox.Runner. The incoming spec's ExecutionID is the
// owning run; the service allocates its own execution ID so one run's
// rounds stay distinguishable.
func (s *SandboxService) Run(ctx context.Context, spec *sandbox.Spec) (*sandbox.Result, error) {
	executionID := uuid.New().String()
	runID := spec.ExecutionID

	command := strings.Join(spec.Command, " ")
	if command == "" {
		command = "(auto-detected)"
	}

	createCtx, cancelCreate := context.WithTimeout(context.Background(), 10*time.Second)
	_, err := s.client.SandboxExecution.Create().
		SetID(executionID).
		SetRunID(runID).
		SetWorkspaceID(spec.WorkspaceID).
		SetProjectID(spec.ProjectID).
		SetLanguage(spec.Language).
		SetCommand(command).
		SetCodeLocation(spec.CodeDir).
		SetStatus(sandboxexecution.StatusRunning).
		SetStartedAt(time.Now()).
		SetNillableTimeoutSeconds(spec.TimeoutSeconds).
		SetMemoryLimitMB(spec.MemoryLimitMB).
		Save(createCtx)
	cancelCreate()
	if err != nil {
		return nil, fmt.Errorf("failed to record sandbox execution: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.active[executionID] = &activeExecution{
		cancel:      cancel,
		workspaceID: spec.WorkspaceID,
		runID:       runID,
	}
	s.mu.Unlock()
	defer func() {
		cancel()
		s.mu.Lock()
		delete(s.active, executionID)
		s.mu.Unlock()
	}()

	s.emit(events.EventSandboxStarted, spec.WorkspaceID, runID, map[string]any{
		"execution_id": executionID,
		"language":     spec.Language,
		"command":      command,
	})

	// The runner keys its log stream by the spec's execution ID; hand it
	// ours so chunks attribute to this row.
	runnerSpec := *spec
	runnerSpec.ExecutionID = executionID

	result, runErr := s.inner.Run(runCtx, &runnerSpec)
	if runErr != nil {
		s.finishRow(executionID, &sandbox.Result{
			Status:       sandbox.StatusFailed,
			ErrorType:    sandbox.ErrorTypeInfra,
			ErrorMessage: runErr.Error(),
		})
		s.emit(events.EventSandboxFailed, spec.WorkspaceID, runID, map[string]any{
			"execution_id": executionID,
			"error":        runErr.Error(),
		})
		return nil, runErr
	}

	result.Stdout = s.masker.Mask(result.Stdout)
	result.Stderr = s.masker.Mask(result.Stderr)
	s.finishRow(executionID, result)

	eventType := events.EventSandboxCompleted
	if result.Status != sandbox.StatusCompleted {
		eventType = events.EventSandboxFailed
	}
	s.emit(eventType, spec.WorkspaceID, runID, map[string]any{
		"execution_id": executionID,
		"status":       result.Status,
		"exit_code":    result.ExitCode,
		"duration_ms":  result.Duration.Milliseconds(),
	})
	return result, nil
}

// StreamLogs is the sandbox.LogSink: chunks are scrubbed and pushed as
// transient events, never persisted.
func (s *SandboxService) StreamLogs(executionID string, chunk []byte) {
	s.mu.Lock()
	exec := s.active[executionID]
	s.mu.Unlock()
	if exec == nil || s.emitter == nil {
		return
	}

	envelope := events.NewEnvelope(events.EventSandboxLogs, exec.workspaceID, map[string]any{
		"execution_id": executionID,
		"chunk":        string(s.masker.MaskBytes(chunk)),
	})
	envelope.RunID = exec.runID

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.emitter.EmitTransient(ctx, envelope)
}

// StopExecution cancels an in-flight execution. The runner records the
// kill; this only severs the context.
func (s *SandboxService) StopExecution(ctx context.Context, executionID string) error {
	s.mu.Lock()
	exec := s.active[executionID]
	s.mu.Unlock()
	if exec == nil {
		return models.NewFailure(models.ErrKindNotFound,
			"sandbox execution %s is not running", executionID)
	}
	s.logger.Info("Stopping sandbox execution", "execution_id", executionID)
	exec.cancel()
	return nil
}

// GetExecution retrieves one execution record.
func (s *SandboxService) GetExecution(ctx context.Context, executionID string) (*ent.SandboxExecution, error) {
	row, err := s.client.SandboxExecution.Query().
		Where(sandboxexecution.IDEQ(executionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound,
				"sandbox execution %s not found", executionID)
		}
		return nil, fmt.Errorf("failed to get sandbox execution: %w", err)
	}
	return row, nil
}

// ListExecutions lists a workspace's executions, newest first, optionally
// narrowed to one run.
func (s *SandboxService) ListExecutions(ctx context.Context, workspaceID, runID string, limit int) ([]*ent.SandboxExecution, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := s.client.SandboxExecution.Query().
		Where(sandboxexecution.WorkspaceIDEQ(workspaceID))
	if runID != "" {
		query = query.Where(sandboxexecution.RunIDEQ(runID))
	}
	rows, err := query.
		Order(ent.Desc(sandboxexecution.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sandbox executions: %w", err)
	}
	return rows, nil
}

// DeleteExecutionsBefore prunes finished execution records (and their
// captured output) older than the cutoff. In-flight rows are untouched.
func (s *SandboxService) DeleteExecutionsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.SandboxExecution.Delete().
		Where(
			sandboxexecution.StatusNotIn(
				sandboxexecution.StatusPending,
				sandboxexecution.StatusRunning,
			),
			sandboxexecution.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sandbox executions: %w", err)
	}
	return n, nil
}

// finishRow records the terminal result. Write failures are logged, not
// surfaced; the run result already carries the outcome.
func (s *SandboxService) finishRow(executionID string, result *sandbox.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.SandboxExecution.UpdateOneID(executionID).
		SetStatus(sandboxexecution.Status(result.Status)).
		SetStdout(result.Stdout).
		SetStderr(result.Stderr).
		SetExitCode(result.ExitCode).
		SetCompletedAt(time.Now()).
		SetDurationMs(int(result.Duration.Milliseconds()))
	if result.ContainerID != "" {
		update.SetContainerID(result.ContainerID)
	}
	if result.PeakMemoryMB > 0 {
		update.SetPeakMemoryMB(result.PeakMemoryMB)
	}
	if result.ErrorType != "" {
		update.SetErrorType(result.ErrorType)
	}
	if result.ErrorMessage != "" {
		update.SetErrorMessage(result.ErrorMessage)
	}
	if err := update.Exec(ctx); err != nil {
		s.logger.Error("Failed to finalize sandbox execution row",
			"execution_id", executionID, "error", err)
	}
}

func (s *SandboxService) emit(eventType, workspaceID, runID string, data map[string]any) {
	if s.emitter == nil {
		return
	}
	envelope := events.NewEnvelope(eventType, workspaceID, data)
	envelope.RunID = runID
	s.emitter.Emit(envelope)
}

var _ sandbox.Runner = (*SandboxService)(nil)
