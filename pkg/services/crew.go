package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mgx-dev/mgx/pkg/agent"
	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/executor"
	"github.com/mgx-dev/mgx/pkg/llm"
	"github.com/mgx-dev/mgx/pkg/models"
)

// Role prompts for the run crew. The FILE manifest format is what
// pkg/stack parses; the engineer and tester contracts must stay in sync
// with it.
const (
	plannerAnalyzePrompt = `You are the planning agent of a software delivery crew.
Analyze the task and respond with ONLY a JSON object:
{"complexity": "XS|S|M|L|XL", "files": ["paths likely touched"], "test_strategy": "one paragraph"}`

	plannerPlanPrompt = `You are the planning agent of a software delivery crew.
Produce an implementation plan for the task and respond with ONLY a JSON object:
{"steps": [{"role": "engineer|tester", "description": "what the step does"}], "max_rounds": N}`

	engineerPrompt = `You are the engineer agent of a software delivery crew.
Implement the plan for this round. Respond with ONLY a FILE manifest:

FILE: path/to/file.ext
<complete file contents>
FILE: next/file.ext
<complete file contents>

Every file must be complete; no diffs, no prose outside the manifest.`

	testerPrompt = `You are the tester agent of a software delivery crew.
Write tests for the round's implementation. Respond with ONLY a FILE manifest
of test files, complete contents, no prose outside the manifest.`

	reviewerPrompt = `You are the reviewer agent of a software delivery crew.
Review the round's implementation and test results. Respond with ONLY a JSON object:
{"verdict": "approved|changes_required", "notes": "what must change, empty when approved"}`
)

// CrewService builds run-scoped crews. Each role call selects an instance
// through the assignment policy, charges the run's budget, and reports
// activity on the event stream.
type CrewService struct {
	agents    *AgentService
	completer llm.Completer
	sink      EventSink
	logger    *slog.Logger
}

// NewCrewService creates a CrewService. completer is the fully layered
// chain (gate, retry, transport).
func NewCrewService(agents *AgentService, completer llm.Completer, sink EventSink, logger *slog.Logger) *CrewService {
	return &CrewService{
		agents:    agents,
		completer: completer,
		sink:      sink,
		logger:    logger.With("component", "crew"),
	}
}

// ForRun implements executor.CrewFactory.
func (s *CrewService) ForRun(task *executor.TaskInfo, run *executor.Run, budget *llm.BudgetTracker) executor.Crew {
	return &runCrew{
		svc:    s,
		task:   task,
		run:    run,
		budget: budget,
		failed: make(map[agent.Role]map[string]bool),
	}
}

// runCrew is one run's crew. Instances that fail a call are excluded from
// reassignment for the rest of the run, per role.
type runCrew struct {
	svc    *CrewService
	task   *executor.TaskInfo
	run    *executor.Run
	budget *llm.BudgetTracker
	failed map[agent.Role]map[string]bool
}

// Analyze implements executor.Crew.
func (c *runCrew) Analyze(ctx context.Context, task *executor.TaskInfo, input map[string]any) (*executor.Analysis, error) {
	payload := fmt.Sprintf("Task: %s\n\n%s", task.Name, task.Description)
	if len(input) > 0 {
		if extra, err := json.Marshal(input); err == nil {
			payload += "\n\nRun input:\n" + string(extra)
		}
	}
	if task.Config != nil && task.Config.TargetStack != "" {
		payload += "\n\nTarget stack: " + task.Config.TargetStack
	}

	text, err := c.complete(ctx, agent.RolePlanner, "analyze", plannerAnalyzePrompt, payload)
	if err != nil {
		return nil, err
	}
	analysis := &executor.Analysis{}
	if err := decodeAgentJSON(text, analysis); err != nil {
		return nil, err
	}
	if !analysis.Complexity.Valid() {
		return nil, models.NewFailure(models.ErrKindLLMFailed,
			"planner returned unknown complexity %q", analysis.Complexity)
	}
	return analysis, nil
}

// Plan implements executor.Crew.
func (c *runCrew) Plan(ctx context.Context, task *executor.TaskInfo, analysis *executor.Analysis) (*executor.Plan, error) {
	payload := fmt.Sprintf("Task: %s\n\n%s\n\nComplexity: %s\nTest strategy: %s",
		task.Name, task.Description, analysis.Complexity, analysis.TestStrategy)
	if len(analysis.Files) > 0 {
		payload += "\nFiles in scope: " + strings.Join(analysis.Files, ", ")
	}

	text, err := c.complete(ctx, agent.RolePlanner, "plan", plannerPlanPrompt, payload)
	if err != nil {
		return nil, err
	}
	plan := &executor.Plan{}
	if err := decodeAgentJSON(text, plan); err != nil {
		return nil, err
	}
	if len(plan.Steps) == 0 {
		return nil, models.NewFailure(models.ErrKindLLMFailed, "planner returned an empty plan")
	}
	for _, step := range plan.Steps {
		if !step.Role.Valid() {
			return nil, models.NewFailure(models.ErrKindLLMFailed,
				"plan step names unknown role %q", step.Role)
		}
	}
	return plan, nil
}

// Implement implements executor.Crew.
func (c *runCrew) Implement(ctx context.Context, task *executor.TaskInfo, round *executor.RoundInput) (string, error) {
	return c.complete(ctx, agent.RoleEngineer, "implement", engineerPrompt, roundPayload(task, round, "Implement the plan."))
}

// WriteTests implements executor.Crew.
func (c *runCrew) WriteTests(ctx context.Context, task *executor.TaskInfo, round *executor.RoundInput) (string, error) {
	return c.complete(ctx, agent.RoleTester, "write_tests", testerPrompt, roundPayload(task, round, "Write the round's tests."))
}

// Review implements executor.Crew.
func (c *runCrew) Review(ctx context.Context, task *executor.TaskInfo, review *executor.RoundReview) (*models.ReviewOutcome, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Task: %s\nRound: %d\n\nImplementation manifest:\n%s\n\nTests:\n%s\n",
		task.Name, review.Round, review.Manifest, review.Tests)
	if review.SandboxResult != nil {
		fmt.Fprintf(&sb, "\nSandbox exit code: %d\nSandbox stdout:\n%s\nSandbox stderr:\n%s\n",
			review.SandboxResult.ExitCode, review.SandboxResult.Stdout, review.SandboxResult.Stderr)
	}

	text, err := c.complete(ctx, agent.RoleReviewer, "review", reviewerPrompt, sb.String())
	if err != nil {
		return nil, err
	}
	outcome := &models.ReviewOutcome{}
	if err := decodeAgentJSON(text, outcome); err != nil {
		return nil, err
	}
	switch outcome.Verdict {
	case models.VerdictApproved, models.VerdictChangesRequired:
	default:
		return nil, models.NewFailure(models.ErrKindLLMFailed,
			"reviewer returned unknown verdict %q", outcome.Verdict)
	}
	return outcome, nil
}

// complete runs one role call: instance selection, completion, budget
// charge, activity event. A failed call excludes the instance from the
// role for the rest of the run.
func (c *runCrew) complete(ctx context.Context, role agent.Role, activity, systemPrompt, payload string) (string, error) {
	if c.budget.Exhausted() {
		return "", models.NewFailure(models.ErrKindBudgetExhausted,
			"run %s budget exhausted before %s", c.run.ID, activity)
	}

	inst, err := c.svc.agents.ChooseInstance(ctx, c.task.WorkspaceID, role, c.failed[role])
	if err != nil {
		return "", err
	}
	defer c.svc.agents.ReleaseInstance(ctx, inst.ID)

	req := &llm.Request{
		WorkspaceID:  c.task.WorkspaceID,
		SystemPrompt: systemPrompt,
		Messages:     []llm.Message{{Role: llm.RoleUser, Content: payload}},
	}
	if def, derr := c.svc.agents.InstanceDefinition(ctx, inst.ID); derr == nil {
		req.Model = def.Model
		if def.SystemPrompt != "" {
			req.SystemPrompt = def.SystemPrompt + "\n\n" + systemPrompt
		}
	}

	resp, err := c.svc.completer.Complete(ctx, req)
	if err != nil {
		c.excludeInstance(role, inst.ID)
		c.emitActivity(activity, inst.ID, role, false, 0)
		return "", err
	}
	if err := c.budget.Charge(resp); err != nil {
		return "", err
	}

	c.svc.logger.Debug("agent call completed",
		"run_id", c.run.ID, "role", string(role), "activity", activity,
		"instance_id", inst.ID, "tokens", resp.TotalTokens)
	c.emitActivity(activity, inst.ID, role, true, resp.TotalTokens)
	return resp.Text, nil
}

func (c *runCrew) excludeInstance(role agent.Role, instanceID string) {
	if c.failed[role] == nil {
		c.failed[role] = make(map[string]bool)
	}
	c.failed[role][instanceID] = true
}

func (c *runCrew) emitActivity(activity, instanceID string, role agent.Role, ok bool, tokens int) {
	if c.svc.sink == nil {
		return
	}
	envelope := events.NewEnvelope(events.EventAgentActivity, c.task.WorkspaceID, map[string]any{
		"activity": activity,
		"role":     string(role),
		"success":  ok,
		"tokens":   tokens,
	})
	envelope.AgentID = instanceID
	envelope.TaskID = c.task.ID
	envelope.RunID = c.run.ID
	c.svc.sink.Emit(envelope)
}

// roundPayload builds the engineer/tester user message for one round,
// folding in reviewer and sandbox feedback on revision rounds.
func roundPayload(task *executor.TaskInfo, round *executor.RoundInput, instruction string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Task: %s\n\n%s\n\nRound: %d\n%s\n", task.Name, task.Description, round.Round, instruction)
	if round.Plan != nil {
		sb.WriteString("\nPlan:\n")
		for i, step := range round.Plan.Steps {
			fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, step.Role, step.Description)
		}
	}
	if round.Analysis != nil && round.Analysis.TestStrategy != "" {
		fmt.Fprintf(&sb, "\nTest strategy: %s\n", round.Analysis.TestStrategy)
	}
	if round.ReviewFeedback != "" {
		fmt.Fprintf(&sb, "\nReviewer feedback from the previous round:\n%s\n", round.ReviewFeedback)
	}
	if round.SandboxFeedback != "" {
		fmt.Fprintf(&sb, "\nSandbox output from the previous round:\n%s\n", round.SandboxFeedback)
	}
	if task.Config != nil && len(task.Config.Constraints) > 0 {
		fmt.Fprintf(&sb, "\nConstraints:\n- %s\n", strings.Join(task.Config.Constraints, "\n- "))
	}
	return sb.String()
}

// decodeAgentJSON parses a model response that should be a single JSON
// object, tolerating markdown code fences around it.
func decodeAgentJSON(text string, out any) error {
	cleaned := stripCodeFence(text)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return models.WrapFailure(models.ErrKindLLMFailed, err, "agent response is not valid JSON")
	}
	return nil
}

// stripCodeFence removes a surrounding ```lang fence when present and
// otherwise trims to the outermost JSON object.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
			// Drop the language tag line.
			first := strings.TrimSpace(trimmed[:idx])
			if !strings.HasPrefix(first, "{") {
				trimmed = trimmed[idx+1:]
			}
		}
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		return strings.TrimSpace(trimmed)
	}
	start := strings.IndexByte(trimmed, '{')
	end := strings.LastIndexByte(trimmed, '}')
	if start >= 0 && end > start {
		return trimmed[start : end+1]
	}
	return trimmed
}

var _ executor.CrewFactory = (*CrewService)(nil)
var _ executor.Crew = (*runCrew)(nil)
