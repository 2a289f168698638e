package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// defaultWait bounds every polling helper. Generous against CI jitter;
// scenarios normally finish in well under a second.
const defaultWait = 30 * time.Second

// postJSON issues a POST and decodes the JSON response body.
func (a *TestApp) postJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(a.BaseURL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// getJSON issues a GET and decodes the JSON response body.
func (a *TestApp) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(a.BaseURL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// CreateWorkspace creates a workspace and returns its ID.
func (a *TestApp) CreateWorkspace(t *testing.T, name string) string {
	t.Helper()
	status, body := a.postJSON(t, "/api/v1/workspaces", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, status, "create workspace: %v", body)
	return body["id"].(string)
}

// CreateProject creates a project and returns its ID. repoURL may be
// empty for projects without git integration.
func (a *TestApp) CreateProject(t *testing.T, workspaceID, name, repoURL string) string {
	t.Helper()
	req := map[string]any{"workspace_id": workspaceID, "name": name}
	if repoURL != "" {
		req["repo_url"] = repoURL
	}
	status, body := a.postJSON(t, "/api/v1/projects", req)
	require.Equal(t, http.StatusCreated, status, "create project: %v", body)
	return body["id"].(string)
}

// SeedCrew registers one definition with one instance per crew role so
// runs can assign agents. The generic system prompts deliberately avoid
// the crew's routing markers.
func (a *TestApp) SeedCrew(t *testing.T, workspaceID string) {
	t.Helper()
	roles := map[string]string{
		"planner":  "You break work into steps.",
		"engineer": "You write code.",
		"tester":   "You write tests.",
		"reviewer": "You review changes.",
	}
	for role, prompt := range roles {
		status, body := a.postJSON(t, "/api/v1/agents", map[string]any{
			"workspace_id":  workspaceID,
			"name":          role + "-1",
			"role":          role,
			"model":         "scripted",
			"system_prompt": prompt,
		})
		require.Equal(t, http.StatusCreated, status, "seed %s: %v", role, body)
	}
}

// CreateTask creates a task and returns its ID.
func (a *TestApp) CreateTask(t *testing.T, workspaceID, projectID, name string, cfg map[string]any) string {
	t.Helper()
	status, body := a.postJSON(t, "/api/v1/tasks", map[string]any{
		"workspace_id": workspaceID,
		"project_id":   projectID,
		"name":         name,
		"description":  "Build " + name + ".",
		"config":       cfg,
	})
	require.Equal(t, http.StatusCreated, status, "create task: %v", body)
	return body["id"].(string)
}

// StartRun enqueues a run for the task.
func (a *TestApp) StartRun(t *testing.T, taskID string) {
	t.Helper()
	status, body := a.postJSON(t, "/api/v1/tasks/"+taskID+"/runs", map[string]any{})
	require.Equal(t, http.StatusAccepted, status, "start run: %v", body)
}

// WaitForRun polls until a worker has allocated the task's run and
// returns the run ID.
func (a *TestApp) WaitForRun(t *testing.T, taskID string) string {
	t.Helper()
	var runID string
	a.eventually(t, func() bool {
		status, body := a.getJSON(t, "/api/v1/tasks/"+taskID+"/runs")
		if status != http.StatusOK {
			return false
		}
		runs, _ := body["runs"].([]any)
		if len(runs) == 0 {
			return false
		}
		run := runs[0].(map[string]any)
		runID, _ = run["run_id"].(string)
		return runID != ""
	}, "run was never allocated for task %s", taskID)
	return runID
}

// GetRun fetches the run summary.
func (a *TestApp) GetRun(t *testing.T, runID string) map[string]any {
	t.Helper()
	status, body := a.getJSON(t, "/api/v1/runs/"+runID)
	require.Equal(t, http.StatusOK, status, "get run: %v", body)
	return body
}

// WaitForRunStatus polls until the run reaches the given terminal status
// and returns its summary.
func (a *TestApp) WaitForRunStatus(t *testing.T, runID, want string) map[string]any {
	t.Helper()
	var summary map[string]any
	a.eventually(t, func() bool {
		summary = a.GetRun(t, runID)
		got, _ := summary["status"].(string)
		switch got {
		case want:
			return true
		case "running", "":
			return false
		default:
			t.Fatalf("run %s reached %q while waiting for %q: %v", runID, got, want, summary)
			return false
		}
	}, "run %s never reached status %s", runID, want)
	return summary
}

// WaitForRunPhase polls until the run reports the given phase.
func (a *TestApp) WaitForRunPhase(t *testing.T, runID, phase string) {
	t.Helper()
	a.eventually(t, func() bool {
		summary := a.GetRun(t, runID)
		return summary["phase"] == phase
	}, "run %s never reached phase %s", runID, phase)
}

// CreateWorkflow creates a workflow from step inputs and returns its ID.
func (a *TestApp) CreateWorkflow(t *testing.T, workspaceID, projectID, name string, steps []map[string]any) string {
	t.Helper()
	status, body := a.postJSON(t, "/api/v1/workflows", map[string]any{
		"workspace_id": workspaceID,
		"project_id":   projectID,
		"name":         name,
		"steps":        steps,
	})
	require.Equal(t, http.StatusCreated, status, "create workflow: %v", body)
	return body["id"].(string)
}

// StartExecution starts a workflow execution and returns its ID.
func (a *TestApp) StartExecution(t *testing.T, workflowID string, input map[string]any) string {
	t.Helper()
	req := map[string]any{}
	if input != nil {
		req["input_variables"] = input
	}
	status, body := a.postJSON(t, "/api/v1/workflows/"+workflowID+"/executions", req)
	require.Equal(t, http.StatusAccepted, status, "start execution: %v", body)
	return body["execution_id"].(string)
}

// WaitForExecutionStatus polls until the execution reaches the status.
func (a *TestApp) WaitForExecutionStatus(t *testing.T, executionID, want string) map[string]any {
	t.Helper()
	var exec map[string]any
	a.eventually(t, func() bool {
		status, body := a.getJSON(t, "/api/v1/executions/"+executionID)
		if status != http.StatusOK {
			return false
		}
		exec = body
		return body["status"] == want
	}, "execution %s never reached status %s", executionID, want)
	return exec
}

// Timeline fetches the execution timeline and indexes steps by name.
func (a *TestApp) Timeline(t *testing.T, executionID string) map[string]map[string]any {
	t.Helper()
	status, body := a.getJSON(t, "/api/v1/executions/"+executionID+"/timeline")
	require.Equal(t, http.StatusOK, status, "timeline: %v", body)

	steps := map[string]map[string]any{}
	raw, _ := body["steps"].([]any)
	for _, item := range raw {
		step := item.(map[string]any)
		steps[step["step_name"].(string)] = step
	}
	return steps
}

// WaitForPendingApproval polls until the workspace has a pending
// approval and returns its ID.
func (a *TestApp) WaitForPendingApproval(t *testing.T, workspaceID string) string {
	t.Helper()
	var approvalID string
	a.eventually(t, func() bool {
		status, body := a.getJSON(t, "/api/v1/approvals?workspace_id="+workspaceID)
		if status != http.StatusOK {
			return false
		}
		approvals, _ := body["approvals"].([]any)
		if len(approvals) == 0 {
			return false
		}
		approvalID, _ = approvals[0].(map[string]any)["id"].(string)
		return approvalID != ""
	}, "no pending approval appeared in workspace %s", workspaceID)
	return approvalID
}

// RespondApproval posts a human decision for a pending approval.
func (a *TestApp) RespondApproval(t *testing.T, approvalID, decision, feedback string) {
	t.Helper()
	status, body := a.postJSON(t, "/api/v1/approvals/"+approvalID+"/respond", map[string]any{
		"decision": decision,
		"approver": "qa@example.test",
		"feedback": feedback,
	})
	require.Equal(t, http.StatusOK, status, "respond approval: %v", body)
}

// eventually polls cond every 25ms until it returns true or defaultWait
// elapses.
func (a *TestApp) eventually(t *testing.T, cond func() bool, format string, args ...any) {
	t.Helper()
	deadline := time.Now().Add(defaultWait)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf(format, args...)
}

// agentStep builds a workflow agent step input.
func agentStep(name, role, prompt string, deps ...string) map[string]any {
	step := map[string]any{
		"name":      name,
		"step_type": "agent",
		"config":    map[string]any{"role": role, "prompt": prompt},
	}
	if len(deps) > 0 {
		step["depends_on_steps"] = deps
	}
	return step
}

// taskStep builds a workflow task step input.
func taskStep(name, taskID string, deps ...string) map[string]any {
	step := map[string]any{
		"name":      name,
		"step_type": "task",
		"config":    map[string]any{"task_id": taskID},
	}
	if len(deps) > 0 {
		step["depends_on_steps"] = deps
	}
	return step
}

// approvalStep builds a workflow approval step input.
func approvalStep(name string, approvalCfg map[string]any, deps ...string) map[string]any {
	step := map[string]any{
		"name":      name,
		"step_type": "approval",
		"config":    map[string]any{"approval": approvalCfg},
	}
	if len(deps) > 0 {
		step["depends_on_steps"] = deps
	}
	return step
}

// wsEventType reads the event type from either an envelope or a control
// message.
func wsEventType(parsed map[string]any) string {
	if v, ok := parsed["event_type"].(string); ok {
		return v
	}
	v, _ := parsed["type"].(string)
	return v
}
