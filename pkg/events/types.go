// Package events provides typed event fan-out for the execution fabric:
// an in-process broadcaster with bounded per-subscriber buffers, an
// append-only persistence path, and cross-pod delivery via PostgreSQL
// NOTIFY/LISTEN feeding WebSocket subscribers.
//
// Every event is published to the hierarchical topics of its source
// entity. Subscribers match topics with glob patterns:
//
//	all
//	workspace:{id}
//	workspace:{id}.task:{id}
//	workspace:{id}.workflow:{id}
//	workspace:{id}.agent:{id}
//
// Delivery order per source entity matches publish order; cross-entity
// ordering is best-effort.
package events

// EnvelopeVersion is the wire envelope version (semantic MAJOR.MINOR).
const EnvelopeVersion = "1.0"

// Task lifecycle event types.
const (
	EventTaskCreated   = "task.created"
	EventTaskStarted   = "task.started"
	EventTaskCompleted = "task.completed"
	EventTaskFailed    = "task.failed"
	EventTaskCancelled = "task.cancelled"
	EventTaskError     = "task.error"
	EventPlanReady     = "plan_ready"
	EventRunPhase      = "run.phase"
)

// Git event types.
const (
	EventGitBranchCreated     = "git_branch_created"
	EventGitCommitCreated     = "git_commit_created"
	EventGitPushSuccess       = "git_push_success"
	EventGitPushFailed        = "git_push_failed"
	EventPullRequestOpened    = "pull_request_opened"
	EventGitOperationFailed   = "git_operation_failed"
)

// Workflow event types.
const (
	EventWorkflowStarted       = "workflow_started"
	EventWorkflowStepStarted   = "workflow_step_started"
	EventWorkflowStepCompleted = "workflow_step_completed"
	EventWorkflowStepFailed    = "workflow_step_failed"
	EventWorkflowCompleted     = "workflow_completed"
	EventWorkflowFailed        = "workflow_failed"
	EventWorkflowCancelled     = "workflow_cancelled"
)

// Approval event types.
const (
	EventApprovalRequired = "approval_required"
	EventApprovalGranted  = "approval_granted"
	EventApprovalRejected = "approval_rejected"
	EventChangesRequested = "changes_requested"
)

// Agent event types.
const (
	EventAgentContextUpdated = "agent_context_updated"
	EventAgentActivity       = "agent_activity"
	EventAgentMessage        = "agent_message"
)

// Sandbox event types. Logs are transient (NOTIFY only, not persisted).
const (
	EventSandboxStarted   = "sandbox_execution_started"
	EventSandboxCompleted = "sandbox_execution_completed"
	EventSandboxFailed    = "sandbox_execution_failed"
	EventSandboxLogs      = "sandbox_execution_logs"
)

// EventSubscriberLagging is synthesized for a subscriber whose buffer
// overflowed; the subscriber should fall back to a catchup query.
const EventSubscriberLagging = "subscriber_lagging"

// TopicAll receives every event.
const TopicAll = "all"

// WorkspaceTopic returns the topic for workspace-level events.
func WorkspaceTopic(workspaceID string) string {
	return "workspace:" + workspaceID
}

// TaskTopic returns the topic for a task's events.
func TaskTopic(workspaceID, taskID string) string {
	return WorkspaceTopic(workspaceID) + ".task:" + taskID
}

// WorkflowTopic returns the topic for a workflow's events.
func WorkflowTopic(workspaceID, workflowID string) string {
	return WorkspaceTopic(workspaceID) + ".workflow:" + workflowID
}

// AgentTopic returns the topic for an agent's events.
func AgentTopic(workspaceID, agentID string) string {
	return WorkspaceTopic(workspaceID) + ".agent:" + agentID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Topic       string `json:"topic,omitempty"`         // topic pattern (e.g. "workspace:abc.*")
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
