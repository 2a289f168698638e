package models

// CreateWorkspaceRequest creates a tenancy root.
type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateProjectRequest creates a project with its Git defaults.
type CreateProjectRequest struct {
	WorkspaceID    string  `json:"workspace_id" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	RepoURL        *string `json:"repo_url,omitempty"`
	BaseBranch     *string `json:"base_branch,omitempty"`
	BranchPrefix   *string `json:"branch_prefix,omitempty"`
	CommitTemplate *string `json:"commit_template,omitempty"`
}

// CreateTaskRequest creates a task in a workspace/project.
type CreateTaskRequest struct {
	WorkspaceID       string                 `json:"workspace_id" binding:"required"`
	ProjectID         string                 `json:"project_id" binding:"required"`
	Name              string                 `json:"name" binding:"required"`
	Description       string                 `json:"description" binding:"required"`
	Config            map[string]interface{} `json:"config,omitempty"`
	MaxRounds         *int                   `json:"max_rounds,omitempty"`
	MaxRevisionRounds *int                   `json:"max_revision_rounds,omitempty"`
	BranchPrefix      *string                `json:"branch_prefix,omitempty"`
	CommitTemplate    *string                `json:"commit_template,omitempty"`
}

// StartRunRequest enqueues a new run for a task.
type StartRunRequest struct {
	Input map[string]interface{} `json:"input,omitempty"`
}

// PlanDecisionRequest approves or rejects a pending plan.
type PlanDecisionRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CreateWorkflowRequest creates a workflow with its steps.
type CreateWorkflowRequest struct {
	WorkspaceID string              `json:"workspace_id" binding:"required"`
	ProjectID   string              `json:"project_id" binding:"required"`
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description,omitempty"`
	Steps       []WorkflowStepInput `json:"steps" binding:"required"`
}

// WorkflowStepInput is one step definition in a CreateWorkflowRequest.
type WorkflowStepInput struct {
	ID             string                 `json:"id,omitempty"`
	Name           string                 `json:"name" binding:"required"`
	StepType       string                 `json:"step_type" binding:"required"`
	StepOrder      int                    `json:"step_order"`
	DependsOnSteps []string               `json:"depends_on_steps,omitempty"`
	Config         map[string]interface{} `json:"config,omitempty"`
	RetryPolicy    map[string]interface{} `json:"retry_policy,omitempty"`
}

// StartExecutionRequest starts a workflow execution.
type StartExecutionRequest struct {
	InputVariables map[string]interface{} `json:"input_variables,omitempty"`
}

// ApprovalResponseRequest is a human response to a pending approval.
type ApprovalResponseRequest struct {
	Approver     string                 `json:"approver,omitempty"`
	Feedback     string                 `json:"feedback,omitempty"`
	ResponseData map[string]interface{} `json:"response_data,omitempty"`
}

// CreateAgentDefinitionRequest registers an agent definition.
type CreateAgentDefinitionRequest struct {
	WorkspaceID  string   `json:"workspace_id" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Role         string   `json:"role" binding:"required"`
	Capabilities []string `json:"capabilities,omitempty"`
	Model        string   `json:"model,omitempty"`
	SystemPrompt string   `json:"system_prompt,omitempty"`
	Instances    int      `json:"instances,omitempty"`
}
