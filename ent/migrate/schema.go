// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentContextsColumns holds the columns for the "agent_contexts" table.
	AgentContextsColumns = []*schema.Column{
		{Name: "context_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "current_version", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentContextsTable holds the schema information for the "agent_contexts" table.
	AgentContextsTable = &schema.Table{
		Name:       "agent_contexts",
		Columns:    AgentContextsColumns,
		PrimaryKey: []*schema.Column{AgentContextsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentcontext_workspace_id_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{AgentContextsColumns[1], AgentContextsColumns[2], AgentContextsColumns[3]},
			},
		},
	}
	// AgentContextVersionsColumns holds the columns for the "agent_context_versions" table.
	AgentContextVersionsColumns = []*schema.Column{
		{Name: "context_version_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "data", Type: field.TypeJSON},
		{Name: "written_by", Type: field.TypeString, Nullable: true},
		{Name: "rolled_back_from", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "context_id", Type: field.TypeString},
	}
	// AgentContextVersionsTable holds the schema information for the "agent_context_versions" table.
	AgentContextVersionsTable = &schema.Table{
		Name:       "agent_context_versions",
		Columns:    AgentContextVersionsColumns,
		PrimaryKey: []*schema.Column{AgentContextVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_context_versions_agent_contexts_versions",
				Columns:    []*schema.Column{AgentContextVersionsColumns[6]},
				RefColumns: []*schema.Column{AgentContextsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentcontextversion_context_id_version",
				Unique:  true,
				Columns: []*schema.Column{AgentContextVersionsColumns[6], AgentContextVersionsColumns[1]},
			},
		},
	}
	// AgentDefinitionsColumns holds the columns for the "agent_definitions" table.
	AgentDefinitionsColumns = []*schema.Column{
		{Name: "agent_definition_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"planner", "engineer", "tester", "reviewer"}},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentDefinitionsTable holds the schema information for the "agent_definitions" table.
	AgentDefinitionsTable = &schema.Table{
		Name:       "agent_definitions",
		Columns:    AgentDefinitionsColumns,
		PrimaryKey: []*schema.Column{AgentDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentdefinition_workspace_id_role",
				Unique:  false,
				Columns: []*schema.Column{AgentDefinitionsColumns[1], AgentDefinitionsColumns[3]},
			},
		},
	}
	// AgentInstancesColumns holds the columns for the "agent_instances" table.
	AgentInstancesColumns = []*schema.Column{
		{Name: "agent_instance_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"available", "busy", "offline"}, Default: "available"},
		{Name: "active_steps", Type: field.TypeInt, Default: 0},
		{Name: "last_assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_definition_id", Type: field.TypeString},
	}
	// AgentInstancesTable holds the schema information for the "agent_instances" table.
	AgentInstancesTable = &schema.Table{
		Name:       "agent_instances",
		Columns:    AgentInstancesColumns,
		PrimaryKey: []*schema.Column{AgentInstancesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_instances_agent_definitions_instances",
				Columns:    []*schema.Column{AgentInstancesColumns[6]},
				RefColumns: []*schema.Column{AgentDefinitionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentinstance_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentInstancesColumns[1], AgentInstancesColumns[2]},
			},
		},
	}
	// AgentMemoryEntriesColumns holds the columns for the "agent_memory_entries" table.
	AgentMemoryEntriesColumns = []*schema.Column{
		{Name: "memory_entry_id", Type: field.TypeString, Unique: true},
		{Name: "agent_instance_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeBytes},
		{Name: "size_bytes", Type: field.TypeInt},
		{Name: "received_from", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "accessed_at", Type: field.TypeTime},
	}
	// AgentMemoryEntriesTable holds the schema information for the "agent_memory_entries" table.
	AgentMemoryEntriesTable = &schema.Table{
		Name:       "agent_memory_entries",
		Columns:    AgentMemoryEntriesColumns,
		PrimaryKey: []*schema.Column{AgentMemoryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentmemoryentry_agent_instance_id_key",
				Unique:  true,
				Columns: []*schema.Column{AgentMemoryEntriesColumns[1], AgentMemoryEntriesColumns[3]},
			},
			{
				Name:    "agentmemoryentry_agent_instance_id_accessed_at",
				Unique:  false,
				Columns: []*schema.Column{AgentMemoryEntriesColumns[1], AgentMemoryEntriesColumns[8]},
			},
			{
				Name:    "agentmemoryentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentMemoryEntriesColumns[7]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[0]},
			},
			{
				Name:    "event_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
			{
				Name:    "event_task_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5]},
			},
			{
				Name:    "event_execution_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[8]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[12]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "repo_url", Type: field.TypeString, Nullable: true},
		{Name: "base_branch", Type: field.TypeString, Default: "main"},
		{Name: "branch_prefix", Type: field.TypeString, Default: "mgx"},
		{Name: "commit_template", Type: field.TypeString, Default: "MGX: {task_name} (run #{run_number})"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_workspaces_projects",
				Columns:    []*schema.Column{ProjectsColumns[7]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[7]},
			},
			{
				Name:    "project_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[7], ProjectsColumns[1]},
			},
		},
	}
	// SandboxExecutionsColumns holds the columns for the "sandbox_executions" table.
	SandboxExecutionsColumns = []*schema.Column{
		{Name: "sandbox_execution_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "command", Type: field.TypeString},
		{Name: "code_location", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "timeout", "killed"}, Default: "pending"},
		{Name: "stdout", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stderr", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "exit_code", Type: field.TypeInt, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "peak_memory_mb", Type: field.TypeInt, Nullable: true},
		{Name: "cpu_percent", Type: field.TypeFloat64, Nullable: true},
		{Name: "container_id", Type: field.TypeString, Nullable: true},
		{Name: "timeout_seconds", Type: field.TypeInt, Default: 120},
		{Name: "memory_limit_mb", Type: field.TypeInt, Default: 512},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "run_id", Type: field.TypeString},
	}
	// SandboxExecutionsTable holds the schema information for the "sandbox_executions" table.
	SandboxExecutionsTable = &schema.Table{
		Name:       "sandbox_executions",
		Columns:    SandboxExecutionsColumns,
		PrimaryKey: []*schema.Column{SandboxExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sandbox_executions_task_runs_sandbox_executions",
				Columns:    []*schema.Column{SandboxExecutionsColumns[20]},
				RefColumns: []*schema.Column{TaskRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sandboxexecution_workspace_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{SandboxExecutionsColumns[1], SandboxExecutionsColumns[2]},
			},
			{
				Name:    "sandboxexecution_status",
				Unique:  false,
				Columns: []*schema.Column{SandboxExecutionsColumns[6]},
			},
		},
	}
	// WorkflowStepApprovalsColumns holds the columns for the "workflow_step_approvals" table.
	WorkflowStepApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "step_execution_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "request_changes", "cancelled", "timeout"}, Default: "pending"},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "approval_data", Type: field.TypeJSON, Nullable: true},
		{Name: "approver", Type: field.TypeString, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_data", Type: field.TypeJSON, Nullable: true},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "auto_approve_after_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "required_approvers", Type: field.TypeJSON, Nullable: true},
		{Name: "revision_count", Type: field.TypeInt, Default: 0},
		{Name: "parent_approval_id", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString},
	}
	// WorkflowStepApprovalsTable holds the schema information for the "workflow_step_approvals" table.
	WorkflowStepApprovalsTable = &schema.Table{
		Name:       "workflow_step_approvals",
		Columns:    WorkflowStepApprovalsColumns,
		PrimaryKey: []*schema.Column{WorkflowStepApprovalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_step_approvals_workflow_executions_approvals",
				Columns:    []*schema.Column{WorkflowStepApprovalsColumns[16]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stepapproval_execution_id_step_execution_id_revision_count",
				Unique:  true,
				Columns: []*schema.Column{WorkflowStepApprovalsColumns[16], WorkflowStepApprovalsColumns[1], WorkflowStepApprovalsColumns[14]},
			},
			{
				Name:    "stepapproval_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowStepApprovalsColumns[2]},
			},
			{
				Name:    "stepapproval_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowStepApprovalsColumns[2], WorkflowStepApprovalsColumns[11]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled", "timeout"}, Default: "pending"},
		{Name: "max_rounds", Type: field.TypeInt, Default: 3},
		{Name: "max_revision_rounds", Type: field.TypeInt, Default: 2},
		{Name: "branch_prefix", Type: field.TypeString, Nullable: true},
		{Name: "commit_template", Type: field.TypeString, Nullable: true},
		{Name: "total_runs", Type: field.TypeInt, Default: 0},
		{Name: "successful_runs", Type: field.TypeInt, Default: 0},
		{Name: "failed_runs", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[14]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_workspace_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[14]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[13]},
			},
		},
	}
	// TaskRunsColumns holds the columns for the "task_runs" table.
	TaskRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "run_number", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled", "timeout"}, Default: "pending"},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"created", "analyzing", "planning", "awaiting_approval", "executing", "reviewing", "revising", "completing", "done"}, Default: "created"},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "round_count", Type: field.TypeInt, Default: 0},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "git_status", Type: field.TypeEnum, Enums: []string{"pending", "branch_created", "committed", "pushed", "pr_opened", "failed"}, Default: "pending"},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskRunsTable holds the schema information for the "task_runs" table.
	TaskRunsTable = &schema.Table{
		Name:       "task_runs",
		Columns:    TaskRunsColumns,
		PrimaryKey: []*schema.Column{TaskRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_runs_tasks_runs",
				Columns:    []*schema.Column{TaskRunsColumns[21]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskrun_task_id_run_number",
				Unique:  true,
				Columns: []*schema.Column{TaskRunsColumns[21], TaskRunsColumns[3]},
			},
			{
				Name:    "taskrun_workspace_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[1], TaskRunsColumns[2]},
			},
			{
				Name:    "taskrun_status",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[4]},
			},
			{
				Name:    "taskrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[4], TaskRunsColumns[20]},
			},
			{
				Name:    "taskrun_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[4], TaskRunsColumns[19]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflows_projects_workflows",
				Columns:    []*schema.Column{WorkflowsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_workspace_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[1], WorkflowsColumns[5]},
			},
		},
	}
	// WorkflowExecutionsColumns holds the columns for the "workflow_executions" table.
	WorkflowExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "execution_number", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "input_variables", Type: field.TypeJSON, Nullable: true},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowExecutionsTable holds the schema information for the "workflow_executions" table.
	WorkflowExecutionsTable = &schema.Table{
		Name:       "workflow_executions",
		Columns:    WorkflowExecutionsColumns,
		PrimaryKey: []*schema.Column{WorkflowExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_executions_workflows_executions",
				Columns:    []*schema.Column{WorkflowExecutionsColumns[13]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowexecution_workflow_id_execution_number",
				Unique:  true,
				Columns: []*schema.Column{WorkflowExecutionsColumns[13], WorkflowExecutionsColumns[3]},
			},
			{
				Name:    "workflowexecution_workspace_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1], WorkflowExecutionsColumns[2]},
			},
			{
				Name:    "workflowexecution_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[4]},
			},
		},
	}
	// WorkflowStepsColumns holds the columns for the "workflow_steps" table.
	WorkflowStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "step_type", Type: field.TypeEnum, Enums: []string{"task", "condition", "parallel", "sequential", "agent", "approval"}},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "depends_on_steps", Type: field.TypeJSON, Nullable: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_policy", Type: field.TypeJSON, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowStepsTable holds the schema information for the "workflow_steps" table.
	WorkflowStepsTable = &schema.Table{
		Name:       "workflow_steps",
		Columns:    WorkflowStepsColumns,
		PrimaryKey: []*schema.Column{WorkflowStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_steps_workflows_steps",
				Columns:    []*schema.Column{WorkflowStepsColumns[7]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowstep_workflow_id_step_order",
				Unique:  false,
				Columns: []*schema.Column{WorkflowStepsColumns[7], WorkflowStepsColumns[3]},
			},
		},
	}
	// WorkflowStepExecutionsColumns holds the columns for the "workflow_step_executions" table.
	WorkflowStepExecutionsColumns = []*schema.Column{
		{Name: "step_execution_id", Type: field.TypeString, Unique: true},
		{Name: "step_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "waiting_approval", "completed", "failed", "skipped", "cancelled"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "waiting_approval_id", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "execution_id", Type: field.TypeString},
	}
	// WorkflowStepExecutionsTable holds the schema information for the "workflow_step_executions" table.
	WorkflowStepExecutionsTable = &schema.Table{
		Name:       "workflow_step_executions",
		Columns:    WorkflowStepExecutionsColumns,
		PrimaryKey: []*schema.Column{WorkflowStepExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_step_executions_workflow_executions_step_executions",
				Columns:    []*schema.Column{WorkflowStepExecutionsColumns[12]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowstepexecution_execution_id_step_id",
				Unique:  true,
				Columns: []*schema.Column{WorkflowStepExecutionsColumns[12], WorkflowStepExecutionsColumns[1]},
			},
			{
				Name:    "workflowstepexecution_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowStepExecutionsColumns[2]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "workspace_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentContextsTable,
		AgentContextVersionsTable,
		AgentDefinitionsTable,
		AgentInstancesTable,
		AgentMemoryEntriesTable,
		EventsTable,
		ProjectsTable,
		SandboxExecutionsTable,
		WorkflowStepApprovalsTable,
		TasksTable,
		TaskRunsTable,
		WorkflowsTable,
		WorkflowExecutionsTable,
		WorkflowStepsTable,
		WorkflowStepExecutionsTable,
		WorkspacesTable,
	}
)

func init() {
	AgentContextVersionsTable.ForeignKeys[0].RefTable = AgentContextsTable
	AgentInstancesTable.ForeignKeys[0].RefTable = AgentDefinitionsTable
	ProjectsTable.ForeignKeys[0].RefTable = WorkspacesTable
	SandboxExecutionsTable.ForeignKeys[0].RefTable = TaskRunsTable
	WorkflowStepApprovalsTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
	WorkflowStepApprovalsTable.Annotation = &entsql.Annotation{
		Table: "workflow_step_approvals",
	}
	TasksTable.ForeignKeys[0].RefTable = ProjectsTable
	TaskRunsTable.ForeignKeys[0].RefTable = TasksTable
	WorkflowsTable.ForeignKeys[0].RefTable = ProjectsTable
	WorkflowExecutionsTable.ForeignKeys[0].RefTable = WorkflowsTable
	WorkflowStepsTable.ForeignKeys[0].RefTable = WorkflowsTable
	WorkflowStepExecutionsTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
}
