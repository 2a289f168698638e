// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mgx-dev/mgx/ent/agentcontext"
	"github.com/mgx-dev/mgx/ent/agentcontextversion"
	"github.com/mgx-dev/mgx/ent/agentdefinition"
	"github.com/mgx-dev/mgx/ent/agentinstance"
	"github.com/mgx-dev/mgx/ent/agentmemoryentry"
	"github.com/mgx-dev/mgx/ent/event"
	"github.com/mgx-dev/mgx/ent/project"
	"github.com/mgx-dev/mgx/ent/sandboxexecution"
	"github.com/mgx-dev/mgx/ent/schema"
	"github.com/mgx-dev/mgx/ent/stepapproval"
	"github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/ent/taskrun"
	"github.com/mgx-dev/mgx/ent/workflow"
	"github.com/mgx-dev/mgx/ent/workflowexecution"
	"github.com/mgx-dev/mgx/ent/workflowstepexecution"
	"github.com/mgx-dev/mgx/ent/workspace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentcontextFields := schema.AgentContext{}.Fields()
	_ = agentcontextFields
	// agentcontextDescCurrentVersion is the schema descriptor for current_version field.
	agentcontextDescCurrentVersion := agentcontextFields[4].Descriptor()
	// agentcontext.DefaultCurrentVersion holds the default value on creation for the current_version field.
	agentcontext.DefaultCurrentVersion = agentcontextDescCurrentVersion.Default.(int)
	// agentcontextDescCreatedAt is the schema descriptor for created_at field.
	agentcontextDescCreatedAt := agentcontextFields[5].Descriptor()
	// agentcontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentcontext.DefaultCreatedAt = agentcontextDescCreatedAt.Default.(func() time.Time)
	// agentcontextDescUpdatedAt is the schema descriptor for updated_at field.
	agentcontextDescUpdatedAt := agentcontextFields[6].Descriptor()
	// agentcontext.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentcontext.DefaultUpdatedAt = agentcontextDescUpdatedAt.Default.(func() time.Time)
	// agentcontext.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentcontext.UpdateDefaultUpdatedAt = agentcontextDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentcontextversionFields := schema.AgentContextVersion{}.Fields()
	_ = agentcontextversionFields
	// agentcontextversionDescCreatedAt is the schema descriptor for created_at field.
	agentcontextversionDescCreatedAt := agentcontextversionFields[6].Descriptor()
	// agentcontextversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentcontextversion.DefaultCreatedAt = agentcontextversionDescCreatedAt.Default.(func() time.Time)
	agentdefinitionFields := schema.AgentDefinition{}.Fields()
	_ = agentdefinitionFields
	// agentdefinitionDescCreatedAt is the schema descriptor for created_at field.
	agentdefinitionDescCreatedAt := agentdefinitionFields[7].Descriptor()
	// agentdefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentdefinition.DefaultCreatedAt = agentdefinitionDescCreatedAt.Default.(func() time.Time)
	agentinstanceFields := schema.AgentInstance{}.Fields()
	_ = agentinstanceFields
	// agentinstanceDescActiveSteps is the schema descriptor for active_steps field.
	agentinstanceDescActiveSteps := agentinstanceFields[4].Descriptor()
	// agentinstance.DefaultActiveSteps holds the default value on creation for the active_steps field.
	agentinstance.DefaultActiveSteps = agentinstanceDescActiveSteps.Default.(int)
	// agentinstanceDescCreatedAt is the schema descriptor for created_at field.
	agentinstanceDescCreatedAt := agentinstanceFields[6].Descriptor()
	// agentinstance.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentinstance.DefaultCreatedAt = agentinstanceDescCreatedAt.Default.(func() time.Time)
	agentmemoryentryFields := schema.AgentMemoryEntry{}.Fields()
	_ = agentmemoryentryFields
	// agentmemoryentryDescCreatedAt is the schema descriptor for created_at field.
	agentmemoryentryDescCreatedAt := agentmemoryentryFields[7].Descriptor()
	// agentmemoryentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentmemoryentry.DefaultCreatedAt = agentmemoryentryDescCreatedAt.Default.(func() time.Time)
	// agentmemoryentryDescAccessedAt is the schema descriptor for accessed_at field.
	agentmemoryentryDescAccessedAt := agentmemoryentryFields[8].Descriptor()
	// agentmemoryentry.DefaultAccessedAt holds the default value on creation for the accessed_at field.
	agentmemoryentry.DefaultAccessedAt = agentmemoryentryDescAccessedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[12].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescBaseBranch is the schema descriptor for base_branch field.
	projectDescBaseBranch := projectFields[4].Descriptor()
	// project.DefaultBaseBranch holds the default value on creation for the base_branch field.
	project.DefaultBaseBranch = projectDescBaseBranch.Default.(string)
	// projectDescBranchPrefix is the schema descriptor for branch_prefix field.
	projectDescBranchPrefix := projectFields[5].Descriptor()
	// project.DefaultBranchPrefix holds the default value on creation for the branch_prefix field.
	project.DefaultBranchPrefix = projectDescBranchPrefix.Default.(string)
	// projectDescCommitTemplate is the schema descriptor for commit_template field.
	projectDescCommitTemplate := projectFields[6].Descriptor()
	// project.DefaultCommitTemplate holds the default value on creation for the commit_template field.
	project.DefaultCommitTemplate = projectDescCommitTemplate.Default.(string)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[7].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	sandboxexecutionFields := schema.SandboxExecution{}.Fields()
	_ = sandboxexecutionFields
	// sandboxexecutionDescTimeoutSeconds is the schema descriptor for timeout_seconds field.
	sandboxexecutionDescTimeoutSeconds := sandboxexecutionFields[17].Descriptor()
	// sandboxexecution.DefaultTimeoutSeconds holds the default value on creation for the timeout_seconds field.
	sandboxexecution.DefaultTimeoutSeconds = sandboxexecutionDescTimeoutSeconds.Default.(int)
	// sandboxexecutionDescMemoryLimitMB is the schema descriptor for memory_limit_mb field.
	sandboxexecutionDescMemoryLimitMB := sandboxexecutionFields[18].Descriptor()
	// sandboxexecution.DefaultMemoryLimitMB holds the default value on creation for the memory_limit_mb field.
	sandboxexecution.DefaultMemoryLimitMB = sandboxexecutionDescMemoryLimitMB.Default.(int)
	stepapprovalFields := schema.StepApproval{}.Fields()
	_ = stepapprovalFields
	// stepapprovalDescRequestedAt is the schema descriptor for requested_at field.
	stepapprovalDescRequestedAt := stepapprovalFields[10].Descriptor()
	// stepapproval.DefaultRequestedAt holds the default value on creation for the requested_at field.
	stepapproval.DefaultRequestedAt = stepapprovalDescRequestedAt.Default.(func() time.Time)
	// stepapprovalDescRevisionCount is the schema descriptor for revision_count field.
	stepapprovalDescRevisionCount := stepapprovalFields[15].Descriptor()
	// stepapproval.DefaultRevisionCount holds the default value on creation for the revision_count field.
	stepapproval.DefaultRevisionCount = stepapprovalDescRevisionCount.Default.(int)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescMaxRounds is the schema descriptor for max_rounds field.
	taskDescMaxRounds := taskFields[7].Descriptor()
	// task.DefaultMaxRounds holds the default value on creation for the max_rounds field.
	task.DefaultMaxRounds = taskDescMaxRounds.Default.(int)
	// taskDescMaxRevisionRounds is the schema descriptor for max_revision_rounds field.
	taskDescMaxRevisionRounds := taskFields[8].Descriptor()
	// task.DefaultMaxRevisionRounds holds the default value on creation for the max_revision_rounds field.
	task.DefaultMaxRevisionRounds = taskDescMaxRevisionRounds.Default.(int)
	// taskDescTotalRuns is the schema descriptor for total_runs field.
	taskDescTotalRuns := taskFields[11].Descriptor()
	// task.DefaultTotalRuns holds the default value on creation for the total_runs field.
	task.DefaultTotalRuns = taskDescTotalRuns.Default.(int)
	// taskDescSuccessfulRuns is the schema descriptor for successful_runs field.
	taskDescSuccessfulRuns := taskFields[12].Descriptor()
	// task.DefaultSuccessfulRuns holds the default value on creation for the successful_runs field.
	task.DefaultSuccessfulRuns = taskDescSuccessfulRuns.Default.(int)
	// taskDescFailedRuns is the schema descriptor for failed_runs field.
	taskDescFailedRuns := taskFields[13].Descriptor()
	// task.DefaultFailedRuns holds the default value on creation for the failed_runs field.
	task.DefaultFailedRuns = taskDescFailedRuns.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[14].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	taskrunFields := schema.TaskRun{}.Fields()
	_ = taskrunFields
	// taskrunDescRoundCount is the schema descriptor for round_count field.
	taskrunDescRoundCount := taskrunFields[14].Descriptor()
	// taskrun.DefaultRoundCount holds the default value on creation for the round_count field.
	taskrun.DefaultRoundCount = taskrunDescRoundCount.Default.(int)
	// taskrunDescCreatedAt is the schema descriptor for created_at field.
	taskrunDescCreatedAt := taskrunFields[21].Descriptor()
	// taskrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskrun.DefaultCreatedAt = taskrunDescCreatedAt.Default.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[5].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	workflowexecutionFields := schema.WorkflowExecution{}.Fields()
	_ = workflowexecutionFields
	// workflowexecutionDescCreatedAt is the schema descriptor for created_at field.
	workflowexecutionDescCreatedAt := workflowexecutionFields[13].Descriptor()
	// workflowexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowexecution.DefaultCreatedAt = workflowexecutionDescCreatedAt.Default.(func() time.Time)
	workflowstepexecutionFields := schema.WorkflowStepExecution{}.Fields()
	_ = workflowstepexecutionFields
	// workflowstepexecutionDescRetryCount is the schema descriptor for retry_count field.
	workflowstepexecutionDescRetryCount := workflowstepexecutionFields[9].Descriptor()
	// workflowstepexecution.DefaultRetryCount holds the default value on creation for the retry_count field.
	workflowstepexecution.DefaultRetryCount = workflowstepexecutionDescRetryCount.Default.(int)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[2].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
}
