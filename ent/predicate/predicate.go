// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentContext is the predicate function for agentcontext builders.
type AgentContext func(*sql.Selector)

// AgentContextVersion is the predicate function for agentcontextversion builders.
type AgentContextVersion func(*sql.Selector)

// AgentDefinition is the predicate function for agentdefinition builders.
type AgentDefinition func(*sql.Selector)

// AgentInstance is the predicate function for agentinstance builders.
type AgentInstance func(*sql.Selector)

// AgentMemoryEntry is the predicate function for agentmemoryentry builders.
type AgentMemoryEntry func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// SandboxExecution is the predicate function for sandboxexecution builders.
type SandboxExecution func(*sql.Selector)

// StepApproval is the predicate function for stepapproval builders.
type StepApproval func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskRun is the predicate function for taskrun builders.
type TaskRun func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)

// WorkflowExecution is the predicate function for workflowexecution builders.
type WorkflowExecution func(*sql.Selector)

// WorkflowStep is the predicate function for workflowstep builders.
type WorkflowStep func(*sql.Selector)

// WorkflowStepExecution is the predicate function for workflowstepexecution builders.
type WorkflowStepExecution func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)
