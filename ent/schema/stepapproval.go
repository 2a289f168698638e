package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepApproval holds the schema definition for the StepApproval entity.
// Persistent human-in-the-loop record. request_changes chains a new approval
// via parent_approval_id with revision_count = parent.revision_count + 1.
type StepApproval struct {
	ent.Schema
}

// Fields of the StepApproval.
func (StepApproval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("step_execution_id").
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "request_changes", "cancelled", "timeout").
			Default("pending"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.JSON("approval_data", map[string]interface{}{}).
			Optional(),
		field.String("approver").
			Optional().
			Nillable(),
		field.Text("feedback").
			Optional().
			Nillable(),
		field.JSON("response_data", map[string]interface{}{}).
			Optional(),
		field.Time("requested_at").
			Default(time.Now).
			Immutable(),
		field.Time("responded_at").
			Optional().
			Nillable(),
		field.Time("expires_at"),
		field.Int("auto_approve_after_seconds").
			Optional().
			Nillable(),
		field.Strings("required_approvers").
			Optional(),
		field.Int("revision_count").
			Default(0),
		field.String("parent_approval_id").
			Optional().
			Nillable(),
	}
}

// Edges of the StepApproval.
func (StepApproval) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("approvals").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Annotations of the StepApproval.
func (StepApproval) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "workflow_step_approvals"},
	}
}

// Indexes of the StepApproval.
func (StepApproval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "step_execution_id", "revision_count").Unique(),
		index.Fields("status"),
		index.Fields("status", "expires_at"),
	}
}
