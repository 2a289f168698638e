package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowStepExecution holds the schema definition for the
// WorkflowStepExecution entity. A step execution may enter running only
// after every dependency's step execution is completed or skipped.
type WorkflowStepExecution struct {
	ent.Schema
}

// Fields of the WorkflowStepExecution.
func (WorkflowStepExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_execution_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("step_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "waiting_approval", "completed", "failed", "skipped", "cancelled").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.JSON("input", map[string]interface{}{}).
			Optional(),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.Int("retry_count").
			Default(0),
		field.String("waiting_approval_id").
			Optional().
			Nillable().
			Comment("Persisted suspension marker; the engine resumes from this on restart"),
		field.String("error_kind").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the WorkflowStepExecution.
func (WorkflowStepExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("step_executions").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowStepExecution.
func (WorkflowStepExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "step_id").Unique(),
		index.Fields("status"),
	}
}
