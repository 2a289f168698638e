package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowStep holds the schema definition for the WorkflowStep entity.
type WorkflowStep struct {
	ent.Schema
}

// Fields of the WorkflowStep.
func (WorkflowStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("name"),
		field.Enum("step_type").
			Values("task", "condition", "parallel", "sequential", "agent", "approval"),
		field.Int("step_order").
			Comment("Tie-breaker only; DAG order is authoritative"),
		field.Strings("depends_on_steps").
			Optional(),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Step-type specific config: task_id, condition expression, approval settings, on_failure"),
		field.JSON("retry_policy", map[string]interface{}{}).
			Optional().
			Comment("max_attempts, backoff_base_ms, fatal_errors"),
	}
}

// Edges of the WorkflowStep.
func (WorkflowStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("steps").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowStep.
func (WorkflowStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "step_order"),
	}
}
