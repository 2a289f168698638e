package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A task is a user-submitted natural-language coding request. Its counters
// maintain the invariant total_runs = successful_runs + failed_runs +
// in_progress and are mutated only by the task executor.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.Text("description"),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Recognized task options: max_rounds, budget_multiplier, auto_approve_plan, target_stack, output_mode, constraints, ..."),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled", "timeout").
			Default("pending"),
		field.Int("max_rounds").
			Default(3),
		field.Int("max_revision_rounds").
			Default(2),
		field.String("branch_prefix").
			Optional().
			Nillable().
			Comment("Overrides the project default when set"),
		field.String("commit_template").
			Optional().
			Nillable(),
		field.Int("total_runs").
			Default(0),
		field.Int("successful_runs").
			Default(0),
		field.Int("failed_runs").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("runs", TaskRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "project_id"),
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}
