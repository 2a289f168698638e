package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskRun holds the schema definition for the TaskRun entity.
// One attempt to drive a task through the phase state machine. run_number
// is strictly increasing per task; at most one run per task may be running.
type TaskRun struct {
	ent.Schema
}

// Fields of the TaskRun.
func (TaskRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Int("run_number").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled", "timeout").
			Default("pending"),
		field.Enum("phase").
			Values("created", "analyzing", "planning", "awaiting_approval",
				"executing", "reviewing", "revising", "completing", "done").
			Default("created"),
		field.JSON("plan", map[string]interface{}{}).
			Optional(),
		field.JSON("results", map[string]interface{}{}).
			Optional(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("error_kind").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Int("round_count").
			Default(0).
			Comment("Revision rounds consumed"),
		field.String("branch_name").
			Optional().
			Nillable(),
		field.String("commit_sha").
			Optional().
			Nillable(),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.Enum("git_status").
			Values("pending", "branch_created", "committed", "pushed", "pr_opened", "failed").
			Default("pending"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskRun.
func (TaskRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("runs").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.To("sandbox_executions", SandboxExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TaskRun.
func (TaskRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "run_number").Unique(),
		index.Fields("workspace_id", "project_id"),
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
