package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SandboxExecution holds the schema definition for the SandboxExecution
// entity. One isolated container invocation of generated code.
type SandboxExecution struct {
	ent.Schema
}

// Fields of the SandboxExecution.
func (SandboxExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sandbox_execution_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("language"),
		field.String("command"),
		field.String("code_location").
			Optional(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "timeout", "killed").
			Default("pending"),
		field.Text("stdout").
			Optional(),
		field.Text("stderr").
			Optional(),
		field.Int("exit_code").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int("peak_memory_mb").
			Optional().
			Nillable(),
		field.Float("cpu_percent").
			Optional().
			Nillable(),
		field.String("container_id").
			Optional().
			Nillable(),
		field.Int("timeout_seconds").
			Default(120),
		field.Int("memory_limit_mb").
			Default(512),
		field.String("error_type").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the SandboxExecution.
func (SandboxExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", TaskRun.Type).
			Ref("sandbox_executions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SandboxExecution.
func (SandboxExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "project_id"),
		index.Fields("status"),
	}
}
