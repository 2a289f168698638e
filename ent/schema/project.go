package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project belongs to a workspace and carries the Git defaults
// (branch prefix, commit template, repository) used by task runs.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("name"),
		field.String("repo_url").
			Optional().
			Nillable().
			Comment("Remote Git repository; empty disables Git integration"),
		field.String("base_branch").
			Default("main"),
		field.String("branch_prefix").
			Default("mgx").
			Comment("Default prefix for run branches: {prefix}/{slug}/run-{n}"),
		field.String("commit_template").
			Default("MGX: {task_name} (run #{run_number})").
			Comment("Accepts {task_name} and {run_number} placeholders"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("projects").
			Field("workspace_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("workflows", Workflow.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("workspace_id", "name").Unique(),
	}
}
