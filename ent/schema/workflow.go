package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity.
// A workflow is a DAG of steps. Steps reference each other by ID through
// depends_on_steps; the graph is validated acyclic before execution.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("workflows").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", WorkflowStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", WorkflowExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "project_id"),
	}
}
