package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Workspace holds the schema definition for the Workspace entity.
// Workspaces are the tenancy root: every other entity carries a
// workspace_id and never leaks across that boundary.
type Workspace struct {
	ent.Schema
}

// Fields of the Workspace.
func (Workspace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workspace_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Workspace.
func (Workspace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("projects", Project.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
