package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentMemoryEntry holds the schema definition for the AgentMemoryEntry
// entity. Per-instance key-value memory with TTL and LRU pruning enforced
// on every write.
type AgentMemoryEntry struct {
	ent.Schema
}

// Fields of the AgentMemoryEntry.
func (AgentMemoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_entry_id").
			Unique().
			Immutable(),
		field.String("agent_instance_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("key"),
		field.Bytes("value").
			Comment("Opaque JSON payload"),
		field.Int("size_bytes"),
		field.String("received_from").
			Optional().
			Nillable().
			Comment("Source instance when the entry arrived via handoff"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("accessed_at").
			Default(time.Now).
			Comment("LRU recency; bumped on read"),
	}
}

// Edges of the AgentMemoryEntry.
func (AgentMemoryEntry) Edges() []ent.Edge {
	return []ent.Edge{}
}

// Indexes of the AgentMemoryEntry.
func (AgentMemoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_instance_id", "key").Unique(),
		index.Fields("agent_instance_id", "accessed_at"),
		index.Fields("created_at"),
	}
}
