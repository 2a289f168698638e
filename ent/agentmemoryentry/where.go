// Code generated by ent, DO NOT EDIT.

package agentmemoryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldContainsFold(FieldID, id))
}

// AgentInstanceID applies equality check predicate on the "agent_instance_id" field. It's identical to AgentInstanceIDEQ.
func AgentInstanceID(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldAgentInstanceID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldWorkspaceID, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldKey, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v []byte) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldValue, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldSizeBytes, v))
}

// ReceivedFrom applies equality check predicate on the "received_from" field. It's identical to ReceivedFromEQ.
func ReceivedFrom(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldReceivedFrom, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// AccessedAt applies equality check predicate on the "accessed_at" field. It's identical to AccessedAtEQ.
func AccessedAt(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldAccessedAt, v))
}

// AgentInstanceIDEQ applies the EQ predicate on the "agent_instance_id" field.
func AgentInstanceIDEQ(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldAgentInstanceID, v))
}

// AgentInstanceIDNEQ applies the NEQ predicate on the "agent_instance_id" field.
func AgentInstanceIDNEQ(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNEQ(FieldAgentInstanceID, v))
}

// AgentInstanceIDIn applies the In predicate on the "agent_instance_id" field.
func AgentInstanceIDIn(vs ...string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldIn(FieldAgentInstanceID, vs...))
}

// AgentInstanceIDNotIn applies the NotIn predicate on the "agent_instance_id" field.
func AgentInstanceIDNotIn(vs ...string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNotIn(FieldAgentInstanceID, vs...))
}

// AgentInstanceIDGT applies the GT predicate on the "agent_instance_id" field.
func AgentInstanceIDGT(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGT(FieldAgentInstanceID, v))
}

// AgentInstanceIDGTE applies the GTE predicate on the "agent_instance_id" field.
func AgentInstanceIDGTE(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGTE(FieldAgentInstanceID, v))
}

// AgentInstanceIDLT applies the LT predicate on the "agent_instance_id" field.
func AgentInstanceIDLT(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLT(FieldAgentInstanceID, v))
}

// AgentInstanceIDLTE applies the LTE predicate on the "agent_instance_id" field.
func AgentInstanceIDLTE(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLTE(FieldAgentInstanceID, v))
}

// AgentInstanceIDContains applies the Contains predicate on the "agent_instance_id" field.
func AgentInstanceIDContains(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldContains(FieldAgentInstanceID, v))
}

// AgentInstanceIDHasPrefix applies the HasPrefix predicate on the "agent_instance_id" field.
func AgentInstanceIDHasPrefix(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldHasPrefix(FieldAgentInstanceID, v))
}

// AgentInstanceIDHasSuffix applies the HasSuffix predicate on the "agent_instance_id" field.
func AgentInstanceIDHasSuffix(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldHasSuffix(FieldAgentInstanceID, v))
}

// AgentInstanceIDEqualFold applies the EqualFold predicate on the "agent_instance_id" field.
func AgentInstanceIDEqualFold(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEqualFold(FieldAgentInstanceID, v))
}

// AgentInstanceIDContainsFold applies the ContainsFold predicate on the "agent_instance_id" field.
func AgentInstanceIDContainsFold(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldContainsFold(FieldAgentInstanceID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldContainsFold(FieldKey, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v []byte) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v []byte) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...[]byte) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...[]byte) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v []byte) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v []byte) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v []byte) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v []byte) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLTE(FieldValue, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLTE(FieldSizeBytes, v))
}

// ReceivedFromEQ applies the EQ predicate on the "received_from" field.
func ReceivedFromEQ(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldReceivedFrom, v))
}

// ReceivedFromNEQ applies the NEQ predicate on the "received_from" field.
func ReceivedFromNEQ(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNEQ(FieldReceivedFrom, v))
}

// ReceivedFromIn applies the In predicate on the "received_from" field.
func ReceivedFromIn(vs ...string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldIn(FieldReceivedFrom, vs...))
}

// ReceivedFromNotIn applies the NotIn predicate on the "received_from" field.
func ReceivedFromNotIn(vs ...string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNotIn(FieldReceivedFrom, vs...))
}

// ReceivedFromGT applies the GT predicate on the "received_from" field.
func ReceivedFromGT(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGT(FieldReceivedFrom, v))
}

// ReceivedFromGTE applies the GTE predicate on the "received_from" field.
func ReceivedFromGTE(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGTE(FieldReceivedFrom, v))
}

// ReceivedFromLT applies the LT predicate on the "received_from" field.
func ReceivedFromLT(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLT(FieldReceivedFrom, v))
}

// ReceivedFromLTE applies the LTE predicate on the "received_from" field.
func ReceivedFromLTE(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLTE(FieldReceivedFrom, v))
}

// ReceivedFromContains applies the Contains predicate on the "received_from" field.
func ReceivedFromContains(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldContains(FieldReceivedFrom, v))
}

// ReceivedFromHasPrefix applies the HasPrefix predicate on the "received_from" field.
func ReceivedFromHasPrefix(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldHasPrefix(FieldReceivedFrom, v))
}

// ReceivedFromHasSuffix applies the HasSuffix predicate on the "received_from" field.
func ReceivedFromHasSuffix(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldHasSuffix(FieldReceivedFrom, v))
}

// ReceivedFromIsNil applies the IsNil predicate on the "received_from" field.
func ReceivedFromIsNil() predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldIsNull(FieldReceivedFrom))
}

// ReceivedFromNotNil applies the NotNil predicate on the "received_from" field.
func ReceivedFromNotNil() predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNotNull(FieldReceivedFrom))
}

// ReceivedFromEqualFold applies the EqualFold predicate on the "received_from" field.
func ReceivedFromEqualFold(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEqualFold(FieldReceivedFrom, v))
}

// ReceivedFromContainsFold applies the ContainsFold predicate on the "received_from" field.
func ReceivedFromContainsFold(v string) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldContainsFold(FieldReceivedFrom, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// AccessedAtEQ applies the EQ predicate on the "accessed_at" field.
func AccessedAtEQ(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldEQ(FieldAccessedAt, v))
}

// AccessedAtNEQ applies the NEQ predicate on the "accessed_at" field.
func AccessedAtNEQ(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNEQ(FieldAccessedAt, v))
}

// AccessedAtIn applies the In predicate on the "accessed_at" field.
func AccessedAtIn(vs ...time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldIn(FieldAccessedAt, vs...))
}

// AccessedAtNotIn applies the NotIn predicate on the "accessed_at" field.
func AccessedAtNotIn(vs ...time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldNotIn(FieldAccessedAt, vs...))
}

// AccessedAtGT applies the GT predicate on the "accessed_at" field.
func AccessedAtGT(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGT(FieldAccessedAt, v))
}

// AccessedAtGTE applies the GTE predicate on the "accessed_at" field.
func AccessedAtGTE(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldGTE(FieldAccessedAt, v))
}

// AccessedAtLT applies the LT predicate on the "accessed_at" field.
func AccessedAtLT(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLT(FieldAccessedAt, v))
}

// AccessedAtLTE applies the LTE predicate on the "accessed_at" field.
func AccessedAtLTE(v time.Time) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.FieldLTE(FieldAccessedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentMemoryEntry) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentMemoryEntry) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentMemoryEntry) predicate.AgentMemoryEntry {
	return predicate.AgentMemoryEntry(sql.NotPredicates(p))
}
