// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/agentmemoryentry"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// AgentMemoryEntryUpdate is the builder for updating AgentMemoryEntry entities.
type AgentMemoryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMemoryEntryMutation
}

// Where appends a list predicates to the AgentMemoryEntryUpdate builder.
func (_u *AgentMemoryEntryUpdate) Where(ps ...predicate.AgentMemoryEntry) *AgentMemoryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *AgentMemoryEntryUpdate) SetKey(v string) *AgentMemoryEntryUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *AgentMemoryEntryUpdate) SetNillableKey(v *string) *AgentMemoryEntryUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *AgentMemoryEntryUpdate) SetValue(v []byte) *AgentMemoryEntryUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AgentMemoryEntryUpdate) SetSizeBytes(v int) *AgentMemoryEntryUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AgentMemoryEntryUpdate) SetNillableSizeBytes(v *int) *AgentMemoryEntryUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AgentMemoryEntryUpdate) AddSizeBytes(v int) *AgentMemoryEntryUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetReceivedFrom sets the "received_from" field.
func (_u *AgentMemoryEntryUpdate) SetReceivedFrom(v string) *AgentMemoryEntryUpdate {
	_u.mutation.SetReceivedFrom(v)
	return _u
}

// SetNillableReceivedFrom sets the "received_from" field if the given value is not nil.
func (_u *AgentMemoryEntryUpdate) SetNillableReceivedFrom(v *string) *AgentMemoryEntryUpdate {
	if v != nil {
		_u.SetReceivedFrom(*v)
	}
	return _u
}

// ClearReceivedFrom clears the value of the "received_from" field.
func (_u *AgentMemoryEntryUpdate) ClearReceivedFrom() *AgentMemoryEntryUpdate {
	_u.mutation.ClearReceivedFrom()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentMemoryEntryUpdate) SetCreatedAt(v time.Time) *AgentMemoryEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentMemoryEntryUpdate) SetNillableCreatedAt(v *time.Time) *AgentMemoryEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAccessedAt sets the "accessed_at" field.
func (_u *AgentMemoryEntryUpdate) SetAccessedAt(v time.Time) *AgentMemoryEntryUpdate {
	_u.mutation.SetAccessedAt(v)
	return _u
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_u *AgentMemoryEntryUpdate) SetNillableAccessedAt(v *time.Time) *AgentMemoryEntryUpdate {
	if v != nil {
		_u.SetAccessedAt(*v)
	}
	return _u
}

// Mutation returns the AgentMemoryEntryMutation object of the builder.
func (_u *AgentMemoryEntryUpdate) Mutation() *AgentMemoryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentMemoryEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentMemoryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentMemoryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentMemoryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentMemoryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentmemoryentry.Table, agentmemoryentry.Columns, sqlgraph.NewFieldSpec(agentmemoryentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(agentmemoryentry.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(agentmemoryentry.FieldValue, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(agentmemoryentry.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(agentmemoryentry.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReceivedFrom(); ok {
		_spec.SetField(agentmemoryentry.FieldReceivedFrom, field.TypeString, value)
	}
	if _u.mutation.ReceivedFromCleared() {
		_spec.ClearField(agentmemoryentry.FieldReceivedFrom, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agentmemoryentry.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccessedAt(); ok {
		_spec.SetField(agentmemoryentry.FieldAccessedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentmemoryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentMemoryEntryUpdateOne is the builder for updating a single AgentMemoryEntry entity.
type AgentMemoryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMemoryEntryMutation
}

// SetKey sets the "key" field.
func (_u *AgentMemoryEntryUpdateOne) SetKey(v string) *AgentMemoryEntryUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *AgentMemoryEntryUpdateOne) SetNillableKey(v *string) *AgentMemoryEntryUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *AgentMemoryEntryUpdateOne) SetValue(v []byte) *AgentMemoryEntryUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AgentMemoryEntryUpdateOne) SetSizeBytes(v int) *AgentMemoryEntryUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AgentMemoryEntryUpdateOne) SetNillableSizeBytes(v *int) *AgentMemoryEntryUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AgentMemoryEntryUpdateOne) AddSizeBytes(v int) *AgentMemoryEntryUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetReceivedFrom sets the "received_from" field.
func (_u *AgentMemoryEntryUpdateOne) SetReceivedFrom(v string) *AgentMemoryEntryUpdateOne {
	_u.mutation.SetReceivedFrom(v)
	return _u
}

// SetNillableReceivedFrom sets the "received_from" field if the given value is not nil.
func (_u *AgentMemoryEntryUpdateOne) SetNillableReceivedFrom(v *string) *AgentMemoryEntryUpdateOne {
	if v != nil {
		_u.SetReceivedFrom(*v)
	}
	return _u
}

// ClearReceivedFrom clears the value of the "received_from" field.
func (_u *AgentMemoryEntryUpdateOne) ClearReceivedFrom() *AgentMemoryEntryUpdateOne {
	_u.mutation.ClearReceivedFrom()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentMemoryEntryUpdateOne) SetCreatedAt(v time.Time) *AgentMemoryEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentMemoryEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *AgentMemoryEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAccessedAt sets the "accessed_at" field.
func (_u *AgentMemoryEntryUpdateOne) SetAccessedAt(v time.Time) *AgentMemoryEntryUpdateOne {
	_u.mutation.SetAccessedAt(v)
	return _u
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_u *AgentMemoryEntryUpdateOne) SetNillableAccessedAt(v *time.Time) *AgentMemoryEntryUpdateOne {
	if v != nil {
		_u.SetAccessedAt(*v)
	}
	return _u
}

// Mutation returns the AgentMemoryEntryMutation object of the builder.
func (_u *AgentMemoryEntryUpdateOne) Mutation() *AgentMemoryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentMemoryEntryUpdate builder.
func (_u *AgentMemoryEntryUpdateOne) Where(ps ...predicate.AgentMemoryEntry) *AgentMemoryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentMemoryEntryUpdateOne) Select(field string, fields ...string) *AgentMemoryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentMemoryEntry entity.
func (_u *AgentMemoryEntryUpdateOne) Save(ctx context.Context) (*AgentMemoryEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentMemoryEntryUpdateOne) SaveX(ctx context.Context) *AgentMemoryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentMemoryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentMemoryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentMemoryEntryUpdateOne) sqlSave(ctx context.Context) (_node *AgentMemoryEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentmemoryentry.Table, agentmemoryentry.Columns, sqlgraph.NewFieldSpec(agentmemoryentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentMemoryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentmemoryentry.FieldID)
		for _, f := range fields {
			if !agentmemoryentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentmemoryentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(agentmemoryentry.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(agentmemoryentry.FieldValue, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(agentmemoryentry.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(agentmemoryentry.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReceivedFrom(); ok {
		_spec.SetField(agentmemoryentry.FieldReceivedFrom, field.TypeString, value)
	}
	if _u.mutation.ReceivedFromCleared() {
		_spec.ClearField(agentmemoryentry.FieldReceivedFrom, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agentmemoryentry.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccessedAt(); ok {
		_spec.SetField(agentmemoryentry.FieldAccessedAt, field.TypeTime, value)
	}
	_node = &AgentMemoryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentmemoryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
