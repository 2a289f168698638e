// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/agentmemoryentry"
)

// AgentMemoryEntryCreate is the builder for creating a AgentMemoryEntry entity.
type AgentMemoryEntryCreate struct {
	config
	mutation *AgentMemoryEntryMutation
	hooks    []Hook
}

// SetAgentInstanceID sets the "agent_instance_id" field.
func (_c *AgentMemoryEntryCreate) SetAgentInstanceID(v string) *AgentMemoryEntryCreate {
	_c.mutation.SetAgentInstanceID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentMemoryEntryCreate) SetWorkspaceID(v string) *AgentMemoryEntryCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *AgentMemoryEntryCreate) SetKey(v string) *AgentMemoryEntryCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *AgentMemoryEntryCreate) SetValue(v []byte) *AgentMemoryEntryCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *AgentMemoryEntryCreate) SetSizeBytes(v int) *AgentMemoryEntryCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetReceivedFrom sets the "received_from" field.
func (_c *AgentMemoryEntryCreate) SetReceivedFrom(v string) *AgentMemoryEntryCreate {
	_c.mutation.SetReceivedFrom(v)
	return _c
}

// SetNillableReceivedFrom sets the "received_from" field if the given value is not nil.
func (_c *AgentMemoryEntryCreate) SetNillableReceivedFrom(v *string) *AgentMemoryEntryCreate {
	if v != nil {
		_c.SetReceivedFrom(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentMemoryEntryCreate) SetCreatedAt(v time.Time) *AgentMemoryEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentMemoryEntryCreate) SetNillableCreatedAt(v *time.Time) *AgentMemoryEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAccessedAt sets the "accessed_at" field.
func (_c *AgentMemoryEntryCreate) SetAccessedAt(v time.Time) *AgentMemoryEntryCreate {
	_c.mutation.SetAccessedAt(v)
	return _c
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_c *AgentMemoryEntryCreate) SetNillableAccessedAt(v *time.Time) *AgentMemoryEntryCreate {
	if v != nil {
		_c.SetAccessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentMemoryEntryCreate) SetID(v string) *AgentMemoryEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMemoryEntryMutation object of the builder.
func (_c *AgentMemoryEntryCreate) Mutation() *AgentMemoryEntryMutation {
	return _c.mutation
}

// Save creates the AgentMemoryEntry in the database.
func (_c *AgentMemoryEntryCreate) Save(ctx context.Context) (*AgentMemoryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentMemoryEntryCreate) SaveX(ctx context.Context) *AgentMemoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMemoryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMemoryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentMemoryEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentmemoryentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.AccessedAt(); !ok {
		v := agentmemoryentry.DefaultAccessedAt()
		_c.mutation.SetAccessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentMemoryEntryCreate) check() error {
	if _, ok := _c.mutation.AgentInstanceID(); !ok {
		return &ValidationError{Name: "agent_instance_id", err: errors.New(`ent: missing required field "AgentMemoryEntry.agent_instance_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentMemoryEntry.workspace_id"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "AgentMemoryEntry.key"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "AgentMemoryEntry.value"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "AgentMemoryEntry.size_bytes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentMemoryEntry.created_at"`)}
	}
	if _, ok := _c.mutation.AccessedAt(); !ok {
		return &ValidationError{Name: "accessed_at", err: errors.New(`ent: missing required field "AgentMemoryEntry.accessed_at"`)}
	}
	return nil
}

func (_c *AgentMemoryEntryCreate) sqlSave(ctx context.Context) (*AgentMemoryEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentMemoryEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentMemoryEntryCreate) createSpec() (*AgentMemoryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentMemoryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentmemoryentry.Table, sqlgraph.NewFieldSpec(agentmemoryentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentInstanceID(); ok {
		_spec.SetField(agentmemoryentry.FieldAgentInstanceID, field.TypeString, value)
		_node.AgentInstanceID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(agentmemoryentry.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(agentmemoryentry.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(agentmemoryentry.FieldValue, field.TypeBytes, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(agentmemoryentry.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.ReceivedFrom(); ok {
		_spec.SetField(agentmemoryentry.FieldReceivedFrom, field.TypeString, value)
		_node.ReceivedFrom = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentmemoryentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AccessedAt(); ok {
		_spec.SetField(agentmemoryentry.FieldAccessedAt, field.TypeTime, value)
		_node.AccessedAt = value
	}
	return _node, _spec
}

// AgentMemoryEntryCreateBulk is the builder for creating many AgentMemoryEntry entities in bulk.
type AgentMemoryEntryCreateBulk struct {
	config
	err      error
	builders []*AgentMemoryEntryCreate
}

// Save creates the AgentMemoryEntry entities in the database.
func (_c *AgentMemoryEntryCreateBulk) Save(ctx context.Context) ([]*AgentMemoryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentMemoryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMemoryEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentMemoryEntryCreateBulk) SaveX(ctx context.Context) []*AgentMemoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMemoryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMemoryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
