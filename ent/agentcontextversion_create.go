// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/agentcontext"
	"github.com/mgx-dev/mgx/ent/agentcontextversion"
)

// AgentContextVersionCreate is the builder for creating a AgentContextVersion entity.
type AgentContextVersionCreate struct {
	config
	mutation *AgentContextVersionMutation
	hooks    []Hook
}

// SetContextID sets the "context_id" field.
func (_c *AgentContextVersionCreate) SetContextID(v string) *AgentContextVersionCreate {
	_c.mutation.SetContextID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentContextVersionCreate) SetVersion(v int) *AgentContextVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetData sets the "data" field.
func (_c *AgentContextVersionCreate) SetData(v map[string]interface{}) *AgentContextVersionCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetWrittenBy sets the "written_by" field.
func (_c *AgentContextVersionCreate) SetWrittenBy(v string) *AgentContextVersionCreate {
	_c.mutation.SetWrittenBy(v)
	return _c
}

// SetNillableWrittenBy sets the "written_by" field if the given value is not nil.
func (_c *AgentContextVersionCreate) SetNillableWrittenBy(v *string) *AgentContextVersionCreate {
	if v != nil {
		_c.SetWrittenBy(*v)
	}
	return _c
}

// SetRolledBackFrom sets the "rolled_back_from" field.
func (_c *AgentContextVersionCreate) SetRolledBackFrom(v int) *AgentContextVersionCreate {
	_c.mutation.SetRolledBackFrom(v)
	return _c
}

// SetNillableRolledBackFrom sets the "rolled_back_from" field if the given value is not nil.
func (_c *AgentContextVersionCreate) SetNillableRolledBackFrom(v *int) *AgentContextVersionCreate {
	if v != nil {
		_c.SetRolledBackFrom(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentContextVersionCreate) SetCreatedAt(v time.Time) *AgentContextVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentContextVersionCreate) SetNillableCreatedAt(v *time.Time) *AgentContextVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentContextVersionCreate) SetID(v string) *AgentContextVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetContext sets the "context" edge to the AgentContext entity.
func (_c *AgentContextVersionCreate) SetContext(v *AgentContext) *AgentContextVersionCreate {
	return _c.SetContextID(v.ID)
}

// Mutation returns the AgentContextVersionMutation object of the builder.
func (_c *AgentContextVersionCreate) Mutation() *AgentContextVersionMutation {
	return _c.mutation
}

// Save creates the AgentContextVersion in the database.
func (_c *AgentContextVersionCreate) Save(ctx context.Context) (*AgentContextVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentContextVersionCreate) SaveX(ctx context.Context) *AgentContextVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContextVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContextVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentContextVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentcontextversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentContextVersionCreate) check() error {
	if _, ok := _c.mutation.ContextID(); !ok {
		return &ValidationError{Name: "context_id", err: errors.New(`ent: missing required field "AgentContextVersion.context_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AgentContextVersion.version"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "AgentContextVersion.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentContextVersion.created_at"`)}
	}
	if len(_c.mutation.ContextIDs()) == 0 {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required edge "AgentContextVersion.context"`)}
	}
	return nil
}

func (_c *AgentContextVersionCreate) sqlSave(ctx context.Context) (*AgentContextVersion, error) {
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
			return nil, fmt.Errorf("unexpected AgentContextVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentContextVersionCreate) createSpec() (*AgentContextVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentContextVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentcontextversion.Table, sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agentcontextversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(agentcontextversion.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.WrittenBy(); ok {
		_spec.SetField(agentcontextversion.FieldWrittenBy, field.TypeString, value)
		_node.WrittenBy = value
	}
	if value, ok := _c.mutation.RolledBackFrom(); ok {
		_spec.SetField(agentcontextversion.FieldRolledBackFrom, field.TypeInt, value)
		_node.RolledBackFrom = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentcontextversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ContextIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentcontextversion.ContextTable,
			Columns: []string{agentcontextversion.ContextColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContextID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentContextVersionCreateBulk is the builder for creating many AgentContextVersion entities in bulk.
type AgentContextVersionCreateBulk struct {
	config
	err      error
	builders []*AgentContextVersionCreate
}

// Save creates the AgentContextVersion entities in the database.
func (_c *AgentContextVersionCreateBulk) Save(ctx context.Context) ([]*AgentContextVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentContextVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentContextVersionMutation)
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
func (_c *AgentContextVersionCreateBulk) SaveX(ctx context.Context) []*AgentContextVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContextVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContextVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
