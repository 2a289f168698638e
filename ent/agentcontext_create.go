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

// AgentContextCreate is the builder for creating a AgentContext entity.
type AgentContextCreate struct {
	config
	mutation *AgentContextMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentContextCreate) SetWorkspaceID(v string) *AgentContextCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *AgentContextCreate) SetProjectID(v string) *AgentContextCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AgentContextCreate) SetName(v string) *AgentContextCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCurrentVersion sets the "current_version" field.
func (_c *AgentContextCreate) SetCurrentVersion(v int) *AgentContextCreate {
	_c.mutation.SetCurrentVersion(v)
	return _c
}

// SetNillableCurrentVersion sets the "current_version" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableCurrentVersion(v *int) *AgentContextCreate {
	if v != nil {
		_c.SetCurrentVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentContextCreate) SetCreatedAt(v time.Time) *AgentContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableCreatedAt(v *time.Time) *AgentContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentContextCreate) SetUpdatedAt(v time.Time) *AgentContextCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableUpdatedAt(v *time.Time) *AgentContextCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentContextCreate) SetID(v string) *AgentContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddVersionIDs adds the "versions" edge to the AgentContextVersion entity by IDs.
func (_c *AgentContextCreate) AddVersionIDs(ids ...string) *AgentContextCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the AgentContextVersion entity.
func (_c *AgentContextCreate) AddVersions(v ...*AgentContextVersion) *AgentContextCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// Mutation returns the AgentContextMutation object of the builder.
func (_c *AgentContextCreate) Mutation() *AgentContextMutation {
	return _c.mutation
}

// Save creates the AgentContext in the database.
func (_c *AgentContextCreate) Save(ctx context.Context) (*AgentContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentContextCreate) SaveX(ctx context.Context) *AgentContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentContextCreate) defaults() {
	if _, ok := _c.mutation.CurrentVersion(); !ok {
		v := agentcontext.DefaultCurrentVersion
		_c.mutation.SetCurrentVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentcontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentcontext.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentContextCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentContext.workspace_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "AgentContext.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AgentContext.name"`)}
	}
	if _, ok := _c.mutation.CurrentVersion(); !ok {
		return &ValidationError{Name: "current_version", err: errors.New(`ent: missing required field "AgentContext.current_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentContext.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentContext.updated_at"`)}
	}
	return nil
}

func (_c *AgentContextCreate) sqlSave(ctx context.Context) (*AgentContext, error) {
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
			return nil, fmt.Errorf("unexpected AgentContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentContextCreate) createSpec() (*AgentContext, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentcontext.Table, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(agentcontext.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(agentcontext.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agentcontext.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CurrentVersion(); ok {
		_spec.SetField(agentcontext.FieldCurrentVersion, field.TypeInt, value)
		_node.CurrentVersion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentcontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentcontext.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.VersionsTable,
			Columns: []string{agentcontext.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentContextCreateBulk is the builder for creating many AgentContext entities in bulk.
type AgentContextCreateBulk struct {
	config
	err      error
	builders []*AgentContextCreate
}

// Save creates the AgentContext entities in the database.
func (_c *AgentContextCreateBulk) Save(ctx context.Context) ([]*AgentContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentContextMutation)
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
func (_c *AgentContextCreateBulk) SaveX(ctx context.Context) []*AgentContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
