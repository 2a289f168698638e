// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/sandboxexecution"
	"github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/ent/taskrun"
)

// TaskRunCreate is the builder for creating a TaskRun entity.
type TaskRunCreate struct {
	config
	mutation *TaskRunMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TaskRunCreate) SetTaskID(v string) *TaskRunCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *TaskRunCreate) SetWorkspaceID(v string) *TaskRunCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TaskRunCreate) SetProjectID(v string) *TaskRunCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetRunNumber sets the "run_number" field.
func (_c *TaskRunCreate) SetRunNumber(v int) *TaskRunCreate {
	_c.mutation.SetRunNumber(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskRunCreate) SetStatus(v taskrun.Status) *TaskRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableStatus(v *taskrun.Status) *TaskRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *TaskRunCreate) SetPhase(v taskrun.Phase) *TaskRunCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillablePhase(v *taskrun.Phase) *TaskRunCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *TaskRunCreate) SetPlan(v map[string]interface{}) *TaskRunCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetResults sets the "results" field.
func (_c *TaskRunCreate) SetResults(v map[string]interface{}) *TaskRunCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskRunCreate) SetStartedAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableStartedAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskRunCreate) SetCompletedAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableCompletedAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TaskRunCreate) SetDurationMs(v int) *TaskRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableDurationMs(v *int) *TaskRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *TaskRunCreate) SetErrorKind(v string) *TaskRunCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableErrorKind(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskRunCreate) SetErrorMessage(v string) *TaskRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableErrorMessage(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRoundCount sets the "round_count" field.
func (_c *TaskRunCreate) SetRoundCount(v int) *TaskRunCreate {
	_c.mutation.SetRoundCount(v)
	return _c
}

// SetNillableRoundCount sets the "round_count" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableRoundCount(v *int) *TaskRunCreate {
	if v != nil {
		_c.SetRoundCount(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *TaskRunCreate) SetBranchName(v string) *TaskRunCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableBranchName(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetBranchName(*v)
	}
	return _c
}

// SetCommitSha sets the "commit_sha" field.
func (_c *TaskRunCreate) SetCommitSha(v string) *TaskRunCreate {
	_c.mutation.SetCommitSha(v)
	return _c
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableCommitSha(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetCommitSha(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *TaskRunCreate) SetPrURL(v string) *TaskRunCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillablePrURL(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetGitStatus sets the "git_status" field.
func (_c *TaskRunCreate) SetGitStatus(v taskrun.GitStatus) *TaskRunCreate {
	_c.mutation.SetGitStatus(v)
	return _c
}

// SetNillableGitStatus sets the "git_status" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableGitStatus(v *taskrun.GitStatus) *TaskRunCreate {
	if v != nil {
		_c.SetGitStatus(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *TaskRunCreate) SetPodID(v string) *TaskRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillablePodID(v *string) *TaskRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *TaskRunCreate) SetLastHeartbeatAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableLastHeartbeatAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskRunCreate) SetCreatedAt(v time.Time) *TaskRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskRunCreate) SetNillableCreatedAt(v *time.Time) *TaskRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskRunCreate) SetID(v string) *TaskRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskRunCreate) SetTask(v *Task) *TaskRunCreate {
	return _c.SetTaskID(v.ID)
}

// AddSandboxExecutionIDs adds the "sandbox_executions" edge to the SandboxExecution entity by IDs.
func (_c *TaskRunCreate) AddSandboxExecutionIDs(ids ...string) *TaskRunCreate {
	_c.mutation.AddSandboxExecutionIDs(ids...)
	return _c
}

// AddSandboxExecutions adds the "sandbox_executions" edges to the SandboxExecution entity.
func (_c *TaskRunCreate) AddSandboxExecutions(v ...*SandboxExecution) *TaskRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSandboxExecutionIDs(ids...)
}

// Mutation returns the TaskRunMutation object of the builder.
func (_c *TaskRunCreate) Mutation() *TaskRunMutation {
	return _c.mutation
}

// Save creates the TaskRun in the database.
func (_c *TaskRunCreate) Save(ctx context.Context) (*TaskRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskRunCreate) SaveX(ctx context.Context) *TaskRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := taskrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Phase(); !ok {
		v := taskrun.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.RoundCount(); !ok {
		v := taskrun.DefaultRoundCount
		_c.mutation.SetRoundCount(v)
	}
	if _, ok := _c.mutation.GitStatus(); !ok {
		v := taskrun.DefaultGitStatus
		_c.mutation.SetGitStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskRunCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskRun.task_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "TaskRun.workspace_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "TaskRun.project_id"`)}
	}
	if _, ok := _c.mutation.RunNumber(); !ok {
		return &ValidationError{Name: "run_number", err: errors.New(`ent: missing required field "TaskRun.run_number"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := taskrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "TaskRun.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := taskrun.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "TaskRun.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoundCount(); !ok {
		return &ValidationError{Name: "round_count", err: errors.New(`ent: missing required field "TaskRun.round_count"`)}
	}
	if _, ok := _c.mutation.GitStatus(); !ok {
		return &ValidationError{Name: "git_status", err: errors.New(`ent: missing required field "TaskRun.git_status"`)}
	}
	if v, ok := _c.mutation.GitStatus(); ok {
		if err := taskrun.GitStatusValidator(v); err != nil {
			return &ValidationError{Name: "git_status", err: fmt.Errorf(`ent: validator failed for field "TaskRun.git_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskRun.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskRun.task"`)}
	}
	return nil
}

func (_c *TaskRunCreate) sqlSave(ctx context.Context) (*TaskRun, error) {
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
			return nil, fmt.Errorf("unexpected TaskRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskRunCreate) createSpec() (*TaskRun, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskrun.Table, sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(taskrun.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(taskrun.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.RunNumber(); ok {
		_spec.SetField(taskrun.FieldRunNumber, field.TypeInt, value)
		_node.RunNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(taskrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(taskrun.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(taskrun.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(taskrun.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(taskrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(taskrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(taskrun.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(taskrun.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(taskrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RoundCount(); ok {
		_spec.SetField(taskrun.FieldRoundCount, field.TypeInt, value)
		_node.RoundCount = value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(taskrun.FieldBranchName, field.TypeString, value)
		_node.BranchName = &value
	}
	if value, ok := _c.mutation.CommitSha(); ok {
		_spec.SetField(taskrun.FieldCommitSha, field.TypeString, value)
		_node.CommitSha = &value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(taskrun.FieldPrURL, field.TypeString, value)
		_node.PrURL = &value
	}
	if value, ok := _c.mutation.GitStatus(); ok {
		_spec.SetField(taskrun.FieldGitStatus, field.TypeEnum, value)
		_node.GitStatus = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(taskrun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(taskrun.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrun.TaskTable,
			Columns: []string{taskrun.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SandboxExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskrun.SandboxExecutionsTable,
			Columns: []string{taskrun.SandboxExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskRunCreateBulk is the builder for creating many TaskRun entities in bulk.
type TaskRunCreateBulk struct {
	config
	err      error
	builders []*TaskRunCreate
}

// Save creates the TaskRun entities in the database.
func (_c *TaskRunCreateBulk) Save(ctx context.Context) ([]*TaskRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskRunMutation)
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
func (_c *TaskRunCreateBulk) SaveX(ctx context.Context) []*TaskRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
