// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mgx-dev/mgx/ent/agentcontext"
	"github.com/mgx-dev/mgx/ent/agentcontextversion"
	"github.com/mgx-dev/mgx/ent/agentdefinition"
	"github.com/mgx-dev/mgx/ent/agentinstance"
	"github.com/mgx-dev/mgx/ent/agentmemoryentry"
	"github.com/mgx-dev/mgx/ent/event"
	"github.com/mgx-dev/mgx/ent/predicate"
	"github.com/mgx-dev/mgx/ent/project"
	"github.com/mgx-dev/mgx/ent/sandboxexecution"
	"github.com/mgx-dev/mgx/ent/stepapproval"
	"github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/ent/taskrun"
	"github.com/mgx-dev/mgx/ent/workflow"
	"github.com/mgx-dev/mgx/ent/workflowexecution"
	"github.com/mgx-dev/mgx/ent/workflowstep"
	"github.com/mgx-dev/mgx/ent/workflowstepexecution"
	"github.com/mgx-dev/mgx/ent/workspace"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentContext          = "AgentContext"
	TypeAgentContextVersion   = "AgentContextVersion"
	TypeAgentDefinition       = "AgentDefinition"
	TypeAgentInstance         = "AgentInstance"
	TypeAgentMemoryEntry      = "AgentMemoryEntry"
	TypeEvent                 = "Event"
	TypeProject               = "Project"
	TypeSandboxExecution      = "SandboxExecution"
	TypeStepApproval          = "StepApproval"
	TypeTask                  = "Task"
	TypeTaskRun               = "TaskRun"
	TypeWorkflow              = "Workflow"
	TypeWorkflowExecution     = "WorkflowExecution"
	TypeWorkflowStep          = "WorkflowStep"
	TypeWorkflowStepExecution = "WorkflowStepExecution"
	TypeWorkspace             = "Workspace"
)

// AgentContextMutation represents an operation that mutates the AgentContext nodes in the graph.
type AgentContextMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	workspace_id       *string
	project_id         *string
	name               *string
	current_version    *int
	addcurrent_version *int
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	versions           map[string]struct{}
	removedversions    map[string]struct{}
	clearedversions    bool
	done               bool
	oldValue           func(context.Context) (*AgentContext, error)
	predicates         []predicate.AgentContext
}

var _ ent.Mutation = (*AgentContextMutation)(nil)

// agentcontextOption allows management of the mutation configuration using functional options.
type agentcontextOption func(*AgentContextMutation)

// newAgentContextMutation creates new mutation for the AgentContext entity.
func newAgentContextMutation(c config, op Op, opts ...agentcontextOption) *AgentContextMutation {
	m := &AgentContextMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentContextID sets the ID field of the mutation.
func withAgentContextID(id string) agentcontextOption {
	return func(m *AgentContextMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentContext
		)
		m.oldValue = func(ctx context.Context) (*AgentContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentContext sets the old AgentContext of the mutation.
func withAgentContext(node *AgentContext) agentcontextOption {
	return func(m *AgentContextMutation) {
		m.oldValue = func(context.Context) (*AgentContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentContext entities.
func (m *AgentContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentContextMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentContextMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentContextMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *AgentContextMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AgentContextMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AgentContextMutation) ResetProjectID() {
	m.project_id = nil
}

// SetName sets the "name" field.
func (m *AgentContextMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentContextMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentContextMutation) ResetName() {
	m.name = nil
}

// SetCurrentVersion sets the "current_version" field.
func (m *AgentContextMutation) SetCurrentVersion(i int) {
	m.current_version = &i
	m.addcurrent_version = nil
}

// CurrentVersion returns the value of the "current_version" field in the mutation.
func (m *AgentContextMutation) CurrentVersion() (r int, exists bool) {
	v := m.current_version
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentVersion returns the old "current_version" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldCurrentVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentVersion: %w", err)
	}
	return oldValue.CurrentVersion, nil
}

// AddCurrentVersion adds i to the "current_version" field.
func (m *AgentContextMutation) AddCurrentVersion(i int) {
	if m.addcurrent_version != nil {
		*m.addcurrent_version += i
	} else {
		m.addcurrent_version = &i
	}
}

// AddedCurrentVersion returns the value that was added to the "current_version" field in this mutation.
func (m *AgentContextMutation) AddedCurrentVersion() (r int, exists bool) {
	v := m.addcurrent_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentVersion resets all changes to the "current_version" field.
func (m *AgentContextMutation) ResetCurrentVersion() {
	m.current_version = nil
	m.addcurrent_version = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentContextMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentContextMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentContextMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddVersionIDs adds the "versions" edge to the AgentContextVersion entity by ids.
func (m *AgentContextMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the AgentContextVersion entity.
func (m *AgentContextMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the AgentContextVersion entity was cleared.
func (m *AgentContextMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the AgentContextVersion entity by IDs.
func (m *AgentContextMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the AgentContextVersion entity.
func (m *AgentContextMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *AgentContextMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *AgentContextMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// Where appends a list predicates to the AgentContextMutation builder.
func (m *AgentContextMutation) Where(ps ...predicate.AgentContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentContext).
func (m *AgentContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentContextMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workspace_id != nil {
		fields = append(fields, agentcontext.FieldWorkspaceID)
	}
	if m.project_id != nil {
		fields = append(fields, agentcontext.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, agentcontext.FieldName)
	}
	if m.current_version != nil {
		fields = append(fields, agentcontext.FieldCurrentVersion)
	}
	if m.created_at != nil {
		fields = append(fields, agentcontext.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentcontext.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentcontext.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentcontext.FieldProjectID:
		return m.ProjectID()
	case agentcontext.FieldName:
		return m.Name()
	case agentcontext.FieldCurrentVersion:
		return m.CurrentVersion()
	case agentcontext.FieldCreatedAt:
		return m.CreatedAt()
	case agentcontext.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentcontext.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentcontext.FieldProjectID:
		return m.OldProjectID(ctx)
	case agentcontext.FieldName:
		return m.OldName(ctx)
	case agentcontext.FieldCurrentVersion:
		return m.OldCurrentVersion(ctx)
	case agentcontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentcontext.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentcontext.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentcontext.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case agentcontext.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentcontext.FieldCurrentVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentVersion(v)
		return nil
	case agentcontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentcontext.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentContextMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_version != nil {
		fields = append(fields, agentcontext.FieldCurrentVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentContextMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentcontext.FieldCurrentVersion:
		return m.AddedCurrentVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentcontext.FieldCurrentVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentVersion(v)
		return nil
	}
	return fmt.Errorf("unknown AgentContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentContextMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentContextMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentContextMutation) ResetField(name string) error {
	switch name {
	case agentcontext.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentcontext.FieldProjectID:
		m.ResetProjectID()
		return nil
	case agentcontext.FieldName:
		m.ResetName()
		return nil
	case agentcontext.FieldCurrentVersion:
		m.ResetCurrentVersion()
		return nil
	case agentcontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentcontext.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.versions != nil {
		edges = append(edges, agentcontext.EdgeVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentContextMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentcontext.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedversions != nil {
		edges = append(edges, agentcontext.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentContextMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentcontext.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedversions {
		edges = append(edges, agentcontext.EdgeVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentContextMutation) EdgeCleared(name string) bool {
	switch name {
	case agentcontext.EdgeVersions:
		return m.clearedversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentContextMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentContextMutation) ResetEdge(name string) error {
	switch name {
	case agentcontext.EdgeVersions:
		m.ResetVersions()
		return nil
	}
	return fmt.Errorf("unknown AgentContext edge %s", name)
}

// AgentContextVersionMutation represents an operation that mutates the AgentContextVersion nodes in the graph.
type AgentContextVersionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	version             *int
	addversion          *int
	data                *map[string]interface{}
	written_by          *string
	rolled_back_from    *int
	addrolled_back_from *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	context             *string
	clearedcontext      bool
	done                bool
	oldValue            func(context.Context) (*AgentContextVersion, error)
	predicates          []predicate.AgentContextVersion
}

var _ ent.Mutation = (*AgentContextVersionMutation)(nil)

// agentcontextversionOption allows management of the mutation configuration using functional options.
type agentcontextversionOption func(*AgentContextVersionMutation)

// newAgentContextVersionMutation creates new mutation for the AgentContextVersion entity.
func newAgentContextVersionMutation(c config, op Op, opts ...agentcontextversionOption) *AgentContextVersionMutation {
	m := &AgentContextVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentContextVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentContextVersionID sets the ID field of the mutation.
func withAgentContextVersionID(id string) agentcontextversionOption {
	return func(m *AgentContextVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentContextVersion
		)
		m.oldValue = func(ctx context.Context) (*AgentContextVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentContextVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentContextVersion sets the old AgentContextVersion of the mutation.
func withAgentContextVersion(node *AgentContextVersion) agentcontextversionOption {
	return func(m *AgentContextVersionMutation) {
		m.oldValue = func(context.Context) (*AgentContextVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentContextVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentContextVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentContextVersion entities.
func (m *AgentContextVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentContextVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentContextVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentContextVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContextID sets the "context_id" field.
func (m *AgentContextVersionMutation) SetContextID(s string) {
	m.context = &s
}

// ContextID returns the value of the "context_id" field in the mutation.
func (m *AgentContextVersionMutation) ContextID() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContextID returns the old "context_id" field's value of the AgentContextVersion entity.
// If the AgentContextVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextVersionMutation) OldContextID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextID: %w", err)
	}
	return oldValue.ContextID, nil
}

// ResetContextID resets all changes to the "context_id" field.
func (m *AgentContextVersionMutation) ResetContextID() {
	m.context = nil
}

// SetVersion sets the "version" field.
func (m *AgentContextVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentContextVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AgentContextVersion entity.
// If the AgentContextVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AgentContextVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AgentContextVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentContextVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetData sets the "data" field.
func (m *AgentContextVersionMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *AgentContextVersionMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the AgentContextVersion entity.
// If the AgentContextVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextVersionMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *AgentContextVersionMutation) ResetData() {
	m.data = nil
}

// SetWrittenBy sets the "written_by" field.
func (m *AgentContextVersionMutation) SetWrittenBy(s string) {
	m.written_by = &s
}

// WrittenBy returns the value of the "written_by" field in the mutation.
func (m *AgentContextVersionMutation) WrittenBy() (r string, exists bool) {
	v := m.written_by
	if v == nil {
		return
	}
	return *v, true
}

// OldWrittenBy returns the old "written_by" field's value of the AgentContextVersion entity.
// If the AgentContextVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextVersionMutation) OldWrittenBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWrittenBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWrittenBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWrittenBy: %w", err)
	}
	return oldValue.WrittenBy, nil
}

// ClearWrittenBy clears the value of the "written_by" field.
func (m *AgentContextVersionMutation) ClearWrittenBy() {
	m.written_by = nil
	m.clearedFields[agentcontextversion.FieldWrittenBy] = struct{}{}
}

// WrittenByCleared returns if the "written_by" field was cleared in this mutation.
func (m *AgentContextVersionMutation) WrittenByCleared() bool {
	_, ok := m.clearedFields[agentcontextversion.FieldWrittenBy]
	return ok
}

// ResetWrittenBy resets all changes to the "written_by" field.
func (m *AgentContextVersionMutation) ResetWrittenBy() {
	m.written_by = nil
	delete(m.clearedFields, agentcontextversion.FieldWrittenBy)
}

// SetRolledBackFrom sets the "rolled_back_from" field.
func (m *AgentContextVersionMutation) SetRolledBackFrom(i int) {
	m.rolled_back_from = &i
	m.addrolled_back_from = nil
}

// RolledBackFrom returns the value of the "rolled_back_from" field in the mutation.
func (m *AgentContextVersionMutation) RolledBackFrom() (r int, exists bool) {
	v := m.rolled_back_from
	if v == nil {
		return
	}
	return *v, true
}

// OldRolledBackFrom returns the old "rolled_back_from" field's value of the AgentContextVersion entity.
// If the AgentContextVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextVersionMutation) OldRolledBackFrom(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRolledBackFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRolledBackFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRolledBackFrom: %w", err)
	}
	return oldValue.RolledBackFrom, nil
}

// AddRolledBackFrom adds i to the "rolled_back_from" field.
func (m *AgentContextVersionMutation) AddRolledBackFrom(i int) {
	if m.addrolled_back_from != nil {
		*m.addrolled_back_from += i
	} else {
		m.addrolled_back_from = &i
	}
}

// AddedRolledBackFrom returns the value that was added to the "rolled_back_from" field in this mutation.
func (m *AgentContextVersionMutation) AddedRolledBackFrom() (r int, exists bool) {
	v := m.addrolled_back_from
	if v == nil {
		return
	}
	return *v, true
}

// ClearRolledBackFrom clears the value of the "rolled_back_from" field.
func (m *AgentContextVersionMutation) ClearRolledBackFrom() {
	m.rolled_back_from = nil
	m.addrolled_back_from = nil
	m.clearedFields[agentcontextversion.FieldRolledBackFrom] = struct{}{}
}

// RolledBackFromCleared returns if the "rolled_back_from" field was cleared in this mutation.
func (m *AgentContextVersionMutation) RolledBackFromCleared() bool {
	_, ok := m.clearedFields[agentcontextversion.FieldRolledBackFrom]
	return ok
}

// ResetRolledBackFrom resets all changes to the "rolled_back_from" field.
func (m *AgentContextVersionMutation) ResetRolledBackFrom() {
	m.rolled_back_from = nil
	m.addrolled_back_from = nil
	delete(m.clearedFields, agentcontextversion.FieldRolledBackFrom)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentContextVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentContextVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentContextVersion entity.
// If the AgentContextVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentContextVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearContext clears the "context" edge to the AgentContext entity.
func (m *AgentContextVersionMutation) ClearContext() {
	m.clearedcontext = true
	m.clearedFields[agentcontextversion.FieldContextID] = struct{}{}
}

// ContextCleared reports if the "context" edge to the AgentContext entity was cleared.
func (m *AgentContextVersionMutation) ContextCleared() bool {
	return m.clearedcontext
}

// ContextIDs returns the "context" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContextID instead. It exists only for internal usage by the builders.
func (m *AgentContextVersionMutation) ContextIDs() (ids []string) {
	if id := m.context; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContext resets all changes to the "context" edge.
func (m *AgentContextVersionMutation) ResetContext() {
	m.context = nil
	m.clearedcontext = false
}

// Where appends a list predicates to the AgentContextVersionMutation builder.
func (m *AgentContextVersionMutation) Where(ps ...predicate.AgentContextVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentContextVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentContextVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentContextVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentContextVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentContextVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentContextVersion).
func (m *AgentContextVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentContextVersionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.context != nil {
		fields = append(fields, agentcontextversion.FieldContextID)
	}
	if m.version != nil {
		fields = append(fields, agentcontextversion.FieldVersion)
	}
	if m.data != nil {
		fields = append(fields, agentcontextversion.FieldData)
	}
	if m.written_by != nil {
		fields = append(fields, agentcontextversion.FieldWrittenBy)
	}
	if m.rolled_back_from != nil {
		fields = append(fields, agentcontextversion.FieldRolledBackFrom)
	}
	if m.created_at != nil {
		fields = append(fields, agentcontextversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentContextVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentcontextversion.FieldContextID:
		return m.ContextID()
	case agentcontextversion.FieldVersion:
		return m.Version()
	case agentcontextversion.FieldData:
		return m.Data()
	case agentcontextversion.FieldWrittenBy:
		return m.WrittenBy()
	case agentcontextversion.FieldRolledBackFrom:
		return m.RolledBackFrom()
	case agentcontextversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentContextVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentcontextversion.FieldContextID:
		return m.OldContextID(ctx)
	case agentcontextversion.FieldVersion:
		return m.OldVersion(ctx)
	case agentcontextversion.FieldData:
		return m.OldData(ctx)
	case agentcontextversion.FieldWrittenBy:
		return m.OldWrittenBy(ctx)
	case agentcontextversion.FieldRolledBackFrom:
		return m.OldRolledBackFrom(ctx)
	case agentcontextversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentContextVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentContextVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentcontextversion.FieldContextID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextID(v)
		return nil
	case agentcontextversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agentcontextversion.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case agentcontextversion.FieldWrittenBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWrittenBy(v)
		return nil
	case agentcontextversion.FieldRolledBackFrom:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRolledBackFrom(v)
		return nil
	case agentcontextversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentContextVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentContextVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, agentcontextversion.FieldVersion)
	}
	if m.addrolled_back_from != nil {
		fields = append(fields, agentcontextversion.FieldRolledBackFrom)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentContextVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentcontextversion.FieldVersion:
		return m.AddedVersion()
	case agentcontextversion.FieldRolledBackFrom:
		return m.AddedRolledBackFrom()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentContextVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentcontextversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case agentcontextversion.FieldRolledBackFrom:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRolledBackFrom(v)
		return nil
	}
	return fmt.Errorf("unknown AgentContextVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentContextVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentcontextversion.FieldWrittenBy) {
		fields = append(fields, agentcontextversion.FieldWrittenBy)
	}
	if m.FieldCleared(agentcontextversion.FieldRolledBackFrom) {
		fields = append(fields, agentcontextversion.FieldRolledBackFrom)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentContextVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentContextVersionMutation) ClearField(name string) error {
	switch name {
	case agentcontextversion.FieldWrittenBy:
		m.ClearWrittenBy()
		return nil
	case agentcontextversion.FieldRolledBackFrom:
		m.ClearRolledBackFrom()
		return nil
	}
	return fmt.Errorf("unknown AgentContextVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentContextVersionMutation) ResetField(name string) error {
	switch name {
	case agentcontextversion.FieldContextID:
		m.ResetContextID()
		return nil
	case agentcontextversion.FieldVersion:
		m.ResetVersion()
		return nil
	case agentcontextversion.FieldData:
		m.ResetData()
		return nil
	case agentcontextversion.FieldWrittenBy:
		m.ResetWrittenBy()
		return nil
	case agentcontextversion.FieldRolledBackFrom:
		m.ResetRolledBackFrom()
		return nil
	case agentcontextversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentContextVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentContextVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.context != nil {
		edges = append(edges, agentcontextversion.EdgeContext)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentContextVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentcontextversion.EdgeContext:
		if id := m.context; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentContextVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentContextVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentContextVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontext {
		edges = append(edges, agentcontextversion.EdgeContext)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentContextVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentcontextversion.EdgeContext:
		return m.clearedcontext
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentContextVersionMutation) ClearEdge(name string) error {
	switch name {
	case agentcontextversion.EdgeContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown AgentContextVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentContextVersionMutation) ResetEdge(name string) error {
	switch name {
	case agentcontextversion.EdgeContext:
		m.ResetContext()
		return nil
	}
	return fmt.Errorf("unknown AgentContextVersion edge %s", name)
}

// AgentDefinitionMutation represents an operation that mutates the AgentDefinition nodes in the graph.
type AgentDefinitionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	workspace_id       *string
	name               *string
	role               *agentdefinition.Role
	capabilities       *[]string
	appendcapabilities []string
	model              *string
	system_prompt      *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	instances          map[string]struct{}
	removedinstances   map[string]struct{}
	clearedinstances   bool
	done               bool
	oldValue           func(context.Context) (*AgentDefinition, error)
	predicates         []predicate.AgentDefinition
}

var _ ent.Mutation = (*AgentDefinitionMutation)(nil)

// agentdefinitionOption allows management of the mutation configuration using functional options.
type agentdefinitionOption func(*AgentDefinitionMutation)

// newAgentDefinitionMutation creates new mutation for the AgentDefinition entity.
func newAgentDefinitionMutation(c config, op Op, opts ...agentdefinitionOption) *AgentDefinitionMutation {
	m := &AgentDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentDefinitionID sets the ID field of the mutation.
func withAgentDefinitionID(id string) agentdefinitionOption {
	return func(m *AgentDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentDefinition
		)
		m.oldValue = func(ctx context.Context) (*AgentDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentDefinition sets the old AgentDefinition of the mutation.
func withAgentDefinition(node *AgentDefinition) agentdefinitionOption {
	return func(m *AgentDefinitionMutation) {
		m.oldValue = func(context.Context) (*AgentDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentDefinition entities.
func (m *AgentDefinitionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentDefinitionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentDefinitionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentDefinitionMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentDefinitionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentDefinitionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetName sets the "name" field.
func (m *AgentDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentDefinitionMutation) ResetName() {
	m.name = nil
}

// SetRole sets the "role" field.
func (m *AgentDefinitionMutation) SetRole(a agentdefinition.Role) {
	m.role = &a
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentDefinitionMutation) Role() (r agentdefinition.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldRole(ctx context.Context) (v agentdefinition.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentDefinitionMutation) ResetRole() {
	m.role = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentDefinitionMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentDefinitionMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentDefinitionMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentDefinitionMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *AgentDefinitionMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[agentdefinition.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *AgentDefinitionMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[agentdefinition.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentDefinitionMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, agentdefinition.FieldCapabilities)
}

// SetModel sets the "model" field.
func (m *AgentDefinitionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentDefinitionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AgentDefinitionMutation) ClearModel() {
	m.model = nil
	m.clearedFields[agentdefinition.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AgentDefinitionMutation) ModelCleared() bool {
	_, ok := m.clearedFields[agentdefinition.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AgentDefinitionMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, agentdefinition.FieldModel)
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentDefinitionMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentDefinitionMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *AgentDefinitionMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[agentdefinition.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *AgentDefinitionMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[agentdefinition.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentDefinitionMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, agentdefinition.FieldSystemPrompt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddInstanceIDs adds the "instances" edge to the AgentInstance entity by ids.
func (m *AgentDefinitionMutation) AddInstanceIDs(ids ...string) {
	if m.instances == nil {
		m.instances = make(map[string]struct{})
	}
	for i := range ids {
		m.instances[ids[i]] = struct{}{}
	}
}

// ClearInstances clears the "instances" edge to the AgentInstance entity.
func (m *AgentDefinitionMutation) ClearInstances() {
	m.clearedinstances = true
}

// InstancesCleared reports if the "instances" edge to the AgentInstance entity was cleared.
func (m *AgentDefinitionMutation) InstancesCleared() bool {
	return m.clearedinstances
}

// RemoveInstanceIDs removes the "instances" edge to the AgentInstance entity by IDs.
func (m *AgentDefinitionMutation) RemoveInstanceIDs(ids ...string) {
	if m.removedinstances == nil {
		m.removedinstances = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.instances, ids[i])
		m.removedinstances[ids[i]] = struct{}{}
	}
}

// RemovedInstances returns the removed IDs of the "instances" edge to the AgentInstance entity.
func (m *AgentDefinitionMutation) RemovedInstancesIDs() (ids []string) {
	for id := range m.removedinstances {
		ids = append(ids, id)
	}
	return
}

// InstancesIDs returns the "instances" edge IDs in the mutation.
func (m *AgentDefinitionMutation) InstancesIDs() (ids []string) {
	for id := range m.instances {
		ids = append(ids, id)
	}
	return
}

// ResetInstances resets all changes to the "instances" edge.
func (m *AgentDefinitionMutation) ResetInstances() {
	m.instances = nil
	m.clearedinstances = false
	m.removedinstances = nil
}

// Where appends a list predicates to the AgentDefinitionMutation builder.
func (m *AgentDefinitionMutation) Where(ps ...predicate.AgentDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentDefinition).
func (m *AgentDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace_id != nil {
		fields = append(fields, agentdefinition.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, agentdefinition.FieldName)
	}
	if m.role != nil {
		fields = append(fields, agentdefinition.FieldRole)
	}
	if m.capabilities != nil {
		fields = append(fields, agentdefinition.FieldCapabilities)
	}
	if m.model != nil {
		fields = append(fields, agentdefinition.FieldModel)
	}
	if m.system_prompt != nil {
		fields = append(fields, agentdefinition.FieldSystemPrompt)
	}
	if m.created_at != nil {
		fields = append(fields, agentdefinition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentdefinition.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentdefinition.FieldName:
		return m.Name()
	case agentdefinition.FieldRole:
		return m.Role()
	case agentdefinition.FieldCapabilities:
		return m.Capabilities()
	case agentdefinition.FieldModel:
		return m.Model()
	case agentdefinition.FieldSystemPrompt:
		return m.SystemPrompt()
	case agentdefinition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentdefinition.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentdefinition.FieldName:
		return m.OldName(ctx)
	case agentdefinition.FieldRole:
		return m.OldRole(ctx)
	case agentdefinition.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agentdefinition.FieldModel:
		return m.OldModel(ctx)
	case agentdefinition.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agentdefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentdefinition.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentdefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentdefinition.FieldRole:
		v, ok := value.(agentdefinition.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agentdefinition.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agentdefinition.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentdefinition.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agentdefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentDefinitionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentdefinition.FieldCapabilities) {
		fields = append(fields, agentdefinition.FieldCapabilities)
	}
	if m.FieldCleared(agentdefinition.FieldModel) {
		fields = append(fields, agentdefinition.FieldModel)
	}
	if m.FieldCleared(agentdefinition.FieldSystemPrompt) {
		fields = append(fields, agentdefinition.FieldSystemPrompt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentDefinitionMutation) ClearField(name string) error {
	switch name {
	case agentdefinition.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case agentdefinition.FieldModel:
		m.ClearModel()
		return nil
	case agentdefinition.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentDefinitionMutation) ResetField(name string) error {
	switch name {
	case agentdefinition.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentdefinition.FieldName:
		m.ResetName()
		return nil
	case agentdefinition.FieldRole:
		m.ResetRole()
		return nil
	case agentdefinition.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agentdefinition.FieldModel:
		m.ResetModel()
		return nil
	case agentdefinition.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agentdefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instances != nil {
		edges = append(edges, agentdefinition.EdgeInstances)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentDefinitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentdefinition.EdgeInstances:
		ids := make([]ent.Value, 0, len(m.instances))
		for id := range m.instances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinstances != nil {
		edges = append(edges, agentdefinition.EdgeInstances)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentDefinitionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentdefinition.EdgeInstances:
		ids := make([]ent.Value, 0, len(m.removedinstances))
		for id := range m.removedinstances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstances {
		edges = append(edges, agentdefinition.EdgeInstances)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentDefinitionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentdefinition.EdgeInstances:
		return m.clearedinstances
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentDefinitionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentDefinitionMutation) ResetEdge(name string) error {
	switch name {
	case agentdefinition.EdgeInstances:
		m.ResetInstances()
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition edge %s", name)
}

// AgentInstanceMutation represents an operation that mutates the AgentInstance nodes in the graph.
type AgentInstanceMutation struct {
	config
	op                Op
	typ               string
	id                *string
	workspace_id      *string
	status            *agentinstance.Status
	active_steps      *int
	addactive_steps   *int
	last_assigned_at  *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	definition        *string
	cleareddefinition bool
	done              bool
	oldValue          func(context.Context) (*AgentInstance, error)
	predicates        []predicate.AgentInstance
}

var _ ent.Mutation = (*AgentInstanceMutation)(nil)

// agentinstanceOption allows management of the mutation configuration using functional options.
type agentinstanceOption func(*AgentInstanceMutation)

// newAgentInstanceMutation creates new mutation for the AgentInstance entity.
func newAgentInstanceMutation(c config, op Op, opts ...agentinstanceOption) *AgentInstanceMutation {
	m := &AgentInstanceMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentInstance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentInstanceID sets the ID field of the mutation.
func withAgentInstanceID(id string) agentinstanceOption {
	return func(m *AgentInstanceMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentInstance
		)
		m.oldValue = func(ctx context.Context) (*AgentInstance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentInstance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentInstance sets the old AgentInstance of the mutation.
func withAgentInstance(node *AgentInstance) agentinstanceOption {
	return func(m *AgentInstanceMutation) {
		m.oldValue = func(context.Context) (*AgentInstance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentInstanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentInstanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentInstance entities.
func (m *AgentInstanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentInstanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentInstanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentInstance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentDefinitionID sets the "agent_definition_id" field.
func (m *AgentInstanceMutation) SetAgentDefinitionID(s string) {
	m.definition = &s
}

// AgentDefinitionID returns the value of the "agent_definition_id" field in the mutation.
func (m *AgentInstanceMutation) AgentDefinitionID() (r string, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentDefinitionID returns the old "agent_definition_id" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldAgentDefinitionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentDefinitionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentDefinitionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentDefinitionID: %w", err)
	}
	return oldValue.AgentDefinitionID, nil
}

// ResetAgentDefinitionID resets all changes to the "agent_definition_id" field.
func (m *AgentInstanceMutation) ResetAgentDefinitionID() {
	m.definition = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentInstanceMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentInstanceMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentInstanceMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetStatus sets the "status" field.
func (m *AgentInstanceMutation) SetStatus(a agentinstance.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentInstanceMutation) Status() (r agentinstance.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldStatus(ctx context.Context) (v agentinstance.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentInstanceMutation) ResetStatus() {
	m.status = nil
}

// SetActiveSteps sets the "active_steps" field.
func (m *AgentInstanceMutation) SetActiveSteps(i int) {
	m.active_steps = &i
	m.addactive_steps = nil
}

// ActiveSteps returns the value of the "active_steps" field in the mutation.
func (m *AgentInstanceMutation) ActiveSteps() (r int, exists bool) {
	v := m.active_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveSteps returns the old "active_steps" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldActiveSteps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveSteps: %w", err)
	}
	return oldValue.ActiveSteps, nil
}

// AddActiveSteps adds i to the "active_steps" field.
func (m *AgentInstanceMutation) AddActiveSteps(i int) {
	if m.addactive_steps != nil {
		*m.addactive_steps += i
	} else {
		m.addactive_steps = &i
	}
}

// AddedActiveSteps returns the value that was added to the "active_steps" field in this mutation.
func (m *AgentInstanceMutation) AddedActiveSteps() (r int, exists bool) {
	v := m.addactive_steps
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveSteps resets all changes to the "active_steps" field.
func (m *AgentInstanceMutation) ResetActiveSteps() {
	m.active_steps = nil
	m.addactive_steps = nil
}

// SetLastAssignedAt sets the "last_assigned_at" field.
func (m *AgentInstanceMutation) SetLastAssignedAt(t time.Time) {
	m.last_assigned_at = &t
}

// LastAssignedAt returns the value of the "last_assigned_at" field in the mutation.
func (m *AgentInstanceMutation) LastAssignedAt() (r time.Time, exists bool) {
	v := m.last_assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAssignedAt returns the old "last_assigned_at" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldLastAssignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAssignedAt: %w", err)
	}
	return oldValue.LastAssignedAt, nil
}

// ClearLastAssignedAt clears the value of the "last_assigned_at" field.
func (m *AgentInstanceMutation) ClearLastAssignedAt() {
	m.last_assigned_at = nil
	m.clearedFields[agentinstance.FieldLastAssignedAt] = struct{}{}
}

// LastAssignedAtCleared returns if the "last_assigned_at" field was cleared in this mutation.
func (m *AgentInstanceMutation) LastAssignedAtCleared() bool {
	_, ok := m.clearedFields[agentinstance.FieldLastAssignedAt]
	return ok
}

// ResetLastAssignedAt resets all changes to the "last_assigned_at" field.
func (m *AgentInstanceMutation) ResetLastAssignedAt() {
	m.last_assigned_at = nil
	delete(m.clearedFields, agentinstance.FieldLastAssignedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentInstanceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentInstanceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentInstanceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDefinitionID sets the "definition" edge to the AgentDefinition entity by id.
func (m *AgentInstanceMutation) SetDefinitionID(id string) {
	m.definition = &id
}

// ClearDefinition clears the "definition" edge to the AgentDefinition entity.
func (m *AgentInstanceMutation) ClearDefinition() {
	m.cleareddefinition = true
	m.clearedFields[agentinstance.FieldAgentDefinitionID] = struct{}{}
}

// DefinitionCleared reports if the "definition" edge to the AgentDefinition entity was cleared.
func (m *AgentInstanceMutation) DefinitionCleared() bool {
	return m.cleareddefinition
}

// DefinitionID returns the "definition" edge ID in the mutation.
func (m *AgentInstanceMutation) DefinitionID() (id string, exists bool) {
	if m.definition != nil {
		return *m.definition, true
	}
	return
}

// DefinitionIDs returns the "definition" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DefinitionID instead. It exists only for internal usage by the builders.
func (m *AgentInstanceMutation) DefinitionIDs() (ids []string) {
	if id := m.definition; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDefinition resets all changes to the "definition" edge.
func (m *AgentInstanceMutation) ResetDefinition() {
	m.definition = nil
	m.cleareddefinition = false
}

// Where appends a list predicates to the AgentInstanceMutation builder.
func (m *AgentInstanceMutation) Where(ps ...predicate.AgentInstance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentInstanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentInstanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentInstance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentInstanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentInstanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentInstance).
func (m *AgentInstanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentInstanceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.definition != nil {
		fields = append(fields, agentinstance.FieldAgentDefinitionID)
	}
	if m.workspace_id != nil {
		fields = append(fields, agentinstance.FieldWorkspaceID)
	}
	if m.status != nil {
		fields = append(fields, agentinstance.FieldStatus)
	}
	if m.active_steps != nil {
		fields = append(fields, agentinstance.FieldActiveSteps)
	}
	if m.last_assigned_at != nil {
		fields = append(fields, agentinstance.FieldLastAssignedAt)
	}
	if m.created_at != nil {
		fields = append(fields, agentinstance.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentInstanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentinstance.FieldAgentDefinitionID:
		return m.AgentDefinitionID()
	case agentinstance.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentinstance.FieldStatus:
		return m.Status()
	case agentinstance.FieldActiveSteps:
		return m.ActiveSteps()
	case agentinstance.FieldLastAssignedAt:
		return m.LastAssignedAt()
	case agentinstance.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentInstanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentinstance.FieldAgentDefinitionID:
		return m.OldAgentDefinitionID(ctx)
	case agentinstance.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentinstance.FieldStatus:
		return m.OldStatus(ctx)
	case agentinstance.FieldActiveSteps:
		return m.OldActiveSteps(ctx)
	case agentinstance.FieldLastAssignedAt:
		return m.OldLastAssignedAt(ctx)
	case agentinstance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentInstance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentInstanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentinstance.FieldAgentDefinitionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentDefinitionID(v)
		return nil
	case agentinstance.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentinstance.FieldStatus:
		v, ok := value.(agentinstance.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentinstance.FieldActiveSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveSteps(v)
		return nil
	case agentinstance.FieldLastAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAssignedAt(v)
		return nil
	case agentinstance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentInstance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentInstanceMutation) AddedFields() []string {
	var fields []string
	if m.addactive_steps != nil {
		fields = append(fields, agentinstance.FieldActiveSteps)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentInstanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentinstance.FieldActiveSteps:
		return m.AddedActiveSteps()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentInstanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentinstance.FieldActiveSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveSteps(v)
		return nil
	}
	return fmt.Errorf("unknown AgentInstance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentInstanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentinstance.FieldLastAssignedAt) {
		fields = append(fields, agentinstance.FieldLastAssignedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentInstanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentInstanceMutation) ClearField(name string) error {
	switch name {
	case agentinstance.FieldLastAssignedAt:
		m.ClearLastAssignedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentInstance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentInstanceMutation) ResetField(name string) error {
	switch name {
	case agentinstance.FieldAgentDefinitionID:
		m.ResetAgentDefinitionID()
		return nil
	case agentinstance.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentinstance.FieldStatus:
		m.ResetStatus()
		return nil
	case agentinstance.FieldActiveSteps:
		m.ResetActiveSteps()
		return nil
	case agentinstance.FieldLastAssignedAt:
		m.ResetLastAssignedAt()
		return nil
	case agentinstance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentInstance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentInstanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.definition != nil {
		edges = append(edges, agentinstance.EdgeDefinition)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentInstanceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentinstance.EdgeDefinition:
		if id := m.definition; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentInstanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentInstanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentInstanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddefinition {
		edges = append(edges, agentinstance.EdgeDefinition)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentInstanceMutation) EdgeCleared(name string) bool {
	switch name {
	case agentinstance.EdgeDefinition:
		return m.cleareddefinition
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentInstanceMutation) ClearEdge(name string) error {
	switch name {
	case agentinstance.EdgeDefinition:
		m.ClearDefinition()
		return nil
	}
	return fmt.Errorf("unknown AgentInstance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentInstanceMutation) ResetEdge(name string) error {
	switch name {
	case agentinstance.EdgeDefinition:
		m.ResetDefinition()
		return nil
	}
	return fmt.Errorf("unknown AgentInstance edge %s", name)
}

// AgentMemoryEntryMutation represents an operation that mutates the AgentMemoryEntry nodes in the graph.
type AgentMemoryEntryMutation struct {
	config
	op                Op
	typ               string
	id                *string
	agent_instance_id *string
	workspace_id      *string
	key               *string
	value             *[]byte
	size_bytes        *int
	addsize_bytes     *int
	received_from     *string
	created_at        *time.Time
	accessed_at       *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AgentMemoryEntry, error)
	predicates        []predicate.AgentMemoryEntry
}

var _ ent.Mutation = (*AgentMemoryEntryMutation)(nil)

// agentmemoryentryOption allows management of the mutation configuration using functional options.
type agentmemoryentryOption func(*AgentMemoryEntryMutation)

// newAgentMemoryEntryMutation creates new mutation for the AgentMemoryEntry entity.
func newAgentMemoryEntryMutation(c config, op Op, opts ...agentmemoryentryOption) *AgentMemoryEntryMutation {
	m := &AgentMemoryEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentMemoryEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentMemoryEntryID sets the ID field of the mutation.
func withAgentMemoryEntryID(id string) agentmemoryentryOption {
	return func(m *AgentMemoryEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentMemoryEntry
		)
		m.oldValue = func(ctx context.Context) (*AgentMemoryEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentMemoryEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentMemoryEntry sets the old AgentMemoryEntry of the mutation.
func withAgentMemoryEntry(node *AgentMemoryEntry) agentmemoryentryOption {
	return func(m *AgentMemoryEntryMutation) {
		m.oldValue = func(context.Context) (*AgentMemoryEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMemoryEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMemoryEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentMemoryEntry entities.
func (m *AgentMemoryEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMemoryEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMemoryEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentMemoryEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentInstanceID sets the "agent_instance_id" field.
func (m *AgentMemoryEntryMutation) SetAgentInstanceID(s string) {
	m.agent_instance_id = &s
}

// AgentInstanceID returns the value of the "agent_instance_id" field in the mutation.
func (m *AgentMemoryEntryMutation) AgentInstanceID() (r string, exists bool) {
	v := m.agent_instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentInstanceID returns the old "agent_instance_id" field's value of the AgentMemoryEntry entity.
// If the AgentMemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMemoryEntryMutation) OldAgentInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentInstanceID: %w", err)
	}
	return oldValue.AgentInstanceID, nil
}

// ResetAgentInstanceID resets all changes to the "agent_instance_id" field.
func (m *AgentMemoryEntryMutation) ResetAgentInstanceID() {
	m.agent_instance_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentMemoryEntryMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentMemoryEntryMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentMemoryEntry entity.
// If the AgentMemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMemoryEntryMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentMemoryEntryMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetKey sets the "key" field.
func (m *AgentMemoryEntryMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *AgentMemoryEntryMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the AgentMemoryEntry entity.
// If the AgentMemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMemoryEntryMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *AgentMemoryEntryMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *AgentMemoryEntryMutation) SetValue(b []byte) {
	m.value = &b
}

// Value returns the value of the "value" field in the mutation.
func (m *AgentMemoryEntryMutation) Value() (r []byte, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the AgentMemoryEntry entity.
// If the AgentMemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMemoryEntryMutation) OldValue(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *AgentMemoryEntryMutation) ResetValue() {
	m.value = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *AgentMemoryEntryMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *AgentMemoryEntryMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the AgentMemoryEntry entity.
// If the AgentMemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMemoryEntryMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *AgentMemoryEntryMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *AgentMemoryEntryMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *AgentMemoryEntryMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetReceivedFrom sets the "received_from" field.
func (m *AgentMemoryEntryMutation) SetReceivedFrom(s string) {
	m.received_from = &s
}

// ReceivedFrom returns the value of the "received_from" field in the mutation.
func (m *AgentMemoryEntryMutation) ReceivedFrom() (r string, exists bool) {
	v := m.received_from
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedFrom returns the old "received_from" field's value of the AgentMemoryEntry entity.
// If the AgentMemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMemoryEntryMutation) OldReceivedFrom(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedFrom: %w", err)
	}
	return oldValue.ReceivedFrom, nil
}

// ClearReceivedFrom clears the value of the "received_from" field.
func (m *AgentMemoryEntryMutation) ClearReceivedFrom() {
	m.received_from = nil
	m.clearedFields[agentmemoryentry.FieldReceivedFrom] = struct{}{}
}

// ReceivedFromCleared returns if the "received_from" field was cleared in this mutation.
func (m *AgentMemoryEntryMutation) ReceivedFromCleared() bool {
	_, ok := m.clearedFields[agentmemoryentry.FieldReceivedFrom]
	return ok
}

// ResetReceivedFrom resets all changes to the "received_from" field.
func (m *AgentMemoryEntryMutation) ResetReceivedFrom() {
	m.received_from = nil
	delete(m.clearedFields, agentmemoryentry.FieldReceivedFrom)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMemoryEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMemoryEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentMemoryEntry entity.
// If the AgentMemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMemoryEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMemoryEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAccessedAt sets the "accessed_at" field.
func (m *AgentMemoryEntryMutation) SetAccessedAt(t time.Time) {
	m.accessed_at = &t
}

// AccessedAt returns the value of the "accessed_at" field in the mutation.
func (m *AgentMemoryEntryMutation) AccessedAt() (r time.Time, exists bool) {
	v := m.accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessedAt returns the old "accessed_at" field's value of the AgentMemoryEntry entity.
// If the AgentMemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMemoryEntryMutation) OldAccessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessedAt: %w", err)
	}
	return oldValue.AccessedAt, nil
}

// ResetAccessedAt resets all changes to the "accessed_at" field.
func (m *AgentMemoryEntryMutation) ResetAccessedAt() {
	m.accessed_at = nil
}

// Where appends a list predicates to the AgentMemoryEntryMutation builder.
func (m *AgentMemoryEntryMutation) Where(ps ...predicate.AgentMemoryEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMemoryEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMemoryEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentMemoryEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMemoryEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMemoryEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentMemoryEntry).
func (m *AgentMemoryEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMemoryEntryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.agent_instance_id != nil {
		fields = append(fields, agentmemoryentry.FieldAgentInstanceID)
	}
	if m.workspace_id != nil {
		fields = append(fields, agentmemoryentry.FieldWorkspaceID)
	}
	if m.key != nil {
		fields = append(fields, agentmemoryentry.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, agentmemoryentry.FieldValue)
	}
	if m.size_bytes != nil {
		fields = append(fields, agentmemoryentry.FieldSizeBytes)
	}
	if m.received_from != nil {
		fields = append(fields, agentmemoryentry.FieldReceivedFrom)
	}
	if m.created_at != nil {
		fields = append(fields, agentmemoryentry.FieldCreatedAt)
	}
	if m.accessed_at != nil {
		fields = append(fields, agentmemoryentry.FieldAccessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMemoryEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentmemoryentry.FieldAgentInstanceID:
		return m.AgentInstanceID()
	case agentmemoryentry.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentmemoryentry.FieldKey:
		return m.Key()
	case agentmemoryentry.FieldValue:
		return m.Value()
	case agentmemoryentry.FieldSizeBytes:
		return m.SizeBytes()
	case agentmemoryentry.FieldReceivedFrom:
		return m.ReceivedFrom()
	case agentmemoryentry.FieldCreatedAt:
		return m.CreatedAt()
	case agentmemoryentry.FieldAccessedAt:
		return m.AccessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMemoryEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentmemoryentry.FieldAgentInstanceID:
		return m.OldAgentInstanceID(ctx)
	case agentmemoryentry.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentmemoryentry.FieldKey:
		return m.OldKey(ctx)
	case agentmemoryentry.FieldValue:
		return m.OldValue(ctx)
	case agentmemoryentry.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case agentmemoryentry.FieldReceivedFrom:
		return m.OldReceivedFrom(ctx)
	case agentmemoryentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentmemoryentry.FieldAccessedAt:
		return m.OldAccessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentMemoryEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMemoryEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentmemoryentry.FieldAgentInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentInstanceID(v)
		return nil
	case agentmemoryentry.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentmemoryentry.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case agentmemoryentry.FieldValue:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case agentmemoryentry.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case agentmemoryentry.FieldReceivedFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedFrom(v)
		return nil
	case agentmemoryentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentmemoryentry.FieldAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentMemoryEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMemoryEntryMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, agentmemoryentry.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMemoryEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentmemoryentry.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMemoryEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentmemoryentry.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown AgentMemoryEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMemoryEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentmemoryentry.FieldReceivedFrom) {
		fields = append(fields, agentmemoryentry.FieldReceivedFrom)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMemoryEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMemoryEntryMutation) ClearField(name string) error {
	switch name {
	case agentmemoryentry.FieldReceivedFrom:
		m.ClearReceivedFrom()
		return nil
	}
	return fmt.Errorf("unknown AgentMemoryEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMemoryEntryMutation) ResetField(name string) error {
	switch name {
	case agentmemoryentry.FieldAgentInstanceID:
		m.ResetAgentInstanceID()
		return nil
	case agentmemoryentry.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentmemoryentry.FieldKey:
		m.ResetKey()
		return nil
	case agentmemoryentry.FieldValue:
		m.ResetValue()
		return nil
	case agentmemoryentry.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case agentmemoryentry.FieldReceivedFrom:
		m.ResetReceivedFrom()
		return nil
	case agentmemoryentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentmemoryentry.FieldAccessedAt:
		m.ResetAccessedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentMemoryEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMemoryEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMemoryEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMemoryEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMemoryEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMemoryEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMemoryEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMemoryEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentMemoryEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMemoryEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentMemoryEntry edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	event_id       *string
	event_type     *string
	workspace_id   *string
	channel        *string
	task_id        *string
	run_id         *string
	workflow_id    *string
	execution_id   *string
	agent_id       *string
	correlation_id *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventMutation) ResetEventID() {
	m.event_id = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *EventMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *EventMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *EventMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetTaskID sets the "task_id" field.
func (m *EventMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EventMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *EventMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[event.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *EventMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[event.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EventMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, event.FieldTaskID)
}

// SetRunID sets the "run_id" field.
func (m *EventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *EventMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[event.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *EventMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[event.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EventMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, event.FieldRunID)
}

// SetWorkflowID sets the "workflow_id" field.
func (m *EventMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *EventMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (m *EventMutation) ClearWorkflowID() {
	m.workflow_id = nil
	m.clearedFields[event.FieldWorkflowID] = struct{}{}
}

// WorkflowIDCleared returns if the "workflow_id" field was cleared in this mutation.
func (m *EventMutation) WorkflowIDCleared() bool {
	_, ok := m.clearedFields[event.FieldWorkflowID]
	return ok
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *EventMutation) ResetWorkflowID() {
	m.workflow_id = nil
	delete(m.clearedFields, event.FieldWorkflowID)
}

// SetExecutionID sets the "execution_id" field.
func (m *EventMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *EventMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *EventMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[event.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *EventMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *EventMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, event.FieldExecutionID)
}

// SetAgentID sets the "agent_id" field.
func (m *EventMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *EventMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *EventMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[event.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *EventMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[event.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *EventMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, event.FieldAgentID)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *EventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *EventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *EventMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[event.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *EventMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[event.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *EventMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, event.FieldCorrelationID)
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.event_id != nil {
		fields = append(fields, event.FieldEventID)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.workspace_id != nil {
		fields = append(fields, event.FieldWorkspaceID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.task_id != nil {
		fields = append(fields, event.FieldTaskID)
	}
	if m.run_id != nil {
		fields = append(fields, event.FieldRunID)
	}
	if m.workflow_id != nil {
		fields = append(fields, event.FieldWorkflowID)
	}
	if m.execution_id != nil {
		fields = append(fields, event.FieldExecutionID)
	}
	if m.agent_id != nil {
		fields = append(fields, event.FieldAgentID)
	}
	if m.correlation_id != nil {
		fields = append(fields, event.FieldCorrelationID)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventID:
		return m.EventID()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldWorkspaceID:
		return m.WorkspaceID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldTaskID:
		return m.TaskID()
	case event.FieldRunID:
		return m.RunID()
	case event.FieldWorkflowID:
		return m.WorkflowID()
	case event.FieldExecutionID:
		return m.ExecutionID()
	case event.FieldAgentID:
		return m.AgentID()
	case event.FieldCorrelationID:
		return m.CorrelationID()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventID:
		return m.OldEventID(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldTaskID:
		return m.OldTaskID(ctx)
	case event.FieldRunID:
		return m.OldRunID(ctx)
	case event.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case event.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case event.FieldAgentID:
		return m.OldAgentID(ctx)
	case event.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case event.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case event.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case event.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case event.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case event.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldTaskID) {
		fields = append(fields, event.FieldTaskID)
	}
	if m.FieldCleared(event.FieldRunID) {
		fields = append(fields, event.FieldRunID)
	}
	if m.FieldCleared(event.FieldWorkflowID) {
		fields = append(fields, event.FieldWorkflowID)
	}
	if m.FieldCleared(event.FieldExecutionID) {
		fields = append(fields, event.FieldExecutionID)
	}
	if m.FieldCleared(event.FieldAgentID) {
		fields = append(fields, event.FieldAgentID)
	}
	if m.FieldCleared(event.FieldCorrelationID) {
		fields = append(fields, event.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldTaskID:
		m.ClearTaskID()
		return nil
	case event.FieldRunID:
		m.ClearRunID()
		return nil
	case event.FieldWorkflowID:
		m.ClearWorkflowID()
		return nil
	case event.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case event.FieldAgentID:
		m.ClearAgentID()
		return nil
	case event.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventID:
		m.ResetEventID()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldTaskID:
		m.ResetTaskID()
		return nil
	case event.FieldRunID:
		m.ResetRunID()
		return nil
	case event.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case event.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case event.FieldAgentID:
		m.ResetAgentID()
		return nil
	case event.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	repo_url         *string
	base_branch      *string
	branch_prefix    *string
	commit_template  *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *string
	clearedworkspace bool
	tasks            map[string]struct{}
	removedtasks     map[string]struct{}
	clearedtasks     bool
	workflows        map[string]struct{}
	removedworkflows map[string]struct{}
	clearedworkflows bool
	done             bool
	oldValue         func(context.Context) (*Project, error)
	predicates       []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ProjectMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ProjectMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ProjectMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetRepoURL sets the "repo_url" field.
func (m *ProjectMutation) SetRepoURL(s string) {
	m.repo_url = &s
}

// RepoURL returns the value of the "repo_url" field in the mutation.
func (m *ProjectMutation) RepoURL() (r string, exists bool) {
	v := m.repo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoURL returns the old "repo_url" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldRepoURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoURL: %w", err)
	}
	return oldValue.RepoURL, nil
}

// ClearRepoURL clears the value of the "repo_url" field.
func (m *ProjectMutation) ClearRepoURL() {
	m.repo_url = nil
	m.clearedFields[project.FieldRepoURL] = struct{}{}
}

// RepoURLCleared returns if the "repo_url" field was cleared in this mutation.
func (m *ProjectMutation) RepoURLCleared() bool {
	_, ok := m.clearedFields[project.FieldRepoURL]
	return ok
}

// ResetRepoURL resets all changes to the "repo_url" field.
func (m *ProjectMutation) ResetRepoURL() {
	m.repo_url = nil
	delete(m.clearedFields, project.FieldRepoURL)
}

// SetBaseBranch sets the "base_branch" field.
func (m *ProjectMutation) SetBaseBranch(s string) {
	m.base_branch = &s
}

// BaseBranch returns the value of the "base_branch" field in the mutation.
func (m *ProjectMutation) BaseBranch() (r string, exists bool) {
	v := m.base_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseBranch returns the old "base_branch" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldBaseBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseBranch: %w", err)
	}
	return oldValue.BaseBranch, nil
}

// ResetBaseBranch resets all changes to the "base_branch" field.
func (m *ProjectMutation) ResetBaseBranch() {
	m.base_branch = nil
}

// SetBranchPrefix sets the "branch_prefix" field.
func (m *ProjectMutation) SetBranchPrefix(s string) {
	m.branch_prefix = &s
}

// BranchPrefix returns the value of the "branch_prefix" field in the mutation.
func (m *ProjectMutation) BranchPrefix() (r string, exists bool) {
	v := m.branch_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchPrefix returns the old "branch_prefix" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldBranchPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchPrefix: %w", err)
	}
	return oldValue.BranchPrefix, nil
}

// ResetBranchPrefix resets all changes to the "branch_prefix" field.
func (m *ProjectMutation) ResetBranchPrefix() {
	m.branch_prefix = nil
}

// SetCommitTemplate sets the "commit_template" field.
func (m *ProjectMutation) SetCommitTemplate(s string) {
	m.commit_template = &s
}

// CommitTemplate returns the value of the "commit_template" field in the mutation.
func (m *ProjectMutation) CommitTemplate() (r string, exists bool) {
	v := m.commit_template
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitTemplate returns the old "commit_template" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCommitTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitTemplate: %w", err)
	}
	return oldValue.CommitTemplate, nil
}

// ResetCommitTemplate resets all changes to the "commit_template" field.
func (m *ProjectMutation) ResetCommitTemplate() {
	m.commit_template = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *ProjectMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[project.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *ProjectMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *ProjectMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *ProjectMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *ProjectMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *ProjectMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *ProjectMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *ProjectMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *ProjectMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *ProjectMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *ProjectMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by ids.
func (m *ProjectMutation) AddWorkflowIDs(ids ...string) {
	if m.workflows == nil {
		m.workflows = make(map[string]struct{})
	}
	for i := range ids {
		m.workflows[ids[i]] = struct{}{}
	}
}

// ClearWorkflows clears the "workflows" edge to the Workflow entity.
func (m *ProjectMutation) ClearWorkflows() {
	m.clearedworkflows = true
}

// WorkflowsCleared reports if the "workflows" edge to the Workflow entity was cleared.
func (m *ProjectMutation) WorkflowsCleared() bool {
	return m.clearedworkflows
}

// RemoveWorkflowIDs removes the "workflows" edge to the Workflow entity by IDs.
func (m *ProjectMutation) RemoveWorkflowIDs(ids ...string) {
	if m.removedworkflows == nil {
		m.removedworkflows = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.workflows, ids[i])
		m.removedworkflows[ids[i]] = struct{}{}
	}
}

// RemovedWorkflows returns the removed IDs of the "workflows" edge to the Workflow entity.
func (m *ProjectMutation) RemovedWorkflowsIDs() (ids []string) {
	for id := range m.removedworkflows {
		ids = append(ids, id)
	}
	return
}

// WorkflowsIDs returns the "workflows" edge IDs in the mutation.
func (m *ProjectMutation) WorkflowsIDs() (ids []string) {
	for id := range m.workflows {
		ids = append(ids, id)
	}
	return
}

// ResetWorkflows resets all changes to the "workflows" edge.
func (m *ProjectMutation) ResetWorkflows() {
	m.workflows = nil
	m.clearedworkflows = false
	m.removedworkflows = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace != nil {
		fields = append(fields, project.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.repo_url != nil {
		fields = append(fields, project.FieldRepoURL)
	}
	if m.base_branch != nil {
		fields = append(fields, project.FieldBaseBranch)
	}
	if m.branch_prefix != nil {
		fields = append(fields, project.FieldBranchPrefix)
	}
	if m.commit_template != nil {
		fields = append(fields, project.FieldCommitTemplate)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldWorkspaceID:
		return m.WorkspaceID()
	case project.FieldName:
		return m.Name()
	case project.FieldRepoURL:
		return m.RepoURL()
	case project.FieldBaseBranch:
		return m.BaseBranch()
	case project.FieldBranchPrefix:
		return m.BranchPrefix()
	case project.FieldCommitTemplate:
		return m.CommitTemplate()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldRepoURL:
		return m.OldRepoURL(ctx)
	case project.FieldBaseBranch:
		return m.OldBaseBranch(ctx)
	case project.FieldBranchPrefix:
		return m.OldBranchPrefix(ctx)
	case project.FieldCommitTemplate:
		return m.OldCommitTemplate(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldRepoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoURL(v)
		return nil
	case project.FieldBaseBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseBranch(v)
		return nil
	case project.FieldBranchPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchPrefix(v)
		return nil
	case project.FieldCommitTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitTemplate(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldRepoURL) {
		fields = append(fields, project.FieldRepoURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldRepoURL:
		m.ClearRepoURL()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldRepoURL:
		m.ResetRepoURL()
		return nil
	case project.FieldBaseBranch:
		m.ResetBaseBranch()
		return nil
	case project.FieldBranchPrefix:
		m.ResetBranchPrefix()
		return nil
	case project.FieldCommitTemplate:
		m.ResetCommitTemplate()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.workspace != nil {
		edges = append(edges, project.EdgeWorkspace)
	}
	if m.tasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	if m.workflows != nil {
		edges = append(edges, project.EdgeWorkflows)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.workflows))
		for id := range m.workflows {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	if m.removedworkflows != nil {
		edges = append(edges, project.EdgeWorkflows)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.removedworkflows))
		for id := range m.removedworkflows {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedworkspace {
		edges = append(edges, project.EdgeWorkspace)
	}
	if m.clearedtasks {
		edges = append(edges, project.EdgeTasks)
	}
	if m.clearedworkflows {
		edges = append(edges, project.EdgeWorkflows)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeWorkspace:
		return m.clearedworkspace
	case project.EdgeTasks:
		return m.clearedtasks
	case project.EdgeWorkflows:
		return m.clearedworkflows
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	case project.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case project.EdgeTasks:
		m.ResetTasks()
		return nil
	case project.EdgeWorkflows:
		m.ResetWorkflows()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SandboxExecutionMutation represents an operation that mutates the SandboxExecution nodes in the graph.
type SandboxExecutionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	workspace_id       *string
	project_id         *string
	language           *string
	command            *string
	code_location      *string
	status             *sandboxexecution.Status
	stdout             *string
	stderr             *string
	exit_code          *int
	addexit_code       *int
	started_at         *time.Time
	completed_at       *time.Time
	duration_ms        *int
	addduration_ms     *int
	peak_memory_mb     *int
	addpeak_memory_mb  *int
	cpu_percent        *float64
	addcpu_percent     *float64
	container_id       *string
	timeout_seconds    *int
	addtimeout_seconds *int
	memory_limit_mb    *int
	addmemory_limit_mb *int
	error_type         *string
	error_message      *string
	clearedFields      map[string]struct{}
	run                *string
	clearedrun         bool
	done               bool
	oldValue           func(context.Context) (*SandboxExecution, error)
	predicates         []predicate.SandboxExecution
}

var _ ent.Mutation = (*SandboxExecutionMutation)(nil)

// sandboxexecutionOption allows management of the mutation configuration using functional options.
type sandboxexecutionOption func(*SandboxExecutionMutation)

// newSandboxExecutionMutation creates new mutation for the SandboxExecution entity.
func newSandboxExecutionMutation(c config, op Op, opts ...sandboxexecutionOption) *SandboxExecutionMutation {
	m := &SandboxExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeSandboxExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSandboxExecutionID sets the ID field of the mutation.
func withSandboxExecutionID(id string) sandboxexecutionOption {
	return func(m *SandboxExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *SandboxExecution
		)
		m.oldValue = func(ctx context.Context) (*SandboxExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SandboxExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSandboxExecution sets the old SandboxExecution of the mutation.
func withSandboxExecution(node *SandboxExecution) sandboxexecutionOption {
	return func(m *SandboxExecutionMutation) {
		m.oldValue = func(context.Context) (*SandboxExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SandboxExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SandboxExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SandboxExecution entities.
func (m *SandboxExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SandboxExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SandboxExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SandboxExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *SandboxExecutionMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *SandboxExecutionMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *SandboxExecutionMutation) ResetRunID() {
	m.run = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *SandboxExecutionMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *SandboxExecutionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *SandboxExecutionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *SandboxExecutionMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SandboxExecutionMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SandboxExecutionMutation) ResetProjectID() {
	m.project_id = nil
}

// SetLanguage sets the "language" field.
func (m *SandboxExecutionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *SandboxExecutionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *SandboxExecutionMutation) ResetLanguage() {
	m.language = nil
}

// SetCommand sets the "command" field.
func (m *SandboxExecutionMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *SandboxExecutionMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ResetCommand resets all changes to the "command" field.
func (m *SandboxExecutionMutation) ResetCommand() {
	m.command = nil
}

// SetCodeLocation sets the "code_location" field.
func (m *SandboxExecutionMutation) SetCodeLocation(s string) {
	m.code_location = &s
}

// CodeLocation returns the value of the "code_location" field in the mutation.
func (m *SandboxExecutionMutation) CodeLocation() (r string, exists bool) {
	v := m.code_location
	if v == nil {
		return
	}
	return *v, true
}

// OldCodeLocation returns the old "code_location" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldCodeLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodeLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodeLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodeLocation: %w", err)
	}
	return oldValue.CodeLocation, nil
}

// ClearCodeLocation clears the value of the "code_location" field.
func (m *SandboxExecutionMutation) ClearCodeLocation() {
	m.code_location = nil
	m.clearedFields[sandboxexecution.FieldCodeLocation] = struct{}{}
}

// CodeLocationCleared returns if the "code_location" field was cleared in this mutation.
func (m *SandboxExecutionMutation) CodeLocationCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldCodeLocation]
	return ok
}

// ResetCodeLocation resets all changes to the "code_location" field.
func (m *SandboxExecutionMutation) ResetCodeLocation() {
	m.code_location = nil
	delete(m.clearedFields, sandboxexecution.FieldCodeLocation)
}

// SetStatus sets the "status" field.
func (m *SandboxExecutionMutation) SetStatus(s sandboxexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SandboxExecutionMutation) Status() (r sandboxexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldStatus(ctx context.Context) (v sandboxexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SandboxExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStdout sets the "stdout" field.
func (m *SandboxExecutionMutation) SetStdout(s string) {
	m.stdout = &s
}

// Stdout returns the value of the "stdout" field in the mutation.
func (m *SandboxExecutionMutation) Stdout() (r string, exists bool) {
	v := m.stdout
	if v == nil {
		return
	}
	return *v, true
}

// OldStdout returns the old "stdout" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldStdout(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStdout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStdout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStdout: %w", err)
	}
	return oldValue.Stdout, nil
}

// ClearStdout clears the value of the "stdout" field.
func (m *SandboxExecutionMutation) ClearStdout() {
	m.stdout = nil
	m.clearedFields[sandboxexecution.FieldStdout] = struct{}{}
}

// StdoutCleared returns if the "stdout" field was cleared in this mutation.
func (m *SandboxExecutionMutation) StdoutCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldStdout]
	return ok
}

// ResetStdout resets all changes to the "stdout" field.
func (m *SandboxExecutionMutation) ResetStdout() {
	m.stdout = nil
	delete(m.clearedFields, sandboxexecution.FieldStdout)
}

// SetStderr sets the "stderr" field.
func (m *SandboxExecutionMutation) SetStderr(s string) {
	m.stderr = &s
}

// Stderr returns the value of the "stderr" field in the mutation.
func (m *SandboxExecutionMutation) Stderr() (r string, exists bool) {
	v := m.stderr
	if v == nil {
		return
	}
	return *v, true
}

// OldStderr returns the old "stderr" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldStderr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStderr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStderr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStderr: %w", err)
	}
	return oldValue.Stderr, nil
}

// ClearStderr clears the value of the "stderr" field.
func (m *SandboxExecutionMutation) ClearStderr() {
	m.stderr = nil
	m.clearedFields[sandboxexecution.FieldStderr] = struct{}{}
}

// StderrCleared returns if the "stderr" field was cleared in this mutation.
func (m *SandboxExecutionMutation) StderrCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldStderr]
	return ok
}

// ResetStderr resets all changes to the "stderr" field.
func (m *SandboxExecutionMutation) ResetStderr() {
	m.stderr = nil
	delete(m.clearedFields, sandboxexecution.FieldStderr)
}

// SetExitCode sets the "exit_code" field.
func (m *SandboxExecutionMutation) SetExitCode(i int) {
	m.exit_code = &i
	m.addexit_code = nil
}

// ExitCode returns the value of the "exit_code" field in the mutation.
func (m *SandboxExecutionMutation) ExitCode() (r int, exists bool) {
	v := m.exit_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExitCode returns the old "exit_code" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldExitCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitCode: %w", err)
	}
	return oldValue.ExitCode, nil
}

// AddExitCode adds i to the "exit_code" field.
func (m *SandboxExecutionMutation) AddExitCode(i int) {
	if m.addexit_code != nil {
		*m.addexit_code += i
	} else {
		m.addexit_code = &i
	}
}

// AddedExitCode returns the value that was added to the "exit_code" field in this mutation.
func (m *SandboxExecutionMutation) AddedExitCode() (r int, exists bool) {
	v := m.addexit_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearExitCode clears the value of the "exit_code" field.
func (m *SandboxExecutionMutation) ClearExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
	m.clearedFields[sandboxexecution.FieldExitCode] = struct{}{}
}

// ExitCodeCleared returns if the "exit_code" field was cleared in this mutation.
func (m *SandboxExecutionMutation) ExitCodeCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldExitCode]
	return ok
}

// ResetExitCode resets all changes to the "exit_code" field.
func (m *SandboxExecutionMutation) ResetExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
	delete(m.clearedFields, sandboxexecution.FieldExitCode)
}

// SetStartedAt sets the "started_at" field.
func (m *SandboxExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SandboxExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SandboxExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[sandboxexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SandboxExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SandboxExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, sandboxexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SandboxExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SandboxExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SandboxExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[sandboxexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SandboxExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SandboxExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, sandboxexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *SandboxExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *SandboxExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *SandboxExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *SandboxExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *SandboxExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[sandboxexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *SandboxExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *SandboxExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, sandboxexecution.FieldDurationMs)
}

// SetPeakMemoryMB sets the "peak_memory_mb" field.
func (m *SandboxExecutionMutation) SetPeakMemoryMB(i int) {
	m.peak_memory_mb = &i
	m.addpeak_memory_mb = nil
}

// PeakMemoryMB returns the value of the "peak_memory_mb" field in the mutation.
func (m *SandboxExecutionMutation) PeakMemoryMB() (r int, exists bool) {
	v := m.peak_memory_mb
	if v == nil {
		return
	}
	return *v, true
}

// OldPeakMemoryMB returns the old "peak_memory_mb" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldPeakMemoryMB(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeakMemoryMB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeakMemoryMB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeakMemoryMB: %w", err)
	}
	return oldValue.PeakMemoryMB, nil
}

// AddPeakMemoryMB adds i to the "peak_memory_mb" field.
func (m *SandboxExecutionMutation) AddPeakMemoryMB(i int) {
	if m.addpeak_memory_mb != nil {
		*m.addpeak_memory_mb += i
	} else {
		m.addpeak_memory_mb = &i
	}
}

// AddedPeakMemoryMB returns the value that was added to the "peak_memory_mb" field in this mutation.
func (m *SandboxExecutionMutation) AddedPeakMemoryMB() (r int, exists bool) {
	v := m.addpeak_memory_mb
	if v == nil {
		return
	}
	return *v, true
}

// ClearPeakMemoryMB clears the value of the "peak_memory_mb" field.
func (m *SandboxExecutionMutation) ClearPeakMemoryMB() {
	m.peak_memory_mb = nil
	m.addpeak_memory_mb = nil
	m.clearedFields[sandboxexecution.FieldPeakMemoryMB] = struct{}{}
}

// PeakMemoryMBCleared returns if the "peak_memory_mb" field was cleared in this mutation.
func (m *SandboxExecutionMutation) PeakMemoryMBCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldPeakMemoryMB]
	return ok
}

// ResetPeakMemoryMB resets all changes to the "peak_memory_mb" field.
func (m *SandboxExecutionMutation) ResetPeakMemoryMB() {
	m.peak_memory_mb = nil
	m.addpeak_memory_mb = nil
	delete(m.clearedFields, sandboxexecution.FieldPeakMemoryMB)
}

// SetCPUPercent sets the "cpu_percent" field.
func (m *SandboxExecutionMutation) SetCPUPercent(f float64) {
	m.cpu_percent = &f
	m.addcpu_percent = nil
}

// CPUPercent returns the value of the "cpu_percent" field in the mutation.
func (m *SandboxExecutionMutation) CPUPercent() (r float64, exists bool) {
	v := m.cpu_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldCPUPercent returns the old "cpu_percent" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldCPUPercent(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPUPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPUPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPUPercent: %w", err)
	}
	return oldValue.CPUPercent, nil
}

// AddCPUPercent adds f to the "cpu_percent" field.
func (m *SandboxExecutionMutation) AddCPUPercent(f float64) {
	if m.addcpu_percent != nil {
		*m.addcpu_percent += f
	} else {
		m.addcpu_percent = &f
	}
}

// AddedCPUPercent returns the value that was added to the "cpu_percent" field in this mutation.
func (m *SandboxExecutionMutation) AddedCPUPercent() (r float64, exists bool) {
	v := m.addcpu_percent
	if v == nil {
		return
	}
	return *v, true
}

// ClearCPUPercent clears the value of the "cpu_percent" field.
func (m *SandboxExecutionMutation) ClearCPUPercent() {
	m.cpu_percent = nil
	m.addcpu_percent = nil
	m.clearedFields[sandboxexecution.FieldCPUPercent] = struct{}{}
}

// CPUPercentCleared returns if the "cpu_percent" field was cleared in this mutation.
func (m *SandboxExecutionMutation) CPUPercentCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldCPUPercent]
	return ok
}

// ResetCPUPercent resets all changes to the "cpu_percent" field.
func (m *SandboxExecutionMutation) ResetCPUPercent() {
	m.cpu_percent = nil
	m.addcpu_percent = nil
	delete(m.clearedFields, sandboxexecution.FieldCPUPercent)
}

// SetContainerID sets the "container_id" field.
func (m *SandboxExecutionMutation) SetContainerID(s string) {
	m.container_id = &s
}

// ContainerID returns the value of the "container_id" field in the mutation.
func (m *SandboxExecutionMutation) ContainerID() (r string, exists bool) {
	v := m.container_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContainerID returns the old "container_id" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldContainerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContainerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContainerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContainerID: %w", err)
	}
	return oldValue.ContainerID, nil
}

// ClearContainerID clears the value of the "container_id" field.
func (m *SandboxExecutionMutation) ClearContainerID() {
	m.container_id = nil
	m.clearedFields[sandboxexecution.FieldContainerID] = struct{}{}
}

// ContainerIDCleared returns if the "container_id" field was cleared in this mutation.
func (m *SandboxExecutionMutation) ContainerIDCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldContainerID]
	return ok
}

// ResetContainerID resets all changes to the "container_id" field.
func (m *SandboxExecutionMutation) ResetContainerID() {
	m.container_id = nil
	delete(m.clearedFields, sandboxexecution.FieldContainerID)
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *SandboxExecutionMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *SandboxExecutionMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *SandboxExecutionMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *SandboxExecutionMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *SandboxExecutionMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
}

// SetMemoryLimitMB sets the "memory_limit_mb" field.
func (m *SandboxExecutionMutation) SetMemoryLimitMB(i int) {
	m.memory_limit_mb = &i
	m.addmemory_limit_mb = nil
}

// MemoryLimitMB returns the value of the "memory_limit_mb" field in the mutation.
func (m *SandboxExecutionMutation) MemoryLimitMB() (r int, exists bool) {
	v := m.memory_limit_mb
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryLimitMB returns the old "memory_limit_mb" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldMemoryLimitMB(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryLimitMB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryLimitMB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryLimitMB: %w", err)
	}
	return oldValue.MemoryLimitMB, nil
}

// AddMemoryLimitMB adds i to the "memory_limit_mb" field.
func (m *SandboxExecutionMutation) AddMemoryLimitMB(i int) {
	if m.addmemory_limit_mb != nil {
		*m.addmemory_limit_mb += i
	} else {
		m.addmemory_limit_mb = &i
	}
}

// AddedMemoryLimitMB returns the value that was added to the "memory_limit_mb" field in this mutation.
func (m *SandboxExecutionMutation) AddedMemoryLimitMB() (r int, exists bool) {
	v := m.addmemory_limit_mb
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoryLimitMB resets all changes to the "memory_limit_mb" field.
func (m *SandboxExecutionMutation) ResetMemoryLimitMB() {
	m.memory_limit_mb = nil
	m.addmemory_limit_mb = nil
}

// SetErrorType sets the "error_type" field.
func (m *SandboxExecutionMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *SandboxExecutionMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldErrorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *SandboxExecutionMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[sandboxexecution.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *SandboxExecutionMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *SandboxExecutionMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, sandboxexecution.FieldErrorType)
}

// SetErrorMessage sets the "error_message" field.
func (m *SandboxExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SandboxExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SandboxExecution entity.
// If the SandboxExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SandboxExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[sandboxexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SandboxExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[sandboxexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SandboxExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, sandboxexecution.FieldErrorMessage)
}

// ClearRun clears the "run" edge to the TaskRun entity.
func (m *SandboxExecutionMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[sandboxexecution.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the TaskRun entity was cleared.
func (m *SandboxExecutionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *SandboxExecutionMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *SandboxExecutionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the SandboxExecutionMutation builder.
func (m *SandboxExecutionMutation) Where(ps ...predicate.SandboxExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SandboxExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SandboxExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SandboxExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SandboxExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SandboxExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SandboxExecution).
func (m *SandboxExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SandboxExecutionMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.run != nil {
		fields = append(fields, sandboxexecution.FieldRunID)
	}
	if m.workspace_id != nil {
		fields = append(fields, sandboxexecution.FieldWorkspaceID)
	}
	if m.project_id != nil {
		fields = append(fields, sandboxexecution.FieldProjectID)
	}
	if m.language != nil {
		fields = append(fields, sandboxexecution.FieldLanguage)
	}
	if m.command != nil {
		fields = append(fields, sandboxexecution.FieldCommand)
	}
	if m.code_location != nil {
		fields = append(fields, sandboxexecution.FieldCodeLocation)
	}
	if m.status != nil {
		fields = append(fields, sandboxexecution.FieldStatus)
	}
	if m.stdout != nil {
		fields = append(fields, sandboxexecution.FieldStdout)
	}
	if m.stderr != nil {
		fields = append(fields, sandboxexecution.FieldStderr)
	}
	if m.exit_code != nil {
		fields = append(fields, sandboxexecution.FieldExitCode)
	}
	if m.started_at != nil {
		fields = append(fields, sandboxexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, sandboxexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, sandboxexecution.FieldDurationMs)
	}
	if m.peak_memory_mb != nil {
		fields = append(fields, sandboxexecution.FieldPeakMemoryMB)
	}
	if m.cpu_percent != nil {
		fields = append(fields, sandboxexecution.FieldCPUPercent)
	}
	if m.container_id != nil {
		fields = append(fields, sandboxexecution.FieldContainerID)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, sandboxexecution.FieldTimeoutSeconds)
	}
	if m.memory_limit_mb != nil {
		fields = append(fields, sandboxexecution.FieldMemoryLimitMB)
	}
	if m.error_type != nil {
		fields = append(fields, sandboxexecution.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, sandboxexecution.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SandboxExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sandboxexecution.FieldRunID:
		return m.RunID()
	case sandboxexecution.FieldWorkspaceID:
		return m.WorkspaceID()
	case sandboxexecution.FieldProjectID:
		return m.ProjectID()
	case sandboxexecution.FieldLanguage:
		return m.Language()
	case sandboxexecution.FieldCommand:
		return m.Command()
	case sandboxexecution.FieldCodeLocation:
		return m.CodeLocation()
	case sandboxexecution.FieldStatus:
		return m.Status()
	case sandboxexecution.FieldStdout:
		return m.Stdout()
	case sandboxexecution.FieldStderr:
		return m.Stderr()
	case sandboxexecution.FieldExitCode:
		return m.ExitCode()
	case sandboxexecution.FieldStartedAt:
		return m.StartedAt()
	case sandboxexecution.FieldCompletedAt:
		return m.CompletedAt()
	case sandboxexecution.FieldDurationMs:
		return m.DurationMs()
	case sandboxexecution.FieldPeakMemoryMB:
		return m.PeakMemoryMB()
	case sandboxexecution.FieldCPUPercent:
		return m.CPUPercent()
	case sandboxexecution.FieldContainerID:
		return m.ContainerID()
	case sandboxexecution.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case sandboxexecution.FieldMemoryLimitMB:
		return m.MemoryLimitMB()
	case sandboxexecution.FieldErrorType:
		return m.ErrorType()
	case sandboxexecution.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SandboxExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sandboxexecution.FieldRunID:
		return m.OldRunID(ctx)
	case sandboxexecution.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case sandboxexecution.FieldProjectID:
		return m.OldProjectID(ctx)
	case sandboxexecution.FieldLanguage:
		return m.OldLanguage(ctx)
	case sandboxexecution.FieldCommand:
		return m.OldCommand(ctx)
	case sandboxexecution.FieldCodeLocation:
		return m.OldCodeLocation(ctx)
	case sandboxexecution.FieldStatus:
		return m.OldStatus(ctx)
	case sandboxexecution.FieldStdout:
		return m.OldStdout(ctx)
	case sandboxexecution.FieldStderr:
		return m.OldStderr(ctx)
	case sandboxexecution.FieldExitCode:
		return m.OldExitCode(ctx)
	case sandboxexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sandboxexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case sandboxexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case sandboxexecution.FieldPeakMemoryMB:
		return m.OldPeakMemoryMB(ctx)
	case sandboxexecution.FieldCPUPercent:
		return m.OldCPUPercent(ctx)
	case sandboxexecution.FieldContainerID:
		return m.OldContainerID(ctx)
	case sandboxexecution.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case sandboxexecution.FieldMemoryLimitMB:
		return m.OldMemoryLimitMB(ctx)
	case sandboxexecution.FieldErrorType:
		return m.OldErrorType(ctx)
	case sandboxexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown SandboxExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sandboxexecution.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case sandboxexecution.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case sandboxexecution.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case sandboxexecution.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case sandboxexecution.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case sandboxexecution.FieldCodeLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodeLocation(v)
		return nil
	case sandboxexecution.FieldStatus:
		v, ok := value.(sandboxexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sandboxexecution.FieldStdout:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStdout(v)
		return nil
	case sandboxexecution.FieldStderr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStderr(v)
		return nil
	case sandboxexecution.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitCode(v)
		return nil
	case sandboxexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sandboxexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case sandboxexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case sandboxexecution.FieldPeakMemoryMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeakMemoryMB(v)
		return nil
	case sandboxexecution.FieldCPUPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPUPercent(v)
		return nil
	case sandboxexecution.FieldContainerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContainerID(v)
		return nil
	case sandboxexecution.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case sandboxexecution.FieldMemoryLimitMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryLimitMB(v)
		return nil
	case sandboxexecution.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case sandboxexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown SandboxExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SandboxExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addexit_code != nil {
		fields = append(fields, sandboxexecution.FieldExitCode)
	}
	if m.addduration_ms != nil {
		fields = append(fields, sandboxexecution.FieldDurationMs)
	}
	if m.addpeak_memory_mb != nil {
		fields = append(fields, sandboxexecution.FieldPeakMemoryMB)
	}
	if m.addcpu_percent != nil {
		fields = append(fields, sandboxexecution.FieldCPUPercent)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, sandboxexecution.FieldTimeoutSeconds)
	}
	if m.addmemory_limit_mb != nil {
		fields = append(fields, sandboxexecution.FieldMemoryLimitMB)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SandboxExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sandboxexecution.FieldExitCode:
		return m.AddedExitCode()
	case sandboxexecution.FieldDurationMs:
		return m.AddedDurationMs()
	case sandboxexecution.FieldPeakMemoryMB:
		return m.AddedPeakMemoryMB()
	case sandboxexecution.FieldCPUPercent:
		return m.AddedCPUPercent()
	case sandboxexecution.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	case sandboxexecution.FieldMemoryLimitMB:
		return m.AddedMemoryLimitMB()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sandboxexecution.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExitCode(v)
		return nil
	case sandboxexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case sandboxexecution.FieldPeakMemoryMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPeakMemoryMB(v)
		return nil
	case sandboxexecution.FieldCPUPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCPUPercent(v)
		return nil
	case sandboxexecution.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	case sandboxexecution.FieldMemoryLimitMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoryLimitMB(v)
		return nil
	}
	return fmt.Errorf("unknown SandboxExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SandboxExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sandboxexecution.FieldCodeLocation) {
		fields = append(fields, sandboxexecution.FieldCodeLocation)
	}
	if m.FieldCleared(sandboxexecution.FieldStdout) {
		fields = append(fields, sandboxexecution.FieldStdout)
	}
	if m.FieldCleared(sandboxexecution.FieldStderr) {
		fields = append(fields, sandboxexecution.FieldStderr)
	}
	if m.FieldCleared(sandboxexecution.FieldExitCode) {
		fields = append(fields, sandboxexecution.FieldExitCode)
	}
	if m.FieldCleared(sandboxexecution.FieldStartedAt) {
		fields = append(fields, sandboxexecution.FieldStartedAt)
	}
	if m.FieldCleared(sandboxexecution.FieldCompletedAt) {
		fields = append(fields, sandboxexecution.FieldCompletedAt)
	}
	if m.FieldCleared(sandboxexecution.FieldDurationMs) {
		fields = append(fields, sandboxexecution.FieldDurationMs)
	}
	if m.FieldCleared(sandboxexecution.FieldPeakMemoryMB) {
		fields = append(fields, sandboxexecution.FieldPeakMemoryMB)
	}
	if m.FieldCleared(sandboxexecution.FieldCPUPercent) {
		fields = append(fields, sandboxexecution.FieldCPUPercent)
	}
	if m.FieldCleared(sandboxexecution.FieldContainerID) {
		fields = append(fields, sandboxexecution.FieldContainerID)
	}
	if m.FieldCleared(sandboxexecution.FieldErrorType) {
		fields = append(fields, sandboxexecution.FieldErrorType)
	}
	if m.FieldCleared(sandboxexecution.FieldErrorMessage) {
		fields = append(fields, sandboxexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SandboxExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SandboxExecutionMutation) ClearField(name string) error {
	switch name {
	case sandboxexecution.FieldCodeLocation:
		m.ClearCodeLocation()
		return nil
	case sandboxexecution.FieldStdout:
		m.ClearStdout()
		return nil
	case sandboxexecution.FieldStderr:
		m.ClearStderr()
		return nil
	case sandboxexecution.FieldExitCode:
		m.ClearExitCode()
		return nil
	case sandboxexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case sandboxexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case sandboxexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case sandboxexecution.FieldPeakMemoryMB:
		m.ClearPeakMemoryMB()
		return nil
	case sandboxexecution.FieldCPUPercent:
		m.ClearCPUPercent()
		return nil
	case sandboxexecution.FieldContainerID:
		m.ClearContainerID()
		return nil
	case sandboxexecution.FieldErrorType:
		m.ClearErrorType()
		return nil
	case sandboxexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SandboxExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SandboxExecutionMutation) ResetField(name string) error {
	switch name {
	case sandboxexecution.FieldRunID:
		m.ResetRunID()
		return nil
	case sandboxexecution.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case sandboxexecution.FieldProjectID:
		m.ResetProjectID()
		return nil
	case sandboxexecution.FieldLanguage:
		m.ResetLanguage()
		return nil
	case sandboxexecution.FieldCommand:
		m.ResetCommand()
		return nil
	case sandboxexecution.FieldCodeLocation:
		m.ResetCodeLocation()
		return nil
	case sandboxexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case sandboxexecution.FieldStdout:
		m.ResetStdout()
		return nil
	case sandboxexecution.FieldStderr:
		m.ResetStderr()
		return nil
	case sandboxexecution.FieldExitCode:
		m.ResetExitCode()
		return nil
	case sandboxexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sandboxexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case sandboxexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case sandboxexecution.FieldPeakMemoryMB:
		m.ResetPeakMemoryMB()
		return nil
	case sandboxexecution.FieldCPUPercent:
		m.ResetCPUPercent()
		return nil
	case sandboxexecution.FieldContainerID:
		m.ResetContainerID()
		return nil
	case sandboxexecution.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case sandboxexecution.FieldMemoryLimitMB:
		m.ResetMemoryLimitMB()
		return nil
	case sandboxexecution.FieldErrorType:
		m.ResetErrorType()
		return nil
	case sandboxexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SandboxExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SandboxExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, sandboxexecution.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SandboxExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sandboxexecution.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SandboxExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SandboxExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SandboxExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, sandboxexecution.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SandboxExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case sandboxexecution.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SandboxExecutionMutation) ClearEdge(name string) error {
	switch name {
	case sandboxexecution.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown SandboxExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SandboxExecutionMutation) ResetEdge(name string) error {
	switch name {
	case sandboxexecution.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown SandboxExecution edge %s", name)
}

// StepApprovalMutation represents an operation that mutates the StepApproval nodes in the graph.
type StepApprovalMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	step_execution_id             *string
	status                        *stepapproval.Status
	title                         *string
	description                   *string
	approval_data                 *map[string]interface{}
	approver                      *string
	feedback                      *string
	response_data                 *map[string]interface{}
	requested_at                  *time.Time
	responded_at                  *time.Time
	expires_at                    *time.Time
	auto_approve_after_seconds    *int
	addauto_approve_after_seconds *int
	required_approvers            *[]string
	appendrequired_approvers      []string
	revision_count                *int
	addrevision_count             *int
	parent_approval_id            *string
	clearedFields                 map[string]struct{}
	execution                     *string
	clearedexecution              bool
	done                          bool
	oldValue                      func(context.Context) (*StepApproval, error)
	predicates                    []predicate.StepApproval
}

var _ ent.Mutation = (*StepApprovalMutation)(nil)

// stepapprovalOption allows management of the mutation configuration using functional options.
type stepapprovalOption func(*StepApprovalMutation)

// newStepApprovalMutation creates new mutation for the StepApproval entity.
func newStepApprovalMutation(c config, op Op, opts ...stepapprovalOption) *StepApprovalMutation {
	m := &StepApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypeStepApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepApprovalID sets the ID field of the mutation.
func withStepApprovalID(id string) stepapprovalOption {
	return func(m *StepApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *StepApproval
		)
		m.oldValue = func(ctx context.Context) (*StepApproval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepApproval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepApproval sets the old StepApproval of the mutation.
func withStepApproval(node *StepApproval) stepapprovalOption {
	return func(m *StepApprovalMutation) {
		m.oldValue = func(context.Context) (*StepApproval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StepApproval entities.
func (m *StepApprovalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepApprovalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepApprovalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepApproval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStepExecutionID sets the "step_execution_id" field.
func (m *StepApprovalMutation) SetStepExecutionID(s string) {
	m.step_execution_id = &s
}

// StepExecutionID returns the value of the "step_execution_id" field in the mutation.
func (m *StepApprovalMutation) StepExecutionID() (r string, exists bool) {
	v := m.step_execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepExecutionID returns the old "step_execution_id" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldStepExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepExecutionID: %w", err)
	}
	return oldValue.StepExecutionID, nil
}

// ResetStepExecutionID resets all changes to the "step_execution_id" field.
func (m *StepApprovalMutation) ResetStepExecutionID() {
	m.step_execution_id = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *StepApprovalMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *StepApprovalMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *StepApprovalMutation) ResetExecutionID() {
	m.execution = nil
}

// SetStatus sets the "status" field.
func (m *StepApprovalMutation) SetStatus(s stepapproval.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepApprovalMutation) Status() (r stepapproval.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldStatus(ctx context.Context) (v stepapproval.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepApprovalMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *StepApprovalMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StepApprovalMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *StepApprovalMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *StepApprovalMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StepApprovalMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StepApprovalMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[stepapproval.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StepApprovalMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[stepapproval.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StepApprovalMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, stepapproval.FieldDescription)
}

// SetApprovalData sets the "approval_data" field.
func (m *StepApprovalMutation) SetApprovalData(value map[string]interface{}) {
	m.approval_data = &value
}

// ApprovalData returns the value of the "approval_data" field in the mutation.
func (m *StepApprovalMutation) ApprovalData() (r map[string]interface{}, exists bool) {
	v := m.approval_data
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalData returns the old "approval_data" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldApprovalData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalData: %w", err)
	}
	return oldValue.ApprovalData, nil
}

// ClearApprovalData clears the value of the "approval_data" field.
func (m *StepApprovalMutation) ClearApprovalData() {
	m.approval_data = nil
	m.clearedFields[stepapproval.FieldApprovalData] = struct{}{}
}

// ApprovalDataCleared returns if the "approval_data" field was cleared in this mutation.
func (m *StepApprovalMutation) ApprovalDataCleared() bool {
	_, ok := m.clearedFields[stepapproval.FieldApprovalData]
	return ok
}

// ResetApprovalData resets all changes to the "approval_data" field.
func (m *StepApprovalMutation) ResetApprovalData() {
	m.approval_data = nil
	delete(m.clearedFields, stepapproval.FieldApprovalData)
}

// SetApprover sets the "approver" field.
func (m *StepApprovalMutation) SetApprover(s string) {
	m.approver = &s
}

// Approver returns the value of the "approver" field in the mutation.
func (m *StepApprovalMutation) Approver() (r string, exists bool) {
	v := m.approver
	if v == nil {
		return
	}
	return *v, true
}

// OldApprover returns the old "approver" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldApprover(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprover is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprover requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprover: %w", err)
	}
	return oldValue.Approver, nil
}

// ClearApprover clears the value of the "approver" field.
func (m *StepApprovalMutation) ClearApprover() {
	m.approver = nil
	m.clearedFields[stepapproval.FieldApprover] = struct{}{}
}

// ApproverCleared returns if the "approver" field was cleared in this mutation.
func (m *StepApprovalMutation) ApproverCleared() bool {
	_, ok := m.clearedFields[stepapproval.FieldApprover]
	return ok
}

// ResetApprover resets all changes to the "approver" field.
func (m *StepApprovalMutation) ResetApprover() {
	m.approver = nil
	delete(m.clearedFields, stepapproval.FieldApprover)
}

// SetFeedback sets the "feedback" field.
func (m *StepApprovalMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *StepApprovalMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *StepApprovalMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[stepapproval.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *StepApprovalMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[stepapproval.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *StepApprovalMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, stepapproval.FieldFeedback)
}

// SetResponseData sets the "response_data" field.
func (m *StepApprovalMutation) SetResponseData(value map[string]interface{}) {
	m.response_data = &value
}

// ResponseData returns the value of the "response_data" field in the mutation.
func (m *StepApprovalMutation) ResponseData() (r map[string]interface{}, exists bool) {
	v := m.response_data
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseData returns the old "response_data" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldResponseData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseData: %w", err)
	}
	return oldValue.ResponseData, nil
}

// ClearResponseData clears the value of the "response_data" field.
func (m *StepApprovalMutation) ClearResponseData() {
	m.response_data = nil
	m.clearedFields[stepapproval.FieldResponseData] = struct{}{}
}

// ResponseDataCleared returns if the "response_data" field was cleared in this mutation.
func (m *StepApprovalMutation) ResponseDataCleared() bool {
	_, ok := m.clearedFields[stepapproval.FieldResponseData]
	return ok
}

// ResetResponseData resets all changes to the "response_data" field.
func (m *StepApprovalMutation) ResetResponseData() {
	m.response_data = nil
	delete(m.clearedFields, stepapproval.FieldResponseData)
}

// SetRequestedAt sets the "requested_at" field.
func (m *StepApprovalMutation) SetRequestedAt(t time.Time) {
	m.requested_at = &t
}

// RequestedAt returns the value of the "requested_at" field in the mutation.
func (m *StepApprovalMutation) RequestedAt() (r time.Time, exists bool) {
	v := m.requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedAt returns the old "requested_at" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldRequestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedAt: %w", err)
	}
	return oldValue.RequestedAt, nil
}

// ResetRequestedAt resets all changes to the "requested_at" field.
func (m *StepApprovalMutation) ResetRequestedAt() {
	m.requested_at = nil
}

// SetRespondedAt sets the "responded_at" field.
func (m *StepApprovalMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *StepApprovalMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldRespondedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *StepApprovalMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[stepapproval.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *StepApprovalMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[stepapproval.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *StepApprovalMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, stepapproval.FieldRespondedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *StepApprovalMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *StepApprovalMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *StepApprovalMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetAutoApproveAfterSeconds sets the "auto_approve_after_seconds" field.
func (m *StepApprovalMutation) SetAutoApproveAfterSeconds(i int) {
	m.auto_approve_after_seconds = &i
	m.addauto_approve_after_seconds = nil
}

// AutoApproveAfterSeconds returns the value of the "auto_approve_after_seconds" field in the mutation.
func (m *StepApprovalMutation) AutoApproveAfterSeconds() (r int, exists bool) {
	v := m.auto_approve_after_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoApproveAfterSeconds returns the old "auto_approve_after_seconds" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldAutoApproveAfterSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoApproveAfterSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoApproveAfterSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoApproveAfterSeconds: %w", err)
	}
	return oldValue.AutoApproveAfterSeconds, nil
}

// AddAutoApproveAfterSeconds adds i to the "auto_approve_after_seconds" field.
func (m *StepApprovalMutation) AddAutoApproveAfterSeconds(i int) {
	if m.addauto_approve_after_seconds != nil {
		*m.addauto_approve_after_seconds += i
	} else {
		m.addauto_approve_after_seconds = &i
	}
}

// AddedAutoApproveAfterSeconds returns the value that was added to the "auto_approve_after_seconds" field in this mutation.
func (m *StepApprovalMutation) AddedAutoApproveAfterSeconds() (r int, exists bool) {
	v := m.addauto_approve_after_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearAutoApproveAfterSeconds clears the value of the "auto_approve_after_seconds" field.
func (m *StepApprovalMutation) ClearAutoApproveAfterSeconds() {
	m.auto_approve_after_seconds = nil
	m.addauto_approve_after_seconds = nil
	m.clearedFields[stepapproval.FieldAutoApproveAfterSeconds] = struct{}{}
}

// AutoApproveAfterSecondsCleared returns if the "auto_approve_after_seconds" field was cleared in this mutation.
func (m *StepApprovalMutation) AutoApproveAfterSecondsCleared() bool {
	_, ok := m.clearedFields[stepapproval.FieldAutoApproveAfterSeconds]
	return ok
}

// ResetAutoApproveAfterSeconds resets all changes to the "auto_approve_after_seconds" field.
func (m *StepApprovalMutation) ResetAutoApproveAfterSeconds() {
	m.auto_approve_after_seconds = nil
	m.addauto_approve_after_seconds = nil
	delete(m.clearedFields, stepapproval.FieldAutoApproveAfterSeconds)
}

// SetRequiredApprovers sets the "required_approvers" field.
func (m *StepApprovalMutation) SetRequiredApprovers(s []string) {
	m.required_approvers = &s
	m.appendrequired_approvers = nil
}

// RequiredApprovers returns the value of the "required_approvers" field in the mutation.
func (m *StepApprovalMutation) RequiredApprovers() (r []string, exists bool) {
	v := m.required_approvers
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredApprovers returns the old "required_approvers" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldRequiredApprovers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredApprovers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredApprovers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredApprovers: %w", err)
	}
	return oldValue.RequiredApprovers, nil
}

// AppendRequiredApprovers adds s to the "required_approvers" field.
func (m *StepApprovalMutation) AppendRequiredApprovers(s []string) {
	m.appendrequired_approvers = append(m.appendrequired_approvers, s...)
}

// AppendedRequiredApprovers returns the list of values that were appended to the "required_approvers" field in this mutation.
func (m *StepApprovalMutation) AppendedRequiredApprovers() ([]string, bool) {
	if len(m.appendrequired_approvers) == 0 {
		return nil, false
	}
	return m.appendrequired_approvers, true
}

// ClearRequiredApprovers clears the value of the "required_approvers" field.
func (m *StepApprovalMutation) ClearRequiredApprovers() {
	m.required_approvers = nil
	m.appendrequired_approvers = nil
	m.clearedFields[stepapproval.FieldRequiredApprovers] = struct{}{}
}

// RequiredApproversCleared returns if the "required_approvers" field was cleared in this mutation.
func (m *StepApprovalMutation) RequiredApproversCleared() bool {
	_, ok := m.clearedFields[stepapproval.FieldRequiredApprovers]
	return ok
}

// ResetRequiredApprovers resets all changes to the "required_approvers" field.
func (m *StepApprovalMutation) ResetRequiredApprovers() {
	m.required_approvers = nil
	m.appendrequired_approvers = nil
	delete(m.clearedFields, stepapproval.FieldRequiredApprovers)
}

// SetRevisionCount sets the "revision_count" field.
func (m *StepApprovalMutation) SetRevisionCount(i int) {
	m.revision_count = &i
	m.addrevision_count = nil
}

// RevisionCount returns the value of the "revision_count" field in the mutation.
func (m *StepApprovalMutation) RevisionCount() (r int, exists bool) {
	v := m.revision_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRevisionCount returns the old "revision_count" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldRevisionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevisionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevisionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevisionCount: %w", err)
	}
	return oldValue.RevisionCount, nil
}

// AddRevisionCount adds i to the "revision_count" field.
func (m *StepApprovalMutation) AddRevisionCount(i int) {
	if m.addrevision_count != nil {
		*m.addrevision_count += i
	} else {
		m.addrevision_count = &i
	}
}

// AddedRevisionCount returns the value that was added to the "revision_count" field in this mutation.
func (m *StepApprovalMutation) AddedRevisionCount() (r int, exists bool) {
	v := m.addrevision_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevisionCount resets all changes to the "revision_count" field.
func (m *StepApprovalMutation) ResetRevisionCount() {
	m.revision_count = nil
	m.addrevision_count = nil
}

// SetParentApprovalID sets the "parent_approval_id" field.
func (m *StepApprovalMutation) SetParentApprovalID(s string) {
	m.parent_approval_id = &s
}

// ParentApprovalID returns the value of the "parent_approval_id" field in the mutation.
func (m *StepApprovalMutation) ParentApprovalID() (r string, exists bool) {
	v := m.parent_approval_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentApprovalID returns the old "parent_approval_id" field's value of the StepApproval entity.
// If the StepApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepApprovalMutation) OldParentApprovalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentApprovalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentApprovalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentApprovalID: %w", err)
	}
	return oldValue.ParentApprovalID, nil
}

// ClearParentApprovalID clears the value of the "parent_approval_id" field.
func (m *StepApprovalMutation) ClearParentApprovalID() {
	m.parent_approval_id = nil
	m.clearedFields[stepapproval.FieldParentApprovalID] = struct{}{}
}

// ParentApprovalIDCleared returns if the "parent_approval_id" field was cleared in this mutation.
func (m *StepApprovalMutation) ParentApprovalIDCleared() bool {
	_, ok := m.clearedFields[stepapproval.FieldParentApprovalID]
	return ok
}

// ResetParentApprovalID resets all changes to the "parent_approval_id" field.
func (m *StepApprovalMutation) ResetParentApprovalID() {
	m.parent_approval_id = nil
	delete(m.clearedFields, stepapproval.FieldParentApprovalID)
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *StepApprovalMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[stepapproval.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *StepApprovalMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *StepApprovalMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *StepApprovalMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the StepApprovalMutation builder.
func (m *StepApprovalMutation) Where(ps ...predicate.StepApproval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepApproval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepApproval).
func (m *StepApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepApprovalMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.step_execution_id != nil {
		fields = append(fields, stepapproval.FieldStepExecutionID)
	}
	if m.execution != nil {
		fields = append(fields, stepapproval.FieldExecutionID)
	}
	if m.status != nil {
		fields = append(fields, stepapproval.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, stepapproval.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, stepapproval.FieldDescription)
	}
	if m.approval_data != nil {
		fields = append(fields, stepapproval.FieldApprovalData)
	}
	if m.approver != nil {
		fields = append(fields, stepapproval.FieldApprover)
	}
	if m.feedback != nil {
		fields = append(fields, stepapproval.FieldFeedback)
	}
	if m.response_data != nil {
		fields = append(fields, stepapproval.FieldResponseData)
	}
	if m.requested_at != nil {
		fields = append(fields, stepapproval.FieldRequestedAt)
	}
	if m.responded_at != nil {
		fields = append(fields, stepapproval.FieldRespondedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, stepapproval.FieldExpiresAt)
	}
	if m.auto_approve_after_seconds != nil {
		fields = append(fields, stepapproval.FieldAutoApproveAfterSeconds)
	}
	if m.required_approvers != nil {
		fields = append(fields, stepapproval.FieldRequiredApprovers)
	}
	if m.revision_count != nil {
		fields = append(fields, stepapproval.FieldRevisionCount)
	}
	if m.parent_approval_id != nil {
		fields = append(fields, stepapproval.FieldParentApprovalID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepapproval.FieldStepExecutionID:
		return m.StepExecutionID()
	case stepapproval.FieldExecutionID:
		return m.ExecutionID()
	case stepapproval.FieldStatus:
		return m.Status()
	case stepapproval.FieldTitle:
		return m.Title()
	case stepapproval.FieldDescription:
		return m.Description()
	case stepapproval.FieldApprovalData:
		return m.ApprovalData()
	case stepapproval.FieldApprover:
		return m.Approver()
	case stepapproval.FieldFeedback:
		return m.Feedback()
	case stepapproval.FieldResponseData:
		return m.ResponseData()
	case stepapproval.FieldRequestedAt:
		return m.RequestedAt()
	case stepapproval.FieldRespondedAt:
		return m.RespondedAt()
	case stepapproval.FieldExpiresAt:
		return m.ExpiresAt()
	case stepapproval.FieldAutoApproveAfterSeconds:
		return m.AutoApproveAfterSeconds()
	case stepapproval.FieldRequiredApprovers:
		return m.RequiredApprovers()
	case stepapproval.FieldRevisionCount:
		return m.RevisionCount()
	case stepapproval.FieldParentApprovalID:
		return m.ParentApprovalID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepapproval.FieldStepExecutionID:
		return m.OldStepExecutionID(ctx)
	case stepapproval.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case stepapproval.FieldStatus:
		return m.OldStatus(ctx)
	case stepapproval.FieldTitle:
		return m.OldTitle(ctx)
	case stepapproval.FieldDescription:
		return m.OldDescription(ctx)
	case stepapproval.FieldApprovalData:
		return m.OldApprovalData(ctx)
	case stepapproval.FieldApprover:
		return m.OldApprover(ctx)
	case stepapproval.FieldFeedback:
		return m.OldFeedback(ctx)
	case stepapproval.FieldResponseData:
		return m.OldResponseData(ctx)
	case stepapproval.FieldRequestedAt:
		return m.OldRequestedAt(ctx)
	case stepapproval.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	case stepapproval.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case stepapproval.FieldAutoApproveAfterSeconds:
		return m.OldAutoApproveAfterSeconds(ctx)
	case stepapproval.FieldRequiredApprovers:
		return m.OldRequiredApprovers(ctx)
	case stepapproval.FieldRevisionCount:
		return m.OldRevisionCount(ctx)
	case stepapproval.FieldParentApprovalID:
		return m.OldParentApprovalID(ctx)
	}
	return nil, fmt.Errorf("unknown StepApproval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepapproval.FieldStepExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepExecutionID(v)
		return nil
	case stepapproval.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case stepapproval.FieldStatus:
		v, ok := value.(stepapproval.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stepapproval.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case stepapproval.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case stepapproval.FieldApprovalData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalData(v)
		return nil
	case stepapproval.FieldApprover:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprover(v)
		return nil
	case stepapproval.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case stepapproval.FieldResponseData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseData(v)
		return nil
	case stepapproval.FieldRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedAt(v)
		return nil
	case stepapproval.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	case stepapproval.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case stepapproval.FieldAutoApproveAfterSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoApproveAfterSeconds(v)
		return nil
	case stepapproval.FieldRequiredApprovers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredApprovers(v)
		return nil
	case stepapproval.FieldRevisionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevisionCount(v)
		return nil
	case stepapproval.FieldParentApprovalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentApprovalID(v)
		return nil
	}
	return fmt.Errorf("unknown StepApproval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepApprovalMutation) AddedFields() []string {
	var fields []string
	if m.addauto_approve_after_seconds != nil {
		fields = append(fields, stepapproval.FieldAutoApproveAfterSeconds)
	}
	if m.addrevision_count != nil {
		fields = append(fields, stepapproval.FieldRevisionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepApprovalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepapproval.FieldAutoApproveAfterSeconds:
		return m.AddedAutoApproveAfterSeconds()
	case stepapproval.FieldRevisionCount:
		return m.AddedRevisionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepapproval.FieldAutoApproveAfterSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAutoApproveAfterSeconds(v)
		return nil
	case stepapproval.FieldRevisionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevisionCount(v)
		return nil
	}
	return fmt.Errorf("unknown StepApproval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stepapproval.FieldDescription) {
		fields = append(fields, stepapproval.FieldDescription)
	}
	if m.FieldCleared(stepapproval.FieldApprovalData) {
		fields = append(fields, stepapproval.FieldApprovalData)
	}
	if m.FieldCleared(stepapproval.FieldApprover) {
		fields = append(fields, stepapproval.FieldApprover)
	}
	if m.FieldCleared(stepapproval.FieldFeedback) {
		fields = append(fields, stepapproval.FieldFeedback)
	}
	if m.FieldCleared(stepapproval.FieldResponseData) {
		fields = append(fields, stepapproval.FieldResponseData)
	}
	if m.FieldCleared(stepapproval.FieldRespondedAt) {
		fields = append(fields, stepapproval.FieldRespondedAt)
	}
	if m.FieldCleared(stepapproval.FieldAutoApproveAfterSeconds) {
		fields = append(fields, stepapproval.FieldAutoApproveAfterSeconds)
	}
	if m.FieldCleared(stepapproval.FieldRequiredApprovers) {
		fields = append(fields, stepapproval.FieldRequiredApprovers)
	}
	if m.FieldCleared(stepapproval.FieldParentApprovalID) {
		fields = append(fields, stepapproval.FieldParentApprovalID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepApprovalMutation) ClearField(name string) error {
	switch name {
	case stepapproval.FieldDescription:
		m.ClearDescription()
		return nil
	case stepapproval.FieldApprovalData:
		m.ClearApprovalData()
		return nil
	case stepapproval.FieldApprover:
		m.ClearApprover()
		return nil
	case stepapproval.FieldFeedback:
		m.ClearFeedback()
		return nil
	case stepapproval.FieldResponseData:
		m.ClearResponseData()
		return nil
	case stepapproval.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	case stepapproval.FieldAutoApproveAfterSeconds:
		m.ClearAutoApproveAfterSeconds()
		return nil
	case stepapproval.FieldRequiredApprovers:
		m.ClearRequiredApprovers()
		return nil
	case stepapproval.FieldParentApprovalID:
		m.ClearParentApprovalID()
		return nil
	}
	return fmt.Errorf("unknown StepApproval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepApprovalMutation) ResetField(name string) error {
	switch name {
	case stepapproval.FieldStepExecutionID:
		m.ResetStepExecutionID()
		return nil
	case stepapproval.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case stepapproval.FieldStatus:
		m.ResetStatus()
		return nil
	case stepapproval.FieldTitle:
		m.ResetTitle()
		return nil
	case stepapproval.FieldDescription:
		m.ResetDescription()
		return nil
	case stepapproval.FieldApprovalData:
		m.ResetApprovalData()
		return nil
	case stepapproval.FieldApprover:
		m.ResetApprover()
		return nil
	case stepapproval.FieldFeedback:
		m.ResetFeedback()
		return nil
	case stepapproval.FieldResponseData:
		m.ResetResponseData()
		return nil
	case stepapproval.FieldRequestedAt:
		m.ResetRequestedAt()
		return nil
	case stepapproval.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	case stepapproval.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case stepapproval.FieldAutoApproveAfterSeconds:
		m.ResetAutoApproveAfterSeconds()
		return nil
	case stepapproval.FieldRequiredApprovers:
		m.ResetRequiredApprovers()
		return nil
	case stepapproval.FieldRevisionCount:
		m.ResetRevisionCount()
		return nil
	case stepapproval.FieldParentApprovalID:
		m.ResetParentApprovalID()
		return nil
	}
	return fmt.Errorf("unknown StepApproval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, stepapproval.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepApprovalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stepapproval.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, stepapproval.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepApprovalMutation) EdgeCleared(name string) bool {
	switch name {
	case stepapproval.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepApprovalMutation) ClearEdge(name string) error {
	switch name {
	case stepapproval.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown StepApproval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepApprovalMutation) ResetEdge(name string) error {
	switch name {
	case stepapproval.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown StepApproval edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	workspace_id           *string
	name                   *string
	description            *string
	_config                *map[string]interface{}
	status                 *task.Status
	max_rounds             *int
	addmax_rounds          *int
	max_revision_rounds    *int
	addmax_revision_rounds *int
	branch_prefix          *string
	commit_template        *string
	total_runs             *int
	addtotal_runs          *int
	successful_runs        *int
	addsuccessful_runs     *int
	failed_runs            *int
	addfailed_runs         *int
	created_at             *time.Time
	clearedFields          map[string]struct{}
	project                *string
	clearedproject         bool
	runs                   map[string]struct{}
	removedruns            map[string]struct{}
	clearedruns            bool
	done                   bool
	oldValue               func(context.Context) (*Task, error)
	predicates             []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *TaskMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *TaskMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *TaskMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *TaskMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TaskMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TaskMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *TaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetConfig sets the "config" field.
func (m *TaskMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *TaskMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *TaskMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[task.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *TaskMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[task.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *TaskMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, task.FieldConfig)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetMaxRounds sets the "max_rounds" field.
func (m *TaskMutation) SetMaxRounds(i int) {
	m.max_rounds = &i
	m.addmax_rounds = nil
}

// MaxRounds returns the value of the "max_rounds" field in the mutation.
func (m *TaskMutation) MaxRounds() (r int, exists bool) {
	v := m.max_rounds
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRounds returns the old "max_rounds" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxRounds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRounds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRounds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRounds: %w", err)
	}
	return oldValue.MaxRounds, nil
}

// AddMaxRounds adds i to the "max_rounds" field.
func (m *TaskMutation) AddMaxRounds(i int) {
	if m.addmax_rounds != nil {
		*m.addmax_rounds += i
	} else {
		m.addmax_rounds = &i
	}
}

// AddedMaxRounds returns the value that was added to the "max_rounds" field in this mutation.
func (m *TaskMutation) AddedMaxRounds() (r int, exists bool) {
	v := m.addmax_rounds
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRounds resets all changes to the "max_rounds" field.
func (m *TaskMutation) ResetMaxRounds() {
	m.max_rounds = nil
	m.addmax_rounds = nil
}

// SetMaxRevisionRounds sets the "max_revision_rounds" field.
func (m *TaskMutation) SetMaxRevisionRounds(i int) {
	m.max_revision_rounds = &i
	m.addmax_revision_rounds = nil
}

// MaxRevisionRounds returns the value of the "max_revision_rounds" field in the mutation.
func (m *TaskMutation) MaxRevisionRounds() (r int, exists bool) {
	v := m.max_revision_rounds
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRevisionRounds returns the old "max_revision_rounds" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxRevisionRounds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRevisionRounds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRevisionRounds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRevisionRounds: %w", err)
	}
	return oldValue.MaxRevisionRounds, nil
}

// AddMaxRevisionRounds adds i to the "max_revision_rounds" field.
func (m *TaskMutation) AddMaxRevisionRounds(i int) {
	if m.addmax_revision_rounds != nil {
		*m.addmax_revision_rounds += i
	} else {
		m.addmax_revision_rounds = &i
	}
}

// AddedMaxRevisionRounds returns the value that was added to the "max_revision_rounds" field in this mutation.
func (m *TaskMutation) AddedMaxRevisionRounds() (r int, exists bool) {
	v := m.addmax_revision_rounds
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRevisionRounds resets all changes to the "max_revision_rounds" field.
func (m *TaskMutation) ResetMaxRevisionRounds() {
	m.max_revision_rounds = nil
	m.addmax_revision_rounds = nil
}

// SetBranchPrefix sets the "branch_prefix" field.
func (m *TaskMutation) SetBranchPrefix(s string) {
	m.branch_prefix = &s
}

// BranchPrefix returns the value of the "branch_prefix" field in the mutation.
func (m *TaskMutation) BranchPrefix() (r string, exists bool) {
	v := m.branch_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchPrefix returns the old "branch_prefix" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBranchPrefix(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchPrefix: %w", err)
	}
	return oldValue.BranchPrefix, nil
}

// ClearBranchPrefix clears the value of the "branch_prefix" field.
func (m *TaskMutation) ClearBranchPrefix() {
	m.branch_prefix = nil
	m.clearedFields[task.FieldBranchPrefix] = struct{}{}
}

// BranchPrefixCleared returns if the "branch_prefix" field was cleared in this mutation.
func (m *TaskMutation) BranchPrefixCleared() bool {
	_, ok := m.clearedFields[task.FieldBranchPrefix]
	return ok
}

// ResetBranchPrefix resets all changes to the "branch_prefix" field.
func (m *TaskMutation) ResetBranchPrefix() {
	m.branch_prefix = nil
	delete(m.clearedFields, task.FieldBranchPrefix)
}

// SetCommitTemplate sets the "commit_template" field.
func (m *TaskMutation) SetCommitTemplate(s string) {
	m.commit_template = &s
}

// CommitTemplate returns the value of the "commit_template" field in the mutation.
func (m *TaskMutation) CommitTemplate() (r string, exists bool) {
	v := m.commit_template
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitTemplate returns the old "commit_template" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCommitTemplate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitTemplate: %w", err)
	}
	return oldValue.CommitTemplate, nil
}

// ClearCommitTemplate clears the value of the "commit_template" field.
func (m *TaskMutation) ClearCommitTemplate() {
	m.commit_template = nil
	m.clearedFields[task.FieldCommitTemplate] = struct{}{}
}

// CommitTemplateCleared returns if the "commit_template" field was cleared in this mutation.
func (m *TaskMutation) CommitTemplateCleared() bool {
	_, ok := m.clearedFields[task.FieldCommitTemplate]
	return ok
}

// ResetCommitTemplate resets all changes to the "commit_template" field.
func (m *TaskMutation) ResetCommitTemplate() {
	m.commit_template = nil
	delete(m.clearedFields, task.FieldCommitTemplate)
}

// SetTotalRuns sets the "total_runs" field.
func (m *TaskMutation) SetTotalRuns(i int) {
	m.total_runs = &i
	m.addtotal_runs = nil
}

// TotalRuns returns the value of the "total_runs" field in the mutation.
func (m *TaskMutation) TotalRuns() (r int, exists bool) {
	v := m.total_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRuns returns the old "total_runs" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTotalRuns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRuns: %w", err)
	}
	return oldValue.TotalRuns, nil
}

// AddTotalRuns adds i to the "total_runs" field.
func (m *TaskMutation) AddTotalRuns(i int) {
	if m.addtotal_runs != nil {
		*m.addtotal_runs += i
	} else {
		m.addtotal_runs = &i
	}
}

// AddedTotalRuns returns the value that was added to the "total_runs" field in this mutation.
func (m *TaskMutation) AddedTotalRuns() (r int, exists bool) {
	v := m.addtotal_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRuns resets all changes to the "total_runs" field.
func (m *TaskMutation) ResetTotalRuns() {
	m.total_runs = nil
	m.addtotal_runs = nil
}

// SetSuccessfulRuns sets the "successful_runs" field.
func (m *TaskMutation) SetSuccessfulRuns(i int) {
	m.successful_runs = &i
	m.addsuccessful_runs = nil
}

// SuccessfulRuns returns the value of the "successful_runs" field in the mutation.
func (m *TaskMutation) SuccessfulRuns() (r int, exists bool) {
	v := m.successful_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessfulRuns returns the old "successful_runs" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSuccessfulRuns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessfulRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessfulRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessfulRuns: %w", err)
	}
	return oldValue.SuccessfulRuns, nil
}

// AddSuccessfulRuns adds i to the "successful_runs" field.
func (m *TaskMutation) AddSuccessfulRuns(i int) {
	if m.addsuccessful_runs != nil {
		*m.addsuccessful_runs += i
	} else {
		m.addsuccessful_runs = &i
	}
}

// AddedSuccessfulRuns returns the value that was added to the "successful_runs" field in this mutation.
func (m *TaskMutation) AddedSuccessfulRuns() (r int, exists bool) {
	v := m.addsuccessful_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessfulRuns resets all changes to the "successful_runs" field.
func (m *TaskMutation) ResetSuccessfulRuns() {
	m.successful_runs = nil
	m.addsuccessful_runs = nil
}

// SetFailedRuns sets the "failed_runs" field.
func (m *TaskMutation) SetFailedRuns(i int) {
	m.failed_runs = &i
	m.addfailed_runs = nil
}

// FailedRuns returns the value of the "failed_runs" field in the mutation.
func (m *TaskMutation) FailedRuns() (r int, exists bool) {
	v := m.failed_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedRuns returns the old "failed_runs" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFailedRuns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedRuns: %w", err)
	}
	return oldValue.FailedRuns, nil
}

// AddFailedRuns adds i to the "failed_runs" field.
func (m *TaskMutation) AddFailedRuns(i int) {
	if m.addfailed_runs != nil {
		*m.addfailed_runs += i
	} else {
		m.addfailed_runs = &i
	}
}

// AddedFailedRuns returns the value that was added to the "failed_runs" field in this mutation.
func (m *TaskMutation) AddedFailedRuns() (r int, exists bool) {
	v := m.addfailed_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedRuns resets all changes to the "failed_runs" field.
func (m *TaskMutation) ResetFailedRuns() {
	m.failed_runs = nil
	m.addfailed_runs = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TaskMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[task.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TaskMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TaskMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddRunIDs adds the "runs" edge to the TaskRun entity by ids.
func (m *TaskMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the TaskRun entity.
func (m *TaskMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the TaskRun entity was cleared.
func (m *TaskMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the TaskRun entity by IDs.
func (m *TaskMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the TaskRun entity.
func (m *TaskMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *TaskMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *TaskMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.workspace_id != nil {
		fields = append(fields, task.FieldWorkspaceID)
	}
	if m.project != nil {
		fields = append(fields, task.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, task.FieldName)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m._config != nil {
		fields = append(fields, task.FieldConfig)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.max_rounds != nil {
		fields = append(fields, task.FieldMaxRounds)
	}
	if m.max_revision_rounds != nil {
		fields = append(fields, task.FieldMaxRevisionRounds)
	}
	if m.branch_prefix != nil {
		fields = append(fields, task.FieldBranchPrefix)
	}
	if m.commit_template != nil {
		fields = append(fields, task.FieldCommitTemplate)
	}
	if m.total_runs != nil {
		fields = append(fields, task.FieldTotalRuns)
	}
	if m.successful_runs != nil {
		fields = append(fields, task.FieldSuccessfulRuns)
	}
	if m.failed_runs != nil {
		fields = append(fields, task.FieldFailedRuns)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldWorkspaceID:
		return m.WorkspaceID()
	case task.FieldProjectID:
		return m.ProjectID()
	case task.FieldName:
		return m.Name()
	case task.FieldDescription:
		return m.Description()
	case task.FieldConfig:
		return m.Config()
	case task.FieldStatus:
		return m.Status()
	case task.FieldMaxRounds:
		return m.MaxRounds()
	case task.FieldMaxRevisionRounds:
		return m.MaxRevisionRounds()
	case task.FieldBranchPrefix:
		return m.BranchPrefix()
	case task.FieldCommitTemplate:
		return m.CommitTemplate()
	case task.FieldTotalRuns:
		return m.TotalRuns()
	case task.FieldSuccessfulRuns:
		return m.SuccessfulRuns()
	case task.FieldFailedRuns:
		return m.FailedRuns()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case task.FieldProjectID:
		return m.OldProjectID(ctx)
	case task.FieldName:
		return m.OldName(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldConfig:
		return m.OldConfig(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldMaxRounds:
		return m.OldMaxRounds(ctx)
	case task.FieldMaxRevisionRounds:
		return m.OldMaxRevisionRounds(ctx)
	case task.FieldBranchPrefix:
		return m.OldBranchPrefix(ctx)
	case task.FieldCommitTemplate:
		return m.OldCommitTemplate(ctx)
	case task.FieldTotalRuns:
		return m.OldTotalRuns(ctx)
	case task.FieldSuccessfulRuns:
		return m.OldSuccessfulRuns(ctx)
	case task.FieldFailedRuns:
		return m.OldFailedRuns(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case task.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case task.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldMaxRounds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRounds(v)
		return nil
	case task.FieldMaxRevisionRounds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRevisionRounds(v)
		return nil
	case task.FieldBranchPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchPrefix(v)
		return nil
	case task.FieldCommitTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitTemplate(v)
		return nil
	case task.FieldTotalRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRuns(v)
		return nil
	case task.FieldSuccessfulRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessfulRuns(v)
		return nil
	case task.FieldFailedRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedRuns(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addmax_rounds != nil {
		fields = append(fields, task.FieldMaxRounds)
	}
	if m.addmax_revision_rounds != nil {
		fields = append(fields, task.FieldMaxRevisionRounds)
	}
	if m.addtotal_runs != nil {
		fields = append(fields, task.FieldTotalRuns)
	}
	if m.addsuccessful_runs != nil {
		fields = append(fields, task.FieldSuccessfulRuns)
	}
	if m.addfailed_runs != nil {
		fields = append(fields, task.FieldFailedRuns)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldMaxRounds:
		return m.AddedMaxRounds()
	case task.FieldMaxRevisionRounds:
		return m.AddedMaxRevisionRounds()
	case task.FieldTotalRuns:
		return m.AddedTotalRuns()
	case task.FieldSuccessfulRuns:
		return m.AddedSuccessfulRuns()
	case task.FieldFailedRuns:
		return m.AddedFailedRuns()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldMaxRounds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRounds(v)
		return nil
	case task.FieldMaxRevisionRounds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRevisionRounds(v)
		return nil
	case task.FieldTotalRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRuns(v)
		return nil
	case task.FieldSuccessfulRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessfulRuns(v)
		return nil
	case task.FieldFailedRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedRuns(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldConfig) {
		fields = append(fields, task.FieldConfig)
	}
	if m.FieldCleared(task.FieldBranchPrefix) {
		fields = append(fields, task.FieldBranchPrefix)
	}
	if m.FieldCleared(task.FieldCommitTemplate) {
		fields = append(fields, task.FieldCommitTemplate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldConfig:
		m.ClearConfig()
		return nil
	case task.FieldBranchPrefix:
		m.ClearBranchPrefix()
		return nil
	case task.FieldCommitTemplate:
		m.ClearCommitTemplate()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case task.FieldProjectID:
		m.ResetProjectID()
		return nil
	case task.FieldName:
		m.ResetName()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldConfig:
		m.ResetConfig()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldMaxRounds:
		m.ResetMaxRounds()
		return nil
	case task.FieldMaxRevisionRounds:
		m.ResetMaxRevisionRounds()
		return nil
	case task.FieldBranchPrefix:
		m.ResetBranchPrefix()
		return nil
	case task.FieldCommitTemplate:
		m.ResetCommitTemplate()
		return nil
	case task.FieldTotalRuns:
		m.ResetTotalRuns()
		return nil
	case task.FieldSuccessfulRuns:
		m.ResetSuccessfulRuns()
		return nil
	case task.FieldFailedRuns:
		m.ResetFailedRuns()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, task.EdgeProject)
	}
	if m.runs != nil {
		edges = append(edges, task.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedruns != nil {
		edges = append(edges, task.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, task.EdgeProject)
	}
	if m.clearedruns {
		edges = append(edges, task.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeProject:
		return m.clearedproject
	case task.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeProject:
		m.ResetProject()
		return nil
	case task.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskRunMutation represents an operation that mutates the TaskRun nodes in the graph.
type TaskRunMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	workspace_id              *string
	project_id                *string
	run_number                *int
	addrun_number             *int
	status                    *taskrun.Status
	phase                     *taskrun.Phase
	plan                      *map[string]interface{}
	results                   *map[string]interface{}
	started_at                *time.Time
	completed_at              *time.Time
	duration_ms               *int
	addduration_ms            *int
	error_kind                *string
	error_message             *string
	round_count               *int
	addround_count            *int
	branch_name               *string
	commit_sha                *string
	pr_url                    *string
	git_status                *taskrun.GitStatus
	pod_id                    *string
	last_heartbeat_at         *time.Time
	created_at                *time.Time
	clearedFields             map[string]struct{}
	task                      *string
	clearedtask               bool
	sandbox_executions        map[string]struct{}
	removedsandbox_executions map[string]struct{}
	clearedsandbox_executions bool
	done                      bool
	oldValue                  func(context.Context) (*TaskRun, error)
	predicates                []predicate.TaskRun
}

var _ ent.Mutation = (*TaskRunMutation)(nil)

// taskrunOption allows management of the mutation configuration using functional options.
type taskrunOption func(*TaskRunMutation)

// newTaskRunMutation creates new mutation for the TaskRun entity.
func newTaskRunMutation(c config, op Op, opts ...taskrunOption) *TaskRunMutation {
	m := &TaskRunMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskRunID sets the ID field of the mutation.
func withTaskRunID(id string) taskrunOption {
	return func(m *TaskRunMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskRun
		)
		m.oldValue = func(ctx context.Context) (*TaskRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskRun sets the old TaskRun of the mutation.
func withTaskRun(node *TaskRun) taskrunOption {
	return func(m *TaskRunMutation) {
		m.oldValue = func(context.Context) (*TaskRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskRun entities.
func (m *TaskRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskRunMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskRunMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskRunMutation) ResetTaskID() {
	m.task = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *TaskRunMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *TaskRunMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *TaskRunMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *TaskRunMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TaskRunMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TaskRunMutation) ResetProjectID() {
	m.project_id = nil
}

// SetRunNumber sets the "run_number" field.
func (m *TaskRunMutation) SetRunNumber(i int) {
	m.run_number = &i
	m.addrun_number = nil
}

// RunNumber returns the value of the "run_number" field in the mutation.
func (m *TaskRunMutation) RunNumber() (r int, exists bool) {
	v := m.run_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRunNumber returns the old "run_number" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldRunNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunNumber: %w", err)
	}
	return oldValue.RunNumber, nil
}

// AddRunNumber adds i to the "run_number" field.
func (m *TaskRunMutation) AddRunNumber(i int) {
	if m.addrun_number != nil {
		*m.addrun_number += i
	} else {
		m.addrun_number = &i
	}
}

// AddedRunNumber returns the value that was added to the "run_number" field in this mutation.
func (m *TaskRunMutation) AddedRunNumber() (r int, exists bool) {
	v := m.addrun_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetRunNumber resets all changes to the "run_number" field.
func (m *TaskRunMutation) ResetRunNumber() {
	m.run_number = nil
	m.addrun_number = nil
}

// SetStatus sets the "status" field.
func (m *TaskRunMutation) SetStatus(t taskrun.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskRunMutation) Status() (r taskrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldStatus(ctx context.Context) (v taskrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskRunMutation) ResetStatus() {
	m.status = nil
}

// SetPhase sets the "phase" field.
func (m *TaskRunMutation) SetPhase(t taskrun.Phase) {
	m.phase = &t
}

// Phase returns the value of the "phase" field in the mutation.
func (m *TaskRunMutation) Phase() (r taskrun.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldPhase(ctx context.Context) (v taskrun.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *TaskRunMutation) ResetPhase() {
	m.phase = nil
}

// SetPlan sets the "plan" field.
func (m *TaskRunMutation) SetPlan(value map[string]interface{}) {
	m.plan = &value
}

// Plan returns the value of the "plan" field in the mutation.
func (m *TaskRunMutation) Plan() (r map[string]interface{}, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldPlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ClearPlan clears the value of the "plan" field.
func (m *TaskRunMutation) ClearPlan() {
	m.plan = nil
	m.clearedFields[taskrun.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *TaskRunMutation) PlanCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *TaskRunMutation) ResetPlan() {
	m.plan = nil
	delete(m.clearedFields, taskrun.FieldPlan)
}

// SetResults sets the "results" field.
func (m *TaskRunMutation) SetResults(value map[string]interface{}) {
	m.results = &value
}

// Results returns the value of the "results" field in the mutation.
func (m *TaskRunMutation) Results() (r map[string]interface{}, exists bool) {
	v := m.results
	if v == nil {
		return
	}
	return *v, true
}

// OldResults returns the old "results" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldResults(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResults: %w", err)
	}
	return oldValue.Results, nil
}

// ClearResults clears the value of the "results" field.
func (m *TaskRunMutation) ClearResults() {
	m.results = nil
	m.clearedFields[taskrun.FieldResults] = struct{}{}
}

// ResultsCleared returns if the "results" field was cleared in this mutation.
func (m *TaskRunMutation) ResultsCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldResults]
	return ok
}

// ResetResults resets all changes to the "results" field.
func (m *TaskRunMutation) ResetResults() {
	m.results = nil
	delete(m.clearedFields, taskrun.FieldResults)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[taskrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, taskrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[taskrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, taskrun.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *TaskRunMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TaskRunMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TaskRunMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TaskRunMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *TaskRunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[taskrun.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *TaskRunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TaskRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, taskrun.FieldDurationMs)
}

// SetErrorKind sets the "error_kind" field.
func (m *TaskRunMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *TaskRunMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *TaskRunMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[taskrun.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *TaskRunMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *TaskRunMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, taskrun.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[taskrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, taskrun.FieldErrorMessage)
}

// SetRoundCount sets the "round_count" field.
func (m *TaskRunMutation) SetRoundCount(i int) {
	m.round_count = &i
	m.addround_count = nil
}

// RoundCount returns the value of the "round_count" field in the mutation.
func (m *TaskRunMutation) RoundCount() (r int, exists bool) {
	v := m.round_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundCount returns the old "round_count" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldRoundCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundCount: %w", err)
	}
	return oldValue.RoundCount, nil
}

// AddRoundCount adds i to the "round_count" field.
func (m *TaskRunMutation) AddRoundCount(i int) {
	if m.addround_count != nil {
		*m.addround_count += i
	} else {
		m.addround_count = &i
	}
}

// AddedRoundCount returns the value that was added to the "round_count" field in this mutation.
func (m *TaskRunMutation) AddedRoundCount() (r int, exists bool) {
	v := m.addround_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoundCount resets all changes to the "round_count" field.
func (m *TaskRunMutation) ResetRoundCount() {
	m.round_count = nil
	m.addround_count = nil
}

// SetBranchName sets the "branch_name" field.
func (m *TaskRunMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *TaskRunMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *TaskRunMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[taskrun.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *TaskRunMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *TaskRunMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, taskrun.FieldBranchName)
}

// SetCommitSha sets the "commit_sha" field.
func (m *TaskRunMutation) SetCommitSha(s string) {
	m.commit_sha = &s
}

// CommitSha returns the value of the "commit_sha" field in the mutation.
func (m *TaskRunMutation) CommitSha() (r string, exists bool) {
	v := m.commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitSha returns the old "commit_sha" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldCommitSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitSha: %w", err)
	}
	return oldValue.CommitSha, nil
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (m *TaskRunMutation) ClearCommitSha() {
	m.commit_sha = nil
	m.clearedFields[taskrun.FieldCommitSha] = struct{}{}
}

// CommitShaCleared returns if the "commit_sha" field was cleared in this mutation.
func (m *TaskRunMutation) CommitShaCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldCommitSha]
	return ok
}

// ResetCommitSha resets all changes to the "commit_sha" field.
func (m *TaskRunMutation) ResetCommitSha() {
	m.commit_sha = nil
	delete(m.clearedFields, taskrun.FieldCommitSha)
}

// SetPrURL sets the "pr_url" field.
func (m *TaskRunMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *TaskRunMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *TaskRunMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[taskrun.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *TaskRunMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *TaskRunMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, taskrun.FieldPrURL)
}

// SetGitStatus sets the "git_status" field.
func (m *TaskRunMutation) SetGitStatus(ts taskrun.GitStatus) {
	m.git_status = &ts
}

// GitStatus returns the value of the "git_status" field in the mutation.
func (m *TaskRunMutation) GitStatus() (r taskrun.GitStatus, exists bool) {
	v := m.git_status
	if v == nil {
		return
	}
	return *v, true
}

// OldGitStatus returns the old "git_status" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldGitStatus(ctx context.Context) (v taskrun.GitStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGitStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGitStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGitStatus: %w", err)
	}
	return oldValue.GitStatus, nil
}

// ResetGitStatus resets all changes to the "git_status" field.
func (m *TaskRunMutation) ResetGitStatus() {
	m.git_status = nil
}

// SetPodID sets the "pod_id" field.
func (m *TaskRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[taskrun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, taskrun.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskRunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskRunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskRunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[taskrun.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskRunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[taskrun.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskRunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, taskrun.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskRun entity.
// If the TaskRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskRunMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskrun.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskRunMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskRunMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskRunMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// AddSandboxExecutionIDs adds the "sandbox_executions" edge to the SandboxExecution entity by ids.
func (m *TaskRunMutation) AddSandboxExecutionIDs(ids ...string) {
	if m.sandbox_executions == nil {
		m.sandbox_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.sandbox_executions[ids[i]] = struct{}{}
	}
}

// ClearSandboxExecutions clears the "sandbox_executions" edge to the SandboxExecution entity.
func (m *TaskRunMutation) ClearSandboxExecutions() {
	m.clearedsandbox_executions = true
}

// SandboxExecutionsCleared reports if the "sandbox_executions" edge to the SandboxExecution entity was cleared.
func (m *TaskRunMutation) SandboxExecutionsCleared() bool {
	return m.clearedsandbox_executions
}

// RemoveSandboxExecutionIDs removes the "sandbox_executions" edge to the SandboxExecution entity by IDs.
func (m *TaskRunMutation) RemoveSandboxExecutionIDs(ids ...string) {
	if m.removedsandbox_executions == nil {
		m.removedsandbox_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sandbox_executions, ids[i])
		m.removedsandbox_executions[ids[i]] = struct{}{}
	}
}

// RemovedSandboxExecutions returns the removed IDs of the "sandbox_executions" edge to the SandboxExecution entity.
func (m *TaskRunMutation) RemovedSandboxExecutionsIDs() (ids []string) {
	for id := range m.removedsandbox_executions {
		ids = append(ids, id)
	}
	return
}

// SandboxExecutionsIDs returns the "sandbox_executions" edge IDs in the mutation.
func (m *TaskRunMutation) SandboxExecutionsIDs() (ids []string) {
	for id := range m.sandbox_executions {
		ids = append(ids, id)
	}
	return
}

// ResetSandboxExecutions resets all changes to the "sandbox_executions" edge.
func (m *TaskRunMutation) ResetSandboxExecutions() {
	m.sandbox_executions = nil
	m.clearedsandbox_executions = false
	m.removedsandbox_executions = nil
}

// Where appends a list predicates to the TaskRunMutation builder.
func (m *TaskRunMutation) Where(ps ...predicate.TaskRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskRun).
func (m *TaskRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskRunMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.task != nil {
		fields = append(fields, taskrun.FieldTaskID)
	}
	if m.workspace_id != nil {
		fields = append(fields, taskrun.FieldWorkspaceID)
	}
	if m.project_id != nil {
		fields = append(fields, taskrun.FieldProjectID)
	}
	if m.run_number != nil {
		fields = append(fields, taskrun.FieldRunNumber)
	}
	if m.status != nil {
		fields = append(fields, taskrun.FieldStatus)
	}
	if m.phase != nil {
		fields = append(fields, taskrun.FieldPhase)
	}
	if m.plan != nil {
		fields = append(fields, taskrun.FieldPlan)
	}
	if m.results != nil {
		fields = append(fields, taskrun.FieldResults)
	}
	if m.started_at != nil {
		fields = append(fields, taskrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, taskrun.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, taskrun.FieldDurationMs)
	}
	if m.error_kind != nil {
		fields = append(fields, taskrun.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, taskrun.FieldErrorMessage)
	}
	if m.round_count != nil {
		fields = append(fields, taskrun.FieldRoundCount)
	}
	if m.branch_name != nil {
		fields = append(fields, taskrun.FieldBranchName)
	}
	if m.commit_sha != nil {
		fields = append(fields, taskrun.FieldCommitSha)
	}
	if m.pr_url != nil {
		fields = append(fields, taskrun.FieldPrURL)
	}
	if m.git_status != nil {
		fields = append(fields, taskrun.FieldGitStatus)
	}
	if m.pod_id != nil {
		fields = append(fields, taskrun.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, taskrun.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, taskrun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskrun.FieldTaskID:
		return m.TaskID()
	case taskrun.FieldWorkspaceID:
		return m.WorkspaceID()
	case taskrun.FieldProjectID:
		return m.ProjectID()
	case taskrun.FieldRunNumber:
		return m.RunNumber()
	case taskrun.FieldStatus:
		return m.Status()
	case taskrun.FieldPhase:
		return m.Phase()
	case taskrun.FieldPlan:
		return m.Plan()
	case taskrun.FieldResults:
		return m.Results()
	case taskrun.FieldStartedAt:
		return m.StartedAt()
	case taskrun.FieldCompletedAt:
		return m.CompletedAt()
	case taskrun.FieldDurationMs:
		return m.DurationMs()
	case taskrun.FieldErrorKind:
		return m.ErrorKind()
	case taskrun.FieldErrorMessage:
		return m.ErrorMessage()
	case taskrun.FieldRoundCount:
		return m.RoundCount()
	case taskrun.FieldBranchName:
		return m.BranchName()
	case taskrun.FieldCommitSha:
		return m.CommitSha()
	case taskrun.FieldPrURL:
		return m.PrURL()
	case taskrun.FieldGitStatus:
		return m.GitStatus()
	case taskrun.FieldPodID:
		return m.PodID()
	case taskrun.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case taskrun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskrun.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskrun.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case taskrun.FieldProjectID:
		return m.OldProjectID(ctx)
	case taskrun.FieldRunNumber:
		return m.OldRunNumber(ctx)
	case taskrun.FieldStatus:
		return m.OldStatus(ctx)
	case taskrun.FieldPhase:
		return m.OldPhase(ctx)
	case taskrun.FieldPlan:
		return m.OldPlan(ctx)
	case taskrun.FieldResults:
		return m.OldResults(ctx)
	case taskrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case taskrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case taskrun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case taskrun.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case taskrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case taskrun.FieldRoundCount:
		return m.OldRoundCount(ctx)
	case taskrun.FieldBranchName:
		return m.OldBranchName(ctx)
	case taskrun.FieldCommitSha:
		return m.OldCommitSha(ctx)
	case taskrun.FieldPrURL:
		return m.OldPrURL(ctx)
	case taskrun.FieldGitStatus:
		return m.OldGitStatus(ctx)
	case taskrun.FieldPodID:
		return m.OldPodID(ctx)
	case taskrun.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case taskrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskrun.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskrun.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case taskrun.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case taskrun.FieldRunNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunNumber(v)
		return nil
	case taskrun.FieldStatus:
		v, ok := value.(taskrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taskrun.FieldPhase:
		v, ok := value.(taskrun.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case taskrun.FieldPlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case taskrun.FieldResults:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResults(v)
		return nil
	case taskrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case taskrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case taskrun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case taskrun.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case taskrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case taskrun.FieldRoundCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundCount(v)
		return nil
	case taskrun.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case taskrun.FieldCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitSha(v)
		return nil
	case taskrun.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case taskrun.FieldGitStatus:
		v, ok := value.(taskrun.GitStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGitStatus(v)
		return nil
	case taskrun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case taskrun.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case taskrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskRunMutation) AddedFields() []string {
	var fields []string
	if m.addrun_number != nil {
		fields = append(fields, taskrun.FieldRunNumber)
	}
	if m.addduration_ms != nil {
		fields = append(fields, taskrun.FieldDurationMs)
	}
	if m.addround_count != nil {
		fields = append(fields, taskrun.FieldRoundCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskrun.FieldRunNumber:
		return m.AddedRunNumber()
	case taskrun.FieldDurationMs:
		return m.AddedDurationMs()
	case taskrun.FieldRoundCount:
		return m.AddedRoundCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskrun.FieldRunNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRunNumber(v)
		return nil
	case taskrun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case taskrun.FieldRoundCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoundCount(v)
		return nil
	}
	return fmt.Errorf("unknown TaskRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskrun.FieldPlan) {
		fields = append(fields, taskrun.FieldPlan)
	}
	if m.FieldCleared(taskrun.FieldResults) {
		fields = append(fields, taskrun.FieldResults)
	}
	if m.FieldCleared(taskrun.FieldStartedAt) {
		fields = append(fields, taskrun.FieldStartedAt)
	}
	if m.FieldCleared(taskrun.FieldCompletedAt) {
		fields = append(fields, taskrun.FieldCompletedAt)
	}
	if m.FieldCleared(taskrun.FieldDurationMs) {
		fields = append(fields, taskrun.FieldDurationMs)
	}
	if m.FieldCleared(taskrun.FieldErrorKind) {
		fields = append(fields, taskrun.FieldErrorKind)
	}
	if m.FieldCleared(taskrun.FieldErrorMessage) {
		fields = append(fields, taskrun.FieldErrorMessage)
	}
	if m.FieldCleared(taskrun.FieldBranchName) {
		fields = append(fields, taskrun.FieldBranchName)
	}
	if m.FieldCleared(taskrun.FieldCommitSha) {
		fields = append(fields, taskrun.FieldCommitSha)
	}
	if m.FieldCleared(taskrun.FieldPrURL) {
		fields = append(fields, taskrun.FieldPrURL)
	}
	if m.FieldCleared(taskrun.FieldPodID) {
		fields = append(fields, taskrun.FieldPodID)
	}
	if m.FieldCleared(taskrun.FieldLastHeartbeatAt) {
		fields = append(fields, taskrun.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskRunMutation) ClearField(name string) error {
	switch name {
	case taskrun.FieldPlan:
		m.ClearPlan()
		return nil
	case taskrun.FieldResults:
		m.ClearResults()
		return nil
	case taskrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case taskrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case taskrun.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case taskrun.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case taskrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case taskrun.FieldBranchName:
		m.ClearBranchName()
		return nil
	case taskrun.FieldCommitSha:
		m.ClearCommitSha()
		return nil
	case taskrun.FieldPrURL:
		m.ClearPrURL()
		return nil
	case taskrun.FieldPodID:
		m.ClearPodID()
		return nil
	case taskrun.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown TaskRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskRunMutation) ResetField(name string) error {
	switch name {
	case taskrun.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskrun.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case taskrun.FieldProjectID:
		m.ResetProjectID()
		return nil
	case taskrun.FieldRunNumber:
		m.ResetRunNumber()
		return nil
	case taskrun.FieldStatus:
		m.ResetStatus()
		return nil
	case taskrun.FieldPhase:
		m.ResetPhase()
		return nil
	case taskrun.FieldPlan:
		m.ResetPlan()
		return nil
	case taskrun.FieldResults:
		m.ResetResults()
		return nil
	case taskrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case taskrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case taskrun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case taskrun.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case taskrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case taskrun.FieldRoundCount:
		m.ResetRoundCount()
		return nil
	case taskrun.FieldBranchName:
		m.ResetBranchName()
		return nil
	case taskrun.FieldCommitSha:
		m.ResetCommitSha()
		return nil
	case taskrun.FieldPrURL:
		m.ResetPrURL()
		return nil
	case taskrun.FieldGitStatus:
		m.ResetGitStatus()
		return nil
	case taskrun.FieldPodID:
		m.ResetPodID()
		return nil
	case taskrun.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case taskrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.task != nil {
		edges = append(edges, taskrun.EdgeTask)
	}
	if m.sandbox_executions != nil {
		edges = append(edges, taskrun.EdgeSandboxExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskrun.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case taskrun.EdgeSandboxExecutions:
		ids := make([]ent.Value, 0, len(m.sandbox_executions))
		for id := range m.sandbox_executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsandbox_executions != nil {
		edges = append(edges, taskrun.EdgeSandboxExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case taskrun.EdgeSandboxExecutions:
		ids := make([]ent.Value, 0, len(m.removedsandbox_executions))
		for id := range m.removedsandbox_executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtask {
		edges = append(edges, taskrun.EdgeTask)
	}
	if m.clearedsandbox_executions {
		edges = append(edges, taskrun.EdgeSandboxExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskRunMutation) EdgeCleared(name string) bool {
	switch name {
	case taskrun.EdgeTask:
		return m.clearedtask
	case taskrun.EdgeSandboxExecutions:
		return m.clearedsandbox_executions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskRunMutation) ClearEdge(name string) error {
	switch name {
	case taskrun.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskRunMutation) ResetEdge(name string) error {
	switch name {
	case taskrun.EdgeTask:
		m.ResetTask()
		return nil
	case taskrun.EdgeSandboxExecutions:
		m.ResetSandboxExecutions()
		return nil
	}
	return fmt.Errorf("unknown TaskRun edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                Op
	typ               string
	id                *string
	workspace_id      *string
	name              *string
	description       *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	project           *string
	clearedproject    bool
	steps             map[string]struct{}
	removedsteps      map[string]struct{}
	clearedsteps      bool
	executions        map[string]struct{}
	removedexecutions map[string]struct{}
	clearedexecutions bool
	done              bool
	oldValue          func(context.Context) (*Workflow, error)
	predicates        []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id string) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *WorkflowMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *WorkflowMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *WorkflowMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *WorkflowMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *WorkflowMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *WorkflowMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *WorkflowMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *WorkflowMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *WorkflowMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *WorkflowMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[workflow.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *WorkflowMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[workflow.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *WorkflowMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, workflow.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *WorkflowMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[workflow.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *WorkflowMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *WorkflowMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *WorkflowMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by ids.
func (m *WorkflowMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the WorkflowStep entity.
func (m *WorkflowMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the WorkflowStep entity was cleared.
func (m *WorkflowMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the WorkflowStep entity by IDs.
func (m *WorkflowMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the WorkflowStep entity.
func (m *WorkflowMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *WorkflowMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *WorkflowMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddExecutionIDs adds the "executions" edge to the WorkflowExecution entity by ids.
func (m *WorkflowMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the WorkflowExecution entity.
func (m *WorkflowMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the WorkflowExecution entity was cleared.
func (m *WorkflowMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the WorkflowExecution entity by IDs.
func (m *WorkflowMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the WorkflowExecution entity.
func (m *WorkflowMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *WorkflowMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *WorkflowMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.workspace_id != nil {
		fields = append(fields, workflow.FieldWorkspaceID)
	}
	if m.project != nil {
		fields = append(fields, workflow.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, workflow.FieldName)
	}
	if m.description != nil {
		fields = append(fields, workflow.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldWorkspaceID:
		return m.WorkspaceID()
	case workflow.FieldProjectID:
		return m.ProjectID()
	case workflow.FieldName:
		return m.Name()
	case workflow.FieldDescription:
		return m.Description()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case workflow.FieldProjectID:
		return m.OldProjectID(ctx)
	case workflow.FieldName:
		return m.OldName(ctx)
	case workflow.FieldDescription:
		return m.OldDescription(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case workflow.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case workflow.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflow.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldDescription) {
		fields = append(fields, workflow.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case workflow.FieldProjectID:
		m.ResetProjectID()
		return nil
	case workflow.FieldName:
		m.ResetName()
		return nil
	case workflow.FieldDescription:
		m.ResetDescription()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, workflow.EdgeProject)
	}
	if m.steps != nil {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.executions != nil {
		edges = append(edges, workflow.EdgeExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case workflow.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsteps != nil {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.removedexecutions != nil {
		edges = append(edges, workflow.EdgeExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, workflow.EdgeProject)
	}
	if m.clearedsteps {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.clearedexecutions {
		edges = append(edges, workflow.EdgeExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgeProject:
		return m.clearedproject
	case workflow.EdgeSteps:
		return m.clearedsteps
	case workflow.EdgeExecutions:
		return m.clearedexecutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	case workflow.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgeProject:
		m.ResetProject()
		return nil
	case workflow.EdgeSteps:
		m.ResetSteps()
		return nil
	case workflow.EdgeExecutions:
		m.ResetExecutions()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}

// WorkflowExecutionMutation represents an operation that mutates the WorkflowExecution nodes in the graph.
type WorkflowExecutionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	workspace_id           *string
	project_id             *string
	execution_number       *int
	addexecution_number    *int
	status                 *workflowexecution.Status
	started_at             *time.Time
	completed_at           *time.Time
	duration_ms            *int
	addduration_ms         *int
	input_variables        *map[string]interface{}
	results                *map[string]interface{}
	error_kind             *string
	error_message          *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	workflow               *string
	clearedworkflow        bool
	step_executions        map[string]struct{}
	removedstep_executions map[string]struct{}
	clearedstep_executions bool
	approvals              map[string]struct{}
	removedapprovals       map[string]struct{}
	clearedapprovals       bool
	done                   bool
	oldValue               func(context.Context) (*WorkflowExecution, error)
	predicates             []predicate.WorkflowExecution
}

var _ ent.Mutation = (*WorkflowExecutionMutation)(nil)

// workflowexecutionOption allows management of the mutation configuration using functional options.
type workflowexecutionOption func(*WorkflowExecutionMutation)

// newWorkflowExecutionMutation creates new mutation for the WorkflowExecution entity.
func newWorkflowExecutionMutation(c config, op Op, opts ...workflowexecutionOption) *WorkflowExecutionMutation {
	m := &WorkflowExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowExecutionID sets the ID field of the mutation.
func withWorkflowExecutionID(id string) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowExecution
		)
		m.oldValue = func(ctx context.Context) (*WorkflowExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowExecution sets the old WorkflowExecution of the mutation.
func withWorkflowExecution(node *WorkflowExecution) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		m.oldValue = func(context.Context) (*WorkflowExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowExecution entities.
func (m *WorkflowExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowExecutionMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowExecutionMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowExecutionMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *WorkflowExecutionMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *WorkflowExecutionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *WorkflowExecutionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *WorkflowExecutionMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *WorkflowExecutionMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *WorkflowExecutionMutation) ResetProjectID() {
	m.project_id = nil
}

// SetExecutionNumber sets the "execution_number" field.
func (m *WorkflowExecutionMutation) SetExecutionNumber(i int) {
	m.execution_number = &i
	m.addexecution_number = nil
}

// ExecutionNumber returns the value of the "execution_number" field in the mutation.
func (m *WorkflowExecutionMutation) ExecutionNumber() (r int, exists bool) {
	v := m.execution_number
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionNumber returns the old "execution_number" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldExecutionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionNumber: %w", err)
	}
	return oldValue.ExecutionNumber, nil
}

// AddExecutionNumber adds i to the "execution_number" field.
func (m *WorkflowExecutionMutation) AddExecutionNumber(i int) {
	if m.addexecution_number != nil {
		*m.addexecution_number += i
	} else {
		m.addexecution_number = &i
	}
}

// AddedExecutionNumber returns the value that was added to the "execution_number" field in this mutation.
func (m *WorkflowExecutionMutation) AddedExecutionNumber() (r int, exists bool) {
	v := m.addexecution_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionNumber resets all changes to the "execution_number" field.
func (m *WorkflowExecutionMutation) ResetExecutionNumber() {
	m.execution_number = nil
	m.addexecution_number = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowExecutionMutation) SetStatus(w workflowexecution.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowExecutionMutation) Status() (r workflowexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStatus(ctx context.Context) (v workflowexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *WorkflowExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *WorkflowExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *WorkflowExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *WorkflowExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *WorkflowExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[workflowexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *WorkflowExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, workflowexecution.FieldDurationMs)
}

// SetInputVariables sets the "input_variables" field.
func (m *WorkflowExecutionMutation) SetInputVariables(value map[string]interface{}) {
	m.input_variables = &value
}

// InputVariables returns the value of the "input_variables" field in the mutation.
func (m *WorkflowExecutionMutation) InputVariables() (r map[string]interface{}, exists bool) {
	v := m.input_variables
	if v == nil {
		return
	}
	return *v, true
}

// OldInputVariables returns the old "input_variables" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldInputVariables(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputVariables: %w", err)
	}
	return oldValue.InputVariables, nil
}

// ClearInputVariables clears the value of the "input_variables" field.
func (m *WorkflowExecutionMutation) ClearInputVariables() {
	m.input_variables = nil
	m.clearedFields[workflowexecution.FieldInputVariables] = struct{}{}
}

// InputVariablesCleared returns if the "input_variables" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) InputVariablesCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldInputVariables]
	return ok
}

// ResetInputVariables resets all changes to the "input_variables" field.
func (m *WorkflowExecutionMutation) ResetInputVariables() {
	m.input_variables = nil
	delete(m.clearedFields, workflowexecution.FieldInputVariables)
}

// SetResults sets the "results" field.
func (m *WorkflowExecutionMutation) SetResults(value map[string]interface{}) {
	m.results = &value
}

// Results returns the value of the "results" field in the mutation.
func (m *WorkflowExecutionMutation) Results() (r map[string]interface{}, exists bool) {
	v := m.results
	if v == nil {
		return
	}
	return *v, true
}

// OldResults returns the old "results" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldResults(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResults: %w", err)
	}
	return oldValue.Results, nil
}

// ClearResults clears the value of the "results" field.
func (m *WorkflowExecutionMutation) ClearResults() {
	m.results = nil
	m.clearedFields[workflowexecution.FieldResults] = struct{}{}
}

// ResultsCleared returns if the "results" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ResultsCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldResults]
	return ok
}

// ResetResults resets all changes to the "results" field.
func (m *WorkflowExecutionMutation) ResetResults() {
	m.results = nil
	delete(m.clearedFields, workflowexecution.FieldResults)
}

// SetErrorKind sets the "error_kind" field.
func (m *WorkflowExecutionMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *WorkflowExecutionMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *WorkflowExecutionMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[workflowexecution.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *WorkflowExecutionMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, workflowexecution.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowexecution.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowExecutionMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowexecution.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowExecutionMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowExecutionMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowExecutionMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// AddStepExecutionIDs adds the "step_executions" edge to the WorkflowStepExecution entity by ids.
func (m *WorkflowExecutionMutation) AddStepExecutionIDs(ids ...string) {
	if m.step_executions == nil {
		m.step_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.step_executions[ids[i]] = struct{}{}
	}
}

// ClearStepExecutions clears the "step_executions" edge to the WorkflowStepExecution entity.
func (m *WorkflowExecutionMutation) ClearStepExecutions() {
	m.clearedstep_executions = true
}

// StepExecutionsCleared reports if the "step_executions" edge to the WorkflowStepExecution entity was cleared.
func (m *WorkflowExecutionMutation) StepExecutionsCleared() bool {
	return m.clearedstep_executions
}

// RemoveStepExecutionIDs removes the "step_executions" edge to the WorkflowStepExecution entity by IDs.
func (m *WorkflowExecutionMutation) RemoveStepExecutionIDs(ids ...string) {
	if m.removedstep_executions == nil {
		m.removedstep_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.step_executions, ids[i])
		m.removedstep_executions[ids[i]] = struct{}{}
	}
}

// RemovedStepExecutions returns the removed IDs of the "step_executions" edge to the WorkflowStepExecution entity.
func (m *WorkflowExecutionMutation) RemovedStepExecutionsIDs() (ids []string) {
	for id := range m.removedstep_executions {
		ids = append(ids, id)
	}
	return
}

// StepExecutionsIDs returns the "step_executions" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) StepExecutionsIDs() (ids []string) {
	for id := range m.step_executions {
		ids = append(ids, id)
	}
	return
}

// ResetStepExecutions resets all changes to the "step_executions" edge.
func (m *WorkflowExecutionMutation) ResetStepExecutions() {
	m.step_executions = nil
	m.clearedstep_executions = false
	m.removedstep_executions = nil
}

// AddApprovalIDs adds the "approvals" edge to the StepApproval entity by ids.
func (m *WorkflowExecutionMutation) AddApprovalIDs(ids ...string) {
	if m.approvals == nil {
		m.approvals = make(map[string]struct{})
	}
	for i := range ids {
		m.approvals[ids[i]] = struct{}{}
	}
}

// ClearApprovals clears the "approvals" edge to the StepApproval entity.
func (m *WorkflowExecutionMutation) ClearApprovals() {
	m.clearedapprovals = true
}

// ApprovalsCleared reports if the "approvals" edge to the StepApproval entity was cleared.
func (m *WorkflowExecutionMutation) ApprovalsCleared() bool {
	return m.clearedapprovals
}

// RemoveApprovalIDs removes the "approvals" edge to the StepApproval entity by IDs.
func (m *WorkflowExecutionMutation) RemoveApprovalIDs(ids ...string) {
	if m.removedapprovals == nil {
		m.removedapprovals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.approvals, ids[i])
		m.removedapprovals[ids[i]] = struct{}{}
	}
}

// RemovedApprovals returns the removed IDs of the "approvals" edge to the StepApproval entity.
func (m *WorkflowExecutionMutation) RemovedApprovalsIDs() (ids []string) {
	for id := range m.removedapprovals {
		ids = append(ids, id)
	}
	return
}

// ApprovalsIDs returns the "approvals" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) ApprovalsIDs() (ids []string) {
	for id := range m.approvals {
		ids = append(ids, id)
	}
	return
}

// ResetApprovals resets all changes to the "approvals" edge.
func (m *WorkflowExecutionMutation) ResetApprovals() {
	m.approvals = nil
	m.clearedapprovals = false
	m.removedapprovals = nil
}

// Where appends a list predicates to the WorkflowExecutionMutation builder.
func (m *WorkflowExecutionMutation) Where(ps ...predicate.WorkflowExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowExecution).
func (m *WorkflowExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowExecutionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.workflow != nil {
		fields = append(fields, workflowexecution.FieldWorkflowID)
	}
	if m.workspace_id != nil {
		fields = append(fields, workflowexecution.FieldWorkspaceID)
	}
	if m.project_id != nil {
		fields = append(fields, workflowexecution.FieldProjectID)
	}
	if m.execution_number != nil {
		fields = append(fields, workflowexecution.FieldExecutionNumber)
	}
	if m.status != nil {
		fields = append(fields, workflowexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, workflowexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, workflowexecution.FieldDurationMs)
	}
	if m.input_variables != nil {
		fields = append(fields, workflowexecution.FieldInputVariables)
	}
	if m.results != nil {
		fields = append(fields, workflowexecution.FieldResults)
	}
	if m.error_kind != nil {
		fields = append(fields, workflowexecution.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, workflowexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldWorkflowID:
		return m.WorkflowID()
	case workflowexecution.FieldWorkspaceID:
		return m.WorkspaceID()
	case workflowexecution.FieldProjectID:
		return m.ProjectID()
	case workflowexecution.FieldExecutionNumber:
		return m.ExecutionNumber()
	case workflowexecution.FieldStatus:
		return m.Status()
	case workflowexecution.FieldStartedAt:
		return m.StartedAt()
	case workflowexecution.FieldCompletedAt:
		return m.CompletedAt()
	case workflowexecution.FieldDurationMs:
		return m.DurationMs()
	case workflowexecution.FieldInputVariables:
		return m.InputVariables()
	case workflowexecution.FieldResults:
		return m.Results()
	case workflowexecution.FieldErrorKind:
		return m.ErrorKind()
	case workflowexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowexecution.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowexecution.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case workflowexecution.FieldProjectID:
		return m.OldProjectID(ctx)
	case workflowexecution.FieldExecutionNumber:
		return m.OldExecutionNumber(ctx)
	case workflowexecution.FieldStatus:
		return m.OldStatus(ctx)
	case workflowexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflowexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case workflowexecution.FieldInputVariables:
		return m.OldInputVariables(ctx)
	case workflowexecution.FieldResults:
		return m.OldResults(ctx)
	case workflowexecution.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case workflowexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowexecution.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case workflowexecution.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case workflowexecution.FieldExecutionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionNumber(v)
		return nil
	case workflowexecution.FieldStatus:
		v, ok := value.(workflowexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflowexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case workflowexecution.FieldInputVariables:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputVariables(v)
		return nil
	case workflowexecution.FieldResults:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResults(v)
		return nil
	case workflowexecution.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case workflowexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addexecution_number != nil {
		fields = append(fields, workflowexecution.FieldExecutionNumber)
	}
	if m.addduration_ms != nil {
		fields = append(fields, workflowexecution.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldExecutionNumber:
		return m.AddedExecutionNumber()
	case workflowexecution.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldExecutionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionNumber(v)
		return nil
	case workflowexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowexecution.FieldStartedAt) {
		fields = append(fields, workflowexecution.FieldStartedAt)
	}
	if m.FieldCleared(workflowexecution.FieldCompletedAt) {
		fields = append(fields, workflowexecution.FieldCompletedAt)
	}
	if m.FieldCleared(workflowexecution.FieldDurationMs) {
		fields = append(fields, workflowexecution.FieldDurationMs)
	}
	if m.FieldCleared(workflowexecution.FieldInputVariables) {
		fields = append(fields, workflowexecution.FieldInputVariables)
	}
	if m.FieldCleared(workflowexecution.FieldResults) {
		fields = append(fields, workflowexecution.FieldResults)
	}
	if m.FieldCleared(workflowexecution.FieldErrorKind) {
		fields = append(fields, workflowexecution.FieldErrorKind)
	}
	if m.FieldCleared(workflowexecution.FieldErrorMessage) {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearField(name string) error {
	switch name {
	case workflowexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflowexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case workflowexecution.FieldInputVariables:
		m.ClearInputVariables()
		return nil
	case workflowexecution.FieldResults:
		m.ClearResults()
		return nil
	case workflowexecution.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetField(name string) error {
	switch name {
	case workflowexecution.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowexecution.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case workflowexecution.FieldProjectID:
		m.ResetProjectID()
		return nil
	case workflowexecution.FieldExecutionNumber:
		m.ResetExecutionNumber()
		return nil
	case workflowexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflowexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case workflowexecution.FieldInputVariables:
		m.ResetInputVariables()
		return nil
	case workflowexecution.FieldResults:
		m.ResetResults()
		return nil
	case workflowexecution.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.workflow != nil {
		edges = append(edges, workflowexecution.EdgeWorkflow)
	}
	if m.step_executions != nil {
		edges = append(edges, workflowexecution.EdgeStepExecutions)
	}
	if m.approvals != nil {
		edges = append(edges, workflowexecution.EdgeApprovals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	case workflowexecution.EdgeStepExecutions:
		ids := make([]ent.Value, 0, len(m.step_executions))
		for id := range m.step_executions {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.approvals))
		for id := range m.approvals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedstep_executions != nil {
		edges = append(edges, workflowexecution.EdgeStepExecutions)
	}
	if m.removedapprovals != nil {
		edges = append(edges, workflowexecution.EdgeApprovals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeStepExecutions:
		ids := make([]ent.Value, 0, len(m.removedstep_executions))
		for id := range m.removedstep_executions {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.removedapprovals))
		for id := range m.removedapprovals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedworkflow {
		edges = append(edges, workflowexecution.EdgeWorkflow)
	}
	if m.clearedstep_executions {
		edges = append(edges, workflowexecution.EdgeStepExecutions)
	}
	if m.clearedapprovals {
		edges = append(edges, workflowexecution.EdgeApprovals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowexecution.EdgeWorkflow:
		return m.clearedworkflow
	case workflowexecution.EdgeStepExecutions:
		return m.clearedstep_executions
	case workflowexecution.EdgeApprovals:
		return m.clearedapprovals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearEdge(name string) error {
	switch name {
	case workflowexecution.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetEdge(name string) error {
	switch name {
	case workflowexecution.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	case workflowexecution.EdgeStepExecutions:
		m.ResetStepExecutions()
		return nil
	case workflowexecution.EdgeApprovals:
		m.ResetApprovals()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution edge %s", name)
}

// WorkflowStepMutation represents an operation that mutates the WorkflowStep nodes in the graph.
type WorkflowStepMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	step_type              *workflowstep.StepType
	step_order             *int
	addstep_order          *int
	depends_on_steps       *[]string
	appenddepends_on_steps []string
	_config                *map[string]interface{}
	retry_policy           *map[string]interface{}
	clearedFields          map[string]struct{}
	workflow               *string
	clearedworkflow        bool
	done                   bool
	oldValue               func(context.Context) (*WorkflowStep, error)
	predicates             []predicate.WorkflowStep
}

var _ ent.Mutation = (*WorkflowStepMutation)(nil)

// workflowstepOption allows management of the mutation configuration using functional options.
type workflowstepOption func(*WorkflowStepMutation)

// newWorkflowStepMutation creates new mutation for the WorkflowStep entity.
func newWorkflowStepMutation(c config, op Op, opts ...workflowstepOption) *WorkflowStepMutation {
	m := &WorkflowStepMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowStepID sets the ID field of the mutation.
func withWorkflowStepID(id string) workflowstepOption {
	return func(m *WorkflowStepMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowStep
		)
		m.oldValue = func(ctx context.Context) (*WorkflowStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowStep sets the old WorkflowStep of the mutation.
func withWorkflowStep(node *WorkflowStep) workflowstepOption {
	return func(m *WorkflowStepMutation) {
		m.oldValue = func(context.Context) (*WorkflowStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowStep entities.
func (m *WorkflowStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowStepMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowStepMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowStepMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetName sets the "name" field.
func (m *WorkflowStepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowStepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowStepMutation) ResetName() {
	m.name = nil
}

// SetStepType sets the "step_type" field.
func (m *WorkflowStepMutation) SetStepType(wt workflowstep.StepType) {
	m.step_type = &wt
}

// StepType returns the value of the "step_type" field in the mutation.
func (m *WorkflowStepMutation) StepType() (r workflowstep.StepType, exists bool) {
	v := m.step_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStepType returns the old "step_type" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldStepType(ctx context.Context) (v workflowstep.StepType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepType: %w", err)
	}
	return oldValue.StepType, nil
}

// ResetStepType resets all changes to the "step_type" field.
func (m *WorkflowStepMutation) ResetStepType() {
	m.step_type = nil
}

// SetStepOrder sets the "step_order" field.
func (m *WorkflowStepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *WorkflowStepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *WorkflowStepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *WorkflowStepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *WorkflowStepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetDependsOnSteps sets the "depends_on_steps" field.
func (m *WorkflowStepMutation) SetDependsOnSteps(s []string) {
	m.depends_on_steps = &s
	m.appenddepends_on_steps = nil
}

// DependsOnSteps returns the value of the "depends_on_steps" field in the mutation.
func (m *WorkflowStepMutation) DependsOnSteps() (r []string, exists bool) {
	v := m.depends_on_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOnSteps returns the old "depends_on_steps" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldDependsOnSteps(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOnSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOnSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOnSteps: %w", err)
	}
	return oldValue.DependsOnSteps, nil
}

// AppendDependsOnSteps adds s to the "depends_on_steps" field.
func (m *WorkflowStepMutation) AppendDependsOnSteps(s []string) {
	m.appenddepends_on_steps = append(m.appenddepends_on_steps, s...)
}

// AppendedDependsOnSteps returns the list of values that were appended to the "depends_on_steps" field in this mutation.
func (m *WorkflowStepMutation) AppendedDependsOnSteps() ([]string, bool) {
	if len(m.appenddepends_on_steps) == 0 {
		return nil, false
	}
	return m.appenddepends_on_steps, true
}

// ClearDependsOnSteps clears the value of the "depends_on_steps" field.
func (m *WorkflowStepMutation) ClearDependsOnSteps() {
	m.depends_on_steps = nil
	m.appenddepends_on_steps = nil
	m.clearedFields[workflowstep.FieldDependsOnSteps] = struct{}{}
}

// DependsOnStepsCleared returns if the "depends_on_steps" field was cleared in this mutation.
func (m *WorkflowStepMutation) DependsOnStepsCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldDependsOnSteps]
	return ok
}

// ResetDependsOnSteps resets all changes to the "depends_on_steps" field.
func (m *WorkflowStepMutation) ResetDependsOnSteps() {
	m.depends_on_steps = nil
	m.appenddepends_on_steps = nil
	delete(m.clearedFields, workflowstep.FieldDependsOnSteps)
}

// SetConfig sets the "config" field.
func (m *WorkflowStepMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *WorkflowStepMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *WorkflowStepMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[workflowstep.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *WorkflowStepMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *WorkflowStepMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, workflowstep.FieldConfig)
}

// SetRetryPolicy sets the "retry_policy" field.
func (m *WorkflowStepMutation) SetRetryPolicy(value map[string]interface{}) {
	m.retry_policy = &value
}

// RetryPolicy returns the value of the "retry_policy" field in the mutation.
func (m *WorkflowStepMutation) RetryPolicy() (r map[string]interface{}, exists bool) {
	v := m.retry_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryPolicy returns the old "retry_policy" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldRetryPolicy(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryPolicy: %w", err)
	}
	return oldValue.RetryPolicy, nil
}

// ClearRetryPolicy clears the value of the "retry_policy" field.
func (m *WorkflowStepMutation) ClearRetryPolicy() {
	m.retry_policy = nil
	m.clearedFields[workflowstep.FieldRetryPolicy] = struct{}{}
}

// RetryPolicyCleared returns if the "retry_policy" field was cleared in this mutation.
func (m *WorkflowStepMutation) RetryPolicyCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldRetryPolicy]
	return ok
}

// ResetRetryPolicy resets all changes to the "retry_policy" field.
func (m *WorkflowStepMutation) ResetRetryPolicy() {
	m.retry_policy = nil
	delete(m.clearedFields, workflowstep.FieldRetryPolicy)
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowStepMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowstep.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowStepMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowStepMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowStepMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the WorkflowStepMutation builder.
func (m *WorkflowStepMutation) Where(ps ...predicate.WorkflowStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowStep).
func (m *WorkflowStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowStepMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workflow != nil {
		fields = append(fields, workflowstep.FieldWorkflowID)
	}
	if m.name != nil {
		fields = append(fields, workflowstep.FieldName)
	}
	if m.step_type != nil {
		fields = append(fields, workflowstep.FieldStepType)
	}
	if m.step_order != nil {
		fields = append(fields, workflowstep.FieldStepOrder)
	}
	if m.depends_on_steps != nil {
		fields = append(fields, workflowstep.FieldDependsOnSteps)
	}
	if m._config != nil {
		fields = append(fields, workflowstep.FieldConfig)
	}
	if m.retry_policy != nil {
		fields = append(fields, workflowstep.FieldRetryPolicy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowstep.FieldWorkflowID:
		return m.WorkflowID()
	case workflowstep.FieldName:
		return m.Name()
	case workflowstep.FieldStepType:
		return m.StepType()
	case workflowstep.FieldStepOrder:
		return m.StepOrder()
	case workflowstep.FieldDependsOnSteps:
		return m.DependsOnSteps()
	case workflowstep.FieldConfig:
		return m.Config()
	case workflowstep.FieldRetryPolicy:
		return m.RetryPolicy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowstep.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowstep.FieldName:
		return m.OldName(ctx)
	case workflowstep.FieldStepType:
		return m.OldStepType(ctx)
	case workflowstep.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case workflowstep.FieldDependsOnSteps:
		return m.OldDependsOnSteps(ctx)
	case workflowstep.FieldConfig:
		return m.OldConfig(ctx)
	case workflowstep.FieldRetryPolicy:
		return m.OldRetryPolicy(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowstep.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowstep.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflowstep.FieldStepType:
		v, ok := value.(workflowstep.StepType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepType(v)
		return nil
	case workflowstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case workflowstep.FieldDependsOnSteps:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOnSteps(v)
		return nil
	case workflowstep.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case workflowstep.FieldRetryPolicy:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryPolicy(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, workflowstep.FieldStepOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowstep.FieldStepOrder:
		return m.AddedStepOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowstep.FieldDependsOnSteps) {
		fields = append(fields, workflowstep.FieldDependsOnSteps)
	}
	if m.FieldCleared(workflowstep.FieldConfig) {
		fields = append(fields, workflowstep.FieldConfig)
	}
	if m.FieldCleared(workflowstep.FieldRetryPolicy) {
		fields = append(fields, workflowstep.FieldRetryPolicy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowStepMutation) ClearField(name string) error {
	switch name {
	case workflowstep.FieldDependsOnSteps:
		m.ClearDependsOnSteps()
		return nil
	case workflowstep.FieldConfig:
		m.ClearConfig()
		return nil
	case workflowstep.FieldRetryPolicy:
		m.ClearRetryPolicy()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowStepMutation) ResetField(name string) error {
	switch name {
	case workflowstep.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowstep.FieldName:
		m.ResetName()
		return nil
	case workflowstep.FieldStepType:
		m.ResetStepType()
		return nil
	case workflowstep.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case workflowstep.FieldDependsOnSteps:
		m.ResetDependsOnSteps()
		return nil
	case workflowstep.FieldConfig:
		m.ResetConfig()
		return nil
	case workflowstep.FieldRetryPolicy:
		m.ResetRetryPolicy()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, workflowstep.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowstep.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, workflowstep.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowStepMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowstep.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowStepMutation) ClearEdge(name string) error {
	switch name {
	case workflowstep.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowStepMutation) ResetEdge(name string) error {
	switch name {
	case workflowstep.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep edge %s", name)
}

// WorkflowStepExecutionMutation represents an operation that mutates the WorkflowStepExecution nodes in the graph.
type WorkflowStepExecutionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	step_id             *string
	status              *workflowstepexecution.Status
	started_at          *time.Time
	completed_at        *time.Time
	duration_ms         *int
	addduration_ms      *int
	input               *map[string]interface{}
	output              *map[string]interface{}
	retry_count         *int
	addretry_count      *int
	waiting_approval_id *string
	error_kind          *string
	error_message       *string
	clearedFields       map[string]struct{}
	execution           *string
	clearedexecution    bool
	done                bool
	oldValue            func(context.Context) (*WorkflowStepExecution, error)
	predicates          []predicate.WorkflowStepExecution
}

var _ ent.Mutation = (*WorkflowStepExecutionMutation)(nil)

// workflowstepexecutionOption allows management of the mutation configuration using functional options.
type workflowstepexecutionOption func(*WorkflowStepExecutionMutation)

// newWorkflowStepExecutionMutation creates new mutation for the WorkflowStepExecution entity.
func newWorkflowStepExecutionMutation(c config, op Op, opts ...workflowstepexecutionOption) *WorkflowStepExecutionMutation {
	m := &WorkflowStepExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowStepExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowStepExecutionID sets the ID field of the mutation.
func withWorkflowStepExecutionID(id string) workflowstepexecutionOption {
	return func(m *WorkflowStepExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowStepExecution
		)
		m.oldValue = func(ctx context.Context) (*WorkflowStepExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowStepExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowStepExecution sets the old WorkflowStepExecution of the mutation.
func withWorkflowStepExecution(node *WorkflowStepExecution) workflowstepexecutionOption {
	return func(m *WorkflowStepExecutionMutation) {
		m.oldValue = func(context.Context) (*WorkflowStepExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowStepExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowStepExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowStepExecution entities.
func (m *WorkflowStepExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowStepExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowStepExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowStepExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *WorkflowStepExecutionMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *WorkflowStepExecutionMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *WorkflowStepExecutionMutation) ResetExecutionID() {
	m.execution = nil
}

// SetStepID sets the "step_id" field.
func (m *WorkflowStepExecutionMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *WorkflowStepExecutionMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *WorkflowStepExecutionMutation) ResetStepID() {
	m.step_id = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowStepExecutionMutation) SetStatus(w workflowstepexecution.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowStepExecutionMutation) Status() (r workflowstepexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldStatus(ctx context.Context) (v workflowstepexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowStepExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowStepExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowStepExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowStepExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowstepexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowStepExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowstepexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowStepExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowstepexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowStepExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowStepExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowStepExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowstepexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowStepExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowstepexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowStepExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowstepexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *WorkflowStepExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *WorkflowStepExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *WorkflowStepExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *WorkflowStepExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *WorkflowStepExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[workflowstepexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *WorkflowStepExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[workflowstepexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *WorkflowStepExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, workflowstepexecution.FieldDurationMs)
}

// SetInput sets the "input" field.
func (m *WorkflowStepExecutionMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *WorkflowStepExecutionMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *WorkflowStepExecutionMutation) ClearInput() {
	m.input = nil
	m.clearedFields[workflowstepexecution.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *WorkflowStepExecutionMutation) InputCleared() bool {
	_, ok := m.clearedFields[workflowstepexecution.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *WorkflowStepExecutionMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, workflowstepexecution.FieldInput)
}

// SetOutput sets the "output" field.
func (m *WorkflowStepExecutionMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *WorkflowStepExecutionMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *WorkflowStepExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[workflowstepexecution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *WorkflowStepExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[workflowstepexecution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *WorkflowStepExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, workflowstepexecution.FieldOutput)
}

// SetRetryCount sets the "retry_count" field.
func (m *WorkflowStepExecutionMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *WorkflowStepExecutionMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *WorkflowStepExecutionMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *WorkflowStepExecutionMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *WorkflowStepExecutionMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetWaitingApprovalID sets the "waiting_approval_id" field.
func (m *WorkflowStepExecutionMutation) SetWaitingApprovalID(s string) {
	m.waiting_approval_id = &s
}

// WaitingApprovalID returns the value of the "waiting_approval_id" field in the mutation.
func (m *WorkflowStepExecutionMutation) WaitingApprovalID() (r string, exists bool) {
	v := m.waiting_approval_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWaitingApprovalID returns the old "waiting_approval_id" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldWaitingApprovalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaitingApprovalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaitingApprovalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaitingApprovalID: %w", err)
	}
	return oldValue.WaitingApprovalID, nil
}

// ClearWaitingApprovalID clears the value of the "waiting_approval_id" field.
func (m *WorkflowStepExecutionMutation) ClearWaitingApprovalID() {
	m.waiting_approval_id = nil
	m.clearedFields[workflowstepexecution.FieldWaitingApprovalID] = struct{}{}
}

// WaitingApprovalIDCleared returns if the "waiting_approval_id" field was cleared in this mutation.
func (m *WorkflowStepExecutionMutation) WaitingApprovalIDCleared() bool {
	_, ok := m.clearedFields[workflowstepexecution.FieldWaitingApprovalID]
	return ok
}

// ResetWaitingApprovalID resets all changes to the "waiting_approval_id" field.
func (m *WorkflowStepExecutionMutation) ResetWaitingApprovalID() {
	m.waiting_approval_id = nil
	delete(m.clearedFields, workflowstepexecution.FieldWaitingApprovalID)
}

// SetErrorKind sets the "error_kind" field.
func (m *WorkflowStepExecutionMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *WorkflowStepExecutionMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *WorkflowStepExecutionMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[workflowstepexecution.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *WorkflowStepExecutionMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[workflowstepexecution.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *WorkflowStepExecutionMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, workflowstepexecution.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowStepExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowStepExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowStepExecution entity.
// If the WorkflowStepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowStepExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowstepexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowStepExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowstepexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowStepExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowstepexecution.FieldErrorMessage)
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *WorkflowStepExecutionMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[workflowstepexecution.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *WorkflowStepExecutionMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *WorkflowStepExecutionMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *WorkflowStepExecutionMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the WorkflowStepExecutionMutation builder.
func (m *WorkflowStepExecutionMutation) Where(ps ...predicate.WorkflowStepExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowStepExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowStepExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowStepExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowStepExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowStepExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowStepExecution).
func (m *WorkflowStepExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowStepExecutionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.execution != nil {
		fields = append(fields, workflowstepexecution.FieldExecutionID)
	}
	if m.step_id != nil {
		fields = append(fields, workflowstepexecution.FieldStepID)
	}
	if m.status != nil {
		fields = append(fields, workflowstepexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, workflowstepexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowstepexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, workflowstepexecution.FieldDurationMs)
	}
	if m.input != nil {
		fields = append(fields, workflowstepexecution.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, workflowstepexecution.FieldOutput)
	}
	if m.retry_count != nil {
		fields = append(fields, workflowstepexecution.FieldRetryCount)
	}
	if m.waiting_approval_id != nil {
		fields = append(fields, workflowstepexecution.FieldWaitingApprovalID)
	}
	if m.error_kind != nil {
		fields = append(fields, workflowstepexecution.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, workflowstepexecution.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowStepExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowstepexecution.FieldExecutionID:
		return m.ExecutionID()
	case workflowstepexecution.FieldStepID:
		return m.StepID()
	case workflowstepexecution.FieldStatus:
		return m.Status()
	case workflowstepexecution.FieldStartedAt:
		return m.StartedAt()
	case workflowstepexecution.FieldCompletedAt:
		return m.CompletedAt()
	case workflowstepexecution.FieldDurationMs:
		return m.DurationMs()
	case workflowstepexecution.FieldInput:
		return m.Input()
	case workflowstepexecution.FieldOutput:
		return m.Output()
	case workflowstepexecution.FieldRetryCount:
		return m.RetryCount()
	case workflowstepexecution.FieldWaitingApprovalID:
		return m.WaitingApprovalID()
	case workflowstepexecution.FieldErrorKind:
		return m.ErrorKind()
	case workflowstepexecution.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowStepExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowstepexecution.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case workflowstepexecution.FieldStepID:
		return m.OldStepID(ctx)
	case workflowstepexecution.FieldStatus:
		return m.OldStatus(ctx)
	case workflowstepexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowstepexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflowstepexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case workflowstepexecution.FieldInput:
		return m.OldInput(ctx)
	case workflowstepexecution.FieldOutput:
		return m.OldOutput(ctx)
	case workflowstepexecution.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case workflowstepexecution.FieldWaitingApprovalID:
		return m.OldWaitingApprovalID(ctx)
	case workflowstepexecution.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case workflowstepexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowStepExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowStepExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowstepexecution.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case workflowstepexecution.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case workflowstepexecution.FieldStatus:
		v, ok := value.(workflowstepexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowstepexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowstepexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflowstepexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case workflowstepexecution.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case workflowstepexecution.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case workflowstepexecution.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case workflowstepexecution.FieldWaitingApprovalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaitingApprovalID(v)
		return nil
	case workflowstepexecution.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case workflowstepexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowStepExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowStepExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, workflowstepexecution.FieldDurationMs)
	}
	if m.addretry_count != nil {
		fields = append(fields, workflowstepexecution.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowStepExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowstepexecution.FieldDurationMs:
		return m.AddedDurationMs()
	case workflowstepexecution.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowStepExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowstepexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case workflowstepexecution.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowStepExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowStepExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowstepexecution.FieldStartedAt) {
		fields = append(fields, workflowstepexecution.FieldStartedAt)
	}
	if m.FieldCleared(workflowstepexecution.FieldCompletedAt) {
		fields = append(fields, workflowstepexecution.FieldCompletedAt)
	}
	if m.FieldCleared(workflowstepexecution.FieldDurationMs) {
		fields = append(fields, workflowstepexecution.FieldDurationMs)
	}
	if m.FieldCleared(workflowstepexecution.FieldInput) {
		fields = append(fields, workflowstepexecution.FieldInput)
	}
	if m.FieldCleared(workflowstepexecution.FieldOutput) {
		fields = append(fields, workflowstepexecution.FieldOutput)
	}
	if m.FieldCleared(workflowstepexecution.FieldWaitingApprovalID) {
		fields = append(fields, workflowstepexecution.FieldWaitingApprovalID)
	}
	if m.FieldCleared(workflowstepexecution.FieldErrorKind) {
		fields = append(fields, workflowstepexecution.FieldErrorKind)
	}
	if m.FieldCleared(workflowstepexecution.FieldErrorMessage) {
		fields = append(fields, workflowstepexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowStepExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowStepExecutionMutation) ClearField(name string) error {
	switch name {
	case workflowstepexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowstepexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflowstepexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case workflowstepexecution.FieldInput:
		m.ClearInput()
		return nil
	case workflowstepexecution.FieldOutput:
		m.ClearOutput()
		return nil
	case workflowstepexecution.FieldWaitingApprovalID:
		m.ClearWaitingApprovalID()
		return nil
	case workflowstepexecution.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case workflowstepexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStepExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowStepExecutionMutation) ResetField(name string) error {
	switch name {
	case workflowstepexecution.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case workflowstepexecution.FieldStepID:
		m.ResetStepID()
		return nil
	case workflowstepexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowstepexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowstepexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflowstepexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case workflowstepexecution.FieldInput:
		m.ResetInput()
		return nil
	case workflowstepexecution.FieldOutput:
		m.ResetOutput()
		return nil
	case workflowstepexecution.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case workflowstepexecution.FieldWaitingApprovalID:
		m.ResetWaitingApprovalID()
		return nil
	case workflowstepexecution.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case workflowstepexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStepExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowStepExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, workflowstepexecution.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowStepExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowstepexecution.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowStepExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowStepExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowStepExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, workflowstepexecution.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowStepExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowstepexecution.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowStepExecutionMutation) ClearEdge(name string) error {
	switch name {
	case workflowstepexecution.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStepExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowStepExecutionMutation) ResetEdge(name string) error {
	switch name {
	case workflowstepexecution.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStepExecution edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	projects        map[string]struct{}
	removedprojects map[string]struct{}
	clearedprojects bool
	done            bool
	oldValue        func(context.Context) (*Workspace, error)
	predicates      []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id string) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workspace entities.
func (m *WorkspaceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkspaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkspaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkspaceMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddProjectIDs adds the "projects" edge to the Project entity by ids.
func (m *WorkspaceMutation) AddProjectIDs(ids ...string) {
	if m.projects == nil {
		m.projects = make(map[string]struct{})
	}
	for i := range ids {
		m.projects[ids[i]] = struct{}{}
	}
}

// ClearProjects clears the "projects" edge to the Project entity.
func (m *WorkspaceMutation) ClearProjects() {
	m.clearedprojects = true
}

// ProjectsCleared reports if the "projects" edge to the Project entity was cleared.
func (m *WorkspaceMutation) ProjectsCleared() bool {
	return m.clearedprojects
}

// RemoveProjectIDs removes the "projects" edge to the Project entity by IDs.
func (m *WorkspaceMutation) RemoveProjectIDs(ids ...string) {
	if m.removedprojects == nil {
		m.removedprojects = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.projects, ids[i])
		m.removedprojects[ids[i]] = struct{}{}
	}
}

// RemovedProjects returns the removed IDs of the "projects" edge to the Project entity.
func (m *WorkspaceMutation) RemovedProjectsIDs() (ids []string) {
	for id := range m.removedprojects {
		ids = append(ids, id)
	}
	return
}

// ProjectsIDs returns the "projects" edge IDs in the mutation.
func (m *WorkspaceMutation) ProjectsIDs() (ids []string) {
	for id := range m.projects {
		ids = append(ids, id)
	}
	return
}

// ResetProjects resets all changes to the "projects" edge.
func (m *WorkspaceMutation) ResetProjects() {
	m.projects = nil
	m.clearedprojects = false
	m.removedprojects = nil
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, workspace.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldName:
		return m.Name()
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldName:
		return m.OldName(ctx)
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldName:
		m.ResetName()
		return nil
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.projects != nil {
		edges = append(edges, workspace.EdgeProjects)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.projects))
		for id := range m.projects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedprojects != nil {
		edges = append(edges, workspace.EdgeProjects)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.removedprojects))
		for id := range m.removedprojects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprojects {
		edges = append(edges, workspace.EdgeProjects)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	switch name {
	case workspace.EdgeProjects:
		return m.clearedprojects
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	switch name {
	case workspace.EdgeProjects:
		m.ResetProjects()
		return nil
	}
	return fmt.Errorf("unknown Workspace edge %s", name)
}
