// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mgx-dev/mgx/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mgx-dev/mgx/ent/agentcontext"
	"github.com/mgx-dev/mgx/ent/agentcontextversion"
	"github.com/mgx-dev/mgx/ent/agentdefinition"
	"github.com/mgx-dev/mgx/ent/agentinstance"
	"github.com/mgx-dev/mgx/ent/agentmemoryentry"
	"github.com/mgx-dev/mgx/ent/event"
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

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentContext is the client for interacting with the AgentContext builders.
	AgentContext *AgentContextClient
	// AgentContextVersion is the client for interacting with the AgentContextVersion builders.
	AgentContextVersion *AgentContextVersionClient
	// AgentDefinition is the client for interacting with the AgentDefinition builders.
	AgentDefinition *AgentDefinitionClient
	// AgentInstance is the client for interacting with the AgentInstance builders.
	AgentInstance *AgentInstanceClient
	// AgentMemoryEntry is the client for interacting with the AgentMemoryEntry builders.
	AgentMemoryEntry *AgentMemoryEntryClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// SandboxExecution is the client for interacting with the SandboxExecution builders.
	SandboxExecution *SandboxExecutionClient
	// StepApproval is the client for interacting with the StepApproval builders.
	StepApproval *StepApprovalClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskRun is the client for interacting with the TaskRun builders.
	TaskRun *TaskRunClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
	// WorkflowExecution is the client for interacting with the WorkflowExecution builders.
	WorkflowExecution *WorkflowExecutionClient
	// WorkflowStep is the client for interacting with the WorkflowStep builders.
	WorkflowStep *WorkflowStepClient
	// WorkflowStepExecution is the client for interacting with the WorkflowStepExecution builders.
	WorkflowStepExecution *WorkflowStepExecutionClient
	// Workspace is the client for interacting with the Workspace builders.
	Workspace *WorkspaceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentContext = NewAgentContextClient(c.config)
	c.AgentContextVersion = NewAgentContextVersionClient(c.config)
	c.AgentDefinition = NewAgentDefinitionClient(c.config)
	c.AgentInstance = NewAgentInstanceClient(c.config)
	c.AgentMemoryEntry = NewAgentMemoryEntryClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.SandboxExecution = NewSandboxExecutionClient(c.config)
	c.StepApproval = NewStepApprovalClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskRun = NewTaskRunClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
	c.WorkflowExecution = NewWorkflowExecutionClient(c.config)
	c.WorkflowStep = NewWorkflowStepClient(c.config)
	c.WorkflowStepExecution = NewWorkflowStepExecutionClient(c.config)
	c.Workspace = NewWorkspaceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		AgentContext:          NewAgentContextClient(cfg),
		AgentContextVersion:   NewAgentContextVersionClient(cfg),
		AgentDefinition:       NewAgentDefinitionClient(cfg),
		AgentInstance:         NewAgentInstanceClient(cfg),
		AgentMemoryEntry:      NewAgentMemoryEntryClient(cfg),
		Event:                 NewEventClient(cfg),
		Project:               NewProjectClient(cfg),
		SandboxExecution:      NewSandboxExecutionClient(cfg),
		StepApproval:          NewStepApprovalClient(cfg),
		Task:                  NewTaskClient(cfg),
		TaskRun:               NewTaskRunClient(cfg),
		Workflow:              NewWorkflowClient(cfg),
		WorkflowExecution:     NewWorkflowExecutionClient(cfg),
		WorkflowStep:          NewWorkflowStepClient(cfg),
		WorkflowStepExecution: NewWorkflowStepExecutionClient(cfg),
		Workspace:             NewWorkspaceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		AgentContext:          NewAgentContextClient(cfg),
		AgentContextVersion:   NewAgentContextVersionClient(cfg),
		AgentDefinition:       NewAgentDefinitionClient(cfg),
		AgentInstance:         NewAgentInstanceClient(cfg),
		AgentMemoryEntry:      NewAgentMemoryEntryClient(cfg),
		Event:                 NewEventClient(cfg),
		Project:               NewProjectClient(cfg),
		SandboxExecution:      NewSandboxExecutionClient(cfg),
		StepApproval:          NewStepApprovalClient(cfg),
		Task:                  NewTaskClient(cfg),
		TaskRun:               NewTaskRunClient(cfg),
		Workflow:              NewWorkflowClient(cfg),
		WorkflowExecution:     NewWorkflowExecutionClient(cfg),
		WorkflowStep:          NewWorkflowStepClient(cfg),
		WorkflowStepExecution: NewWorkflowStepExecutionClient(cfg),
		Workspace:             NewWorkspaceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentContext.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentContext, c.AgentContextVersion, c.AgentDefinition, c.AgentInstance,
		c.AgentMemoryEntry, c.Event, c.Project, c.SandboxExecution, c.StepApproval,
		c.Task, c.TaskRun, c.Workflow, c.WorkflowExecution, c.WorkflowStep,
		c.WorkflowStepExecution, c.Workspace,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentContext, c.AgentContextVersion, c.AgentDefinition, c.AgentInstance,
		c.AgentMemoryEntry, c.Event, c.Project, c.SandboxExecution, c.StepApproval,
		c.Task, c.TaskRun, c.Workflow, c.WorkflowExecution, c.WorkflowStep,
		c.WorkflowStepExecution, c.Workspace,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentContextMutation:
		return c.AgentContext.mutate(ctx, m)
	case *AgentContextVersionMutation:
		return c.AgentContextVersion.mutate(ctx, m)
	case *AgentDefinitionMutation:
		return c.AgentDefinition.mutate(ctx, m)
	case *AgentInstanceMutation:
		return c.AgentInstance.mutate(ctx, m)
	case *AgentMemoryEntryMutation:
		return c.AgentMemoryEntry.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *SandboxExecutionMutation:
		return c.SandboxExecution.mutate(ctx, m)
	case *StepApprovalMutation:
		return c.StepApproval.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskRunMutation:
		return c.TaskRun.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	case *WorkflowExecutionMutation:
		return c.WorkflowExecution.mutate(ctx, m)
	case *WorkflowStepMutation:
		return c.WorkflowStep.mutate(ctx, m)
	case *WorkflowStepExecutionMutation:
		return c.WorkflowStepExecution.mutate(ctx, m)
	case *WorkspaceMutation:
		return c.Workspace.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentContextClient is a client for the AgentContext schema.
type AgentContextClient struct {
	config
}

// NewAgentContextClient returns a client for the AgentContext from the given config.
func NewAgentContextClient(c config) *AgentContextClient {
	return &AgentContextClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentcontext.Hooks(f(g(h())))`.
func (c *AgentContextClient) Use(hooks ...Hook) {
	c.hooks.AgentContext = append(c.hooks.AgentContext, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentcontext.Intercept(f(g(h())))`.
func (c *AgentContextClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentContext = append(c.inters.AgentContext, interceptors...)
}

// Create returns a builder for creating a AgentContext entity.
func (c *AgentContextClient) Create() *AgentContextCreate {
	mutation := newAgentContextMutation(c.config, OpCreate)
	return &AgentContextCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentContext entities.
func (c *AgentContextClient) CreateBulk(builders ...*AgentContextCreate) *AgentContextCreateBulk {
	return &AgentContextCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentContextClient) MapCreateBulk(slice any, setFunc func(*AgentContextCreate, int)) *AgentContextCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentContextCreateBulk{err: fmt.Errorf("calling to AgentContextClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentContextCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentContextCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentContext.
func (c *AgentContextClient) Update() *AgentContextUpdate {
	mutation := newAgentContextMutation(c.config, OpUpdate)
	return &AgentContextUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentContextClient) UpdateOne(_m *AgentContext) *AgentContextUpdateOne {
	mutation := newAgentContextMutation(c.config, OpUpdateOne, withAgentContext(_m))
	return &AgentContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentContextClient) UpdateOneID(id string) *AgentContextUpdateOne {
	mutation := newAgentContextMutation(c.config, OpUpdateOne, withAgentContextID(id))
	return &AgentContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentContext.
func (c *AgentContextClient) Delete() *AgentContextDelete {
	mutation := newAgentContextMutation(c.config, OpDelete)
	return &AgentContextDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentContextClient) DeleteOne(_m *AgentContext) *AgentContextDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentContextClient) DeleteOneID(id string) *AgentContextDeleteOne {
	builder := c.Delete().Where(agentcontext.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentContextDeleteOne{builder}
}

// Query returns a query builder for AgentContext.
func (c *AgentContextClient) Query() *AgentContextQuery {
	return &AgentContextQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentContext},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentContext entity by its id.
func (c *AgentContextClient) Get(ctx context.Context, id string) (*AgentContext, error) {
	return c.Query().Where(agentcontext.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentContextClient) GetX(ctx context.Context, id string) *AgentContext {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVersions queries the versions edge of a AgentContext.
func (c *AgentContextClient) QueryVersions(_m *AgentContext) *AgentContextVersionQuery {
	query := (&AgentContextVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentcontext.Table, agentcontext.FieldID, id),
			sqlgraph.To(agentcontextversion.Table, agentcontextversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentcontext.VersionsTable, agentcontext.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentContextClient) Hooks() []Hook {
	return c.hooks.AgentContext
}

// Interceptors returns the client interceptors.
func (c *AgentContextClient) Interceptors() []Interceptor {
	return c.inters.AgentContext
}

func (c *AgentContextClient) mutate(ctx context.Context, m *AgentContextMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentContextCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentContextUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentContextDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentContext mutation op: %q", m.Op())
	}
}

// AgentContextVersionClient is a client for the AgentContextVersion schema.
type AgentContextVersionClient struct {
	config
}

// NewAgentContextVersionClient returns a client for the AgentContextVersion from the given config.
func NewAgentContextVersionClient(c config) *AgentContextVersionClient {
	return &AgentContextVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentcontextversion.Hooks(f(g(h())))`.
func (c *AgentContextVersionClient) Use(hooks ...Hook) {
	c.hooks.AgentContextVersion = append(c.hooks.AgentContextVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentcontextversion.Intercept(f(g(h())))`.
func (c *AgentContextVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentContextVersion = append(c.inters.AgentContextVersion, interceptors...)
}

// Create returns a builder for creating a AgentContextVersion entity.
func (c *AgentContextVersionClient) Create() *AgentContextVersionCreate {
	mutation := newAgentContextVersionMutation(c.config, OpCreate)
	return &AgentContextVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentContextVersion entities.
func (c *AgentContextVersionClient) CreateBulk(builders ...*AgentContextVersionCreate) *AgentContextVersionCreateBulk {
	return &AgentContextVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentContextVersionClient) MapCreateBulk(slice any, setFunc func(*AgentContextVersionCreate, int)) *AgentContextVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentContextVersionCreateBulk{err: fmt.Errorf("calling to AgentContextVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentContextVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentContextVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentContextVersion.
func (c *AgentContextVersionClient) Update() *AgentContextVersionUpdate {
	mutation := newAgentContextVersionMutation(c.config, OpUpdate)
	return &AgentContextVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentContextVersionClient) UpdateOne(_m *AgentContextVersion) *AgentContextVersionUpdateOne {
	mutation := newAgentContextVersionMutation(c.config, OpUpdateOne, withAgentContextVersion(_m))
	return &AgentContextVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentContextVersionClient) UpdateOneID(id string) *AgentContextVersionUpdateOne {
	mutation := newAgentContextVersionMutation(c.config, OpUpdateOne, withAgentContextVersionID(id))
	return &AgentContextVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentContextVersion.
func (c *AgentContextVersionClient) Delete() *AgentContextVersionDelete {
	mutation := newAgentContextVersionMutation(c.config, OpDelete)
	return &AgentContextVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentContextVersionClient) DeleteOne(_m *AgentContextVersion) *AgentContextVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentContextVersionClient) DeleteOneID(id string) *AgentContextVersionDeleteOne {
	builder := c.Delete().Where(agentcontextversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentContextVersionDeleteOne{builder}
}

// Query returns a query builder for AgentContextVersion.
func (c *AgentContextVersionClient) Query() *AgentContextVersionQuery {
	return &AgentContextVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentContextVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentContextVersion entity by its id.
func (c *AgentContextVersionClient) Get(ctx context.Context, id string) (*AgentContextVersion, error) {
	return c.Query().Where(agentcontextversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentContextVersionClient) GetX(ctx context.Context, id string) *AgentContextVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContext queries the context edge of a AgentContextVersion.
func (c *AgentContextVersionClient) QueryContext(_m *AgentContextVersion) *AgentContextQuery {
	query := (&AgentContextClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentcontextversion.Table, agentcontextversion.FieldID, id),
			sqlgraph.To(agentcontext.Table, agentcontext.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentcontextversion.ContextTable, agentcontextversion.ContextColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentContextVersionClient) Hooks() []Hook {
	return c.hooks.AgentContextVersion
}

// Interceptors returns the client interceptors.
func (c *AgentContextVersionClient) Interceptors() []Interceptor {
	return c.inters.AgentContextVersion
}

func (c *AgentContextVersionClient) mutate(ctx context.Context, m *AgentContextVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentContextVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentContextVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentContextVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentContextVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentContextVersion mutation op: %q", m.Op())
	}
}

// AgentDefinitionClient is a client for the AgentDefinition schema.
type AgentDefinitionClient struct {
	config
}

// NewAgentDefinitionClient returns a client for the AgentDefinition from the given config.
func NewAgentDefinitionClient(c config) *AgentDefinitionClient {
	return &AgentDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentdefinition.Hooks(f(g(h())))`.
func (c *AgentDefinitionClient) Use(hooks ...Hook) {
	c.hooks.AgentDefinition = append(c.hooks.AgentDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentdefinition.Intercept(f(g(h())))`.
func (c *AgentDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentDefinition = append(c.inters.AgentDefinition, interceptors...)
}

// Create returns a builder for creating a AgentDefinition entity.
func (c *AgentDefinitionClient) Create() *AgentDefinitionCreate {
	mutation := newAgentDefinitionMutation(c.config, OpCreate)
	return &AgentDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentDefinition entities.
func (c *AgentDefinitionClient) CreateBulk(builders ...*AgentDefinitionCreate) *AgentDefinitionCreateBulk {
	return &AgentDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentDefinitionClient) MapCreateBulk(slice any, setFunc func(*AgentDefinitionCreate, int)) *AgentDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentDefinitionCreateBulk{err: fmt.Errorf("calling to AgentDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentDefinition.
func (c *AgentDefinitionClient) Update() *AgentDefinitionUpdate {
	mutation := newAgentDefinitionMutation(c.config, OpUpdate)
	return &AgentDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentDefinitionClient) UpdateOne(_m *AgentDefinition) *AgentDefinitionUpdateOne {
	mutation := newAgentDefinitionMutation(c.config, OpUpdateOne, withAgentDefinition(_m))
	return &AgentDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentDefinitionClient) UpdateOneID(id string) *AgentDefinitionUpdateOne {
	mutation := newAgentDefinitionMutation(c.config, OpUpdateOne, withAgentDefinitionID(id))
	return &AgentDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentDefinition.
func (c *AgentDefinitionClient) Delete() *AgentDefinitionDelete {
	mutation := newAgentDefinitionMutation(c.config, OpDelete)
	return &AgentDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentDefinitionClient) DeleteOne(_m *AgentDefinition) *AgentDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentDefinitionClient) DeleteOneID(id string) *AgentDefinitionDeleteOne {
	builder := c.Delete().Where(agentdefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDefinitionDeleteOne{builder}
}

// Query returns a query builder for AgentDefinition.
func (c *AgentDefinitionClient) Query() *AgentDefinitionQuery {
	return &AgentDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentDefinition entity by its id.
func (c *AgentDefinitionClient) Get(ctx context.Context, id string) (*AgentDefinition, error) {
	return c.Query().Where(agentdefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentDefinitionClient) GetX(ctx context.Context, id string) *AgentDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstances queries the instances edge of a AgentDefinition.
func (c *AgentDefinitionClient) QueryInstances(_m *AgentDefinition) *AgentInstanceQuery {
	query := (&AgentInstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentdefinition.Table, agentdefinition.FieldID, id),
			sqlgraph.To(agentinstance.Table, agentinstance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentdefinition.InstancesTable, agentdefinition.InstancesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentDefinitionClient) Hooks() []Hook {
	return c.hooks.AgentDefinition
}

// Interceptors returns the client interceptors.
func (c *AgentDefinitionClient) Interceptors() []Interceptor {
	return c.inters.AgentDefinition
}

func (c *AgentDefinitionClient) mutate(ctx context.Context, m *AgentDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentDefinition mutation op: %q", m.Op())
	}
}

// AgentInstanceClient is a client for the AgentInstance schema.
type AgentInstanceClient struct {
	config
}

// NewAgentInstanceClient returns a client for the AgentInstance from the given config.
func NewAgentInstanceClient(c config) *AgentInstanceClient {
	return &AgentInstanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentinstance.Hooks(f(g(h())))`.
func (c *AgentInstanceClient) Use(hooks ...Hook) {
	c.hooks.AgentInstance = append(c.hooks.AgentInstance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentinstance.Intercept(f(g(h())))`.
func (c *AgentInstanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentInstance = append(c.inters.AgentInstance, interceptors...)
}

// Create returns a builder for creating a AgentInstance entity.
func (c *AgentInstanceClient) Create() *AgentInstanceCreate {
	mutation := newAgentInstanceMutation(c.config, OpCreate)
	return &AgentInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentInstance entities.
func (c *AgentInstanceClient) CreateBulk(builders ...*AgentInstanceCreate) *AgentInstanceCreateBulk {
	return &AgentInstanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentInstanceClient) MapCreateBulk(slice any, setFunc func(*AgentInstanceCreate, int)) *AgentInstanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentInstanceCreateBulk{err: fmt.Errorf("calling to AgentInstanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentInstanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentInstanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentInstance.
func (c *AgentInstanceClient) Update() *AgentInstanceUpdate {
	mutation := newAgentInstanceMutation(c.config, OpUpdate)
	return &AgentInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentInstanceClient) UpdateOne(_m *AgentInstance) *AgentInstanceUpdateOne {
	mutation := newAgentInstanceMutation(c.config, OpUpdateOne, withAgentInstance(_m))
	return &AgentInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentInstanceClient) UpdateOneID(id string) *AgentInstanceUpdateOne {
	mutation := newAgentInstanceMutation(c.config, OpUpdateOne, withAgentInstanceID(id))
	return &AgentInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentInstance.
func (c *AgentInstanceClient) Delete() *AgentInstanceDelete {
	mutation := newAgentInstanceMutation(c.config, OpDelete)
	return &AgentInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentInstanceClient) DeleteOne(_m *AgentInstance) *AgentInstanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentInstanceClient) DeleteOneID(id string) *AgentInstanceDeleteOne {
	builder := c.Delete().Where(agentinstance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentInstanceDeleteOne{builder}
}

// Query returns a query builder for AgentInstance.
func (c *AgentInstanceClient) Query() *AgentInstanceQuery {
	return &AgentInstanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentInstance},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentInstance entity by its id.
func (c *AgentInstanceClient) Get(ctx context.Context, id string) (*AgentInstance, error) {
	return c.Query().Where(agentinstance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentInstanceClient) GetX(ctx context.Context, id string) *AgentInstance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDefinition queries the definition edge of a AgentInstance.
func (c *AgentInstanceClient) QueryDefinition(_m *AgentInstance) *AgentDefinitionQuery {
	query := (&AgentDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentinstance.Table, agentinstance.FieldID, id),
			sqlgraph.To(agentdefinition.Table, agentdefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentinstance.DefinitionTable, agentinstance.DefinitionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentInstanceClient) Hooks() []Hook {
	return c.hooks.AgentInstance
}

// Interceptors returns the client interceptors.
func (c *AgentInstanceClient) Interceptors() []Interceptor {
	return c.inters.AgentInstance
}

func (c *AgentInstanceClient) mutate(ctx context.Context, m *AgentInstanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentInstance mutation op: %q", m.Op())
	}
}

// AgentMemoryEntryClient is a client for the AgentMemoryEntry schema.
type AgentMemoryEntryClient struct {
	config
}

// NewAgentMemoryEntryClient returns a client for the AgentMemoryEntry from the given config.
func NewAgentMemoryEntryClient(c config) *AgentMemoryEntryClient {
	return &AgentMemoryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentmemoryentry.Hooks(f(g(h())))`.
func (c *AgentMemoryEntryClient) Use(hooks ...Hook) {
	c.hooks.AgentMemoryEntry = append(c.hooks.AgentMemoryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentmemoryentry.Intercept(f(g(h())))`.
func (c *AgentMemoryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentMemoryEntry = append(c.inters.AgentMemoryEntry, interceptors...)
}

// Create returns a builder for creating a AgentMemoryEntry entity.
func (c *AgentMemoryEntryClient) Create() *AgentMemoryEntryCreate {
	mutation := newAgentMemoryEntryMutation(c.config, OpCreate)
	return &AgentMemoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentMemoryEntry entities.
func (c *AgentMemoryEntryClient) CreateBulk(builders ...*AgentMemoryEntryCreate) *AgentMemoryEntryCreateBulk {
	return &AgentMemoryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentMemoryEntryClient) MapCreateBulk(slice any, setFunc func(*AgentMemoryEntryCreate, int)) *AgentMemoryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentMemoryEntryCreateBulk{err: fmt.Errorf("calling to AgentMemoryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentMemoryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentMemoryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentMemoryEntry.
func (c *AgentMemoryEntryClient) Update() *AgentMemoryEntryUpdate {
	mutation := newAgentMemoryEntryMutation(c.config, OpUpdate)
	return &AgentMemoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentMemoryEntryClient) UpdateOne(_m *AgentMemoryEntry) *AgentMemoryEntryUpdateOne {
	mutation := newAgentMemoryEntryMutation(c.config, OpUpdateOne, withAgentMemoryEntry(_m))
	return &AgentMemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentMemoryEntryClient) UpdateOneID(id string) *AgentMemoryEntryUpdateOne {
	mutation := newAgentMemoryEntryMutation(c.config, OpUpdateOne, withAgentMemoryEntryID(id))
	return &AgentMemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentMemoryEntry.
func (c *AgentMemoryEntryClient) Delete() *AgentMemoryEntryDelete {
	mutation := newAgentMemoryEntryMutation(c.config, OpDelete)
	return &AgentMemoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentMemoryEntryClient) DeleteOne(_m *AgentMemoryEntry) *AgentMemoryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentMemoryEntryClient) DeleteOneID(id string) *AgentMemoryEntryDeleteOne {
	builder := c.Delete().Where(agentmemoryentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentMemoryEntryDeleteOne{builder}
}

// Query returns a query builder for AgentMemoryEntry.
func (c *AgentMemoryEntryClient) Query() *AgentMemoryEntryQuery {
	return &AgentMemoryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentMemoryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentMemoryEntry entity by its id.
func (c *AgentMemoryEntryClient) Get(ctx context.Context, id string) (*AgentMemoryEntry, error) {
	return c.Query().Where(agentmemoryentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentMemoryEntryClient) GetX(ctx context.Context, id string) *AgentMemoryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentMemoryEntryClient) Hooks() []Hook {
	return c.hooks.AgentMemoryEntry
}

// Interceptors returns the client interceptors.
func (c *AgentMemoryEntryClient) Interceptors() []Interceptor {
	return c.inters.AgentMemoryEntry
}

func (c *AgentMemoryEntryClient) mutate(ctx context.Context, m *AgentMemoryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentMemoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentMemoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentMemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentMemoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentMemoryEntry mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a Project.
func (c *ProjectClient) QueryWorkspace(_m *Project) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, project.WorkspaceTable, project.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Project.
func (c *ProjectClient) QueryTasks(_m *Project) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.TasksTable, project.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkflows queries the workflows edge of a Project.
func (c *ProjectClient) QueryWorkflows(_m *Project) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.WorkflowsTable, project.WorkflowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// SandboxExecutionClient is a client for the SandboxExecution schema.
type SandboxExecutionClient struct {
	config
}

// NewSandboxExecutionClient returns a client for the SandboxExecution from the given config.
func NewSandboxExecutionClient(c config) *SandboxExecutionClient {
	return &SandboxExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sandboxexecution.Hooks(f(g(h())))`.
func (c *SandboxExecutionClient) Use(hooks ...Hook) {
	c.hooks.SandboxExecution = append(c.hooks.SandboxExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sandboxexecution.Intercept(f(g(h())))`.
func (c *SandboxExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SandboxExecution = append(c.inters.SandboxExecution, interceptors...)
}

// Create returns a builder for creating a SandboxExecution entity.
func (c *SandboxExecutionClient) Create() *SandboxExecutionCreate {
	mutation := newSandboxExecutionMutation(c.config, OpCreate)
	return &SandboxExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SandboxExecution entities.
func (c *SandboxExecutionClient) CreateBulk(builders ...*SandboxExecutionCreate) *SandboxExecutionCreateBulk {
	return &SandboxExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SandboxExecutionClient) MapCreateBulk(slice any, setFunc func(*SandboxExecutionCreate, int)) *SandboxExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SandboxExecutionCreateBulk{err: fmt.Errorf("calling to SandboxExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SandboxExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SandboxExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SandboxExecution.
func (c *SandboxExecutionClient) Update() *SandboxExecutionUpdate {
	mutation := newSandboxExecutionMutation(c.config, OpUpdate)
	return &SandboxExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SandboxExecutionClient) UpdateOne(_m *SandboxExecution) *SandboxExecutionUpdateOne {
	mutation := newSandboxExecutionMutation(c.config, OpUpdateOne, withSandboxExecution(_m))
	return &SandboxExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SandboxExecutionClient) UpdateOneID(id string) *SandboxExecutionUpdateOne {
	mutation := newSandboxExecutionMutation(c.config, OpUpdateOne, withSandboxExecutionID(id))
	return &SandboxExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SandboxExecution.
func (c *SandboxExecutionClient) Delete() *SandboxExecutionDelete {
	mutation := newSandboxExecutionMutation(c.config, OpDelete)
	return &SandboxExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SandboxExecutionClient) DeleteOne(_m *SandboxExecution) *SandboxExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SandboxExecutionClient) DeleteOneID(id string) *SandboxExecutionDeleteOne {
	builder := c.Delete().Where(sandboxexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SandboxExecutionDeleteOne{builder}
}

// Query returns a query builder for SandboxExecution.
func (c *SandboxExecutionClient) Query() *SandboxExecutionQuery {
	return &SandboxExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSandboxExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a SandboxExecution entity by its id.
func (c *SandboxExecutionClient) Get(ctx context.Context, id string) (*SandboxExecution, error) {
	return c.Query().Where(sandboxexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SandboxExecutionClient) GetX(ctx context.Context, id string) *SandboxExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a SandboxExecution.
func (c *SandboxExecutionClient) QueryRun(_m *SandboxExecution) *TaskRunQuery {
	query := (&TaskRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sandboxexecution.Table, sandboxexecution.FieldID, id),
			sqlgraph.To(taskrun.Table, taskrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sandboxexecution.RunTable, sandboxexecution.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SandboxExecutionClient) Hooks() []Hook {
	return c.hooks.SandboxExecution
}

// Interceptors returns the client interceptors.
func (c *SandboxExecutionClient) Interceptors() []Interceptor {
	return c.inters.SandboxExecution
}

func (c *SandboxExecutionClient) mutate(ctx context.Context, m *SandboxExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SandboxExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SandboxExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SandboxExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SandboxExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SandboxExecution mutation op: %q", m.Op())
	}
}

// StepApprovalClient is a client for the StepApproval schema.
type StepApprovalClient struct {
	config
}

// NewStepApprovalClient returns a client for the StepApproval from the given config.
func NewStepApprovalClient(c config) *StepApprovalClient {
	return &StepApprovalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepapproval.Hooks(f(g(h())))`.
func (c *StepApprovalClient) Use(hooks ...Hook) {
	c.hooks.StepApproval = append(c.hooks.StepApproval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepapproval.Intercept(f(g(h())))`.
func (c *StepApprovalClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepApproval = append(c.inters.StepApproval, interceptors...)
}

// Create returns a builder for creating a StepApproval entity.
func (c *StepApprovalClient) Create() *StepApprovalCreate {
	mutation := newStepApprovalMutation(c.config, OpCreate)
	return &StepApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepApproval entities.
func (c *StepApprovalClient) CreateBulk(builders ...*StepApprovalCreate) *StepApprovalCreateBulk {
	return &StepApprovalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepApprovalClient) MapCreateBulk(slice any, setFunc func(*StepApprovalCreate, int)) *StepApprovalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepApprovalCreateBulk{err: fmt.Errorf("calling to StepApprovalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepApprovalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepApprovalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepApproval.
func (c *StepApprovalClient) Update() *StepApprovalUpdate {
	mutation := newStepApprovalMutation(c.config, OpUpdate)
	return &StepApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepApprovalClient) UpdateOne(_m *StepApproval) *StepApprovalUpdateOne {
	mutation := newStepApprovalMutation(c.config, OpUpdateOne, withStepApproval(_m))
	return &StepApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepApprovalClient) UpdateOneID(id string) *StepApprovalUpdateOne {
	mutation := newStepApprovalMutation(c.config, OpUpdateOne, withStepApprovalID(id))
	return &StepApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepApproval.
func (c *StepApprovalClient) Delete() *StepApprovalDelete {
	mutation := newStepApprovalMutation(c.config, OpDelete)
	return &StepApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepApprovalClient) DeleteOne(_m *StepApproval) *StepApprovalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepApprovalClient) DeleteOneID(id string) *StepApprovalDeleteOne {
	builder := c.Delete().Where(stepapproval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepApprovalDeleteOne{builder}
}

// Query returns a query builder for StepApproval.
func (c *StepApprovalClient) Query() *StepApprovalQuery {
	return &StepApprovalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepApproval},
		inters: c.Interceptors(),
	}
}

// Get returns a StepApproval entity by its id.
func (c *StepApprovalClient) Get(ctx context.Context, id string) (*StepApproval, error) {
	return c.Query().Where(stepapproval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepApprovalClient) GetX(ctx context.Context, id string) *StepApproval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a StepApproval.
func (c *StepApprovalClient) QueryExecution(_m *StepApproval) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepapproval.Table, stepapproval.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stepapproval.ExecutionTable, stepapproval.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepApprovalClient) Hooks() []Hook {
	return c.hooks.StepApproval
}

// Interceptors returns the client interceptors.
func (c *StepApprovalClient) Interceptors() []Interceptor {
	return c.inters.StepApproval
}

func (c *StepApprovalClient) mutate(ctx context.Context, m *StepApprovalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepApproval mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Task.
func (c *TaskClient) QueryProject(_m *Task) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.ProjectTable, task.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a Task.
func (c *TaskClient) QueryRuns(_m *Task) *TaskRunQuery {
	query := (&TaskRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskrun.Table, taskrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.RunsTable, task.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskRunClient is a client for the TaskRun schema.
type TaskRunClient struct {
	config
}

// NewTaskRunClient returns a client for the TaskRun from the given config.
func NewTaskRunClient(c config) *TaskRunClient {
	return &TaskRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskrun.Hooks(f(g(h())))`.
func (c *TaskRunClient) Use(hooks ...Hook) {
	c.hooks.TaskRun = append(c.hooks.TaskRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskrun.Intercept(f(g(h())))`.
func (c *TaskRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskRun = append(c.inters.TaskRun, interceptors...)
}

// Create returns a builder for creating a TaskRun entity.
func (c *TaskRunClient) Create() *TaskRunCreate {
	mutation := newTaskRunMutation(c.config, OpCreate)
	return &TaskRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskRun entities.
func (c *TaskRunClient) CreateBulk(builders ...*TaskRunCreate) *TaskRunCreateBulk {
	return &TaskRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskRunClient) MapCreateBulk(slice any, setFunc func(*TaskRunCreate, int)) *TaskRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskRunCreateBulk{err: fmt.Errorf("calling to TaskRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskRun.
func (c *TaskRunClient) Update() *TaskRunUpdate {
	mutation := newTaskRunMutation(c.config, OpUpdate)
	return &TaskRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskRunClient) UpdateOne(_m *TaskRun) *TaskRunUpdateOne {
	mutation := newTaskRunMutation(c.config, OpUpdateOne, withTaskRun(_m))
	return &TaskRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskRunClient) UpdateOneID(id string) *TaskRunUpdateOne {
	mutation := newTaskRunMutation(c.config, OpUpdateOne, withTaskRunID(id))
	return &TaskRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskRun.
func (c *TaskRunClient) Delete() *TaskRunDelete {
	mutation := newTaskRunMutation(c.config, OpDelete)
	return &TaskRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskRunClient) DeleteOne(_m *TaskRun) *TaskRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskRunClient) DeleteOneID(id string) *TaskRunDeleteOne {
	builder := c.Delete().Where(taskrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskRunDeleteOne{builder}
}

// Query returns a query builder for TaskRun.
func (c *TaskRunClient) Query() *TaskRunQuery {
	return &TaskRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskRun},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskRun entity by its id.
func (c *TaskRunClient) Get(ctx context.Context, id string) (*TaskRun, error) {
	return c.Query().Where(taskrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskRunClient) GetX(ctx context.Context, id string) *TaskRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskRun.
func (c *TaskRunClient) QueryTask(_m *TaskRun) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskrun.Table, taskrun.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskrun.TaskTable, taskrun.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySandboxExecutions queries the sandbox_executions edge of a TaskRun.
func (c *TaskRunClient) QuerySandboxExecutions(_m *TaskRun) *SandboxExecutionQuery {
	query := (&SandboxExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskrun.Table, taskrun.FieldID, id),
			sqlgraph.To(sandboxexecution.Table, sandboxexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taskrun.SandboxExecutionsTable, taskrun.SandboxExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskRunClient) Hooks() []Hook {
	return c.hooks.TaskRun
}

// Interceptors returns the client interceptors.
func (c *TaskRunClient) Interceptors() []Interceptor {
	return c.inters.TaskRun
}

func (c *TaskRunClient) mutate(ctx context.Context, m *TaskRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskRun mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id string) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id string) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id string) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id string) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Workflow.
func (c *WorkflowClient) QueryProject(_m *Workflow) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflow.ProjectTable, workflow.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a Workflow.
func (c *WorkflowClient) QuerySteps(_m *Workflow) *WorkflowStepQuery {
	query := (&WorkflowStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workflowstep.Table, workflowstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.StepsTable, workflow.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a Workflow.
func (c *WorkflowClient) QueryExecutions(_m *Workflow) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.ExecutionsTable, workflow.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// WorkflowExecutionClient is a client for the WorkflowExecution schema.
type WorkflowExecutionClient struct {
	config
}

// NewWorkflowExecutionClient returns a client for the WorkflowExecution from the given config.
func NewWorkflowExecutionClient(c config) *WorkflowExecutionClient {
	return &WorkflowExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowexecution.Hooks(f(g(h())))`.
func (c *WorkflowExecutionClient) Use(hooks ...Hook) {
	c.hooks.WorkflowExecution = append(c.hooks.WorkflowExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowexecution.Intercept(f(g(h())))`.
func (c *WorkflowExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowExecution = append(c.inters.WorkflowExecution, interceptors...)
}

// Create returns a builder for creating a WorkflowExecution entity.
func (c *WorkflowExecutionClient) Create() *WorkflowExecutionCreate {
	mutation := newWorkflowExecutionMutation(c.config, OpCreate)
	return &WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowExecution entities.
func (c *WorkflowExecutionClient) CreateBulk(builders ...*WorkflowExecutionCreate) *WorkflowExecutionCreateBulk {
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowExecutionClient) MapCreateBulk(slice any, setFunc func(*WorkflowExecutionCreate, int)) *WorkflowExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowExecutionCreateBulk{err: fmt.Errorf("calling to WorkflowExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Update() *WorkflowExecutionUpdate {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdate)
	return &WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowExecutionClient) UpdateOne(_m *WorkflowExecution) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecution(_m))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowExecutionClient) UpdateOneID(id string) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecutionID(id))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Delete() *WorkflowExecutionDelete {
	mutation := newWorkflowExecutionMutation(c.config, OpDelete)
	return &WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowExecutionClient) DeleteOne(_m *WorkflowExecution) *WorkflowExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowExecutionClient) DeleteOneID(id string) *WorkflowExecutionDeleteOne {
	builder := c.Delete().Where(workflowexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowExecutionDeleteOne{builder}
}

// Query returns a query builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Query() *WorkflowExecutionQuery {
	return &WorkflowExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowExecution entity by its id.
func (c *WorkflowExecutionClient) Get(ctx context.Context, id string) (*WorkflowExecution, error) {
	return c.Query().Where(workflowexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowExecutionClient) GetX(ctx context.Context, id string) *WorkflowExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryWorkflow(_m *WorkflowExecution) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowexecution.WorkflowTable, workflowexecution.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStepExecutions queries the step_executions edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryStepExecutions(_m *WorkflowExecution) *WorkflowStepExecutionQuery {
	query := (&WorkflowStepExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(workflowstepexecution.Table, workflowstepexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.StepExecutionsTable, workflowexecution.StepExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApprovals queries the approvals edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryApprovals(_m *WorkflowExecution) *StepApprovalQuery {
	query := (&StepApprovalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(stepapproval.Table, stepapproval.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.ApprovalsTable, workflowexecution.ApprovalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowExecutionClient) Hooks() []Hook {
	return c.hooks.WorkflowExecution
}

// Interceptors returns the client interceptors.
func (c *WorkflowExecutionClient) Interceptors() []Interceptor {
	return c.inters.WorkflowExecution
}

func (c *WorkflowExecutionClient) mutate(ctx context.Context, m *WorkflowExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowExecution mutation op: %q", m.Op())
	}
}

// WorkflowStepClient is a client for the WorkflowStep schema.
type WorkflowStepClient struct {
	config
}

// NewWorkflowStepClient returns a client for the WorkflowStep from the given config.
func NewWorkflowStepClient(c config) *WorkflowStepClient {
	return &WorkflowStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowstep.Hooks(f(g(h())))`.
func (c *WorkflowStepClient) Use(hooks ...Hook) {
	c.hooks.WorkflowStep = append(c.hooks.WorkflowStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowstep.Intercept(f(g(h())))`.
func (c *WorkflowStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowStep = append(c.inters.WorkflowStep, interceptors...)
}

// Create returns a builder for creating a WorkflowStep entity.
func (c *WorkflowStepClient) Create() *WorkflowStepCreate {
	mutation := newWorkflowStepMutation(c.config, OpCreate)
	return &WorkflowStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowStep entities.
func (c *WorkflowStepClient) CreateBulk(builders ...*WorkflowStepCreate) *WorkflowStepCreateBulk {
	return &WorkflowStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowStepClient) MapCreateBulk(slice any, setFunc func(*WorkflowStepCreate, int)) *WorkflowStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowStepCreateBulk{err: fmt.Errorf("calling to WorkflowStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowStep.
func (c *WorkflowStepClient) Update() *WorkflowStepUpdate {
	mutation := newWorkflowStepMutation(c.config, OpUpdate)
	return &WorkflowStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowStepClient) UpdateOne(_m *WorkflowStep) *WorkflowStepUpdateOne {
	mutation := newWorkflowStepMutation(c.config, OpUpdateOne, withWorkflowStep(_m))
	return &WorkflowStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowStepClient) UpdateOneID(id string) *WorkflowStepUpdateOne {
	mutation := newWorkflowStepMutation(c.config, OpUpdateOne, withWorkflowStepID(id))
	return &WorkflowStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowStep.
func (c *WorkflowStepClient) Delete() *WorkflowStepDelete {
	mutation := newWorkflowStepMutation(c.config, OpDelete)
	return &WorkflowStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowStepClient) DeleteOne(_m *WorkflowStep) *WorkflowStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowStepClient) DeleteOneID(id string) *WorkflowStepDeleteOne {
	builder := c.Delete().Where(workflowstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowStepDeleteOne{builder}
}

// Query returns a query builder for WorkflowStep.
func (c *WorkflowStepClient) Query() *WorkflowStepQuery {
	return &WorkflowStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowStep},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowStep entity by its id.
func (c *WorkflowStepClient) Get(ctx context.Context, id string) (*WorkflowStep, error) {
	return c.Query().Where(workflowstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowStepClient) GetX(ctx context.Context, id string) *WorkflowStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a WorkflowStep.
func (c *WorkflowStepClient) QueryWorkflow(_m *WorkflowStep) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowstep.Table, workflowstep.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowstep.WorkflowTable, workflowstep.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowStepClient) Hooks() []Hook {
	return c.hooks.WorkflowStep
}

// Interceptors returns the client interceptors.
func (c *WorkflowStepClient) Interceptors() []Interceptor {
	return c.inters.WorkflowStep
}

func (c *WorkflowStepClient) mutate(ctx context.Context, m *WorkflowStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowStep mutation op: %q", m.Op())
	}
}

// WorkflowStepExecutionClient is a client for the WorkflowStepExecution schema.
type WorkflowStepExecutionClient struct {
	config
}

// NewWorkflowStepExecutionClient returns a client for the WorkflowStepExecution from the given config.
func NewWorkflowStepExecutionClient(c config) *WorkflowStepExecutionClient {
	return &WorkflowStepExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowstepexecution.Hooks(f(g(h())))`.
func (c *WorkflowStepExecutionClient) Use(hooks ...Hook) {
	c.hooks.WorkflowStepExecution = append(c.hooks.WorkflowStepExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowstepexecution.Intercept(f(g(h())))`.
func (c *WorkflowStepExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowStepExecution = append(c.inters.WorkflowStepExecution, interceptors...)
}

// Create returns a builder for creating a WorkflowStepExecution entity.
func (c *WorkflowStepExecutionClient) Create() *WorkflowStepExecutionCreate {
	mutation := newWorkflowStepExecutionMutation(c.config, OpCreate)
	return &WorkflowStepExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowStepExecution entities.
func (c *WorkflowStepExecutionClient) CreateBulk(builders ...*WorkflowStepExecutionCreate) *WorkflowStepExecutionCreateBulk {
	return &WorkflowStepExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowStepExecutionClient) MapCreateBulk(slice any, setFunc func(*WorkflowStepExecutionCreate, int)) *WorkflowStepExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowStepExecutionCreateBulk{err: fmt.Errorf("calling to WorkflowStepExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowStepExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowStepExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowStepExecution.
func (c *WorkflowStepExecutionClient) Update() *WorkflowStepExecutionUpdate {
	mutation := newWorkflowStepExecutionMutation(c.config, OpUpdate)
	return &WorkflowStepExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowStepExecutionClient) UpdateOne(_m *WorkflowStepExecution) *WorkflowStepExecutionUpdateOne {
	mutation := newWorkflowStepExecutionMutation(c.config, OpUpdateOne, withWorkflowStepExecution(_m))
	return &WorkflowStepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowStepExecutionClient) UpdateOneID(id string) *WorkflowStepExecutionUpdateOne {
	mutation := newWorkflowStepExecutionMutation(c.config, OpUpdateOne, withWorkflowStepExecutionID(id))
	return &WorkflowStepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowStepExecution.
func (c *WorkflowStepExecutionClient) Delete() *WorkflowStepExecutionDelete {
	mutation := newWorkflowStepExecutionMutation(c.config, OpDelete)
	return &WorkflowStepExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowStepExecutionClient) DeleteOne(_m *WorkflowStepExecution) *WorkflowStepExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowStepExecutionClient) DeleteOneID(id string) *WorkflowStepExecutionDeleteOne {
	builder := c.Delete().Where(workflowstepexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowStepExecutionDeleteOne{builder}
}

// Query returns a query builder for WorkflowStepExecution.
func (c *WorkflowStepExecutionClient) Query() *WorkflowStepExecutionQuery {
	return &WorkflowStepExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowStepExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowStepExecution entity by its id.
func (c *WorkflowStepExecutionClient) Get(ctx context.Context, id string) (*WorkflowStepExecution, error) {
	return c.Query().Where(workflowstepexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowStepExecutionClient) GetX(ctx context.Context, id string) *WorkflowStepExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a WorkflowStepExecution.
func (c *WorkflowStepExecutionClient) QueryExecution(_m *WorkflowStepExecution) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowstepexecution.Table, workflowstepexecution.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowstepexecution.ExecutionTable, workflowstepexecution.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowStepExecutionClient) Hooks() []Hook {
	return c.hooks.WorkflowStepExecution
}

// Interceptors returns the client interceptors.
func (c *WorkflowStepExecutionClient) Interceptors() []Interceptor {
	return c.inters.WorkflowStepExecution
}

func (c *WorkflowStepExecutionClient) mutate(ctx context.Context, m *WorkflowStepExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowStepExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowStepExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowStepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowStepExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowStepExecution mutation op: %q", m.Op())
	}
}

// WorkspaceClient is a client for the Workspace schema.
type WorkspaceClient struct {
	config
}

// NewWorkspaceClient returns a client for the Workspace from the given config.
func NewWorkspaceClient(c config) *WorkspaceClient {
	return &WorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspace.Hooks(f(g(h())))`.
func (c *WorkspaceClient) Use(hooks ...Hook) {
	c.hooks.Workspace = append(c.hooks.Workspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspace.Intercept(f(g(h())))`.
func (c *WorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workspace = append(c.inters.Workspace, interceptors...)
}

// Create returns a builder for creating a Workspace entity.
func (c *WorkspaceClient) Create() *WorkspaceCreate {
	mutation := newWorkspaceMutation(c.config, OpCreate)
	return &WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workspace entities.
func (c *WorkspaceClient) CreateBulk(builders ...*WorkspaceCreate) *WorkspaceCreateBulk {
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceClient) MapCreateBulk(slice any, setFunc func(*WorkspaceCreate, int)) *WorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceCreateBulk{err: fmt.Errorf("calling to WorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workspace.
func (c *WorkspaceClient) Update() *WorkspaceUpdate {
	mutation := newWorkspaceMutation(c.config, OpUpdate)
	return &WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceClient) UpdateOne(_m *Workspace) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspace(_m))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceClient) UpdateOneID(id string) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspaceID(id))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workspace.
func (c *WorkspaceClient) Delete() *WorkspaceDelete {
	mutation := newWorkspaceMutation(c.config, OpDelete)
	return &WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceClient) DeleteOne(_m *Workspace) *WorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceClient) DeleteOneID(id string) *WorkspaceDeleteOne {
	builder := c.Delete().Where(workspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceDeleteOne{builder}
}

// Query returns a query builder for Workspace.
func (c *WorkspaceClient) Query() *WorkspaceQuery {
	return &WorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a Workspace entity by its id.
func (c *WorkspaceClient) Get(ctx context.Context, id string) (*Workspace, error) {
	return c.Query().Where(workspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceClient) GetX(ctx context.Context, id string) *Workspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProjects queries the projects edge of a Workspace.
func (c *WorkspaceClient) QueryProjects(_m *Workspace) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ProjectsTable, workspace.ProjectsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkspaceClient) Hooks() []Hook {
	return c.hooks.Workspace
}

// Interceptors returns the client interceptors.
func (c *WorkspaceClient) Interceptors() []Interceptor {
	return c.inters.Workspace
}

func (c *WorkspaceClient) mutate(ctx context.Context, m *WorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workspace mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentContext, AgentContextVersion, AgentDefinition, AgentInstance,
		AgentMemoryEntry, Event, Project, SandboxExecution, StepApproval, Task,
		TaskRun, Workflow, WorkflowExecution, WorkflowStep, WorkflowStepExecution,
		Workspace []ent.Hook
	}
	inters struct {
		AgentContext, AgentContextVersion, AgentDefinition, AgentInstance,
		AgentMemoryEntry, Event, Project, SandboxExecution, StepApproval, Task,
		TaskRun, Workflow, WorkflowExecution, WorkflowStep, WorkflowStepExecution,
		Workspace []ent.Interceptor
	}
)
