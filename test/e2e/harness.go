// Package e2e boots a complete MGX instance against a real PostgreSQL
// and exercises it over HTTP and WebSocket.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/ent"
	"github.com/mgx-dev/mgx/pkg/api"
	"github.com/mgx-dev/mgx/pkg/config"
	"github.com/mgx-dev/mgx/pkg/database"
	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/executor"
	"github.com/mgx-dev/mgx/pkg/queue"
	"github.com/mgx-dev/mgx/pkg/services"
	"github.com/mgx-dev/mgx/pkg/workflow"
	testdb "github.com/mgx-dev/mgx/test/database"
	"github.com/mgx-dev/mgx/test/util"
)

// TestApp boots a complete MGX instance for e2e testing. The LLM sidecar
// is replaced by a ScriptedCompleter and the git coordinator by a
// FakeGit; everything else — services, queue, workflow engine, events,
// HTTP/WS surface — is the real wiring against a real database.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Test doubles.
	Completer *ScriptedCompleter
	Git       *FakeGit

	// Real infrastructure.
	Emitter        *events.Emitter
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	WorkerPool     *queue.WorkerPool
	Engine         *workflow.Engine
	Tasks          *services.TaskService
	Approvals      *services.ApprovalService
	Server         *api.Server

	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg         *config.Config
	completer   *ScriptedCompleter
	workerCount int
	dbClient    *database.Client // injected DB client (for multi-replica tests)
	podID       string           // custom pod ID (for multi-replica tests)
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithCompleter sets a pre-scripted completer.
func WithCompleter(completer *ScriptedCompleter) TestAppOption {
	return func(c *testAppConfig) { c.completer = completer }
}

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithDBClient injects a pre-created database client, skipping the
// default per-test schema creation. Used for multi-replica tests where
// multiple TestApp instances share the same database schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod ID. Required for
// multi-replica tests so each replica gets a distinct identity for run
// claiming and orphan detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// NewTestApp creates and starts a full MGX test instance. Shutdown is
// registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tc := &testAppConfig{workerCount: 1}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		tc.cfg = defaultTestConfig()
	}
	tc.cfg.Queue.WorkerCount = tc.workerCount
	if tc.completer == nil {
		tc.completer = NewScriptedCompleter()
	}

	logger := slog.Default()

	// 1. Database — per-test schema unless a shared one is injected.
	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Event fabric — real persistence plus NOTIFY/LISTEN delivery.
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	broadcaster := events.NewBroadcaster(eventPublisher)
	emitter := events.NewEmitter(broadcaster, eventPublisher)

	eventService := services.NewEventService(entClient, logger)
	connManager := events.NewConnectionManager(eventService, 5*time.Second)

	ctx := context.Background()
	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), connManager)
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	// 3. Domain services.
	workspaceService := services.NewWorkspaceService(entClient)
	taskService := services.NewTaskService(entClient)
	workflowService := services.NewWorkflowService(entClient)
	approvalService := services.NewApprovalService(entClient)
	agentService := services.NewAgentService(entClient, emitter)
	crewService := services.NewCrewService(agentService, tc.completer, emitter, logger)

	// 4. Executor and queue. No sandbox runner: rounds skip test
	// execution, exactly like a deployment without Docker.
	git := NewFakeGit(t)
	runExecutor := executor.New(tc.cfg.Executor, taskService, crewService, git, nil, emitter, t.TempDir())
	taskRunner := services.NewTaskRunner(entClient, runExecutor)

	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-%s", util.GenerateSchemaName(t))
	}
	workerPool := queue.NewWorkerPool(podID, entClient, tc.cfg.Queue, taskRunner)
	require.NoError(t, workerPool.Start(ctx))

	// 5. Workflow engine and approval sweeper.
	stepRunner := services.NewWorkflowStepRunner(taskService, taskRunner, agentService, tc.completer, logger)
	engine := workflow.NewEngine(tc.cfg.Workflow, workflowService, stepRunner, approvalService, emitter)
	sweeper := workflow.NewSweeper(approvalService, emitter, tc.cfg.Workflow.SweeperInterval)
	sweeper.Start(ctx)

	// 6. HTTP server on an OS-assigned port.
	server := api.NewServer(api.Deps{
		DB:          dbClient,
		Workspaces:  workspaceService,
		Tasks:       taskService,
		TaskRunner:  taskRunner,
		Workflows:   workflowService,
		Approvals:   approvalService,
		Agents:      agentService,
		Engine:      engine,
		Pool:        workerPool,
		ConnManager: connManager,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()
	app := &TestApp{
		Config:         tc.cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		Completer:      tc.completer,
		Git:            git,
		Emitter:        emitter,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		WorkerPool:     workerPool,
		Engine:         engine,
		Tasks:          taskService,
		Approvals:      approvalService,
		Server:         server,
		BaseURL:        fmt.Sprintf("http://%s", addr),
		WSURL:          fmt.Sprintf("ws://%s/ws", addr),
		t:              t,
	}

	// Reverse-creation order; schema teardown is registered earlier by
	// the database helper and therefore runs last.
	t.Cleanup(func() {
		workerPool.Stop()
		sweeper.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		notifyListener.Stop(context.Background())
		emitter.Close()
	})

	return app
}

// defaultTestConfig shrinks every timer so scenarios finish in seconds.
func defaultTestConfig() *config.Config {
	cfg := &config.Config{
		Defaults:  config.DefaultDefaults(),
		Queue:     config.DefaultQueueConfig(),
		Executor:  config.DefaultExecutorConfig(),
		Sandbox:   config.DefaultSandboxConfig(),
		Workflow:  config.DefaultWorkflowConfig(),
		LLM:       config.DefaultLLMConfig(),
		Retention: config.DefaultRetentionConfig(),
	}

	cfg.Queue.PollInterval = 50 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 25 * time.Millisecond
	cfg.Queue.RunTimeout = 30 * time.Second
	cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	cfg.Queue.HeartbeatInterval = 1 * time.Second
	cfg.Queue.OrphanDetectionInterval = 1 * time.Minute
	cfg.Queue.OrphanThreshold = 1 * time.Minute
	cfg.Queue.MaxConcurrentRuns = 10

	cfg.Executor.AnalyzeTimeout = 10 * time.Second
	cfg.Executor.PlanTimeout = 10 * time.Second
	cfg.Executor.ExecuteTimeoutPerRound = 15 * time.Second
	cfg.Executor.LLMRetryAttempts = 1
	cfg.Executor.LLMRetryBackoffBase = 10 * time.Millisecond
	cfg.Executor.CancelGracePeriod = 5 * time.Second

	cfg.Workflow.SchedulerTick = 100 * time.Millisecond
	cfg.Workflow.SweeperInterval = 100 * time.Millisecond
	cfg.Workflow.DefaultRetryMaxAttempts = 1
	cfg.Workflow.DefaultRetryBackoffBase = 20 * time.Millisecond
	cfg.Workflow.DefaultApprovalExpiry = 30 * time.Second

	return cfg
}
