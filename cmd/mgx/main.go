// MGX orchestrator server — serves the HTTP/WebSocket API, runs the task
// queue workers, the workflow engine, the approval sweeper, and the
// retention sweeps.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mgx-dev/mgx/pkg/api"
	"github.com/mgx-dev/mgx/pkg/cleanup"
	"github.com/mgx-dev/mgx/pkg/config"
	"github.com/mgx-dev/mgx/pkg/database"
	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/executor"
	"github.com/mgx-dev/mgx/pkg/gitops"
	"github.com/mgx-dev/mgx/pkg/llm"
	"github.com/mgx-dev/mgx/pkg/masking"
	"github.com/mgx-dev/mgx/pkg/queue"
	"github.com/mgx-dev/mgx/pkg/sandbox"
	"github.com/mgx-dev/mgx/pkg/services"
	"github.com/mgx-dev/mgx/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting MGX",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration.
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: runs this pod abandoned in a
	// previous life are failed so their tasks can be re-enqueued.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal.
	}

	// 4. Event streaming: broadcaster with mandatory persistence, NOTIFY
	// publisher, and the LISTEN side feeding WebSocket connections.
	logger := slog.Default()
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	broadcaster := events.NewBroadcaster(eventPublisher)
	emitter := events.NewEmitter(broadcaster, eventPublisher)
	defer emitter.Close()

	eventService := services.NewEventService(dbClient.Client, logger)
	connManager := events.NewConnectionManager(eventService, 10*time.Second)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. LLM completion chain: gRPC transport, retry, per-workspace gate.
	grpcCompleter, err := llm.NewGRPCCompleter(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := grpcCompleter.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	gate := llm.NewWorkspaceGate(cfg.LLM.WorkspaceConcurrency)
	completer := llm.NewGatedCompleter(
		llm.NewRetryingCompleter(grpcCompleter, cfg.Executor.LLMRetryAttempts, cfg.Executor.LLMRetryBackoffBase),
		gate,
	)
	slog.Info("LLM client initialized", "addr", cfg.LLM.Addr)

	// 6. Domain services.
	workspaceService := services.NewWorkspaceService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client)
	workflowService := services.NewWorkflowService(dbClient.Client)
	approvalService := services.NewApprovalService(dbClient.Client)
	agentService := services.NewAgentService(dbClient.Client, emitter)
	crewService := services.NewCrewService(agentService, completer, emitter, logger)

	// 7. Sandbox: the recording service wraps the Docker runner; the
	// runner streams log chunks back through the service for masking.
	masker := masking.NewMasker()
	var sandboxService *services.SandboxService
	logSink := func(executionID string, chunk []byte) {
		if sandboxService != nil {
			sandboxService.StreamLogs(executionID, chunk)
		}
	}
	var runner sandbox.Runner
	dockerRunner, err := sandbox.NewDockerRunner(cfg.Sandbox, logSink)
	if err != nil {
		slog.Warn("Sandbox runner unavailable, runs proceed without test execution", "error", err)
	} else {
		sandboxService = services.NewSandboxService(dbClient.Client, dockerRunner, masker, emitter, logger)
		runner = sandboxService
	}

	// 8. Git coordinator and the run executor.
	workDir := getEnv("MGX_WORK_DIR", filepath.Join(os.TempDir(), "mgx-runs"))
	git := gitops.NewCoordinator(workDir, gitops.NewGHClient())
	runExecutor := executor.New(cfg.Executor, taskService, crewService, git, runner, emitter, workDir)
	taskRunner := services.NewTaskRunner(dbClient.Client, runExecutor)

	// 9. Worker pool claims queued tasks.
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, taskRunner)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Workflow engine and the approval sweeper.
	stepRunner := services.NewWorkflowStepRunner(taskService, taskRunner, agentService, completer, logger)
	engine := workflow.NewEngine(cfg.Workflow, workflowService, stepRunner, approvalService, emitter)
	sweeper := workflow.NewSweeper(approvalService, emitter, cfg.Workflow.SweeperInterval)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 11. Retention.
	cleanupService := cleanup.NewService(cfg.Retention, eventService, sandboxService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 12. HTTP server.
	httpServer := api.NewServer(api.Deps{
		DB:          dbClient,
		Workspaces:  workspaceService,
		Tasks:       taskService,
		TaskRunner:  taskRunner,
		Workflows:   workflowService,
		Approvals:   approvalService,
		Agents:      agentService,
		Sandboxes:   sandboxService,
		Engine:      engine,
		Pool:        workerPool,
		ConnManager: connManager,
		Cleanup:     cleanupService,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("MGX started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop claiming, drain runs, then the listener and
	// HTTP server.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("MGX shutdown complete")
}
