// Package api exposes the HTTP and WebSocket surface: task and run
// operations, workflow executions, approvals, agents, sandbox records,
// and the event stream.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mgx-dev/mgx/pkg/cleanup"
	"github.com/mgx-dev/mgx/pkg/database"
	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/queue"
	"github.com/mgx-dev/mgx/pkg/services"
	"github.com/mgx-dev/mgx/pkg/workflow"
)

// Server wires the service layer to HTTP routes.
type Server struct {
	db          *database.Client
	workspaces  *services.WorkspaceService
	tasks       *services.TaskService
	taskRunner  *services.TaskRunner
	workflows   *services.WorkflowService
	approvals   *services.ApprovalService
	agents      *services.AgentService
	sandboxes   *services.SandboxService
	engine      *workflow.Engine
	pool        *queue.WorkerPool
	connManager *events.ConnectionManager
	cleanup     *cleanup.Service

	httpServer *http.Server
}

// Deps carries the constructed services into the server. Nil optional
// fields disable their routes.
type Deps struct {
	DB          *database.Client
	Workspaces  *services.WorkspaceService
	Tasks       *services.TaskService
	TaskRunner  *services.TaskRunner
	Workflows   *services.WorkflowService
	Approvals   *services.ApprovalService
	Agents      *services.AgentService
	Sandboxes   *services.SandboxService
	Engine      *workflow.Engine
	Pool        *queue.WorkerPool
	ConnManager *events.ConnectionManager
	Cleanup     *cleanup.Service
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		db:          deps.DB,
		workspaces:  deps.Workspaces,
		tasks:       deps.Tasks,
		taskRunner:  deps.TaskRunner,
		workflows:   deps.Workflows,
		approvals:   deps.Approvals,
		agents:      deps.Agents,
		sandboxes:   deps.Sandboxes,
		engine:      deps.Engine,
		pool:        deps.Pool,
		connManager: deps.ConnManager,
		cleanup:     deps.Cleanup,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	router.GET("/health", s.healthHandler)
	router.GET("/ws", s.wsHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/workspaces", s.createWorkspaceHandler)
		v1.GET("/workspaces/:id", s.getWorkspaceHandler)
		v1.POST("/projects", s.createProjectHandler)
		v1.GET("/projects/:id", s.getProjectHandler)
		v1.GET("/workspaces/:id/projects", s.listProjectsHandler)

		v1.POST("/tasks", s.createTaskHandler)
		v1.GET("/tasks", s.listTasksHandler)
		v1.GET("/tasks/:id", s.getTaskHandler)
		v1.POST("/tasks/:id/runs", s.startRunHandler)
		v1.GET("/tasks/:id/runs", s.listRunsHandler)
		v1.GET("/runs/:id", s.getRunHandler)
		v1.POST("/runs/:id/cancel", s.cancelRunHandler)
		v1.POST("/runs/:id/plan/approve", s.approvePlanHandler)
		v1.POST("/runs/:id/plan/reject", s.rejectPlanHandler)

		v1.POST("/workflows", s.createWorkflowHandler)
		v1.GET("/workflows", s.listWorkflowsHandler)
		v1.GET("/workflows/:id", s.getWorkflowHandler)
		v1.POST("/workflows/:id/executions", s.startExecutionHandler)
		v1.GET("/workflows/:id/executions", s.listExecutionsHandler)
		v1.GET("/workflows/:id/metrics", s.workflowMetricsHandler)
		v1.GET("/executions/:id", s.getExecutionHandler)
		v1.GET("/executions/:id/timeline", s.executionTimelineHandler)
		v1.POST("/executions/:id/cancel", s.cancelExecutionHandler)

		v1.GET("/approvals", s.listPendingApprovalsHandler)
		v1.GET("/approvals/:id", s.getApprovalHandler)
		v1.POST("/approvals/:id/respond", s.respondApprovalHandler)

		v1.POST("/agents", s.createAgentDefinitionHandler)
		v1.GET("/agents", s.listAgentDefinitionsHandler)
		v1.GET("/contexts/:name", s.readContextHandler)
		v1.PUT("/contexts/:name", s.writeContextHandler)
		v1.POST("/contexts/:name/rollback", s.rollbackContextHandler)

		v1.GET("/sandbox/executions", s.listSandboxExecutionsHandler)
		v1.GET("/sandbox/executions/:id", s.getSandboxExecutionHandler)
		v1.GET("/sandbox/executions/:id/logs", s.sandboxLogsHandler)
		v1.POST("/sandbox/executions/:id/stop", s.stopSandboxExecutionHandler)
	}

	return router
}

// Start begins serving on addr. Blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// StartWithListener serves on an existing listener. Used by tests that
// bind an OS-assigned port before starting the server.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
