package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgx-dev/mgx/pkg/models"
)

// createWorkflowHandler handles POST /api/v1/workflows. The definition is
// validated (DAG acyclicity, dependency references, per-type config)
// before it is persisted.
func (s *Server) createWorkflowHandler(c *gin.Context) {
	var req models.CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	wf, err := s.workflows.CreateWorkflow(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wf)
}

// listWorkflowsHandler handles GET /api/v1/workflows.
func (s *Server) listWorkflowsHandler(c *gin.Context) {
	workspaceID := c.Query("workspace_id")
	if workspaceID == "" {
		abortBadRequest(c, "workspace_id query parameter is required")
		return
	}

	workflows, err := s.workflows.ListWorkflows(c.Request.Context(), workspaceID, c.Query("project_id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workflows": workflows})
}

// getWorkflowHandler handles GET /api/v1/workflows/:id.
func (s *Server) getWorkflowHandler(c *gin.Context) {
	wf, err := s.workflows.GetWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, wf)
}

// startExecutionHandler handles POST /api/v1/workflows/:id/executions.
func (s *Server) startExecutionHandler(c *gin.Context) {
	var req models.StartExecutionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "invalid request body: "+err.Error())
			return
		}
	}

	wf, err := s.workflows.EngineWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	exec, err := s.engine.StartExecution(c.Request.Context(), wf, req.InputVariables)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"execution_id":     exec.ID,
		"workflow_id":      exec.WorkflowID,
		"execution_number": exec.Number,
	})
}

// listExecutionsHandler handles GET /api/v1/workflows/:id/executions.
func (s *Server) listExecutionsHandler(c *gin.Context) {
	executions, err := s.workflows.ListExecutions(c.Request.Context(), c.Param("id"), intQuery(c, "limit", 20))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"executions": executions})
}

// workflowMetricsHandler handles GET /api/v1/workflows/:id/metrics.
func (s *Server) workflowMetricsHandler(c *gin.Context) {
	metrics, err := s.workflows.GetMetrics(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// getExecutionHandler handles GET /api/v1/executions/:id.
func (s *Server) getExecutionHandler(c *gin.Context) {
	exec, err := s.workflows.GetExecution(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exec)
}

// executionTimelineHandler handles GET /api/v1/executions/:id/timeline.
func (s *Server) executionTimelineHandler(c *gin.Context) {
	timeline, err := s.workflows.GetTimeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}

// cancelExecutionHandler handles POST /api/v1/executions/:id/cancel.
// Pending approvals of the execution are cancelled with it.
func (s *Server) cancelExecutionHandler(c *gin.Context) {
	executionID := c.Param("id")
	if _, err := s.workflows.GetExecution(c.Request.Context(), executionID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	s.engine.CancelExecution(executionID)
	if err := s.approvals.CancelPendingForExecution(c.Request.Context(), executionID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"execution_id": executionID, "cancelling": true})
}
