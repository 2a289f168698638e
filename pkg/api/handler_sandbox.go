package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// requireSandbox rejects sandbox routes when no runner is configured.
func (s *Server) requireSandbox(c *gin.Context) bool {
	if s.sandboxes == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": "sandbox runner not configured",
		})
		return false
	}
	return true
}

// listSandboxExecutionsHandler handles GET /api/v1/sandbox/executions.
func (s *Server) listSandboxExecutionsHandler(c *gin.Context) {
	if !s.requireSandbox(c) {
		return
	}
	workspaceID := c.Query("workspace_id")
	if workspaceID == "" {
		abortBadRequest(c, "workspace_id query parameter is required")
		return
	}

	rows, err := s.sandboxes.ListExecutions(c.Request.Context(),
		workspaceID, c.Query("run_id"), intQuery(c, "limit", 50))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"executions": rows})
}

// getSandboxExecutionHandler handles GET /api/v1/sandbox/executions/:id.
func (s *Server) getSandboxExecutionHandler(c *gin.Context) {
	if !s.requireSandbox(c) {
		return
	}
	row, err := s.sandboxes.GetExecution(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// sandboxLogsHandler handles GET /api/v1/sandbox/executions/:id/logs.
// Output was scrubbed before persistence; this returns the stored copy.
func (s *Server) sandboxLogsHandler(c *gin.Context) {
	if !s.requireSandbox(c) {
		return
	}
	row, err := s.sandboxes.GetExecution(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"execution_id": row.ID,
		"status":       string(row.Status),
		"stdout":       row.Stdout,
		"stderr":       row.Stderr,
	})
}

// stopSandboxExecutionHandler handles POST /api/v1/sandbox/executions/:id/stop.
func (s *Server) stopSandboxExecutionHandler(c *gin.Context) {
	if !s.requireSandbox(c) {
		return
	}
	if err := s.sandboxes.StopExecution(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"execution_id": c.Param("id"), "stopping": true})
}
