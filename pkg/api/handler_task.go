package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mgx-dev/mgx/pkg/models"
	"github.com/mgx-dev/mgx/pkg/services"
)

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *gin.Context) {
	filters := services.TaskFilters{
		WorkspaceID: c.Query("workspace_id"),
		ProjectID:   c.Query("project_id"),
		Status:      c.Query("status"),
		Limit:       intQuery(c, "limit", 50),
		Offset:      intQuery(c, "offset", 0),
	}

	tasks, total, err := s.tasks.ListTasks(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": total})
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *gin.Context) {
	task, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// startRunHandler handles POST /api/v1/tasks/:id/runs: the task is
// enqueued and a worker claims it. 202, not 201; the run record does not
// exist until a worker allocates it.
func (s *Server) startRunHandler(c *gin.Context) {
	var req models.StartRunRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "invalid request body: "+err.Error())
			return
		}
	}

	task, err := s.tasks.EnqueueRun(c.Request.Context(), c.Param("id"), req.Input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"task_id": task.ID,
		"status":  string(task.Status),
	})
}

// listRunsHandler handles GET /api/v1/tasks/:id/runs.
func (s *Server) listRunsHandler(c *gin.Context) {
	runs, err := s.tasks.ListRuns(c.Request.Context(), c.Param("id"), intQuery(c, "limit", 20))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	summaries := make([]*models.RunSummary, len(runs))
	for i, run := range runs {
		summaries[i] = services.RunSummaryFromEnt(run)
	}
	c.JSON(http.StatusOK, gin.H{"runs": summaries})
}

// getRunHandler handles GET /api/v1/runs/:id.
func (s *Server) getRunHandler(c *gin.Context) {
	run, err := s.tasks.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.RunSummaryFromEnt(run))
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel. Cancellation is
// asynchronous: the run transitions once the executor observes it.
func (s *Server) cancelRunHandler(c *gin.Context) {
	runID := c.Param("id")
	if _, err := s.tasks.GetRun(c.Request.Context(), runID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	s.taskRunner.CancelRun(runID)
	c.JSON(http.StatusAccepted, gin.H{"run_id": runID, "cancelling": true})
}

// approvePlanHandler handles POST /api/v1/runs/:id/plan/approve.
func (s *Server) approvePlanHandler(c *gin.Context) {
	s.decidePlanHandler(c, true)
}

// rejectPlanHandler handles POST /api/v1/runs/:id/plan/reject.
func (s *Server) rejectPlanHandler(c *gin.Context) {
	s.decidePlanHandler(c, false)
}

func (s *Server) decidePlanHandler(c *gin.Context, approved bool) {
	var req models.PlanDecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "invalid request body: "+err.Error())
			return
		}
	}

	runID := c.Param("id")
	var err error
	if approved {
		err = s.tasks.ApprovePlan(c.Request.Context(), runID, req.Reason)
	} else {
		err = s.tasks.RejectPlan(c.Request.Context(), runID, req.Reason)
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": runID, "approved": approved})
}

// intQuery parses a positive integer query parameter with a default.
func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
