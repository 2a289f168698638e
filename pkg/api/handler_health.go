package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mgx-dev/mgx/pkg/database"
	"github.com/mgx-dev/mgx/pkg/version"
)

// healthHandler handles GET /health. Database failure is unhealthy (503);
// a degraded worker pool with a reachable database is degraded (200) so
// the pod keeps serving reads while workers recover.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{
		"status":  "healthy",
		"version": version.Full(),
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["worker_pool"] = poolHealth
		if !poolHealth.IsHealthy {
			body["status"] = "degraded"
		}
	}

	c.JSON(http.StatusOK, body)
}
