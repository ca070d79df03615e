package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recapd/recapd/pkg/version"
)

// Health handles GET /health: worker pool and database reachability.
func (s *Server) Health(c *gin.Context) {
	health := s.pool.Health()

	status := http.StatusOK
	state := "healthy"
	if !health.IsHealthy {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status":  state,
		"version": version.Full(),
		"pool":    health,
	})
}
