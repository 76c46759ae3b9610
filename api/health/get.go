package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
)

// Get handles health check requests
// @Summary Health check
// @Description Reports database reachability, live sessions, running export workers and thumbnail cache usage.
// @Tags system
// @Produce json
// @Success 200 {object} types.HealthResponse
// @Failure 503 {object} types.HealthResponse "Database unreachable"
// @Router /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:    types.StatusOK,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  getDatabaseStatus(deps),
		}

		if deps != nil {
			if deps.Sessions != nil {
				response.Sessions = deps.Sessions.Len()
			}
			if deps.WorkerPool != nil {
				response.Workers = deps.WorkerPool.Running()
			}
			if deps.Cache != nil {
				stats := deps.Cache.Stats()
				response.Cache = map[string]int64{
					"size":     stats.Size,
					"max_size": stats.MaxSize,
					"hits":     stats.Hits,
					"misses":   stats.Misses,
				}
			}
		}

		code := http.StatusOK
		if response.Database["status"] == "unhealthy" {
			response.Status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) map[string]string {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return map[string]string{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return map[string]string{"status": "unhealthy", "error": err.Error()}
	}

	return map[string]string{"status": "healthy"}
}
