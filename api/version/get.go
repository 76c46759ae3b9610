package version

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

var (
	mu        sync.RWMutex
	version   = "dev"
	gitCommit = "unknown"
)

// SetBuild records the build the server reports. It is called once at startup
// with the values stamped in by the linker.
func SetBuild(v, commit string) {
	mu.Lock()
	defer mu.Unlock()
	if v != "" {
		version = v
	}
	if commit != "" {
		gitCommit = commit
	}
}

// Get handles version requests
// @Summary Version information
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		mu.RLock()
		v, commit := version, gitCommit
		mu.RUnlock()

		c.JSON(http.StatusOK, gin.H{
			"name":        "Video Editor API",
			"version":     v,
			"commit":      commit,
			"description": "Timeline, segment and text overlay editing sessions for browser video editors",
			"status":      "running",
		})
	}
}
