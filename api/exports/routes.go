package exports

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
)

// RegisterRoutes registers export job routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id", GetExport(deps))
	router.GET("/:id/download", DownloadExport(deps))
	router.DELETE("/:id", CancelExport(deps))
	router.POST("/:id/retry", RetryExport(deps))
}
