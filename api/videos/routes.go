package videos

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
)

// RegisterRoutes registers video library routes. Uploads get their own
// middleware so they can carry a larger body limit.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, uploadMiddleware ...gin.HandlerFunc) {
	upload := make([]gin.HandlerFunc, 0, len(uploadMiddleware)+1)
	upload = append(upload, uploadMiddleware...)
	router.POST("", append(upload, UploadVideo(deps))...)
	router.GET("", ListVideos(deps))
	router.GET("/:uuid", GetVideo(deps))
	router.GET("/:uuid/stream", StreamVideo(deps))
	router.GET("/:uuid/thumbnail", GetThumbnail(deps))
	router.DELETE("/:uuid", DeleteVideo(deps))
}
