package sessions

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
)

// RegisterRoutes registers editing session routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", CreateSession(deps))
	router.GET("/:id", GetSession(deps))
	router.DELETE("/:id", DeleteSession(deps))
	router.GET("/:id/view", GetView(deps))

	// Video and client player events
	router.POST("/:id/video", LoadVideo(deps))
	router.POST("/:id/events/metadata", MetadataReady(deps))
	router.POST("/:id/events/time", TimeProgressed(deps))
	router.POST("/:id/events/playback-rejected", PlaybackRejected(deps))
	router.POST("/:id/events/load-failed", LoadFailed(deps))

	// Playback
	router.POST("/:id/seek", Seek(deps))
	router.POST("/:id/play", Play(deps))
	router.POST("/:id/volume", SetVolume(deps))
	router.POST("/:id/mute", ToggleMute(deps))

	// Timeline editing
	router.POST("/:id/pointer/:event", Pointer(deps))
	router.POST("/:id/segments", AddSegment(deps))
	router.DELETE("/:id/segments/:index", RemoveSegment(deps))
	router.POST("/:id/overlays", AddOverlay(deps))
	router.DELETE("/:id/overlays/:overlayId", RemoveOverlay(deps))

	// Export
	router.POST("/:id/export", Export(deps))
	router.GET("/:id/exports", ListExports(deps))
}
