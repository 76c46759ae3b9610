package sessions

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
	"github.com/killallgit/editor-api/internal/editor"
	sessionsService "github.com/killallgit/editor-api/internal/services/sessions"
	"github.com/killallgit/editor-api/internal/services/videos"
	apperrors "github.com/killallgit/editor-api/pkg/errors"
)

// LoadVideo loads an uploaded video into the session
// @Summary Load a video
// @Description Replace the session's video. Playhead, play state, segments and overlays are reset.
// @Description The duration stays unknown until the client reports metadata.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body types.LoadVideoRequest true "Video to load"
// @Success 200 {object} types.SessionResponse
// @Failure 400 {object} types.ErrorResponse "Not a video"
// @Failure 404 {object} types.ErrorResponse "Session or video not found"
// @Router /api/v1/sessions/{id}/video [post]
func LoadVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoadVideoRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		src, err := lookupSource(c.Request.Context(), deps, req.VideoID)
		if err != nil {
			if errors.Is(err, videos.ErrVideoNotFound) {
				types.SendAppError(c, apperrors.NotFound("video", req.VideoID))
				return
			}
			types.SendInternalError(c, err.Error())
			return
		}

		run(c, deps, func(e *sessionsService.Entry) error {
			return e.LoadVideo(src)
		})
	}
}

func lookupSource(ctx context.Context, deps *types.Dependencies, videoID string) (editor.Source, error) {
	video, err := deps.VideoService.Get(ctx, videoID)
	if err != nil {
		return editor.Source{}, err
	}
	return editor.Source{
		ID:          video.UUID,
		Name:        video.Name,
		ContentType: video.ContentType,
		URL:         types.StreamURL(video.UUID),
	}, nil
}

// MetadataReady records the duration the client's player read
// @Summary Report video metadata
// @Description Only the first report after a load sets the duration.
// @Tags engine-events
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body types.MetadataRequest true "Duration in seconds"
// @Success 200 {object} types.SessionResponse
// @Failure 400 {object} types.ErrorResponse "Duration out of range"
// @Router /api/v1/sessions/{id}/events/metadata [post]
func MetadataReady(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.MetadataRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		run(c, deps, func(e *sessionsService.Entry) error {
			return e.Session.OnMetadataReady(req.Duration)
		})
	}
}

// TimeProgressed mirrors the client's playback position
// @Summary Report playback position
// @Tags engine-events
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body types.TimeRequest true "Position in seconds"
// @Success 200 {object} types.SessionResponse
// @Router /api/v1/sessions/{id}/events/time [post]
func TimeProgressed(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TimeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		run(c, deps, func(e *sessionsService.Entry) error {
			e.ReportTime(req.Time)
			return nil
		})
	}
}

// PlaybackRejected reports that the client's player refused to play
// @Summary Report refused playback
// @Description The session goes back to paused. Always answers PLAYBACK_REFUSED.
// @Tags engine-events
// @Produce json
// @Param id path string true "Session ID"
// @Failure 409 {object} types.ErrorResponse "Playback refused"
// @Router /api/v1/sessions/{id}/events/playback-rejected [post]
func PlaybackRejected(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		run(c, deps, func(e *sessionsService.Entry) error {
			return e.Session.OnPlaybackRejected()
		})
	}
}

// LoadFailed reports that the client's player could not load the video
// @Summary Report a failed load
// @Description The session goes back to what it held before the load. Always answers ENGINE_LOAD_FAILURE.
// @Tags engine-events
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body types.LoadFailedRequest false "Failure reason"
// @Failure 422 {object} types.ErrorResponse "Load failed"
// @Router /api/v1/sessions/{id}/events/load-failed [post]
func LoadFailed(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoadFailedRequest
		if c.Request.ContentLength > 0 && !types.BindJSONOrError(c, &req) {
			return
		}
		run(c, deps, func(e *sessionsService.Entry) error {
			return e.Session.OnLoadFailed(req.Reason)
		})
	}
}

// Seek moves the playhead
// @Summary Seek
// @Description A seek command is returned only when the client's player has drifted more than half a second.
// @Tags playback
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body types.TimeRequest true "Target position in seconds"
// @Success 200 {object} types.SessionResponse
// @Router /api/v1/sessions/{id}/seek [post]
func Seek(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TimeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		run(c, deps, func(e *sessionsService.Entry) error {
			e.Session.Seek(req.Time)
			return nil
		})
	}
}

// Play starts, stops or toggles playback
// @Summary Play or pause
// @Tags playback
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body types.PlayRequest false "Omit playing to toggle"
// @Success 200 {object} types.SessionResponse
// @Failure 400 {object} types.ErrorResponse "No video loaded"
// @Failure 409 {object} types.ErrorResponse "Playback refused"
// @Router /api/v1/sessions/{id}/play [post]
func Play(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PlayRequest
		if c.Request.ContentLength > 0 && !types.BindJSONOrError(c, &req) {
			return
		}
		run(c, deps, func(e *sessionsService.Entry) error {
			if req.Playing == nil {
				return e.Session.TogglePlay()
			}
			return e.Session.SetPlaying(*req.Playing)
		})
	}
}

// SetVolume sets the output volume
// @Summary Set volume
// @Description Volume is clamped to [0, 1]; 0 mutes.
// @Tags playback
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body types.VolumeRequest true "Volume"
// @Success 200 {object} types.SessionResponse
// @Router /api/v1/sessions/{id}/volume [post]
func SetVolume(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.VolumeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		run(c, deps, func(e *sessionsService.Entry) error {
			e.Session.SetVolume(req.Volume)
			return nil
		})
	}
}

// ToggleMute mutes or unmutes output
// @Summary Toggle mute
// @Tags playback
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} types.SessionResponse
// @Router /api/v1/sessions/{id}/mute [post]
func ToggleMute(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		run(c, deps, func(e *sessionsService.Entry) error {
			e.Session.ToggleMute()
			return nil
		})
	}
}
