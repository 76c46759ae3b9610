package sessions

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
	"github.com/killallgit/editor-api/internal/editor"
	sessionsService "github.com/killallgit/editor-api/internal/services/sessions"
	apperrors "github.com/killallgit/editor-api/pkg/errors"
)

// Pointer handles pointer events on the timeline track
// @Summary Timeline pointer event
// @Description down starts scrubbing, or a selection when shift is held. move scrubs or extends
// @Description the selection. up ends the gesture and commits a selection longer than 0.2s.
// @Description leave abandons the gesture without seeking or committing.
// @Tags timeline
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param event path string true "Event" Enums(down, move, up, leave)
// @Param request body types.PointerRequest false "Pointer position; required for down and move"
// @Success 200 {object} types.SessionResponse
// @Failure 400 {object} types.ErrorResponse "Unknown event"
// @Router /api/v1/sessions/{id}/pointer/{event} [post]
func Pointer(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		event := c.Param("event")
		var req types.PointerRequest
		switch event {
		case "down", "move":
			if !types.BindJSONOrError(c, &req) {
				return
			}
		case "up", "leave":
		default:
			types.SendBadRequest(c, "Unknown pointer event: "+event)
			return
		}

		point := editor.TrackPoint{Offset: req.Offset, Width: req.Width}
		run(c, deps, func(e *sessionsService.Entry) error {
			switch event {
			case "down":
				e.Session.PointerDown(point, req.Shift)
			case "move":
				e.Session.PointerMove(point)
			case "up":
				e.Session.PointerUp()
			case "leave":
				e.Session.PointerLeave()
			}
			return nil
		})
	}
}

// AddSegment marks a time range for removal
// @Summary Add a removal segment
// @Description Ranges of 0.2s or less are ignored and reported with added=false.
// @Tags timeline
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body types.SegmentRequest true "Range in seconds"
// @Success 200 {object} types.SegmentResponse
// @Failure 400 {object} types.ErrorResponse "Range outside the video"
// @Router /api/v1/sessions/{id}/segments [post]
func AddSegment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SegmentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		var resp types.SegmentResponse
		err := deps.Sessions.Do(c.Param("id"), func(e *sessionsService.Entry) error {
			index, added, err := e.Session.AddSegment(req.Start, req.End)
			if err != nil {
				return err
			}
			resp = types.SegmentResponse{
				SessionResponse: sessionResponse(e, ""),
				Index:           index,
				Added:           added,
			}
			return nil
		})
		if err != nil {
			sendError(c, err)
			return
		}
		types.SendSuccess(c, resp)
	}
}

// RemoveSegment deletes a removal segment by position
// @Summary Remove a segment
// @Description Out-of-range indexes change nothing.
// @Tags timeline
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Segment index"
// @Success 200 {object} types.SessionResponse
// @Router /api/v1/sessions/{id}/segments/{index} [delete]
func RemoveSegment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			types.SendAppError(c, apperrors.InvalidInput("index", "segment index must be an integer"))
			return
		}
		run(c, deps, func(e *sessionsService.Entry) error {
			e.Session.RemoveSegment(index)
			return nil
		})
	}
}

// AddOverlay adds a timed text overlay
// @Summary Add a text overlay
// @Description Omitted fields take the defaults: centered, white, 24px, visible for five seconds
// @Description from the playhead. Font size is clamped to 12-72 and the position to the frame.
// @Tags overlays
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body types.OverlayRequest true "Overlay"
// @Success 201 {object} types.OverlayResponse
// @Failure 400 {object} types.ErrorResponse "Empty text or no video loaded"
// @Router /api/v1/sessions/{id}/overlays [post]
func AddOverlay(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.OverlayRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		var resp types.OverlayResponse
		err := deps.Sessions.Do(c.Param("id"), func(e *sessionsService.Entry) error {
			overlay, err := e.Session.AddOverlay(overlayInput(e.Session, req))
			if err != nil {
				return err
			}
			resp = types.OverlayResponse{
				SessionResponse: sessionResponse(e, "Overlay added"),
				Overlay:         overlay,
			}
			return nil
		})
		if err != nil {
			sendError(c, err)
			return
		}
		types.SendCreated(c, resp)
	}
}

func overlayInput(s *editor.Session, req types.OverlayRequest) editor.OverlayInput {
	in := s.DefaultOverlayInput(req.Text)
	if req.X != nil {
		in.Position.X = *req.X
	}
	if req.Y != nil {
		in.Position.Y = *req.Y
	}
	if req.Color != "" {
		in.Style.Color = req.Color
	}
	if req.FontSize != 0 {
		in.Style.FontSize = req.FontSize
	}
	if req.Start != nil {
		in.Timing.Start = *req.Start
	}
	if req.End != nil {
		in.Timing.End = *req.End
	}
	return in
}

// RemoveOverlay deletes an overlay by id
// @Summary Remove an overlay
// @Description Unknown ids change nothing.
// @Tags overlays
// @Produce json
// @Param id path string true "Session ID"
// @Param overlayId path string true "Overlay ID"
// @Success 200 {object} types.SessionResponse
// @Router /api/v1/sessions/{id}/overlays/{overlayId} [delete]
func RemoveOverlay(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		overlayID := c.Param("overlayId")
		run(c, deps, func(e *sessionsService.Entry) error {
			e.Session.RemoveOverlay(overlayID)
			return nil
		})
	}
}
