package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
	sessionsService "github.com/killallgit/editor-api/internal/services/sessions"
	apperrors "github.com/killallgit/editor-api/pkg/errors"
)

// CreateSession starts an empty editing session
// @Summary Create an editing session
// @Description Start a new editing session. Load a video into it before editing.
// @Tags sessions
// @Produce json
// @Success 201 {object} types.SessionResponse "Session created"
// @Failure 503 {object} types.ErrorResponse "Session limit reached"
// @Router /api/v1/sessions [post]
func CreateSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, err := deps.Sessions.Create()
		if err != nil {
			if errors.Is(err, sessionsService.ErrTooManySessions) {
				c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Too many active editing sessions",
					Error:   string(apperrors.ErrCodeServiceDown),
				})
				return
			}
			types.SendInternalError(c, err.Error())
			return
		}

		var resp types.SessionResponse
		_ = deps.Sessions.Do(entry.ID, func(e *sessionsService.Entry) error {
			resp = sessionResponse(e, "Session created")
			return nil
		})
		types.SendCreated(c, resp)
	}
}

// GetSession returns the session state
// @Summary Get session state
// @Description Return the session state and any engine commands still waiting for the client.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} types.SessionResponse
// @Failure 404 {object} types.ErrorResponse "Session not found"
// @Router /api/v1/sessions/{id} [get]
func GetSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		run(c, deps, func(e *sessionsService.Entry) error { return nil })
	}
}

// DeleteSession ends a session. Exports it requested keep running.
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} types.BaseResponse
// @Failure 404 {object} types.ErrorResponse "Session not found"
// @Router /api/v1/sessions/{id} [delete]
func DeleteSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Sessions.Delete(c.Param("id")); err != nil {
			sendError(c, err)
			return
		}
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Session deleted"})
	}
}

// GetView returns the composed player and timeline view
// @Summary Get the timeline view
// @Description Timeline markers, segment bars, the selection draft, playhead position
// @Description and the overlays visible at the playhead, all as percentages of the track.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} types.ViewResponse
// @Failure 404 {object} types.ErrorResponse "Session not found"
// @Router /api/v1/sessions/{id}/view [get]
func GetView(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var resp types.ViewResponse
		err := deps.Sessions.Do(id, func(e *sessionsService.Entry) error {
			resp = types.ViewResponse{
				BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "View composed"},
				SessionID:    e.ID,
				View:         e.Session.View(),
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

// run executes fn on the session and responds with the resulting state.
// Engine commands are handed out only on success; after an error they stay
// queued for the next response.
func run(c *gin.Context, deps *types.Dependencies, fn func(e *sessionsService.Entry) error) {
	id := c.Param("id")
	var resp types.SessionResponse
	err := deps.Sessions.Do(id, func(e *sessionsService.Entry) error {
		if err := fn(e); err != nil {
			return err
		}
		resp = sessionResponse(e, "")
		return nil
	})
	if err != nil {
		sendError(c, err)
		return
	}
	types.SendSuccess(c, resp)
}

func sessionResponse(e *sessionsService.Entry, message string) types.SessionResponse {
	result := e.Result()
	return types.SessionResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: message},
		SessionID:    e.ID,
		State:        result.State,
		Commands:     result.Commands,
	}
}

func sendError(c *gin.Context, err error) {
	if errors.Is(err, sessionsService.ErrSessionNotFound) {
		types.SendNotFound(c, "Session not found")
		return
	}
	types.SendAppError(c, err)
}
