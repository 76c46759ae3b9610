package sessions

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
	"github.com/killallgit/editor-api/internal/editor"
	"github.com/killallgit/editor-api/internal/services/exports"
	sessionsService "github.com/killallgit/editor-api/internal/services/sessions"
	apperrors "github.com/killallgit/editor-api/pkg/errors"
)

// Export queues an export of the session as it is now
// @Summary Export the session
// @Description Snapshot the source, segments and overlays and queue an export. Later edits,
// @Description or loading another video, do not affect a queued export.
// @Tags exports
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body types.ExportRequest false "Output name"
// @Success 202 {object} types.ExportResponse "Export queued"
// @Failure 400 {object} types.ErrorResponse "No video loaded"
// @Failure 404 {object} types.ErrorResponse "Session not found"
// @Router /api/v1/sessions/{id}/export [post]
func Export(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ExportRequest
		if c.Request.ContentLength > 0 && !types.BindJSONOrError(c, &req) {
			return
		}

		sessionID := c.Param("id")
		var snapshot editor.ExportRequest
		var duration float64
		err := deps.Sessions.Do(sessionID, func(e *sessionsService.Entry) error {
			var err error
			snapshot, err = e.Session.ExportRequest(req.OutputName)
			duration = e.Session.State().Duration
			return err
		})
		if err != nil {
			sendError(c, err)
			return
		}

		job, err := deps.ExportService.RequestExport(c.Request.Context(), sessionID, exports.Request{
			ExportRequest: snapshot,
			Duration:      duration,
		})
		if err != nil {
			types.SendAppError(c, apperrors.ExportFailure(err))
			return
		}

		c.JSON(http.StatusAccepted, types.ExportResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusQueued, Message: "Export queued"},
			Export:       types.FromExportJob(job),
		})
	}
}

// ListExports lists the exports a session requested
// @Summary List session exports
// @Tags exports
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} types.ExportsResponse
// @Router /api/v1/sessions/{id}/exports [get]
func ListExports(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobs, err := deps.ExportService.ListExports(c.Request.Context(), c.Param("id"), 50)
		if err != nil {
			types.SendInternalError(c, err.Error())
			return
		}

		out := make([]types.Export, 0, len(jobs))
		for _, job := range jobs {
			out = append(out, *types.FromExportJob(job))
		}
		types.SendSuccess(c, types.ExportsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Exports:      out,
			Count:        len(out),
		})
	}
}
