package exports

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
	exportsService "github.com/killallgit/editor-api/internal/services/exports"
	"github.com/killallgit/editor-api/internal/services/jobs"
	apperrors "github.com/killallgit/editor-api/pkg/errors"
)

// GetExport returns the status of an export
// @Summary Get export status
// @Tags exports
// @Produce json
// @Param id path int true "Export ID"
// @Success 200 {object} types.ExportResponse
// @Failure 404 {object} types.ErrorResponse "Export not found"
// @Router /api/v1/exports/{id} [get]
func GetExport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		job, err := deps.ExportService.GetExport(c.Request.Context(), id)
		if err != nil {
			sendExportError(c, err, id)
			return
		}
		types.SendSuccess(c, types.ExportResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Export:       types.FromExportJob(job),
		})
	}
}

// DownloadExport serves the file a completed export produced
// @Summary Download an export
// @Description The output carries the original video bytes under the requested name.
// @Tags exports
// @Produce octet-stream
// @Param id path int true "Export ID"
// @Success 200 {file} binary
// @Failure 404 {object} types.ErrorResponse "Export not found"
// @Failure 409 {object} types.ErrorResponse "Export not finished"
// @Router /api/v1/exports/{id}/download [get]
func DownloadExport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		job, file, err := deps.ExportService.OutputFile(c.Request.Context(), id)
		if err != nil {
			sendExportError(c, err, id)
			return
		}
		defer file.Close()

		name, _ := job.GetResultString(exportsService.ResultOutputName)
		if name == "" {
			name = filepath.Base(file.Name())
		}
		info, err := file.Stat()
		if err != nil {
			types.SendInternalError(c, "Failed to read export")
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		c.Header("Content-Type", "application/octet-stream")
		http.ServeContent(c.Writer, c.Request, name, info.ModTime(), file)
	}
}

// CancelExport cancels an export that has not started
// @Summary Cancel an export
// @Tags exports
// @Produce json
// @Param id path int true "Export ID"
// @Success 200 {object} types.BaseResponse
// @Failure 404 {object} types.ErrorResponse "Export not found"
// @Failure 409 {object} types.ErrorResponse "Export already started"
// @Router /api/v1/exports/{id} [delete]
func CancelExport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.ExportService.CancelExport(c.Request.Context(), id); err != nil {
			sendExportError(c, err, id)
			return
		}
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Export cancelled"})
	}
}

// RetryExport queues a failed export again
// @Summary Retry a failed export
// @Tags exports
// @Produce json
// @Param id path int true "Export ID"
// @Success 202 {object} types.ExportResponse
// @Failure 404 {object} types.ErrorResponse "Export not found"
// @Failure 409 {object} types.ErrorResponse "Export has not failed"
// @Router /api/v1/exports/{id}/retry [post]
func RetryExport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		job, err := deps.ExportService.RetryExport(c.Request.Context(), id)
		if err != nil {
			sendExportError(c, err, id)
			return
		}
		c.JSON(http.StatusAccepted, types.ExportResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusQueued, Message: "Export queued again"},
			Export:       types.FromExportJob(job),
		})
	}
}

func sendExportError(c *gin.Context, err error, id uint) {
	switch {
	case errors.Is(err, exportsService.ErrExportNotFound), errors.Is(err, jobs.ErrJobNotFound):
		types.SendAppError(c, apperrors.NotFound("export", id))
	case errors.Is(err, exportsService.ErrExportNotReady),
		errors.Is(err, jobs.ErrJobNotCancellable),
		errors.Is(err, jobs.ErrJobNotRetryable):
		c.JSON(http.StatusConflict, types.ErrorResponse{
			Status:  types.StatusError,
			Message: err.Error(),
			Error:   string(apperrors.ErrCodeExportFailure),
		})
	default:
		types.SendInternalError(c, err.Error())
	}
}
