package types

import (
	"fmt"
	"time"

	"github.com/killallgit/editor-api/internal/models"
	"github.com/killallgit/editor-api/internal/services/exports"
)

const timeFormat = "2006-01-02T15:04:05Z"

// StreamURL is where a stored video can be played from
func StreamURL(uuid string) string {
	return "/api/v1/videos/" + uuid + "/stream"
}

// DownloadURL is where a finished export can be fetched
func DownloadURL(id uint) string {
	return fmt.Sprintf("/api/v1/exports/%d/download", id)
}

// FromVideo transforms a stored video into its API shape
func FromVideo(v *models.Video) *Video {
	if v == nil {
		return nil
	}
	return &Video{
		UUID:        v.UUID,
		Name:        v.Name,
		ContentType: v.ContentType,
		Size:        v.Size,
		Duration:    v.Duration,
		Width:       v.Width,
		Height:      v.Height,
		VideoCodec:  v.VideoCodec,
		Probed:      v.Probed,
		StreamURL:   StreamURL(v.UUID),
		CreatedAt:   v.CreatedAt.UTC().Format(timeFormat),
	}
}

// FromExportJob transforms an export job into its API shape
func FromExportJob(job *models.Job) *Export {
	if job == nil {
		return nil
	}

	out := &Export{
		ID:        job.ID,
		Status:    string(job.Status),
		Progress:  job.Progress,
		SessionID: job.CreatedBy,
		Error:     job.Error,
		ErrorCode: job.ErrorCode,
		CreatedAt: job.CreatedAt.UTC().Format(timeFormat),
	}

	var req exports.Request
	if err := job.DecodePayload(&req); err == nil {
		out.OutputName = req.OutputName
		out.SourceID = req.Source.ID
	}

	if job.Status == models.JobStatusCompleted {
		out.DownloadURL = DownloadURL(job.ID)
		switch size := job.Result[exports.ResultSize].(type) {
		case float64:
			out.Size = int64(size)
		case int64:
			out.Size = size
		}
	}
	if job.CompletedAt != nil {
		out.CompletedAt = job.CompletedAt.UTC().Format(time.RFC3339)
	}
	return out
}
