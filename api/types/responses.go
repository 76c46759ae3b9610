package types

import (
	"github.com/killallgit/editor-api/internal/editor"
)

// Status constants for API responses
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusProcessing = "processing"
	StatusFailed     = "failed"
	StatusQueued     = "queued"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// Video is an uploaded clip in API responses
type Video struct {
	UUID        string  `json:"uuid" example:"0c6f8d7e-1f6a-4b0e-9d6b-2f1f0f3c9a11"`
	Name        string  `json:"name" example:"holiday.mov"`
	ContentType string  `json:"content_type" example:"video/quicktime"`
	Size        int64   `json:"size" example:"10485760"`
	Duration    float64 `json:"duration" example:"42.5"` // Seconds, 0 until probed
	Width       int     `json:"width,omitempty" example:"1920"`
	Height      int     `json:"height,omitempty" example:"1080"`
	VideoCodec  string  `json:"video_codec,omitempty" example:"h264"`
	Probed      bool    `json:"probed"`
	StreamURL   string  `json:"stream_url" example:"/api/v1/videos/0c6f8d7e-1f6a-4b0e-9d6b-2f1f0f3c9a11/stream"`
	CreatedAt   string  `json:"created_at" example:"2026-01-02T15:04:05Z"`
}

// VideoResponse for a single video
type VideoResponse struct {
	BaseResponse
	Video *Video `json:"video"`
}

// VideosResponse for video lists
type VideosResponse struct {
	BaseResponse
	Videos []Video `json:"videos"`
	Count  int     `json:"count"` // Number of results in this response
	Total  int64   `json:"total"` // Total videos stored
	Page   int     `json:"page"`
}

// ThumbnailResponse carries a JPEG data URI
type ThumbnailResponse struct {
	BaseResponse
	VideoID   string `json:"video_id"`
	Thumbnail string `json:"thumbnail" example:"data:image/jpeg;base64,/9j/4AAQ..."`
}

// SessionResponse is returned by every session command: the state after the
// command and the engine commands the client applies to its player, in order
type SessionResponse struct {
	BaseResponse
	SessionID string                 `json:"session_id"`
	State     editor.State           `json:"state"`
	Commands  []editor.EngineCommand `json:"commands"`
}

// SegmentResponse reports the result of adding a segment
type SegmentResponse struct {
	SessionResponse
	Index int  `json:"index"` // -1 when nothing was added
	Added bool `json:"added"`
}

// OverlayResponse reports the overlay that was added
type OverlayResponse struct {
	SessionResponse
	Overlay editor.Overlay `json:"overlay"`
}

// ViewResponse carries the composed timeline view
type ViewResponse struct {
	BaseResponse
	SessionID string             `json:"session_id"`
	View      editor.Composition `json:"view"`
}

// Export is an export job in API responses
type Export struct {
	ID          uint   `json:"id" example:"12"`
	Status      string `json:"status" example:"completed"`
	Progress    int    `json:"progress" example:"100"`
	OutputName  string `json:"output_name" example:"holiday_edited.mp4"`
	SourceID    string `json:"source_id" example:"0c6f8d7e-1f6a-4b0e-9d6b-2f1f0f3c9a11"`
	SessionID   string `json:"session_id,omitempty"`
	Size        int64  `json:"size,omitempty"`
	DownloadURL string `json:"download_url,omitempty" example:"/api/v1/exports/12/download"`
	Error       string `json:"error,omitempty"`
	ErrorCode   string `json:"error_code,omitempty"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// ExportResponse for a single export
type ExportResponse struct {
	BaseResponse
	Export *Export `json:"export"`
}

// ExportsResponse for export lists
type ExportsResponse struct {
	BaseResponse
	Exports []Export `json:"exports"`
	Count   int      `json:"count"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Database  map[string]string `json:"database"`
	Sessions  int               `json:"sessions"`          // Live editing sessions
	Workers   int               `json:"workers"`           // Export workers running
	Cache     map[string]int64  `json:"cache,omitempty"`   // Thumbnail cache usage
}
