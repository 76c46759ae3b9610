package exports

import (
	"context"
	"errors"
	"os"

	"github.com/killallgit/editor-api/internal/editor"
	"github.com/killallgit/editor-api/internal/models"
)

var (
	ErrExportNotFound = errors.New("export not found")
	ErrExportNotReady = errors.New("export has not completed")
	ErrSourceMissing  = errors.New("export source is missing")
)

// Keys written to the job result of a finished export
const (
	ResultOutputPath  = "output_path"
	ResultOutputName  = "output_name"
	ResultCutListPath = "cut_list_path"
	ResultSize        = "size"
	ResultKeptRanges  = "kept_ranges"
)

// Request is the job payload of an export. It embeds the session snapshot
// and adds what the cut list needs.
type Request struct {
	editor.ExportRequest
	Duration  float64 `json:"duration"`
	FrameRate float64 `json:"frame_rate,omitempty"`
}

// SourceOpener opens the stored file behind an export source
type SourceOpener interface {
	Open(ctx context.Context, uuid string) (*models.Video, *os.File, error)
}

// Service defines the business logic interface for export jobs
type Service interface {
	RequestExport(ctx context.Context, sessionID string, req Request) (*models.Job, error)
	GetExport(ctx context.Context, id uint) (*models.Job, error)
	ListExports(ctx context.Context, sessionID string, limit int) ([]*models.Job, error)
	CancelExport(ctx context.Context, id uint) error
	RetryExport(ctx context.Context, id uint) (*models.Job, error)

	// OutputFile opens the finished export. The caller closes the file.
	OutputFile(ctx context.Context, id uint) (*models.Job, *os.File, error)
}
