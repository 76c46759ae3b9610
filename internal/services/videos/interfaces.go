package videos

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/killallgit/editor-api/internal/models"
	"github.com/killallgit/editor-api/pkg/ffmpeg"
)

var (
	ErrVideoNotFound         = errors.New("video not found")
	ErrNotAVideo             = errors.New("content type is not a video")
	ErrTooLarge              = errors.New("upload exceeds maximum size")
	ErrThumbnailsUnavailable = errors.New("thumbnail extraction is not configured")
)

// Repository defines the data access interface for videos
type Repository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByUUID(ctx context.Context, uuid string) (*models.Video, error)
	List(ctx context.Context, page, limit int) ([]models.Video, int64, error)
	UpdateMetadata(ctx context.Context, id uint, meta *ffmpeg.VideoMetadata) error
	Delete(ctx context.Context, id uint) error
}

// Prober reads stream metadata and frames from stored videos
type Prober interface {
	GetMetadata(ctx context.Context, filePath string) (*ffmpeg.VideoMetadata, error)
	ExtractThumbnail(ctx context.Context, filePath string, opts ffmpeg.ThumbnailOptions) ([]byte, error)
}

// UploadInput describes an incoming video file
type UploadInput struct {
	Name        string
	ContentType string
	Data        io.Reader
}

// Service defines the business logic interface for the video library
type Service interface {
	Upload(ctx context.Context, in UploadInput) (*models.Video, error)
	Get(ctx context.Context, uuid string) (*models.Video, error)
	List(ctx context.Context, page, limit int) ([]models.Video, int64, error)
	Delete(ctx context.Context, uuid string) error

	// Thumbnail returns the frame at 0.1s as a JPEG data URI
	Thumbnail(ctx context.Context, uuid string) (string, error)

	// Open returns the video record and its file. The caller closes the file.
	Open(ctx context.Context, uuid string) (*models.Video, *os.File, error)
}
