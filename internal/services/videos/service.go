package videos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/killallgit/editor-api/internal/models"
	"github.com/killallgit/editor-api/internal/services/cache"
	"github.com/killallgit/editor-api/internal/services/storage"
	"github.com/killallgit/editor-api/pkg/ffmpeg"
)

const maxStoredNameLength = 120

// Options tunes upload limits and thumbnail caching
type Options struct {
	MaxUploadSize int64
	ThumbnailTTL  time.Duration
}

type service struct {
	repo    Repository
	storage storage.Backend
	prober  Prober
	cache   cache.Cache
	opts    Options
}

// NewService creates the video library service. prober and thumbs may be nil,
// in which case uploads are not probed and thumbnails are not cached.
func NewService(repo Repository, backend storage.Backend, prober Prober, thumbs cache.Cache, opts Options) Service {
	return &service{
		repo:    repo,
		storage: backend,
		prober:  prober,
		cache:   thumbs,
		opts:    opts,
	}
}

// Upload stores the file, records it and probes it for metadata. Probing is
// best-effort; the duration is also reported later by the client's player.
func (s *service) Upload(ctx context.Context, in UploadInput) (*models.Video, error) {
	if !models.IsVideoContentType(in.ContentType) {
		return nil, ErrNotAVideo
	}
	if in.Data == nil {
		return nil, fmt.Errorf("upload has no data")
	}

	video := &models.Video{
		UUID:        uuid.New().String(),
		Name:        in.Name,
		ContentType: in.ContentType,
	}

	data := in.Data
	if s.opts.MaxUploadSize > 0 {
		data = io.LimitReader(in.Data, s.opts.MaxUploadSize+1)
	}

	name := video.UUID + "-" + storage.SanitizeName(in.Name, maxStoredNameLength)
	path, size, err := s.storage.Save(ctx, data, name)
	if err != nil {
		return nil, fmt.Errorf("storing upload: %w", err)
	}
	if s.opts.MaxUploadSize > 0 && size > s.opts.MaxUploadSize {
		_ = s.storage.Delete(ctx, path)
		return nil, ErrTooLarge
	}

	video.StoragePath = path
	video.Size = size
	if err := s.repo.Create(ctx, video); err != nil {
		_ = s.storage.Delete(ctx, path)
		return nil, err
	}
	log.Printf("[INFO] Stored video %s (%s, %d bytes)", video.UUID, video.Name, size)

	if s.prober != nil {
		meta, err := s.prober.GetMetadata(ctx, path)
		if err != nil {
			log.Printf("[WARN] Failed to probe video %s: %v", video.UUID, err)
			return video, nil
		}
		if err := s.repo.UpdateMetadata(ctx, video.ID, meta); err != nil {
			log.Printf("[WARN] Failed to save metadata for video %s: %v", video.UUID, err)
			return video, nil
		}
		video.Duration = meta.Duration
		video.Width = meta.Width
		video.Height = meta.Height
		video.VideoCodec = meta.VideoCodec
		video.Probed = true
	}

	return video, nil
}

// Get retrieves a video by uuid
func (s *service) Get(ctx context.Context, id string) (*models.Video, error) {
	return s.repo.GetByUUID(ctx, id)
}

// List returns a page of videos
func (s *service) List(ctx context.Context, page, limit int) ([]models.Video, int64, error) {
	return s.repo.List(ctx, page, limit)
}

// Delete removes the record, its file and any cached thumbnail
func (s *service) Delete(ctx context.Context, id string) error {
	video, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, video.ID); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, video.StoragePath); err != nil {
		log.Printf("[WARN] Failed to remove file for video %s: %v", id, err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, thumbnailKey(id))
	}
	return nil
}

// Thumbnail returns a cached or freshly extracted JPEG data URI
func (s *service) Thumbnail(ctx context.Context, id string) (string, error) {
	if s.cache != nil {
		if jpeg, ok := s.cache.Get(ctx, thumbnailKey(id)); ok {
			return ffmpeg.JPEGDataURI(jpeg), nil
		}
	}

	video, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return "", err
	}
	if s.prober == nil {
		return "", ErrThumbnailsUnavailable
	}

	jpeg, err := s.prober.ExtractThumbnail(ctx, video.StoragePath, ffmpeg.DefaultThumbnailOptions())
	if err != nil {
		return "", fmt.Errorf("extracting thumbnail: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, thumbnailKey(id), jpeg, s.opts.ThumbnailTTL); err != nil && !errors.Is(err, cache.ErrTooLarge) {
			log.Printf("[WARN] Failed to cache thumbnail for video %s: %v", id, err)
		}
	}
	return ffmpeg.JPEGDataURI(jpeg), nil
}

// Open returns the record and an open handle on the stored file
func (s *service) Open(ctx context.Context, id string) (*models.Video, *os.File, error) {
	video, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	file, err := s.storage.Open(ctx, video.StoragePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, ErrVideoNotFound
		}
		return nil, nil, err
	}
	return video, file, nil
}

func thumbnailKey(id string) string {
	return "thumb:" + id
}
