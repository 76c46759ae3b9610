package videos

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/editor-api/internal/models"
	"github.com/killallgit/editor-api/pkg/ffmpeg"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a gorm backed video repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create stores a new video record
func (r *repository) Create(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return fmt.Errorf("creating video: %w", err)
	}
	return nil
}

// GetByUUID retrieves a video by its public identifier
func (r *repository) GetByUUID(ctx context.Context, uuid string) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("getting video: %w", err)
	}
	return &video, nil
}

// List returns a page of videos, newest first
func (r *repository) List(ctx context.Context, page, limit int) ([]models.Video, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Video{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting videos: %w", err)
	}

	var videos []models.Video
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing videos: %w", err)
	}
	return videos, total, nil
}

// UpdateMetadata records probed stream details
func (r *repository) UpdateMetadata(ctx context.Context, id uint, meta *ffmpeg.VideoMetadata) error {
	result := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"duration":    meta.Duration,
			"width":       meta.Width,
			"height":      meta.Height,
			"video_codec": meta.VideoCodec,
			"probed":      true,
		})
	if result.Error != nil {
		return fmt.Errorf("updating video metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

// Delete soft-deletes a video record
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Video{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}
