package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video is an uploaded clip available for editing
type Video struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"uniqueIndex;not null"`
	Name        string `json:"name" gorm:"not null"`
	ContentType string `json:"content_type" gorm:"not null"`
	Size        int64  `json:"size"`
	StoragePath string `json:"-" gorm:"not null"`

	// Probed metadata, zero until ffprobe has run
	Duration   float64 `json:"duration"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	VideoCodec string  `json:"video_codec,omitempty"`
	Probed     bool    `json:"probed" gorm:"default:false"`
}

// BeforeCreate assigns a public identifier
func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.UUID == "" {
		v.UUID = uuid.New().String()
	}
	return nil
}

// IsVideoContentType reports whether a media type names a video
func IsVideoContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "video/")
}

// TableName specifies the table name for GORM
func (Video) TableName() string {
	return "videos"
}
