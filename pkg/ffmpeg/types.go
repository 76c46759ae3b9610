package ffmpeg

import "time"

// VideoMetadata represents metadata extracted from a video file
type VideoMetadata struct {
	Duration   float64 `json:"duration"`    // Duration in seconds
	Width      int     `json:"width"`       // Frame width in pixels
	Height     int     `json:"height"`      // Frame height in pixels
	FrameRate  float64 `json:"frame_rate"`  // Frames per second
	Bitrate    int     `json:"bitrate"`     // Bitrate in bits per second
	Format     string  `json:"format"`      // Container format (mov,mp4, webm, etc.)
	VideoCodec string  `json:"video_codec"` // Codec of the first video stream
	AudioCodec string  `json:"audio_codec"` // Codec of the first audio stream, if any
	Size       int64   `json:"size"`        // File size in bytes
}

// ThumbnailOptions controls frame extraction
type ThumbnailOptions struct {
	At      time.Duration `json:"at"`      // Offset of the captured frame
	Width   int           `json:"width"`   // Output width, 0 keeps the source width
	Quality int           `json:"quality"` // JPEG qscale, 2 (best) to 31 (worst)
}

// DefaultThumbnailOptions captures the frame 0.1s in, at source width
func DefaultThumbnailOptions() ThumbnailOptions {
	return ThumbnailOptions{
		At:      100 * time.Millisecond,
		Width:   0,
		Quality: 4,
	}
}
