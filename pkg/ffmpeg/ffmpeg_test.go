package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	ffmpeg := New("ffmpeg", "ffprobe", 30*time.Second)
	if ffmpeg.ffmpegPath != "ffmpeg" {
		t.Errorf("Expected ffmpegPath to be 'ffmpeg', got %s", ffmpeg.ffmpegPath)
	}
	if ffmpeg.ffprobePath != "ffprobe" {
		t.Errorf("Expected ffprobePath to be 'ffprobe', got %s", ffmpeg.ffprobePath)
	}
	if ffmpeg.timeout != 30*time.Second {
		t.Errorf("Expected timeout to be 30s, got %v", ffmpeg.timeout)
	}
}

func TestDefaultThumbnailOptions(t *testing.T) {
	opts := DefaultThumbnailOptions()
	if opts.At != 100*time.Millisecond {
		t.Errorf("Expected thumbnail offset 100ms, got %v", opts.At)
	}
	if opts.Width != 0 {
		t.Errorf("Expected source width, got %d", opts.Width)
	}
}

func TestThumbnailArgs(t *testing.T) {
	args := thumbnailArgs("/videos/a.mp4", DefaultThumbnailOptions())

	idx := slices.Index(args, "-ss")
	if idx < 0 || args[idx+1] != "0.100" {
		t.Fatalf("Expected -ss 0.100 in %v", args)
	}
	if args[len(args)-1] != "pipe:1" {
		t.Errorf("Expected output to stdout, got %s", args[len(args)-1])
	}
	if slices.Contains(args, "-vf") {
		t.Errorf("Did not expect a scale filter without width: %v", args)
	}

	scaled := thumbnailArgs("/videos/a.mp4", ThumbnailOptions{At: time.Second, Width: 320, Quality: 99})
	if !slices.Contains(scaled, "scale=320:-2") {
		t.Errorf("Expected scale filter, got %v", scaled)
	}
	q := slices.Index(scaled, "-q:v")
	if scaled[q+1] != "4" {
		t.Errorf("Expected out-of-range quality to fall back to 4, got %s", scaled[q+1])
	}
}

func TestJPEGDataURI(t *testing.T) {
	uri := JPEGDataURI([]byte{0xFF, 0xD8, 0xFF})
	if uri != "data:image/jpeg;base64,/9j/" {
		t.Errorf("Unexpected data URI %q", uri)
	}
}

func TestParseMetadata(t *testing.T) {
	raw := `{
		"format": {"duration": "12.480000", "size": "1048576", "bit_rate": "672000", "format_name": "mov,mp4,m4a,3gp,3g2,mj2"},
		"streams": [
			{"codec_type": "audio", "codec_name": "aac"},
			{"codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080, "avg_frame_rate": "30000/1001"}
		]
	}`

	metadata, err := parseMetadata([]byte(raw), "clip.mp4")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if metadata.Duration != 12.48 {
		t.Errorf("Expected duration 12.48, got %f", metadata.Duration)
	}
	if metadata.Width != 1920 || metadata.Height != 1080 {
		t.Errorf("Expected 1920x1080, got %dx%d", metadata.Width, metadata.Height)
	}
	if metadata.VideoCodec != "h264" || metadata.AudioCodec != "aac" {
		t.Errorf("Unexpected codecs %s/%s", metadata.VideoCodec, metadata.AudioCodec)
	}
	if metadata.FrameRate < 29.96 || metadata.FrameRate > 29.98 {
		t.Errorf("Expected ~29.97 fps, got %f", metadata.FrameRate)
	}
	if metadata.Size != 1048576 {
		t.Errorf("Expected size 1048576, got %d", metadata.Size)
	}
}

func TestParseMetadata_StreamDurationFallback(t *testing.T) {
	raw := `{"format": {}, "streams": [{"codec_type": "video", "codec_name": "vp9", "duration": "3.5"}]}`
	metadata, err := parseMetadata([]byte(raw), "clip.webm")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if metadata.Duration != 3.5 {
		t.Errorf("Expected duration 3.5, got %f", metadata.Duration)
	}
}

func TestParseMetadata_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"audio only", `{"format": {"duration": "4"}, "streams": [{"codec_type": "audio"}]}`, ErrNoVideoStream},
		{"no duration", `{"format": {}, "streams": [{"codec_type": "video"}]}`, ErrInvalidVideoFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMetadata([]byte(tt.raw), "x")
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			var procErr *ProcessingError
			if !errors.As(err, &procErr) || procErr.Operation != "metadata_validation" {
				t.Errorf("Expected metadata_validation ProcessingError, got %v", err)
			}
		})
	}

	if _, err := parseMetadata([]byte("not json"), "x"); err == nil {
		t.Error("Expected parse error for invalid JSON")
	}
}

func TestParseFrameRate(t *testing.T) {
	tests := map[string]float64{
		"25/1":  25,
		"0/0":   0,
		"24":    24,
		"":      0,
		"abc/1": 0,
	}
	for in, want := range tests {
		if got := parseFrameRate(in); got != want {
			t.Errorf("parseFrameRate(%q) = %f, want %f", in, got, want)
		}
	}
}

func TestProcessingError(t *testing.T) {
	err := NewProcessingError("thumbnail_extraction", "a.mp4", ErrEmptyFrame, "boom")
	if !strings.Contains(err.Error(), "stderr: boom") {
		t.Errorf("Expected stderr in message, got %s", err.Error())
	}
	if !errors.Is(err, ErrEmptyFrame) {
		t.Error("Expected error to unwrap to ErrEmptyFrame")
	}
}

// Integration test - only runs if ffmpeg/ffprobe are available
func TestValidateBinaries(t *testing.T) {
	ffmpeg := New("ffmpeg", "ffprobe", 30*time.Second)

	err := ffmpeg.ValidateBinaries()
	if err != nil {
		t.Skipf("FFmpeg binaries not available: %v", err)
	}
}

func TestValidateBinaries_Missing(t *testing.T) {
	ffmpeg := New("/nonexistent/ffmpeg", "ffprobe", time.Second)
	if err := ffmpeg.ValidateBinaries(); !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("Expected ErrFFmpegNotFound, got %v", err)
	}
}

func TestGetMetadata_InvalidFile(t *testing.T) {
	ffmpeg := New("ffmpeg", "ffprobe", 10*time.Second)
	if err := ffmpeg.ValidateBinaries(); err != nil {
		t.Skipf("FFmpeg binaries not available: %v", err)
	}

	path := filepath.Join(t.TempDir(), "not-a-video.mp4")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ffmpeg.GetMetadata(context.Background(), path); err == nil {
		t.Error("Expected error for an empty file")
	}
}
