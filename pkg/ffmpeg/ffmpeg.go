package ffmpeg

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// FFmpeg wraps ffmpeg and ffprobe functionality
type FFmpeg struct {
	ffmpegPath  string
	ffprobePath string
	timeout     time.Duration
}

// New creates a new FFmpeg instance
func New(ffmpegPath, ffprobePath string, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		timeout:     timeout,
	}
}

// ValidateBinaries checks if ffmpeg and ffprobe are available
func (f *FFmpeg) ValidateBinaries() error {
	if _, err := exec.LookPath(f.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFmpegNotFound, f.ffmpegPath)
	}

	if _, err := exec.LookPath(f.ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, f.ffprobePath)
	}

	return nil
}

// ExtractThumbnail captures a single frame as JPEG bytes
func (f *FFmpeg) ExtractThumbnail(ctx context.Context, filePath string, opts ThumbnailOptions) ([]byte, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, f.ffmpegPath, thumbnailArgs(filePath, opts)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, NewProcessingError("thumbnail_extraction", filePath, ErrProcessingTimeout, stderr.String())
		}
		return nil, NewProcessingError("thumbnail_extraction", filePath, err, stderr.String())
	}

	if stdout.Len() == 0 {
		return nil, NewProcessingError("thumbnail_extraction", filePath, ErrEmptyFrame, stderr.String())
	}

	return stdout.Bytes(), nil
}

// ThumbnailDataURI captures a frame and encodes it as a JPEG data URI
func (f *FFmpeg) ThumbnailDataURI(ctx context.Context, filePath string, opts ThumbnailOptions) (string, error) {
	frame, err := f.ExtractThumbnail(ctx, filePath, opts)
	if err != nil {
		return "", err
	}
	return JPEGDataURI(frame), nil
}

// JPEGDataURI encodes JPEG bytes as a data URI
func JPEGDataURI(jpeg []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpeg)
}

// thumbnailArgs builds the ffmpeg arguments for a single-frame JPEG on stdout
func thumbnailArgs(filePath string, opts ThumbnailOptions) []string {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-ss", strconv.FormatFloat(opts.At.Seconds(), 'f', 3, 64),
		"-i", filePath,
		"-frames:v", "1",
	}
	if opts.Width > 0 {
		args = append(args, "-vf", fmt.Sprintf("scale=%d:-2", opts.Width))
	}
	quality := opts.Quality
	if quality < 2 || quality > 31 {
		quality = 4
	}
	args = append(args,
		"-q:v", strconv.Itoa(quality),
		"-f", "image2",
		"-c:v", "mjpeg",
		"pipe:1",
	)
	return args
}

func (f *FFmpeg) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, f.timeout)
}
