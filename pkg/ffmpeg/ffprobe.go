package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ffprobeOutput represents the JSON structure returned by ffprobe
type ffprobeOutput struct {
	Format struct {
		Duration   string `json:"duration"`
		Size       string `json:"size"`
		Bitrate    string `json:"bit_rate"`
		FormatName string `json:"format_name"`
	} `json:"format"`
	Streams []struct {
		CodecType    string `json:"codec_type"`
		CodecName    string `json:"codec_name"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
		Duration     string `json:"duration"`
	} `json:"streams"`
}

// GetMetadata extracts metadata from a video file using ffprobe
func (f *FFmpeg) GetMetadata(ctx context.Context, filePath string) (*VideoMetadata, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	args := []string{
		"-v", "quiet",
		"-show_format",
		"-show_streams",
		"-of", "json",
		filePath,
	}

	cmd := exec.CommandContext(ctx, f.ffprobePath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, NewProcessingError("metadata_extraction", filePath, ErrProcessingTimeout, stderr.String())
		}
		return nil, NewProcessingError("metadata_extraction", filePath, err, stderr.String())
	}

	return parseMetadata(stdout.Bytes(), filePath)
}

// parseMetadata converts raw ffprobe JSON to VideoMetadata
func parseMetadata(raw []byte, filePath string) (*VideoMetadata, error) {
	var output ffprobeOutput
	if err := json.Unmarshal(raw, &output); err != nil {
		return nil, NewProcessingError("metadata_parsing", filePath, err, "")
	}

	metadata := &VideoMetadata{Format: output.Format.FormatName}

	if output.Format.Duration != "" {
		if duration, err := strconv.ParseFloat(output.Format.Duration, 64); err == nil {
			metadata.Duration = duration
		}
	}
	if output.Format.Size != "" {
		if size, err := strconv.ParseInt(output.Format.Size, 10, 64); err == nil {
			metadata.Size = size
		}
	}
	if output.Format.Bitrate != "" {
		if bitrate, err := strconv.Atoi(output.Format.Bitrate); err == nil {
			metadata.Bitrate = bitrate
		}
	}

	hasVideo := false
	for _, stream := range output.Streams {
		switch stream.CodecType {
		case "video":
			if hasVideo {
				continue
			}
			hasVideo = true
			metadata.VideoCodec = stream.CodecName
			metadata.Width = stream.Width
			metadata.Height = stream.Height
			metadata.FrameRate = parseFrameRate(stream.AvgFrameRate)

			// Use stream duration if format duration is not available
			if metadata.Duration == 0 && stream.Duration != "" {
				if duration, err := strconv.ParseFloat(stream.Duration, 64); err == nil {
					metadata.Duration = duration
				}
			}
		case "audio":
			if metadata.AudioCodec == "" {
				metadata.AudioCodec = stream.CodecName
			}
		}
	}

	if !hasVideo {
		return nil, NewProcessingError("metadata_validation", filePath, ErrNoVideoStream, "")
	}
	if metadata.Duration <= 0 {
		return nil, NewProcessingError("metadata_validation", filePath,
			fmt.Errorf("%w: could not determine duration", ErrInvalidVideoFile), "")
	}

	return metadata, nil
}

// parseFrameRate parses ffprobe's "num/den" rate notation
func parseFrameRate(rate string) float64 {
	num, den, found := strings.Cut(rate, "/")
	if !found {
		v, _ := strconv.ParseFloat(rate, 64)
		return v
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
