package exports

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/killallgit/editor-api/internal/editor"
)

// DefaultFrameRate is used for cut list timecodes when the source rate is unknown
const DefaultFrameRate = 30.0

// KeptRanges returns the parts of [0, duration] that no removal segment
// covers, in time order. Overlapping segments are treated as their union.
func KeptRanges(removed []editor.Segment, duration float64) []editor.Segment {
	if duration <= 0 {
		return nil
	}

	cuts := make([]editor.Segment, 0, len(removed))
	for _, seg := range removed {
		start := math.Max(0, math.Min(seg.Start, seg.End))
		end := math.Min(duration, math.Max(seg.Start, seg.End))
		if end > start {
			cuts = append(cuts, editor.Segment{Start: start, End: end})
		}
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].Start < cuts[j].Start })

	var kept []editor.Segment
	cursor := 0.0
	for _, cut := range cuts {
		if cut.Start > cursor {
			kept = append(kept, editor.Segment{Start: cursor, End: cut.Start})
		}
		if cut.End > cursor {
			cursor = cut.End
		}
	}
	if cursor < duration {
		kept = append(kept, editor.Segment{Start: cursor, End: duration})
	}
	return kept
}

// CutList is the edit decision list written beside an export
type CutList struct {
	Title     string
	MediaPath string
	ClipName  string
	FrameRate float64
	Kept      []editor.Segment
	Overlays  []editor.Overlay
}

// Render formats the cut list in CMX 3600 style. Each kept range becomes one
// event; overlays are listed as comments on the record timeline.
func (c CutList) Render() string {
	frameRate := c.FrameRate
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	fps := int(math.Round(frameRate))
	isDropFrame := math.Abs(frameRate-29.97) < 0.01 || math.Abs(frameRate-59.94) < 0.01

	lines := []string{fmt.Sprintf("TITLE: %s", c.Title)}
	if isDropFrame {
		lines = append(lines, "FCM: DROP FRAME")
	} else {
		lines = append(lines, "FCM: NON-DROP FRAME")
	}
	lines = append(lines, "")

	recordOffset := 0.0
	for i, r := range c.Kept {
		length := r.End - r.Start
		lines = append(lines,
			fmt.Sprintf("%03d  %-8s %-5s C        %s %s %s %s", i+1, "AX", "V",
				secondsToTimecode(r.Start, fps), secondsToTimecode(r.End, fps),
				secondsToTimecode(recordOffset, fps), secondsToTimecode(recordOffset+length, fps)),
			fmt.Sprintf("* FROM CLIP NAME:  %s", c.ClipName),
			fmt.Sprintf("* MEDIA PATH:  %s", c.MediaPath),
		)
		recordOffset += length
	}

	for _, o := range c.Overlays {
		lines = append(lines, fmt.Sprintf("* TEXT %s %s-%s %s %dpx:  %s",
			o.ID,
			secondsToTimecode(o.Timing.Start, fps), secondsToTimecode(o.Timing.End, fps),
			o.Style.Color, o.Style.FontSize, strings.ReplaceAll(o.Text, "\n", " ")))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func secondsToTimecode(seconds float64, fps int) string {
	totalFrames := int(math.Round(seconds * float64(fps)))
	frames := totalFrames % fps
	totalSeconds := totalFrames / fps
	secs := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	minutes := totalMinutes % 60
	hours := totalMinutes / 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, secs, frames)
}
