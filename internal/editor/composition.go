package editor

import (
	"fmt"
	"math"
)

// Marker is a tick on the timeline ruler
type Marker struct {
	Time     float64 `json:"time"`
	Position float64 `json:"position"`
	Label    string  `json:"label,omitempty"`
}

// Bar is a horizontal span on the track, in percent of the track width
type Bar struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// PlacedOverlay is an overlay resolved for drawing on the frame
type PlacedOverlay struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	Color    string  `json:"color"`
	FontSize int     `json:"font_size"`
}

// Composition is everything needed to draw the player and timeline at one
// instant
type Composition struct {
	Duration    float64         `json:"duration"`
	CurrentTime float64         `json:"current_time"`
	Playhead    float64         `json:"playhead"`
	Markers     []Marker        `json:"markers"`
	Segments    []Bar           `json:"segments"`
	Draft       *Bar            `json:"draft,omitempty"`
	Overlays    []PlacedOverlay `json:"overlays"`
}

// Compose builds the composition for the session's current state. It reads
// only and can be called after every change.
func Compose(s *Session) Composition {
	d := s.duration
	comp := Composition{
		Duration:    d,
		CurrentTime: s.currentTime,
		Playhead:    TimeToPercent(s.currentTime, d),
		Markers:     TimelineMarkers(d),
		Segments:    make([]Bar, 0, s.segments.Len()),
		Overlays:    make([]PlacedOverlay, 0),
	}

	for _, seg := range s.segments.All() {
		comp.Segments = append(comp.Segments, barFor(seg.Start, seg.End, d))
	}

	if draft, ok := s.scrub.Draft(); ok {
		start, end := draft.Bounds()
		bar := barFor(start, end, d)
		comp.Draft = &bar
	}

	for o := range s.overlays.VisibleAt(s.currentTime) {
		comp.Overlays = append(comp.Overlays, PlacedOverlay{
			ID:       o.ID,
			Text:     o.Text,
			Left:     o.Position.X * 100,
			Top:      o.Position.Y * 100,
			Color:    o.Style.Color,
			FontSize: o.Style.FontSize,
		})
	}

	return comp
}

// MaxMarkers bounds the ruler; MaxDuration at five second steps fits inside it
const MaxMarkers = int(MaxDuration/5) + 1

// TimelineMarkers returns ruler ticks every second for clips up to a minute
// long and every five seconds beyond that. Every fifth tick is labelled, or
// all of them for clips of 20 seconds or less. At most MaxMarkers ticks are
// returned.
func TimelineMarkers(duration float64) []Marker {
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return []Marker{}
	}

	step := 1.0
	if duration > 60 {
		step = 5
	}
	count := MaxMarkers - 1
	if ticks := math.Floor(duration / step); ticks < float64(count) {
		count = int(ticks)
	}

	markers := make([]Marker, 0, count+1)
	for i := 0; i <= count; i++ {
		t := float64(i) * step
		m := Marker{Time: t, Position: TimeToPercent(t, duration)}
		if i%5 == 0 || duration <= 20 {
			m.Label = FormatTimestamp(t)
		}
		markers = append(markers, m)
	}
	return markers
}

// FormatTimestamp renders seconds as m:ss
func FormatTimestamp(t float64) string {
	if t < 0 {
		t = 0
	}
	total := int(math.Round(t))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func barFor(start, end, duration float64) Bar {
	return Bar{
		Start: start,
		End:   end,
		Left:  TimeToPercent(start, duration),
		Width: TimeToPercent(end-start, duration),
	}
}
