package editor

import (
	"iter"
	"strings"

	"github.com/google/uuid"
)

// Overlay font size bounds, in pixels
const (
	MinFontSize     = 12
	MaxFontSize     = 72
	DefaultFontSize = 24
)

// DefaultOverlayColor is used when an overlay is added without a color
const DefaultOverlayColor = "#FFFFFF"

// DefaultOverlayDuration is how long a new overlay stays on screen when no
// timing is given
const DefaultOverlayDuration = 5.0

// Palette lists the colors offered by the overlay editor. Other color strings
// are accepted as well.
var Palette = []string{
	"#FFFFFF", // white
	"#000000", // black
	"#FF3B30", // red
	"#4CD964", // green
	"#007AFF", // blue
	"#FFCC00", // yellow
	"#FF9500", // orange
	"#5856D6", // purple
}

// Position is a point on the video frame as fractions of its width and height
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style controls how overlay text is drawn
type Style struct {
	Color    string `json:"color"`
	FontSize int    `json:"font_size"`
}

// Timing is the inclusive window during which an overlay is visible
type Timing struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Contains reports whether t falls inside the window, both ends included
func (t Timing) Contains(at float64) bool {
	return t.Start <= at && at <= t.End
}

// Overlay is a timed text annotation drawn over the video
type Overlay struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Position Position `json:"position"`
	Style    Style    `json:"style"`
	Timing   Timing   `json:"timing"`
}

// OverlayInput carries the fields of a new overlay. The id is generated.
type OverlayInput struct {
	Text     string
	Position Position
	Style    Style
	Timing   Timing
}

// OverlayList holds overlays in insertion order
type OverlayList struct {
	items []Overlay
	newID func() string
}

// NewOverlayList creates an empty overlay list
func NewOverlayList() *OverlayList {
	return &OverlayList{newID: newOverlayID}
}

func newOverlayID() string {
	return "text-" + uuid.New().String()
}

// Add appends a new overlay. Text that is empty or only whitespace is
// rejected and nothing is added.
func (l *OverlayList) Add(in OverlayInput) (Overlay, bool) {
	if strings.TrimSpace(in.Text) == "" {
		return Overlay{}, false
	}

	timing := in.Timing
	if timing.Start < 0 {
		timing.Start = 0
	}
	if timing.End < timing.Start {
		timing.End = timing.Start
	}

	style := in.Style
	if style.Color == "" {
		style.Color = DefaultOverlayColor
	}
	if style.FontSize == 0 {
		style.FontSize = DefaultFontSize
	}
	style.FontSize = clampInt(style.FontSize, MinFontSize, MaxFontSize)

	newID := l.newID
	if newID == nil {
		newID = newOverlayID
	}

	overlay := Overlay{
		ID:   newID(),
		Text: in.Text,
		Position: Position{
			X: clampFloat(in.Position.X, 0, 1),
			Y: clampFloat(in.Position.Y, 0, 1),
		},
		Style:  style,
		Timing: timing,
	}
	l.items = append(l.items, overlay)
	return overlay, true
}

// Remove deletes the overlay with the given id. Unknown ids are ignored.
func (l *OverlayList) Remove(id string) bool {
	for i, o := range l.items {
		if o.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get looks up an overlay by id
func (l *OverlayList) Get(id string) (Overlay, bool) {
	for _, o := range l.items {
		if o.ID == id {
			return o, true
		}
	}
	return Overlay{}, false
}

// Clear drops every overlay
func (l *OverlayList) Clear() {
	l.items = nil
}

// Len returns the number of overlays
func (l *OverlayList) Len() int {
	return len(l.items)
}

// All returns a copy of the overlays in insertion order
func (l *OverlayList) All() []Overlay {
	out := make([]Overlay, len(l.items))
	copy(out, l.items)
	return out
}

// VisibleAt yields, in insertion order, every overlay whose timing window
// contains t. The sequence can be ranged over any number of times.
func (l *OverlayList) VisibleAt(t float64) iter.Seq[Overlay] {
	return func(yield func(Overlay) bool) {
		for _, o := range l.items {
			if !o.Timing.Contains(t) {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
