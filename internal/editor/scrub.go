package editor

// ScrubState is the state of the timeline pointer interaction
type ScrubState int

const (
	// Idle means no pointer gesture is in progress
	Idle ScrubState = iota
	// Scrubbing means a plain drag is moving the playhead
	Scrubbing
	// Selecting means a shift-drag is building a removal segment
	Selecting
)

func (s ScrubState) String() string {
	switch s {
	case Scrubbing:
		return "scrubbing"
	case Selecting:
		return "selecting"
	default:
		return "idle"
	}
}

// TrackPoint is a pointer position relative to the left edge of the track
type TrackPoint struct {
	Offset float64 `json:"offset"`
	Width  float64 `json:"width"`
}

// Draft is an in-progress segment selection
type Draft struct {
	Anchor  float64 `json:"anchor"`
	Current float64 `json:"current"`
}

// Bounds returns the draft as an ordered (start, end) pair
func (d Draft) Bounds() (float64, float64) {
	if d.Anchor <= d.Current {
		return d.Anchor, d.Current
	}
	return d.Current, d.Anchor
}

// ActionKind says what the session has to do after a pointer event
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSeek
	ActionCommit
)

// ScrubAction is the outcome of a pointer event. Seek uses Time, Commit uses
// Start and End.
type ScrubAction struct {
	Kind  ActionKind
	Time  float64
	Start float64
	End   float64
}

// ScrubController turns pointer events on the timeline into playhead seeks or
// new removal segments. A plain drag scrubs; a shift-drag selects.
type ScrubController struct {
	state ScrubState
	draft Draft
}

// State returns the current interaction state
func (c *ScrubController) State() ScrubState {
	return c.state
}

// Draft returns the selection in progress, if any
func (c *ScrubController) Draft() (Draft, bool) {
	if c.state != Selecting {
		return Draft{}, false
	}
	return c.draft, true
}

// Reset abandons any gesture in progress
func (c *ScrubController) Reset() {
	c.state = Idle
	c.draft = Draft{}
}

// PointerDown starts a gesture. A press without shift seeks straight away, so
// a bare click is a click-to-seek.
func (c *ScrubController) PointerDown(p TrackPoint, duration float64, shift bool) ScrubAction {
	if c.state != Idle {
		c.Reset()
	}

	t := PositionToTime(p.Offset, p.Width, duration)
	if shift {
		c.state = Selecting
		c.draft = Draft{Anchor: t, Current: t}
		return ScrubAction{Kind: ActionNone}
	}

	c.state = Scrubbing
	return ScrubAction{Kind: ActionSeek, Time: t}
}

// PointerMove follows the pointer. The playhead stays put while selecting.
func (c *ScrubController) PointerMove(p TrackPoint, duration float64) ScrubAction {
	t := PositionToTime(p.Offset, p.Width, duration)
	switch c.state {
	case Scrubbing:
		return ScrubAction{Kind: ActionSeek, Time: t}
	case Selecting:
		c.draft.Current = t
	}
	return ScrubAction{Kind: ActionNone}
}

// PointerUp ends the gesture. A selection longer than MinSegmentSpan is
// returned as a commit; shorter ones are dropped.
func (c *ScrubController) PointerUp() ScrubAction {
	if c.state != Selecting {
		c.Reset()
		return ScrubAction{Kind: ActionNone}
	}

	start, end := c.draft.Bounds()
	c.Reset()
	if end-start <= MinSegmentSpan {
		return ScrubAction{Kind: ActionNone}
	}
	return ScrubAction{Kind: ActionCommit, Start: start, End: end}
}

// PointerLeave abandons the gesture without seeking or committing
func (c *ScrubController) PointerLeave() ScrubAction {
	c.Reset()
	return ScrubAction{Kind: ActionNone}
}
