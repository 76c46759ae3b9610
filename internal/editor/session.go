package editor

import (
	"math"
	"path"
	"strings"

	apperrors "github.com/killallgit/editor-api/pkg/errors"
)

// DefaultExportName is used when neither the caller nor the source provides a
// usable output file name
const DefaultExportName = "edited-video.mp4"

// Source identifies the video loaded into a session
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}

// ExportRequest is a snapshot of everything an export needs. It shares no
// memory with the session, so later edits do not affect it.
type ExportRequest struct {
	Source     Source    `json:"source"`
	Segments   []Segment `json:"segments"`
	Overlays   []Overlay `json:"overlays"`
	OutputName string    `json:"output_name"`
}

// State is a read-only view of the session aggregate
type State struct {
	Source        *Source   `json:"source,omitempty"`
	Duration      float64   `json:"duration"`
	DurationKnown bool      `json:"duration_known"`
	CurrentTime   float64   `json:"current_time"`
	IsPlaying     bool      `json:"is_playing"`
	Volume        float64   `json:"volume"`
	Muted         bool      `json:"muted"`
	ScrubState    string    `json:"scrub_state"`
	Draft         *Draft    `json:"draft,omitempty"`
	Segments      []Segment `json:"segments"`
	Overlays      []Overlay `json:"overlays"`
}

// Session owns the state of one editing session: the loaded video, the
// playhead, play state, removal segments and text overlays. It is not safe
// for concurrent use; callers serialize commands.
type Session struct {
	source        *Source
	duration      float64
	durationKnown bool
	currentTime   float64
	isPlaying     bool

	segments *SegmentList
	overlays *OverlayList
	scrub    *ScrubController
	playback *PlaybackSync

	// restore holds the aggregate as it was before the last LoadVideo, until
	// the engine reports metadata for the new video
	restore *snapshot
}

type snapshot struct {
	source        *Source
	duration      float64
	durationKnown bool
	currentTime   float64
	segments      []Segment
	overlays      []Overlay
}

// NewSession creates an empty session bound to a media engine
func NewSession(engine MediaEngine) *Session {
	return &Session{
		segments: &SegmentList{},
		overlays: NewOverlayList(),
		scrub:    &ScrubController{},
		playback: NewPlaybackSync(engine),
	}
}

// LoadVideo replaces the session's video. Only video media types are
// accepted. Playhead, play state, segments and overlays are reset, and the
// duration stays unknown until OnMetadataReady.
func (s *Session) LoadVideo(src Source) error {
	if !strings.HasPrefix(strings.ToLower(src.ContentType), "video/") {
		return apperrors.InvalidInput("content_type", "file must be a video").
			WithDetail("content_type", src.ContentType)
	}

	// Keep the last video whose metadata arrived
	if s.restore == nil {
		s.restore = s.capture()
	}

	if s.isPlaying {
		_ = s.playback.SetPlaying(false)
	}
	loaded := src
	s.source = &loaded
	s.duration = 0
	s.durationKnown = false
	s.currentTime = 0
	s.isPlaying = false
	s.segments.Clear()
	s.overlays.Clear()
	s.scrub.Reset()
	return nil
}

// OnMetadataReady records the duration reported by the engine. Only the first
// report after a load counts. Durations outside [0, MaxDuration] are rejected
// and leave the duration unknown.
func (s *Session) OnMetadataReady(duration float64) error {
	if s.source == nil || s.durationKnown {
		return nil
	}
	if duration < 0 || duration > MaxDuration || math.IsNaN(duration) {
		return apperrors.InvalidInput("duration", "duration is out of range").
			WithDetail("duration", duration).
			WithDetail("max", MaxDuration)
	}
	s.duration = duration
	s.durationKnown = true
	s.restore = nil
	return nil
}

// OnTimeProgressed mirrors the engine's playback position into the session.
// Nothing is pushed back to the engine.
func (s *Session) OnTimeProgressed(t float64) {
	s.currentTime = s.clampTime(t)
}

// OnPlaybackRejected handles an engine refusing to play
func (s *Session) OnPlaybackRejected() error {
	s.isPlaying = false
	return apperrors.PlaybackRefused(nil)
}

// OnLoadFailed handles the engine failing to load the current video. The
// session goes back to what it held before the load.
func (s *Session) OnLoadFailed(reason string) error {
	if s.restore != nil {
		s.apply(s.restore)
		s.restore = nil
	}
	return apperrors.EngineLoadFailure(reason)
}

// Seek moves the playhead and pushes the new position to the engine when it
// has drifted
func (s *Session) Seek(t float64) {
	s.currentTime = s.clampTime(t)
	s.playback.PushSeek(s.currentTime)
}

// SetPlaying starts or stops playback. A refusal from the engine leaves the
// session paused and is returned as a recoverable error.
func (s *Session) SetPlaying(playing bool) error {
	if playing && s.source == nil {
		return apperrors.InvalidInput("video", "no video loaded")
	}
	s.isPlaying = playing
	if err := s.playback.SetPlaying(playing); err != nil {
		s.isPlaying = false
		return apperrors.PlaybackRefused(err)
	}
	return nil
}

// TogglePlay flips the play state
func (s *Session) TogglePlay() error {
	return s.SetPlaying(!s.isPlaying)
}

// SetVolume sets the output volume
func (s *Session) SetVolume(v float64) {
	s.playback.SetVolume(v)
}

// ToggleMute mutes or unmutes output
func (s *Session) ToggleMute() {
	s.playback.ToggleMute()
}

// PointerDown forwards a press on the timeline track
func (s *Session) PointerDown(p TrackPoint, shift bool) {
	s.applyAction(s.scrub.PointerDown(p, s.duration, shift))
}

// PointerMove forwards pointer movement over the track
func (s *Session) PointerMove(p TrackPoint) {
	s.applyAction(s.scrub.PointerMove(p, s.duration))
}

// PointerUp forwards a release on the track
func (s *Session) PointerUp() {
	s.applyAction(s.scrub.PointerUp())
}

// PointerLeave forwards the pointer leaving the track
func (s *Session) PointerLeave() {
	s.applyAction(s.scrub.PointerLeave())
}

func (s *Session) applyAction(a ScrubAction) {
	switch a.Kind {
	case ActionSeek:
		s.Seek(a.Time)
	case ActionCommit:
		s.segments.Add(a.Start, a.End)
	}
}

// AddSegment marks [start, end] for removal. Spans of MinSegmentSpan or less
// are ignored and reported with ok == false.
func (s *Session) AddSegment(start, end float64) (int, bool, error) {
	if s.source == nil {
		return -1, false, apperrors.InvalidInput("video", "no video loaded")
	}
	if !s.durationKnown {
		return -1, false, apperrors.InvalidInput("duration", "video duration is not known yet")
	}
	if start > end {
		start, end = end, start
	}
	if start < 0 || end > s.duration {
		return -1, false, apperrors.InvalidInput("segment", "segment must lie within the video").
			WithDetail("start", start).
			WithDetail("end", end).
			WithDetail("duration", s.duration)
	}
	index, ok := s.segments.Add(start, end)
	return index, ok, nil
}

// RemoveSegment deletes the segment at index. Out-of-range indexes change
// nothing.
func (s *Session) RemoveSegment(index int) bool {
	return s.segments.Remove(index)
}

// AddOverlay adds a text overlay. Empty text is rejected.
func (s *Session) AddOverlay(in OverlayInput) (Overlay, error) {
	if s.source == nil {
		return Overlay{}, apperrors.InvalidInput("video", "no video loaded")
	}
	overlay, ok := s.overlays.Add(in)
	if !ok {
		return Overlay{}, apperrors.InvalidInput("text", "overlay text must not be empty")
	}
	return overlay, nil
}

// DefaultOverlayInput returns an input centered on the frame, starting at the
// playhead and lasting DefaultOverlayDuration seconds or until the end of the
// video
func (s *Session) DefaultOverlayInput(text string) OverlayInput {
	end := s.currentTime + DefaultOverlayDuration
	if s.durationKnown && end > s.duration {
		end = s.duration
	}
	return OverlayInput{
		Text:     text,
		Position: Position{X: 0.5, Y: 0.5},
		Style:    Style{Color: DefaultOverlayColor, FontSize: DefaultFontSize},
		Timing:   Timing{Start: s.currentTime, End: end},
	}
}

// RemoveOverlay deletes the overlay with the given id
func (s *Session) RemoveOverlay(id string) bool {
	return s.overlays.Remove(id)
}

// VisibleOverlays returns the overlays shown at the current playhead
func (s *Session) VisibleOverlays() []Overlay {
	out := make([]Overlay, 0)
	for o := range s.overlays.VisibleAt(s.currentTime) {
		out = append(out, o)
	}
	return out
}

// View returns the composition for the current state
func (s *Session) View() Composition {
	return Compose(s)
}

// State returns a copy of the session aggregate
func (s *Session) State() State {
	st := State{
		Duration:      s.duration,
		DurationKnown: s.durationKnown,
		CurrentTime:   s.currentTime,
		IsPlaying:     s.isPlaying,
		Volume:        s.playback.Volume(),
		Muted:         s.playback.Muted(),
		ScrubState:    s.scrub.State().String(),
		Segments:      s.segments.All(),
		Overlays:      s.overlays.All(),
	}
	if s.source != nil {
		src := *s.source
		st.Source = &src
	}
	if draft, ok := s.scrub.Draft(); ok {
		st.Draft = &draft
	}
	return st
}

// ExportRequest snapshots the session for export
func (s *Session) ExportRequest(outputName string) (ExportRequest, error) {
	if s.source == nil {
		return ExportRequest{}, apperrors.InvalidInput("video", "no video loaded")
	}
	name := strings.TrimSpace(outputName)
	if name == "" {
		name = defaultOutputName(s.source.Name)
	}
	return ExportRequest{
		Source:     *s.source,
		Segments:   s.segments.All(),
		Overlays:   s.overlays.All(),
		OutputName: name,
	}, nil
}

func defaultOutputName(sourceName string) string {
	base := path.Base(strings.ReplaceAll(sourceName, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		return DefaultExportName
	}
	return base + "_edited.mp4"
}

func (s *Session) clampTime(t float64) float64 {
	if t < 0 {
		return 0
	}
	if s.durationKnown && t > s.duration {
		return s.duration
	}
	return t
}

func (s *Session) capture() *snapshot {
	snap := &snapshot{
		duration:      s.duration,
		durationKnown: s.durationKnown,
		currentTime:   s.currentTime,
		segments:      s.segments.All(),
		overlays:      s.overlays.All(),
	}
	if s.source != nil {
		src := *s.source
		snap.source = &src
	}
	return snap
}

func (s *Session) apply(snap *snapshot) {
	s.source = snap.source
	s.duration = snap.duration
	s.durationKnown = snap.durationKnown
	s.currentTime = snap.currentTime
	s.isPlaying = false
	s.segments.items = snap.segments
	s.overlays.items = snap.overlays
	s.scrub.Reset()
}
