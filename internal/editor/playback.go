package editor

import "math"

// SeekTolerance is the largest drift, in seconds, between the media engine and
// the session that is left alone. Smaller differences come from the engine's
// own time updates and must not be echoed back as seeks.
const SeekTolerance = 0.5

// DefaultUnmuteVolume is restored when unmuting after the volume was set to 0
const DefaultUnmuteVolume = 0.5

// MediaEngine is the native media element the session mirrors
type MediaEngine interface {
	// CurrentTime returns the engine's playback position in seconds
	CurrentTime() float64
	Seek(t float64)
	// Play starts playback. An error means the engine refused, for example
	// because of an autoplay policy.
	Play() error
	Pause()
	SetVolume(v float64)
}

// PlaybackSync is the only writer to the media engine. It pushes seeks and
// play state from the session to the engine and owns volume and mute state.
type PlaybackSync struct {
	engine MediaEngine
	volume float64
	muted  bool
}

// NewPlaybackSync creates a sync bound to engine at full volume
func NewPlaybackSync(engine MediaEngine) *PlaybackSync {
	return &PlaybackSync{engine: engine, volume: 1}
}

// PushSeek moves the engine to t when it has drifted further than
// SeekTolerance. It reports whether a seek was issued.
func (p *PlaybackSync) PushSeek(t float64) bool {
	if p.engine == nil {
		return false
	}
	if math.Abs(p.engine.CurrentTime()-t) <= SeekTolerance {
		return false
	}
	p.engine.Seek(t)
	return true
}

// SetPlaying commands the engine to play or pause
func (p *PlaybackSync) SetPlaying(playing bool) error {
	if p.engine == nil {
		return nil
	}
	if playing {
		return p.engine.Play()
	}
	p.engine.Pause()
	return nil
}

// Volume returns the last volume set, independent of mute
func (p *PlaybackSync) Volume() float64 {
	return p.volume
}

// Muted reports whether output is muted
func (p *PlaybackSync) Muted() bool {
	return p.muted
}

// SetVolume sets the output volume in [0,1]. A volume of 0 counts as muted.
func (p *PlaybackSync) SetVolume(v float64) {
	v = clampFloat(v, 0, 1)
	p.volume = v
	p.muted = v == 0
	if p.engine != nil {
		p.engine.SetVolume(v)
	}
}

// ToggleMute mutes or unmutes. Unmuting restores the volume that was in
// effect before muting.
func (p *PlaybackSync) ToggleMute() {
	p.muted = !p.muted
	if p.muted {
		if p.engine != nil {
			p.engine.SetVolume(0)
		}
		return
	}
	if p.volume == 0 {
		p.volume = DefaultUnmuteVolume
	}
	if p.engine != nil {
		p.engine.SetVolume(p.volume)
	}
}
