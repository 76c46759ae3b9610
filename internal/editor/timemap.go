package editor

// MaxDuration is the longest video a session accepts, in seconds
const MaxDuration = 24 * 60 * 60.0

// PositionToTime maps a pixel offset on the timeline track to a playback time.
// The offset is clamped to the track before scaling, so the result always lies
// in [0, duration]. A track with no width maps everything to 0.
func PositionToTime(offset, trackWidth, duration float64) float64 {
	if trackWidth <= 0 {
		return 0
	}
	if offset < 0 {
		offset = 0
	} else if offset > trackWidth {
		offset = trackWidth
	}
	return (offset / trackWidth) * duration
}

// TimeToPercent converts a time (or a span) into a percentage of the duration.
// Returns 0 while the duration is unknown.
func TimeToPercent(t, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return (t / duration) * 100
}
