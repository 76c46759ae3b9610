package editor

// MinSegmentSpan is the shortest span, in seconds, a removal segment may have.
// Anything at or below it is treated as an accidental click.
const MinSegmentSpan = 0.2

// Segment is a time range marked for removal from the exported video
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns the length of the segment in seconds
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// SegmentList holds removal segments in creation order.
// Overlapping segments are kept as-is; nothing is merged.
type SegmentList struct {
	items []Segment
}

// Add normalizes the bounds and appends the segment when its span exceeds
// MinSegmentSpan. It returns the index of the new segment.
func (l *SegmentList) Add(start, end float64) (int, bool) {
	if start > end {
		start, end = end, start
	}
	if end-start <= MinSegmentSpan {
		return -1, false
	}
	l.items = append(l.items, Segment{Start: start, End: end})
	return len(l.items) - 1, true
}

// Remove deletes the segment at index. Out-of-range indexes are ignored.
func (l *SegmentList) Remove(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return true
}

// Clear drops every segment
func (l *SegmentList) Clear() {
	l.items = nil
}

// Len returns the number of segments
func (l *SegmentList) Len() int {
	return len(l.items)
}

// All returns a copy of the segments in creation order
func (l *SegmentList) All() []Segment {
	out := make([]Segment, len(l.items))
	copy(out, l.items)
	return out
}
