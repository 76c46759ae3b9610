package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentList_Add(t *testing.T) {
	t.Run("below threshold is dropped", func(t *testing.T) {
		var l SegmentList
		_, ok := l.Add(2.00, 2.15)
		assert.False(t, ok)
		assert.Equal(t, 0, l.Len())
	})

	t.Run("exactly threshold is dropped", func(t *testing.T) {
		var l SegmentList
		_, ok := l.Add(1.0, 1.2)
		assert.False(t, ok)
	})

	t.Run("above threshold is kept", func(t *testing.T) {
		var l SegmentList
		idx, ok := l.Add(2.00, 2.30)
		require.True(t, ok)
		assert.Equal(t, 0, idx)
		assert.Equal(t, []Segment{{Start: 2.00, End: 2.30}}, l.All())
	})

	t.Run("reversed bounds are normalized", func(t *testing.T) {
		var l SegmentList
		_, ok := l.Add(3.0, 1.0)
		require.True(t, ok)
		assert.Equal(t, Segment{Start: 1.0, End: 3.0}, l.All()[0])
	})

	t.Run("overlaps are kept in creation order", func(t *testing.T) {
		var l SegmentList
		l.Add(5, 8)
		l.Add(1, 6)
		idx, _ := l.Add(7, 9)
		assert.Equal(t, 2, idx)
		assert.Equal(t, []Segment{{5, 8}, {1, 6}, {7, 9}}, l.All())
	})
}

func TestSegmentList_Remove(t *testing.T) {
	var l SegmentList
	l.Add(0, 1)
	l.Add(2, 3)
	l.Add(4, 5)

	for _, idx := range []int{-1, 3, 100} {
		assert.False(t, l.Remove(idx))
	}
	assert.Equal(t, 3, l.Len())

	assert.True(t, l.Remove(1))
	assert.Equal(t, []Segment{{0, 1}, {4, 5}}, l.All())
}

func TestSegmentList_AllIsACopy(t *testing.T) {
	var l SegmentList
	l.Add(0, 1)
	all := l.All()
	all[0].Start = 99
	assert.Equal(t, 0.0, l.All()[0].Start)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 1, len(all))
}
