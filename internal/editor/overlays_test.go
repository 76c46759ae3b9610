package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("text-%d", n)
	}
}

func TestOverlayList_Add(t *testing.T) {
	t.Run("rejects blank text", func(t *testing.T) {
		l := NewOverlayList()
		for _, text := range []string{"", "   ", "\t\n"} {
			_, ok := l.Add(OverlayInput{Text: text})
			assert.False(t, ok)
		}
		assert.Equal(t, 0, l.Len())
	})

	t.Run("generates unique ids", func(t *testing.T) {
		l := NewOverlayList()
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			o, ok := l.Add(OverlayInput{Text: "hi", Timing: Timing{Start: 0, End: 1}})
			require.True(t, ok)
			assert.Regexp(t, `^text-`, o.ID)
			assert.False(t, seen[o.ID])
			seen[o.ID] = true
		}
	})

	t.Run("normalizes style position and timing", func(t *testing.T) {
		l := NewOverlayList()
		o, ok := l.Add(OverlayInput{
			Text:     "Title",
			Position: Position{X: 1.4, Y: -0.2},
			Style:    Style{FontSize: 200},
			Timing:   Timing{Start: 4, End: 2},
		})
		require.True(t, ok)
		assert.Equal(t, Position{X: 1, Y: 0}, o.Position)
		assert.Equal(t, MaxFontSize, o.Style.FontSize)
		assert.Equal(t, DefaultOverlayColor, o.Style.Color)
		assert.Equal(t, Timing{Start: 4, End: 4}, o.Timing)
	})

	t.Run("unset font size uses default", func(t *testing.T) {
		l := NewOverlayList()
		o, _ := l.Add(OverlayInput{Text: "x", Style: Style{Color: "tomato"}})
		assert.Equal(t, DefaultFontSize, o.Style.FontSize)
		assert.Equal(t, "tomato", o.Style.Color)
	})
}

func TestOverlayList_Remove(t *testing.T) {
	l := &OverlayList{newID: sequentialIDs()}
	l.Add(OverlayInput{Text: "a"})
	l.Add(OverlayInput{Text: "b"})

	assert.False(t, l.Remove("text-99"))
	assert.Equal(t, 2, l.Len())

	assert.True(t, l.Remove("text-1"))
	_, ok := l.Get("text-1")
	assert.False(t, ok)
	got, ok := l.Get("text-2")
	require.True(t, ok)
	assert.Equal(t, "b", got.Text)
}

func TestOverlayList_VisibleAt(t *testing.T) {
	l := &OverlayList{newID: sequentialIDs()}
	l.Add(OverlayInput{Text: "window", Timing: Timing{Start: 1.0, End: 3.0}})
	l.Add(OverlayInput{Text: "late", Timing: Timing{Start: 2.5, End: 9.0}})

	collect := func(at float64) []string {
		var texts []string
		for o := range l.VisibleAt(at) {
			texts = append(texts, o.Text)
		}
		return texts
	}

	assert.Equal(t, []string{"window"}, collect(1.0))
	assert.Equal(t, []string{"window", "late"}, collect(3.0))
	assert.Nil(t, collect(0.999))
	assert.Equal(t, []string{"late"}, collect(3.001))

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := l.VisibleAt(2.75)
		first, second := 0, 0
		for range seq {
			first++
		}
		for range seq {
			second++
		}
		assert.Equal(t, 2, first)
		assert.Equal(t, first, second)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		n := 0
		for range l.VisibleAt(2.75) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}
