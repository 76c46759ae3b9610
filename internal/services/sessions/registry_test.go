package sessions

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/killallgit/editor-api/internal/editor"
	apperrors "github.com/killallgit/editor-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestRegistry(t *testing.T, opts Options) (*Registry, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	opts.CleanupInterval = time.Hour
	r := NewRegistry(opts)
	r.now = clock.Now
	t.Cleanup(r.Stop)
	return r, clock
}

func video() editor.Source {
	return editor.Source{ID: "vid-1", Name: "holiday.mov", ContentType: "video/quicktime"}
}

func TestRegistry_CreateAndDo(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})

	entry, err := r.Create()
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 1, r.Len())

	var result Result
	err = r.Do(entry.ID, func(e *Entry) error {
		if err := e.LoadVideo(video()); err != nil {
			return err
		}
		e.Session.OnMetadataReady(30)
		e.Session.Seek(12)
		result = e.Result()
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 12.0, result.State.CurrentTime)
	assert.Equal(t, []editor.EngineCommand{{Kind: editor.CommandSeek, Time: 12}}, result.Commands)

	_ = r.Do(entry.ID, func(e *Entry) error {
		assert.Empty(t, e.Engine.Drain())
		return nil
	})
}

func TestRegistry_DoUnknownSession(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	err := r.Do("missing", func(e *Entry) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistry_DoReturnsCommandError(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	entry, err := r.Create()
	require.NoError(t, err)

	err = r.Do(entry.ID, func(e *Entry) error {
		return e.LoadVideo(editor.Source{Name: "notes.txt", ContentType: "text/plain"})
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))
}

func TestEntry_ReportTimeSuppressesSmallSeeks(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	entry, err := r.Create()
	require.NoError(t, err)

	err = r.Do(entry.ID, func(e *Entry) error {
		require.NoError(t, e.LoadVideo(video()))
		e.Session.OnMetadataReady(60)
		e.Engine.Drain()

		e.ReportTime(10)
		e.Session.Seek(10.3)
		assert.Empty(t, e.Engine.Drain())

		e.Session.Seek(20)
		assert.Len(t, e.Engine.Drain(), 1)
		return nil
	})
	require.NoError(t, err)
}

func TestRegistry_MaxSessions(t *testing.T) {
	r, _ := newTestRegistry(t, Options{MaxSessions: 1})

	_, err := r.Create()
	require.NoError(t, err)
	_, err = r.Create()
	assert.ErrorIs(t, err, ErrTooManySessions)
}

func TestRegistry_Delete(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	entry, err := r.Create()
	require.NoError(t, err)

	require.NoError(t, r.Delete(entry.ID))
	assert.ErrorIs(t, r.Delete(entry.ID), ErrSessionNotFound)
	assert.ErrorIs(t, r.Do(entry.ID, func(e *Entry) error { return nil }), ErrSessionNotFound)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_EvictIdle(t *testing.T) {
	r, clock := newTestRegistry(t, Options{IdleTimeout: 10 * time.Minute})

	stale, err := r.Create()
	require.NoError(t, err)
	clock.Advance(8 * time.Minute)
	fresh, err := r.Create()
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	assert.Equal(t, 1, r.EvictIdle())

	assert.ErrorIs(t, r.Do(stale.ID, func(e *Entry) error { return nil }), ErrSessionNotFound)
	assert.NoError(t, r.Do(fresh.ID, func(e *Entry) error { return nil }))
}

func TestRegistry_EvictSkipsBusySession(t *testing.T) {
	r, clock := newTestRegistry(t, Options{IdleTimeout: time.Minute})
	entry, err := r.Create()
	require.NoError(t, err)
	clock.Advance(time.Hour)

	err = r.Do(entry.ID, func(e *Entry) error {
		assert.Equal(t, 0, r.EvictIdle())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SerializesCommands(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	entry, err := r.Create()
	require.NoError(t, err)
	require.NoError(t, r.Do(entry.ID, func(e *Entry) error {
		if err := e.LoadVideo(video()); err != nil {
			return err
		}
		e.Session.OnMetadataReady(100)
		return nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Do(entry.ID, func(e *Entry) error {
				_, _, err := e.Session.AddSegment(1, 2)
				return err
			})
		}()
	}
	wg.Wait()

	require.NoError(t, r.Do(entry.ID, func(e *Entry) error {
		if got := len(e.Session.State().Segments); got != 50 {
			return errors.New("lost a segment")
		}
		return nil
	}))
}
