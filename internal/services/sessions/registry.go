package sessions

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/killallgit/editor-api/internal/editor"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many active sessions")
)

// Options tunes session limits and idle eviction
type Options struct {
	IdleTimeout     time.Duration
	CleanupInterval time.Duration
	MaxSessions     int
}

// Entry is one editing session together with the remote engine standing in
// for its client's media element
type Entry struct {
	ID        string
	CreatedAt time.Time
	Session   *editor.Session
	Engine    *editor.RemoteEngine

	mu       sync.Mutex
	lastUsed atomic.Int64
	closed   bool
}

// Result is what a command hands back to the client: the session state and
// the engine commands to apply, in order
type Result struct {
	State    editor.State           `json:"state"`
	Commands []editor.EngineCommand `json:"commands"`
}

// Result drains the engine queue into a Result
func (e *Entry) Result() Result {
	return Result{
		State:    e.Session.State(),
		Commands: e.Engine.Drain(),
	}
}

// LoadVideo loads a source and puts the engine back at the start
func (e *Entry) LoadVideo(src editor.Source) error {
	if err := e.Session.LoadVideo(src); err != nil {
		return err
	}
	e.Engine.Report(0)
	return nil
}

// ReportTime records a position reported by the client
func (e *Entry) ReportTime(t float64) {
	e.Engine.Report(t)
	e.Session.OnTimeProgressed(t)
}

// LastUsed returns when a command last ran on the session
func (e *Entry) LastUsed() time.Time {
	return time.Unix(0, e.lastUsed.Load())
}

// Registry holds the live editing sessions. Commands on one session run one
// at a time; different sessions run independently.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Entry
	opts     Options
	now      func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRegistry creates a registry and starts idle eviction when an idle
// timeout is set
func NewRegistry(opts Options) *Registry {
	r := &Registry{
		sessions: make(map[string]*Entry),
		opts:     opts,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	if opts.IdleTimeout > 0 {
		interval := opts.CleanupInterval
		if interval <= 0 {
			interval = time.Minute
		}
		r.wg.Add(1)
		go r.evictLoop(interval)
	}
	return r
}

// Create starts a new empty session
func (r *Registry) Create() (*Entry, error) {
	engine := editor.NewRemoteEngine()
	now := r.now()
	entry := &Entry{
		ID:        uuid.New().String(),
		CreatedAt: now,
		Session:   editor.NewSession(engine),
		Engine:    engine,
	}
	entry.lastUsed.Store(now.UnixNano())

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.opts.MaxSessions > 0 && len(r.sessions) >= r.opts.MaxSessions {
		return nil, ErrTooManySessions
	}
	r.sessions[entry.ID] = entry

	log.Printf("[DEBUG] Created editing session %s", entry.ID)
	return entry, nil
}

// Do runs fn with exclusive access to the session
func (r *Registry) Do(id string, fn func(*Entry) error) error {
	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return ErrSessionNotFound
	}
	defer entry.lastUsed.Store(r.now().UnixNano())
	return fn(entry)
}

// Delete ends a session
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	entry, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	entry.closed = true
	entry.mu.Unlock()

	log.Printf("[DEBUG] Deleted editing session %s", id)
	return nil
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// EvictIdle ends sessions unused for longer than the idle timeout. Sessions
// running a command are left alone.
func (r *Registry) EvictIdle() int {
	if r.opts.IdleTimeout <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.opts.IdleTimeout).UnixNano()

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, entry := range r.sessions {
		if entry.lastUsed.Load() > cutoff {
			continue
		}
		if !entry.mu.TryLock() {
			continue
		}
		entry.closed = true
		entry.mu.Unlock()
		delete(r.sessions, id)
		evicted++
	}

	if evicted > 0 {
		log.Printf("[INFO] Evicted %d idle editing session(s)", evicted)
	}
	return evicted
}

// Stop ends idle eviction. It is safe to call more than once.
func (r *Registry) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	r.wg.Wait()
}

func (r *Registry) evictLoop(interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.EvictIdle()
		case <-r.stopCh:
			return
		}
	}
}
