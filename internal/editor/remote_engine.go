package editor

// CommandKind names an instruction for the client-side media element
type CommandKind string

const (
	CommandSeek   CommandKind = "seek"
	CommandPlay   CommandKind = "play"
	CommandPause  CommandKind = "pause"
	CommandVolume CommandKind = "volume"
)

// EngineCommand is an instruction the client applies to its media element
type EngineCommand struct {
	Kind   CommandKind `json:"kind"`
	Time   float64     `json:"time"`
	Volume float64     `json:"volume"`
}

// RemoteEngine stands in for a media element that lives in a client. It
// tracks the position the client last reported and queues commands for the
// client to apply. Play never fails here; a client whose element refuses
// reports it through Session.OnPlaybackRejected.
type RemoteEngine struct {
	position float64
	pending  []EngineCommand
}

// NewRemoteEngine creates a remote engine positioned at 0
func NewRemoteEngine() *RemoteEngine {
	return &RemoteEngine{}
}

// Report records the position the client's element is at
func (e *RemoteEngine) Report(t float64) {
	e.position = t
}

func (e *RemoteEngine) CurrentTime() float64 {
	return e.position
}

func (e *RemoteEngine) Seek(t float64) {
	e.position = t
	e.pending = append(e.pending, EngineCommand{Kind: CommandSeek, Time: t})
}

func (e *RemoteEngine) Play() error {
	e.pending = append(e.pending, EngineCommand{Kind: CommandPlay})
	return nil
}

func (e *RemoteEngine) Pause() {
	e.pending = append(e.pending, EngineCommand{Kind: CommandPause})
}

func (e *RemoteEngine) SetVolume(v float64) {
	e.pending = append(e.pending, EngineCommand{Kind: CommandVolume, Volume: v})
}

// Drain returns the queued commands in order and empties the queue
func (e *RemoteEngine) Drain() []EngineCommand {
	out := e.pending
	e.pending = nil
	if out == nil {
		out = []EngineCommand{}
	}
	return out
}

// Reset forgets the reported position and any queued commands
func (e *RemoteEngine) Reset() {
	e.position = 0
	e.pending = nil
}
