package editor

import "errors"

// fakeEngine records every command it receives
type fakeEngine struct {
	position float64
	seeks    []float64
	plays    int
	pauses   int
	volumes  []float64
	refuse   bool
}

var errAutoplay = errors.New("autoplay blocked")

func (e *fakeEngine) CurrentTime() float64 { return e.position }

func (e *fakeEngine) Seek(t float64) {
	e.position = t
	e.seeks = append(e.seeks, t)
}

func (e *fakeEngine) Play() error {
	e.plays++
	if e.refuse {
		return errAutoplay
	}
	return nil
}

func (e *fakeEngine) Pause() { e.pauses++ }

func (e *fakeEngine) SetVolume(v float64) { e.volumes = append(e.volumes, v) }

func (e *fakeEngine) lastVolume() float64 {
	if len(e.volumes) == 0 {
		return -1
	}
	return e.volumes[len(e.volumes)-1]
}
