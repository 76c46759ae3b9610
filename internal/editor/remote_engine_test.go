package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteEngine_QueuesCommandsInOrder(t *testing.T) {
	e := NewRemoteEngine()
	e.Seek(4)
	require.NoError(t, e.Play())
	e.SetVolume(0.25)
	e.Pause()

	assert.Equal(t, []EngineCommand{
		{Kind: CommandSeek, Time: 4},
		{Kind: CommandPlay},
		{Kind: CommandVolume, Volume: 0.25},
		{Kind: CommandPause},
	}, e.Drain())
	assert.Empty(t, e.Drain())
	assert.NotNil(t, e.Drain())
}

func TestRemoteEngine_ReportedPositionSuppressesSeek(t *testing.T) {
	e := NewRemoteEngine()
	s := NewSession(e)
	require.NoError(t, s.LoadVideo(testSource("clip.mp4")))
	s.OnMetadataReady(30)

	e.Report(9.8)
	s.OnTimeProgressed(9.8)
	s.Seek(10)
	assert.Empty(t, e.Drain())

	s.Seek(20)
	assert.Equal(t, []EngineCommand{{Kind: CommandSeek, Time: 20}}, e.Drain())
	assert.Equal(t, 20.0, e.CurrentTime())
}

func TestRemoteEngine_Reset(t *testing.T) {
	e := NewRemoteEngine()
	e.Report(12)
	e.Seek(3)
	e.Reset()

	assert.Equal(t, 0.0, e.CurrentTime())
	assert.Empty(t, e.Drain())
}
