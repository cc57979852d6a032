package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/plumber/internal/application/system"
)

func TestNewRecorder(t *testing.T) {
	r := NewRecorder(42, "demo")

	require.NotNil(t, r)
	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_Record(t *testing.T) {
	r := NewRecorder(42, "demo")

	r.Record(system.State{Right: true, Jump: true})
	r.Record(system.State{})
	r.Record(system.State{Left: true})

	assert.Equal(t, 3, r.FrameCount())
}

func TestRecorder_StopHaltsRecording(t *testing.T) {
	r := NewRecorder(42, "demo")

	r.Record(system.State{Right: true})
	r.Stop()
	r.Record(system.State{Left: true})

	assert.Equal(t, 1, r.FrameCount())
}

func TestRecorder_Save_EmptyFails(t *testing.T) {
	r := NewRecorder(42, "demo")

	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	r := NewRecorder(42, "demo")
	r.Record(system.State{Right: true, Jump: true})
	r.Record(system.State{})
	r.Record(system.State{Left: true, Down: true})

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, r.Save(path))

	data, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "demo", data.Stage)
	require.Len(t, data.Frames, 3)
	assert.Equal(t, FrameInput{F: 0, R: true, J: true}, data.Frames[0])
	assert.Equal(t, FrameInput{F: 2, L: true, D: true}, data.Frames[2])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReplayer_PlaysBackInOrder(t *testing.T) {
	rp := NewReplayer(Data{Frames: []FrameInput{
		{F: 0, R: true},
		{F: 1, R: true, J: true},
		{F: 2},
	}})

	assert.Equal(t, system.State{Right: true}, rp.Poll())
	assert.Equal(t, system.State{Right: true, Jump: true}, rp.Poll())
	assert.Equal(t, system.State{}, rp.Poll())
	assert.True(t, rp.Done())
}

func TestReplayer_NeutralPastEnd(t *testing.T) {
	rp := NewReplayer(Data{Frames: []FrameInput{{F: 0, L: true}}})

	rp.Poll()
	assert.Equal(t, system.State{}, rp.Poll(), "exhausted playback yields neutral input")
	assert.Equal(t, system.State{}, rp.Poll())
}

func TestReplayer_Reset(t *testing.T) {
	rp := NewReplayer(Data{Frames: []FrameInput{{F: 0, L: true}}})

	rp.Poll()
	require.True(t, rp.Done())

	rp.Reset()
	assert.False(t, rp.Done())
	assert.Equal(t, 0, rp.CurrentFrame())
	assert.Equal(t, system.State{Left: true}, rp.Poll())
}

func TestReplayer_Counters(t *testing.T) {
	rp := NewReplayer(Data{Seed: 7, Stage: "demo", Frames: []FrameInput{{F: 0}, {F: 1}}})

	assert.Equal(t, int64(7), rp.Seed())
	assert.Equal(t, "demo", rp.Stage())
	assert.Equal(t, 2, rp.TotalFrames())

	rp.Poll()
	assert.Equal(t, 1, rp.CurrentFrame())
}
