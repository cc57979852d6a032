package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// queueSource replays a fixed sequence of states
type queueSource struct {
	states []State
	i      int
}

func (q *queueSource) Poll() State {
	if q.i >= len(q.states) {
		return State{}
	}
	s := q.states[q.i]
	q.i++
	return s
}

func TestSampler_SnapshotsOncePerTick(t *testing.T) {
	src := &queueSource{states: []State{
		{Right: true},
		{Jump: true},
	}}
	s := NewSampler(src)

	s.Tick()

	// Every consumer of this tick sees the same snapshot
	assert.True(t, s.Right())
	assert.True(t, s.Current().Right)
	assert.False(t, s.Jump())
	assert.True(t, s.Right(), "repeated queries do not re-poll the source")

	s.Tick()
	assert.False(t, s.Right())
	assert.True(t, s.Jump())
}

func TestSampler_ActionQueries(t *testing.T) {
	s := NewSampler(&queueSource{states: []State{
		{Left: true, Up: true, Down: true},
	}})
	s.Tick()

	assert.True(t, s.Left())
	assert.False(t, s.Right())
	assert.True(t, s.Up())
	assert.True(t, s.Down())
	assert.False(t, s.Jump())
}

func TestSampler_NeutralBeforeFirstTick(t *testing.T) {
	s := NewSampler(&queueSource{states: []State{{Jump: true}}})

	assert.False(t, s.Jump(), "no input before the first snapshot")
}
