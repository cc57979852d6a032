// Package system provides the input provider: device polling behind a
// small source interface and a per-tick sampler that fixes the input
// state for the duration of a tick.
package system

import "github.com/hajimehoshi/ebiten/v2"

// State holds the named action queries for one tick
type State struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Jump  bool
}

// Source produces an input State on demand. Keyboard polls the device;
// a replayer produces recorded states.
type Source interface {
	Poll() State
}

// Keyboard reads the ebiten keyboard
type Keyboard struct{}

// Poll reads the current key state
func (Keyboard) Poll() State {
	return State{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Jump: ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
			ebiten.IsKeyPressed(ebiten.KeyW) ||
			ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// Sampler snapshots a Source once per tick and serves the snapshot for
// the rest of the tick, so every consumer within one tick sees the same
// input. It implements the player's input interface.
type Sampler struct {
	src Source
	cur State
}

// NewSampler creates a sampler over a source
func NewSampler(src Source) *Sampler {
	return &Sampler{src: src}
}

// Tick takes the snapshot for this tick
func (s *Sampler) Tick() {
	s.cur = s.src.Poll()
}

// Current returns this tick's snapshot
func (s *Sampler) Current() State {
	return s.cur
}

// Left reports the left action
func (s *Sampler) Left() bool { return s.cur.Left }

// Right reports the right action
func (s *Sampler) Right() bool { return s.cur.Right }

// Up reports the up action
func (s *Sampler) Up() bool { return s.cur.Up }

// Down reports the down action
func (s *Sampler) Down() bool { return s.cur.Down }

// Jump reports the jump action
func (s *Sampler) Jump() bool { return s.cur.Jump }
