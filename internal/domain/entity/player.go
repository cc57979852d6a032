package entity

import "github.com/younwookim/plumber/internal/domain/fsm"

// Input exposes the named action queries the player consumes. The core
// performs no debouncing; values are expected to be sampled once per
// tick by the provider.
type Input interface {
	Left() bool
	Right() bool
	Up() bool
	Down() bool
	Jump() bool
}

// Spawner accepts transient visual entities (death sprites, debris) for
// registration. The core requests effects through it and never renders
// them itself.
type Spawner interface {
	SpawnEffect(e Entity)
}

// Bounds are the scroll limits of the world in world units
type Bounds struct {
	Right   float64 // rightmost reachable x
	Bottom  float64 // lower scroll boundary; crossing it kills
	Ceiling float64 // upper breach threshold, negative; crossing resets y to 0
}

// Stomper is implemented by entities that bounce after stomping an
// enemy from above.
type Stomper interface {
	StompBounce()
}

// Player state keys
const (
	StateGround fsm.Key = "ground"
	StateAir    fsm.Key = "air"
	StateClimb  fsm.Key = "climb"
	StateDead   fsm.Key = "dead"
)

// PlayerConfig holds the player's movement tunables
type PlayerConfig struct {
	Width            float64
	Height           float64
	Speed            float64
	Jump             float64
	Momentum         float64
	ClimbSpeed       float64
	Gravity          float64
	TerminalVelocity float64
	DeathTicks       int
}

// Player is the controllable entity: a movable body owned by a state
// machine with Ground, Air, Climb and Dead states. Exactly one player
// exists per session; the session constructs a fresh one on reset.
type Player struct {
	Base

	cfg     PlayerConfig
	machine *fsm.Machine
	input   Input
	grid    Grid
	effects Spawner
	bounds  Bounds
}

// NewPlayer creates a player at the given position. Collaborators are
// injected explicitly: the input provider, the tile collision view, the
// effect sink and the world bounds.
func NewPlayer(x, y float64, cfg PlayerConfig, in Input, grid Grid, effects Spawner, bounds Bounds) *Player {
	p := &Player{
		Base:    NewBase(x, y, cfg.Width, cfg.Height),
		cfg:     cfg,
		input:   in,
		grid:    grid,
		effects: effects,
		bounds:  bounds,
	}
	p.machine = fsm.MustNew(map[fsm.Key]fsm.State{
		StateGround: &groundState{p: p},
		StateAir:    &airState{p: p},
		StateClimb:  &climbState{p: p},
		StateDead:   &deadState{p: p},
	}, StateGround)
	return p
}

// State returns the current state key
func (p *Player) State() fsm.Key {
	return p.machine.Current()
}

// Update advances the current state one tick
func (p *Player) Update() {
	p.machine.Update()
}

// Die transitions to the dead state; the dead state clears the
// liveness flag when its countdown expires. Already dead is a no-op.
func (p *Player) Die() {
	if p.machine.Current() == StateDead {
		return
	}
	p.machine.MustSet(StateDead)
}

// Land forces the grounded state. The pushback resolver calls this when
// the player settles on top of a reference body. A dead player ignores
// it; pruning is deferred, so contacts can still resolve against one.
func (p *Player) Land() {
	if p.machine.Current() == StateDead {
		return
	}
	p.machine.MustSet(StateGround)
}

// StompBounce launches the player upward off a stomped enemy
func (p *Player) StompBounce() {
	p.body.DY -= p.cfg.Jump * 2
}

// checkWorldBounds clamps the player to the scrollable world. Falling
// past the lower boundary forces the dead transition on the same tick;
// breaching the ceiling resets y without killing.
func (p *Player) checkWorldBounds() {
	b := &p.body
	if b.Y < p.bounds.Ceiling {
		b.Y = 0
	}
	if b.Y > p.bounds.Bottom-b.H {
		b.Y = p.bounds.Bottom - b.H - 1
		p.Die()
	}
	if b.X < 0 {
		b.X = 0
	}
	if b.X > p.bounds.Right {
		b.X = p.bounds.Right - b.W
	}
}
