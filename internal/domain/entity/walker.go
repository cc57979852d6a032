package entity

import "math"

// stompCutoff is the fraction of a walker's height the attacker's feet
// must stay above for the contact to count as a stomp.
const stompCutoff = 0.65

// WalkerConfig configures a patrolling walker
type WalkerConfig struct {
	Speed            float64
	Gravity          float64
	TerminalVelocity float64
	Score            int
	Corpse           Look

	// KillBelow is passed on to spawned corpse effects.
	KillBelow float64
}

// Walker is a ground enemy that patrols horizontally, reversing at
// walls, and falls with gravity. Stomping it from above kills it and
// bounces the attacker; any other contact kills the attacker.
type Walker struct {
	Base

	grid    Grid
	cfg     WalkerConfig
	effects Spawner
	onScore func(int)
}

// NewWalker creates a walker patrolling in the given direction
// (dir is -1 or 1).
func NewWalker(x, y, w, h float64, dir float64, cfg WalkerConfig, grid Grid, effects Spawner, onScore func(int)) *Walker {
	wk := &Walker{
		Base:    NewBase(x, y, w, h),
		grid:    grid,
		cfg:     cfg,
		effects: effects,
		onScore: onScore,
	}
	wk.body.DX = cfg.Speed * dir
	return wk
}

// Update patrols one tick: walk, reverse on wall contact, fall
func (w *Walker) Update() {
	b := &w.body

	b.FacingRight = b.DX >= 0
	b.X += b.DX
	if w.grid.HorizontalHit(b.X, b.Y, b.DX, b.W, b.H) {
		b.X -= b.DX
		b.DX = -b.DX
	}

	b.DY = math.Min(b.DY+w.cfg.Gravity, w.cfg.TerminalVelocity)
	b.Y += b.DY
	if w.grid.VerticalHit(b.X, b.Y, b.DY, b.W, b.H) {
		if b.DY > 0 {
			b.Y = w.grid.SnapToFloor(b.Y, b.H)
		} else {
			b.Y = w.grid.SnapToCeiling(b.Y)
		}
		b.DY = 0
	}
}

// OnCollision resolves contact with the player: a falling player whose
// feet are above the stomp cutoff squashes the walker and bounces;
// everything else is lethal to the player.
func (w *Walker) OnCollision(other Entity) {
	b := &w.body
	ob := other.Body()
	if ob.Y+ob.H < b.Y+b.H*stompCutoff {
		if ob.DY > 0 {
			if st, ok := other.(Stomper); ok {
				st.StompBounce()
			}
			w.Die()
		} else {
			other.Die()
		}
	} else {
		other.Die()
	}
}

// Die awards score, leaves a flipped corpse effect and clears liveness
func (w *Walker) Die() {
	b := &w.body
	if w.onScore != nil {
		w.onScore(w.cfg.Score)
	}
	w.effects.SpawnEffect(NewEffect(b.X, b.Y, b.W, b.H, EffectConfig{
		Look:           w.cfg.Corpse,
		DX:             0.1,
		DY:             -1,
		FeelsGravity:   true,
		Gravity:        w.cfg.Gravity,
		Terminal:       w.cfg.TerminalVelocity,
		Lifespan:       1000,
		FlipHorizontal: b.DX < 0,
		FlipVertical:   true,
		KillBelow:      w.cfg.KillBelow,
	}))
	b.Alive = false
}
