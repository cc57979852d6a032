package entity

import "math"

// Look tells the renderer which sprite family a transient effect
// belongs to. The core never draws; it only labels.
type Look int

const (
	LookSparkle Look = iota
	LookDebris
	LookDeadHero
	LookCorpse
	LookPlatform
)

// EffectConfig configures a transient effect
type EffectConfig struct {
	Look           Look
	DX, DY         float64
	FeelsGravity   bool
	Gravity        float64
	Terminal       float64
	Lifespan       int
	FlipHorizontal bool
	FlipVertical   bool

	// KillBelow culls the effect once it falls past this y, so debris
	// that leaves the world stops ticking before its lifespan runs out.
	KillBelow float64
}

// Effect is a short-lived, non-colliding visual entity: death sprites,
// sparkles, debris. It self-destructs when its lifespan expires or it
// falls out of the world.
type Effect struct {
	Base

	Look           Look
	FlipHorizontal bool
	FlipVertical   bool

	feelsGravity bool
	gravity      float64
	terminal     float64
	lifespan     int
	killBelow    float64
}

// NewEffect creates a transient effect
func NewEffect(x, y, w, h float64, cfg EffectConfig) *Effect {
	e := &Effect{
		Base:           NewBase(x, y, w, h),
		Look:           cfg.Look,
		FlipHorizontal: cfg.FlipHorizontal,
		FlipVertical:   cfg.FlipVertical,
		feelsGravity:   cfg.FeelsGravity,
		gravity:        cfg.Gravity,
		terminal:       cfg.Terminal,
		lifespan:       cfg.Lifespan,
		killBelow:      cfg.KillBelow,
	}
	e.body.DX = cfg.DX
	e.body.DY = cfg.DY
	return e
}

// Update integrates the effect's drift and counts down its lifespan
func (e *Effect) Update() {
	b := &e.body
	b.X += b.DX
	if e.lifespan <= 0 {
		b.Alive = false
	}
	if e.feelsGravity {
		b.DY = math.Min(b.DY+e.gravity, e.terminal)
	}
	b.Y += b.DY
	if b.Y > e.killBelow {
		b.Alive = false
	}
	e.lifespan--
}

// Die clears the liveness flag
func (e *Effect) Die() {
	e.body.Alive = false
}

// CollidableEffect is an effect that still hurts: debris of a collapsed
// platform kills the player it lands on while falling.
type CollidableEffect struct {
	Effect
}

// NewCollidableEffect creates a falling effect with a live hitbox
func NewCollidableEffect(x, y, w, h float64, cfg EffectConfig) *CollidableEffect {
	return &CollidableEffect{Effect: *NewEffect(x, y, w, h, cfg)}
}

// OnCollision classifies the contact side only; a player caught under
// the falling debris dies.
func (e *CollidableEffect) OnCollision(other Entity) {
	cfg := DetectOnly()
	cfg.OnHitBelow = func() {
		if e.body.DY > 0 {
			other.Die()
		}
	}
	Pushback(&e.body, other, cfg)
}
