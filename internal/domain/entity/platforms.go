package entity

import (
	"math"
	"math/rand"
)

// MovingPlatform patrols horizontally over a fixed distance and carries
// whatever rides on top of it. The pushback pass is run detect-only:
// the platform classifies the contact side itself and applies the ride
// correction, leaving the rider's own integration to run afterwards.
type MovingPlatform struct {
	Base

	distance  float64
	remaining float64
}

// NewMovingPlatform creates a platform patrolling distance units at the
// given speed.
func NewMovingPlatform(x, y, w, h, speed, distance float64) *MovingPlatform {
	p := &MovingPlatform{
		Base:      NewBase(x, y, w, h),
		distance:  distance,
		remaining: distance,
	}
	p.body.DX = speed
	return p
}

// Update moves the platform, reversing at the patrol limits
func (p *MovingPlatform) Update() {
	b := &p.body
	b.X += b.DX
	p.remaining -= math.Abs(b.DX)
	if p.remaining <= 0 {
		b.DX = -b.DX
		p.remaining = p.distance
	}
}

// OnCollision detects the contact side; a rider landing on top is
// snapped onto the platform, dragged along and forced grounded.
func (p *MovingPlatform) OnCollision(other Entity) {
	cfg := DetectOnly()
	cfg.OnHitAbove = func() { p.carry(other) }
	Pushback(&p.body, other, cfg)
}

func (p *MovingPlatform) carry(other Entity) {
	ob := other.Body()
	ob.Y = p.body.Y - ob.H
	ob.X += p.body.DX
	ob.DY = 0
	if l, ok := other.(Lander); ok {
		l.Land()
	}
}

// FallingPlatform holds for a delay while stood on, then collapses into
// collidable debris.
type FallingPlatform struct {
	Base

	fallDelay int
	remaining int

	// Draw offsets: a slight dip while stood on plus a jiggle as the
	// collapse approaches.
	dip          float64
	jiggleAmount float64
	jy           int

	gravity   float64
	terminal  float64
	killBelow float64
	effects   Spawner
}

// FallingPlatformConfig configures a falling platform
type FallingPlatformConfig struct {
	FallDelayTicks   int
	JiggleAmount     float64
	Gravity          float64
	TerminalVelocity float64
	KillBelow        float64
}

// NewFallingPlatform creates a falling platform
func NewFallingPlatform(x, y, w, h float64, cfg FallingPlatformConfig, effects Spawner) *FallingPlatform {
	return &FallingPlatform{
		Base:         NewBase(x, y, w, h),
		fallDelay:    cfg.FallDelayTicks,
		remaining:    cfg.FallDelayTicks,
		jiggleAmount: cfg.JiggleAmount,
		gravity:      cfg.Gravity,
		terminal:     cfg.TerminalVelocity,
		killBelow:    cfg.KillBelow,
		effects:      effects,
	}
}

// YOffset is the visual offset the renderer applies while the platform
// dips and jiggles.
func (p *FallingPlatform) YOffset() float64 {
	return p.dip + float64(p.jy-1)*p.jiggleAmount
}

// Update advances the jiggle animation once the countdown has begun
func (p *FallingPlatform) Update() {
	if float64(p.remaining) < float64(p.fallDelay)*0.75 {
		p.jy = (p.jy + 1) % 3
	}
}

// OnCollision detects the contact side and dips the platform
func (p *FallingPlatform) OnCollision(other Entity) {
	cfg := DetectOnly()
	cfg.OnHitAbove = func() { p.stoodOn(other) }
	Pushback(&p.body, other, cfg)
	p.dip = 1
}

// OnCollisionEnd resets the countdown when the rider steps off
func (p *FallingPlatform) OnCollisionEnd(Entity) {
	p.remaining = p.fallDelay
	p.dip = 0
	p.jy = 0
}

func (p *FallingPlatform) stoodOn(other Entity) {
	if l, ok := other.(Lander); ok {
		l.Land()
	}
	ob := other.Body()
	ob.Y = p.body.Y - ob.H
	ob.DY = 1 // dip slightly
	p.remaining--
	if p.remaining <= 0 {
		p.Die()
	}
}

// Die collapses the platform into falling debris that is still lethal
// to anyone underneath.
func (p *FallingPlatform) Die() {
	b := &p.body
	p.effects.SpawnEffect(NewCollidableEffect(b.X, b.Y, b.W, b.H, EffectConfig{
		Look:         LookPlatform,
		FeelsGravity: true,
		Gravity:      p.gravity,
		Terminal:     p.terminal,
		Lifespan:     20,
		KillBelow:    p.killBelow,
	}))
	b.Alive = false
}

// BreakBlock is a block the player smashes from below. Each hit chips
// it and sprays debris; at zero hit points it breaks.
type BreakBlock struct {
	Base

	hp        int
	hitOffset float64

	gravity   float64
	terminal  float64
	killBelow float64
	effects   Spawner
	rng       *rand.Rand
}

const breakBlockHitDecay = 0.5

// BreakBlockConfig configures a break block
type BreakBlockConfig struct {
	HP               int
	Gravity          float64
	TerminalVelocity float64
	KillBelow        float64
}

// NewBreakBlock creates a break block. The rng drives debris spread.
func NewBreakBlock(x, y, w, h float64, cfg BreakBlockConfig, effects Spawner, rng *rand.Rand) *BreakBlock {
	return &BreakBlock{
		Base:      NewBase(x, y, w, h),
		hp:        cfg.HP,
		gravity:   cfg.Gravity,
		terminal:  cfg.TerminalVelocity,
		killBelow: cfg.KillBelow,
		effects:   effects,
		rng:       rng,
	}
}

// HitOffset is the visual bump offset the renderer applies after a hit
func (b *BreakBlock) HitOffset() float64 {
	return b.hitOffset
}

// Update decays the hit bump
func (b *BreakBlock) Update() {
	if b.hitOffset > 0 {
		b.hitOffset = math.Max(0, b.hitOffset-breakBlockHitDecay)
	}
}

// OnCollision pushes the toucher out; a hit from below chips the block
func (b *BreakBlock) OnCollision(other Entity) {
	cfg := FullPushback()
	cfg.OnHitBelow = b.hitFromBelow
	Pushback(&b.body, other, cfg)
}

func (b *BreakBlock) hitFromBelow() {
	b.hitOffset = 2
	b.spawnDebris(3, 4)
	b.hp--
	if b.hp <= 0 {
		b.Die()
	}
}

func (b *BreakBlock) spawnDebris(minCount, maxCount int) {
	n := minCount
	if maxCount > minCount {
		n += b.rng.Intn(maxCount - minCount + 1)
	}
	bb := &b.body
	for i := 0; i < n; i++ {
		b.effects.SpawnEffect(NewEffect(bb.X, bb.Y, bb.W, bb.H, EffectConfig{
			Look:         LookDebris,
			DX:           b.rng.Float64()*2 - 1,
			DY:           -1 - b.rng.Float64(),
			FeelsGravity: true,
			Gravity:      b.gravity,
			Terminal:     b.terminal,
			Lifespan:     24,
			KillBelow:    b.killBelow,
		}))
	}
}

// Die clears the liveness flag
func (b *BreakBlock) Die() {
	b.body.Alive = false
}
