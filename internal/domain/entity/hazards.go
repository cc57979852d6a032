package entity

import "math"

// Fireball oscillates vertically between its spawn height and a ceiling
// above it, killing on touch.
type Fireball struct {
	Base

	speed   float64
	ceiling float64
	startY  float64
}

// NewFireball creates a fireball rising from y until y-ceiling
func NewFireball(x, y, w, h, speed, ceiling float64) *Fireball {
	f := &Fireball{
		Base:    NewBase(x, y, w, h),
		speed:   speed,
		ceiling: ceiling,
		startY:  y,
	}
	f.body.DY = -speed
	return f
}

// Update reverses motion at the top and bottom of the oscillation
func (f *Fireball) Update() {
	b := &f.body
	if b.Y < f.startY-f.ceiling || b.Y > f.startY {
		b.DY = -b.DY
	}
	b.Y += b.DY
}

// OnCollision kills the touching entity
func (f *Fireball) OnCollision(other Entity) {
	other.Die()
}

// SpinnerFlame is a single flame of a FlameRing. Its position is driven
// entirely by the owning ring.
type SpinnerFlame struct {
	Base
}

// NewSpinnerFlame creates a ring flame
func NewSpinnerFlame(x, y, w, h float64) *SpinnerFlame {
	return &SpinnerFlame{Base: NewBase(x, y, w, h)}
}

// OnCollision kills the touching entity
func (s *SpinnerFlame) OnCollision(other Entity) {
	other.Die()
}

// FlameRing rotates a chain of spinner flames around a pivot. The
// flames themselves live in the hazard collection so they collide with
// the player; the ring only repositions them.
type FlameRing struct {
	Base

	speed  float64
	step   float64
	tick   int
	flames []*SpinnerFlame
}

// NewFlameRing creates a ring of count flames spaced step units apart,
// rotating at speed radians per tick.
func NewFlameRing(x, y, w, h float64, speed, step float64, count int) *FlameRing {
	r := &FlameRing{
		Base:  NewBase(x, y, w, h),
		speed: speed,
		step:  step,
	}
	for i := 0; i < count; i++ {
		r.flames = append(r.flames, NewSpinnerFlame(x+step*float64(i), y, w, h))
	}
	return r
}

// Flames returns the spinner flames for hazard registration
func (r *FlameRing) Flames() []*SpinnerFlame {
	return r.flames
}

// Update advances the ring's rotation and repositions every flame
func (r *FlameRing) Update() {
	r.tick++
	angle := float64(r.tick) * r.speed
	for i, flame := range r.flames {
		fb := flame.Body()
		fb.X = r.body.X + r.step*float64(i)*math.Cos(angle)
		fb.Y = r.body.Y + r.step*float64(i)*math.Sin(angle)
	}
}

// FlameRingBlock is a flame ring whose pivot is a solid block that
// pushes the player back on contact.
type FlameRingBlock struct {
	FlameRing
}

// NewFlameRingBlock creates a flame ring with a solid pivot
func NewFlameRingBlock(x, y, w, h float64, speed, step float64, count int) *FlameRingBlock {
	return &FlameRingBlock{FlameRing: *NewFlameRing(x, y, w, h, speed, step, count)}
}

// OnCollision pushes the touching entity out of the pivot block
func (r *FlameRingBlock) OnCollision(other Entity) {
	Pushback(&r.body, other, FullPushback())
}

// PiranhaPlant is a stationary hazard, lethal on touch
type PiranhaPlant struct {
	Base
}

// NewPiranhaPlant creates a piranha plant
func NewPiranhaPlant(x, y, w, h float64) *PiranhaPlant {
	return &PiranhaPlant{Base: NewBase(x, y, w, h)}
}

// OnCollision kills the touching entity
func (p *PiranhaPlant) OnCollision(other Entity) {
	other.Die()
}
