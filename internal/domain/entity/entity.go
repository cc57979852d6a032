// Package entity implements the platformer's physics and entity core:
// AABB overlap and pushback resolution, corner-sampled tile-grid
// collision checks, the capability contract shared by all world objects,
// and the concrete entity kinds built on top of those primitives.
package entity

// Entity is the capability contract every world object implements.
// Callers must not assume a concrete kind; collision partners are
// reached only through these operations and optional capability
// interfaces (Lander, Stomper).
type Entity interface {
	// Body exposes the shared physical state.
	Body() *Body

	// Update advances the entity one tick.
	Update()

	// OnCollision is invoked by Collide on every tick of contact.
	OnCollision(other Entity)

	// OnCollisionEnd is invoked once when a contact ends.
	OnCollisionEnd(other Entity)

	// Die marks the entity for removal. Some kinds instead transition
	// their own state machine and clear liveness later.
	Die()
}

// Collide runs the overlap test between e and other and drives e's
// collision callbacks, tracking contact across ticks so OnCollisionEnd
// fires exactly once per separation. Entities already marked dead are
// skipped: pruning is deferred to end of tick, so a dead partner can
// still occupy its slot.
func Collide(e, other Entity) bool {
	eb := e.Body()
	ob := other.Body()
	if !eb.Alive || !ob.Alive {
		return false
	}

	if Overlaps(eb.X, eb.Y, eb.W, eb.H, ob.X, ob.Y, ob.W, ob.H) {
		e.OnCollision(other)
		eb.Colliding = true
		return true
	}
	if eb.Colliding {
		e.OnCollisionEnd(other)
		eb.Colliding = false
	}
	return false
}

// Base provides the default no-op capability set. Concrete kinds embed
// Base and override only what they need.
type Base struct {
	body Body
}

// NewBase returns a Base with a live body at the given position
func NewBase(x, y, w, h float64) Base {
	return Base{body: NewBody(x, y, w, h)}
}

// Body exposes the shared physical state
func (b *Base) Body() *Body { return &b.body }

// Update does nothing by default
func (b *Base) Update() {}

// OnCollision does nothing by default
func (b *Base) OnCollision(Entity) {}

// OnCollisionEnd does nothing by default
func (b *Base) OnCollisionEnd(Entity) {}

// Die does nothing by default; kinds that die by switching state
// override this, others clear the liveness flag.
func (b *Base) Die() {}
