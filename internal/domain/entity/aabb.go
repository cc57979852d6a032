package entity

// Overlaps reports whether two axis-aligned rectangles intersect.
// Edge contact (touching borders) does not count as overlap.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// PushbackConfig controls how Pushback resolves a contact.
// Side flags enable position/velocity correction per approach direction;
// with all four disabled the resolver only classifies the contact side
// and fires callbacks, which is how carrying platforms detect riders.
type PushbackConfig struct {
	// Velocity magnitude applied to the pushed body on a resolved
	// contact, signed away from the reference.
	Horizontal float64
	Vertical   float64

	PushLeft  bool // resolve contacts on the reference's left side
	PushRight bool // resolve contacts on the reference's right side
	PushUp    bool // resolve contacts on the reference's top side
	PushDown  bool // resolve contacts on the reference's bottom side

	// OnHit fires once if any side resolved. The directional hooks
	// fire for their side regardless of whether pushback is enabled.
	OnHit      func()
	OnHitLeft  func()
	OnHitRight func()
	OnHitAbove func()
	OnHitBelow func()
}

// FullPushback returns a config that resolves contacts on all four sides
// with no bounce velocity.
func FullPushback() PushbackConfig {
	return PushbackConfig{PushLeft: true, PushRight: true, PushUp: true, PushDown: true}
}

// DetectOnly returns a config that classifies contact direction and
// fires callbacks without moving the pushed body.
func DetectOnly() PushbackConfig {
	return PushbackConfig{}
}

// Lander is implemented by entities whose behavioral state must switch
// to grounded when they land on top of a reference body. The resolver
// queries this capability instead of inspecting concrete types.
type Lander interface {
	Land()
}

// Pushback resolves the overlap between a stationary reference body and
// a moving entity. The dominant contact side is the smallest of the four
// overlap magnitudes, gated by the mover's velocity sign: a side only
// resolves when the mover is actually travelling into it. If the sign
// does not match, the pair stays unresolved this tick.
func Pushback(ref *Body, other Entity, cfg PushbackConfig) {
	b := other.Body()
	if !b.Alive {
		return
	}

	pushX := cfg.PushLeft || cfg.PushRight
	pushY := cfg.PushUp || cfg.PushDown

	leftOverlap := (b.X + b.W) - ref.X
	rightOverlap := (ref.X + ref.W) - b.X
	topOverlap := (b.Y + b.H) - ref.Y
	bottomOverlap := (ref.Y + ref.H) - b.Y

	minOverlap := min(leftOverlap, rightOverlap, topOverlap, bottomOverlap)

	applyHorz := func() {
		if cfg.PushLeft && b.DX > 0 {
			b.DX = -cfg.Horizontal
		} else if cfg.PushRight && b.DX < 0 {
			b.DX = cfg.Horizontal
		}
	}
	applyVert := func() {
		if cfg.PushUp && b.DY > 0 {
			// Falling onto the reference, bounce up
			b.DY = -cfg.Vertical
		} else if cfg.PushDown && b.DY < 0 {
			// Rising into the reference, bounce down
			b.DY = cfg.Vertical
		}
	}

	hit := false
	switch {
	case minOverlap == leftOverlap && b.DX > 0:
		// Mover ran into the reference's left side
		if pushX {
			b.X = ref.X - b.W
			applyHorz()
		}
		if cfg.OnHitRight != nil {
			cfg.OnHitRight()
		}
		hit = true

	case minOverlap == rightOverlap && b.DX < 0:
		if pushX {
			b.X = ref.X + ref.W
			applyHorz()
		}
		if cfg.OnHitLeft != nil {
			cfg.OnHitLeft()
		}
		hit = true

	case minOverlap == bottomOverlap && b.DY < 0:
		// Mover rising into the reference from below
		if pushY {
			b.Y = ref.Y + ref.H
			applyVert()
		}
		if cfg.OnHitBelow != nil {
			cfg.OnHitBelow()
		}
		hit = true

	case minOverlap == topOverlap && b.DY > 0:
		// Mover landing on the reference from above
		if pushY {
			b.Y = ref.Y - b.H
			applyVert()
			if l, ok := other.(Lander); ok {
				l.Land()
			}
		}
		if cfg.OnHitAbove != nil {
			cfg.OnHitAbove()
		}
		hit = true
	}

	if hit && cfg.OnHit != nil {
		cfg.OnHit()
	}
}
