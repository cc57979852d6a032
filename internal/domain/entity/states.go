package entity

import "math"

// groundState runs while the player stands on solid tiles.
// Exit conditions: jump input, loss of ground contact, ladder overlap.
type groundState struct {
	p *Player
}

func (s *groundState) OnEnter() {}
func (s *groundState) OnExit()  {}

func (s *groundState) Update() {
	p := s.p
	b := &p.body

	// Rather than stopping immediately, bleed momentum off. The
	// truncation makes slow drifts settle to a full stop.
	b.DX = math.Trunc(b.DX * p.cfg.Momentum)

	if p.input.Left() && b.X > 0 {
		b.DX = -p.cfg.Speed
		b.FacingRight = false
	} else if p.input.Right() && b.X < p.bounds.Right {
		b.DX = p.cfg.Speed
		b.FacingRight = true
	}

	// Horizontal movement
	b.X += b.DX
	if p.grid.HorizontalHit(b.X, b.Y, b.DX, b.W, b.H) {
		b.X -= b.DX
		b.DX = 0
	}

	// Vertical movement
	b.DY = math.Min(b.DY+p.cfg.Gravity, p.cfg.TerminalVelocity)

	if p.input.Jump() {
		b.DY = -p.cfg.Jump
		p.machine.MustSet(StateAir)
	}

	b.Y += b.DY

	if p.grid.VerticalHit(b.X, b.Y, b.DY, b.W, b.H) {
		if b.DY > 0 {
			// Landed, snap to the top of the tile
			b.Y = p.grid.SnapToFloor(b.Y, b.H)
		} else {
			// Hit a ceiling, snap to the bottom of the tile
			b.Y = p.grid.SnapToCeiling(b.Y)
		}
		b.DY = 0
	} else {
		p.machine.MustSet(StateAir)
	}

	if p.grid.LadderHit(b.X, b.Y, b.W, b.H) {
		p.machine.MustSet(StateClimb)
	}

	p.checkWorldBounds()
}

// airState runs while the player is airborne. Identical integration to
// ground without the jump re-trigger; landing transitions back.
type airState struct {
	p *Player
}

func (s *airState) OnEnter() {}
func (s *airState) OnExit()  {}

func (s *airState) Update() {
	p := s.p
	b := &p.body

	b.DX = math.Trunc(b.DX * p.cfg.Momentum)

	if p.input.Left() && b.X > 0 {
		b.DX = -p.cfg.Speed
		b.FacingRight = false
	} else if p.input.Right() && b.X < p.bounds.Right {
		b.DX = p.cfg.Speed
		b.FacingRight = true
	}

	b.X += b.DX
	if p.grid.HorizontalHit(b.X, b.Y, b.DX, b.W, b.H) {
		b.X -= b.DX
		b.DX = 0
	}

	b.DY = math.Min(b.DY+p.cfg.Gravity, p.cfg.TerminalVelocity)
	b.Y += b.DY

	if p.grid.VerticalHit(b.X, b.Y, b.DY, b.W, b.H) {
		if b.DY > 0 {
			// Falling and landed on something
			p.machine.MustSet(StateGround)
			b.Y = p.grid.SnapToFloor(b.Y, b.H)
		} else {
			b.Y = p.grid.SnapToCeiling(b.Y)
		}
		b.DY = 0
	}

	if p.grid.LadderHit(b.X, b.Y, b.W, b.H) {
		p.machine.MustSet(StateClimb)
	}

	p.checkWorldBounds()
}

// climbState runs while the player overlaps a ladder. Gravity is
// suspended; movement is discrete at climb speed.
type climbState struct {
	p *Player
}

func (s *climbState) OnEnter() {}
func (s *climbState) OnExit()  {}

func (s *climbState) Update() {
	p := s.p
	b := &p.body

	b.DX = 0
	if p.input.Left() {
		b.DX = -p.cfg.ClimbSpeed / 2
		b.FacingRight = !b.FacingRight
	} else if p.input.Right() {
		b.DX = p.cfg.ClimbSpeed / 2
		b.FacingRight = !b.FacingRight
	}

	b.X += b.DX
	if p.grid.HorizontalHit(b.X, b.Y, b.DX, b.W, b.H) {
		b.X -= b.DX
		b.DX = 0
	}

	if p.input.Up() {
		b.Y -= p.cfg.ClimbSpeed
		b.FacingRight = !b.FacingRight
	} else if p.input.Down() {
		b.Y += p.cfg.ClimbSpeed
		b.FacingRight = !b.FacingRight
	}

	if !p.grid.LadderHit(b.X, b.Y, b.W, b.H) {
		p.machine.MustSet(StateAir)
	}

	p.checkWorldBounds()
}

// deadState is terminal: it counts down, then clears the liveness flag
// so the session resets the world. The entity is recycled externally.
type deadState struct {
	p         *Player
	countdown int
}

func (s *deadState) OnEnter() {
	p := s.p
	b := &p.body
	s.countdown = p.cfg.DeathTicks
	b.DX = 0
	b.DY = 0
	p.effects.SpawnEffect(NewEffect(b.X, b.Y, b.W, b.H, EffectConfig{
		Look:         LookDeadHero,
		DY:           -3,
		FeelsGravity: true,
		Gravity:      p.cfg.Gravity,
		Terminal:     p.cfg.TerminalVelocity,
		Lifespan:     p.cfg.DeathTicks,
		FlipVertical: true,
		KillBelow:    p.bounds.Bottom + b.H,
	}))
}

func (s *deadState) OnExit() {}

func (s *deadState) Update() {
	s.countdown--
	if s.countdown <= 0 {
		s.p.body.Alive = false
	}
}
