package entity

// Body holds the position, size, velocity and liveness shared by every
// world object. Coordinates are continuous world units; velocity is in
// units per tick. Concrete kinds embed a Body (via Base) and attach
// behavior on top instead of forming an inheritance chain.
type Body struct {
	X, Y   float64
	W, H   float64
	DX, DY float64

	FacingRight bool
	Alive       bool
	Active      bool

	// Colliding tracks contact across ticks so that the end of a
	// contact can be reported exactly once.
	Colliding bool
}

// NewBody returns a live, active body at the given position
func NewBody(x, y, w, h float64) Body {
	return Body{
		X:           x,
		Y:           y,
		W:           w,
		H:           h,
		FacingRight: true,
		Alive:       true,
		Active:      true,
	}
}
