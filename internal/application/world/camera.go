package world

import (
	"math"

	"github.com/younwookim/plumber/internal/domain/entity"
)

// Camera is the single viewport tracker. It follows a target body with
// a fixed offset and clamps to the scrollable world; there is no
// smoothing, the position is recomputed fully every tick. The camera
// does not own its target.
type Camera struct {
	X, Y float64
	W, H float64

	OffX, OffY float64

	target *entity.Body
	bounds entity.Bounds
}

// NewCamera creates a camera centered on its future target
func NewCamera(w, h float64, bounds entity.Bounds) *Camera {
	return &Camera{
		W:      w,
		H:      h,
		OffX:   -w / 2,
		OffY:   -h / 2,
		bounds: bounds,
	}
}

// SetTarget points the camera at a body; nil detaches it
func (c *Camera) SetTarget(b *entity.Body) {
	c.target = b
}

// Update re-centers on the target unless it presses a scroll limit.
// Vertical tracking never scrolls above the world origin.
func (c *Camera) Update() {
	if c.target == nil {
		return
	}
	c.X = c.target.X + c.OffX
	c.X = math.Min(c.bounds.Right-c.W, math.Max(0, c.X))
	c.Y = c.target.Y + c.OffY
	c.Y = math.Min(c.bounds.Bottom-c.H, math.Max(0, c.Y))
}
