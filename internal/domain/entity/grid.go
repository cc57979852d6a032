package entity

import "math"

// Grid is a collision view over a tile source: world coordinates go in,
// tile classification comes out. All checks are pure queries; callers
// undo the triggering movement, zero velocity or snap to tile bounds.
type Grid struct {
	Tiles    TileSource
	TileSize int
}

func (g Grid) tileIndex(v float64) int {
	// Floor division so slightly negative coordinates map to tile -1,
	// not tile 0.
	return int(math.Floor(v / float64(g.TileSize)))
}

// SolidAtWorld reports whether the tile under a world coordinate is solid
func (g Grid) SolidAtWorld(x, y float64) bool {
	return IsSolid(g.Tiles.TileAt(g.tileIndex(x), g.tileIndex(y)))
}

// LadderAtWorld reports whether the tile under a world coordinate is a ladder
func (g Grid) LadderAtWorld(x, y float64) bool {
	return IsLadder(g.Tiles.TileAt(g.tileIndex(x), g.tileIndex(y)))
}

// HorizontalHit samples the two leading-edge corners in the direction of
// horizontal motion and reports solid contact. dx == 0 never collides.
func (g Grid) HorizontalHit(x, y, dx, w, h float64) bool {
	if dx > 0 {
		return g.SolidAtWorld(x+w, y) || g.SolidAtWorld(x+w, y+h-1)
	}
	if dx < 0 {
		return g.SolidAtWorld(x, y) || g.SolidAtWorld(x, y+h-1)
	}
	return false
}

// VerticalHit samples the two leading-edge corners in the direction of
// vertical motion and reports solid contact. dy == 0 never collides.
func (g Grid) VerticalHit(x, y, dy, w, h float64) bool {
	if dy > 0 {
		return g.SolidAtWorld(x, y+h) || g.SolidAtWorld(x+w, y+h)
	}
	if dy < 0 {
		return g.SolidAtWorld(x, y) || g.SolidAtWorld(x+w, y)
	}
	return false
}

// LadderHit samples all four corners of the rectangle and reports
// whether any of them lies on a ladder tile.
func (g Grid) LadderHit(x, y, w, h float64) bool {
	return g.LadderAtWorld(x, y) ||
		g.LadderAtWorld(x+w, y) ||
		g.LadderAtWorld(x, y+h) ||
		g.LadderAtWorld(x+w, y+h)
}

// SnapToFloor returns the y position that rests a body of height h on
// top of the tile row it currently intersects while moving down.
func (g Grid) SnapToFloor(y, h float64) float64 {
	ts := float64(g.TileSize)
	return math.Floor((y+h)/ts)*ts - h
}

// SnapToCeiling returns the y position just below the tile row a body
// intersects while moving up.
func (g Grid) SnapToCeiling(y float64) float64 {
	ts := float64(g.TileSize)
	return (math.Floor(y/ts) + 1) * ts
}
