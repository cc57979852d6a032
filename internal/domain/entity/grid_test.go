package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_SolidAtWorld(t *testing.T) {
	g := createTestGrid([]string{
		"    ",
		" #  ",
	})

	assert.True(t, g.SolidAtWorld(8, 8), "top-left corner of the solid tile")
	assert.True(t, g.SolidAtWorld(15.9, 15.9), "interior of the solid tile")
	assert.False(t, g.SolidAtWorld(16, 8), "next column over")
	assert.False(t, g.SolidAtWorld(8, 0))
}

func TestGrid_NegativeCoordinatesMapOutside(t *testing.T) {
	g := createTestGrid([]string{"#"})

	// Floor division: -0.5 is tile -1, not tile 0
	assert.False(t, g.SolidAtWorld(-0.5, 0))
	assert.False(t, g.SolidAtWorld(0, -0.5))
	assert.True(t, g.SolidAtWorld(0, 0))
}

func TestGrid_VerticalHit(t *testing.T) {
	// Solid row at ty=3 (world y 24..31)
	g := createTestGrid([]string{
		"    ",
		"    ",
		"    ",
		"####",
	})

	// Body 8x8 at y=15 moving down: bottom edge 23 is still in row 2
	assert.False(t, g.VerticalHit(8, 15, 1, 8, 8))

	// After integrating to y=16 the bottom edge reaches row 3
	assert.True(t, g.VerticalHit(8, 16, 1, 8, 8))

	// Moving up samples the top corners instead
	assert.False(t, g.VerticalHit(8, 16, -1, 8, 8))

	// No motion never collides
	assert.False(t, g.VerticalHit(8, 24, 0, 8, 8))
}

func TestGrid_HorizontalHit(t *testing.T) {
	// Single solid tile at tx=2, ty=1 (world x 16..23, y 8..15)
	g := createTestGrid([]string{
		"    ",
		"  # ",
	})

	// Moving right with leading edge inside the tile column
	assert.True(t, g.HorizontalHit(10, 8, 1, 6, 8))

	// Leading edge short of the tile
	assert.False(t, g.HorizontalHit(9, 8, 1, 6, 8))

	// Moving left samples the trailing x instead
	assert.True(t, g.HorizontalHit(16, 8, -1, 6, 8))
	assert.False(t, g.HorizontalHit(24, 8, -1, 6, 8))

	assert.False(t, g.HorizontalHit(10, 8, 0, 6, 8))
}

func TestGrid_HorizontalHit_BottomCornerInset(t *testing.T) {
	// Solid tile at tx=2, ty=2 (world y 16..23). A body whose bottom
	// edge exactly touches the tile row must not register a horizontal
	// hit: the bottom sample is inset one unit (y+h-1).
	g := createTestGrid([]string{
		"    ",
		"    ",
		"  # ",
	})

	// Body at y=8, h=8: bottom edge at 16 touches the tile row, but
	// the sample at y+h-1=15 stays in row 1.
	assert.False(t, g.HorizontalHit(10, 8, 1, 6, 8))

	// One unit lower the bottom corner enters the tile row
	assert.True(t, g.HorizontalHit(10, 9, 1, 6, 8))
}

func TestGrid_LadderHit(t *testing.T) {
	g := createTestGrid([]string{
		"    ",
		"  L ",
	})

	assert.True(t, g.LadderHit(16, 8, 6, 8))
	assert.True(t, g.LadderHit(12, 4, 6, 8), "any corner on the ladder counts")
	assert.False(t, g.LadderHit(0, 0, 6, 8))
}

func TestGrid_SnapToFloor(t *testing.T) {
	g := createTestGrid([]string{"    "})

	// Body of height 8 intersecting the row below y=16 rests at y=16
	assert.Equal(t, 16.0, g.SnapToFloor(17.3, 8))
	assert.Equal(t, 16.0, g.SnapToFloor(16.0, 8))

	// Height that is not a tile multiple
	assert.Equal(t, 18.0, g.SnapToFloor(19.5, 6))
}

func TestGrid_SnapToCeiling(t *testing.T) {
	g := createTestGrid([]string{"    "})

	// Body intersecting the row above snaps just below it
	assert.Equal(t, 16.0, g.SnapToCeiling(15.2))
	assert.Equal(t, 8.0, g.SnapToCeiling(7.9))
}
