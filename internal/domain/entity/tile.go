package entity

// TileID identifies the content of one tile cell
type TileID int

const (
	TileEmpty TileID = iota
	TileGrass
	TileBrick
	TileChecker
	TileCera
	TileBlock
	TileGray
	TilePipeUpperLeft
	TilePipeUpperRight
	TilePipeLowerLeft
	TilePipeLowerRight
	TileLadder
	TileVine
)

var solidTiles = map[TileID]struct{}{
	TileGrass:          {},
	TileBrick:          {},
	TileChecker:        {},
	TileCera:           {},
	TileBlock:          {},
	TileGray:           {},
	TilePipeUpperLeft:  {},
	TilePipeUpperRight: {},
	TilePipeLowerLeft:  {},
	TilePipeLowerRight: {},
}

var ladderTiles = map[TileID]struct{}{
	TileLadder: {},
	TileVine:   {},
}

// IsSolid reports whether the tile blocks movement
func IsSolid(id TileID) bool {
	_, ok := solidTiles[id]
	return ok
}

// IsLadder reports whether the tile is climbable
func IsLadder(id TileID) bool {
	_, ok := ladderTiles[id]
	return ok
}

// TileSource provides tile content at integer tile coordinates.
// Implementations must tolerate out-of-range coordinates.
type TileSource interface {
	TileAt(tx, ty int) TileID
}

// Stage represents the current stage's tile data
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]TileID
	SpawnX   float64
	SpawnY   float64
}

// TileAt returns the tile at the given tile coordinates.
// Coordinates outside the grid read as empty; the world edge is
// reachable while scrolling and must not block or fail.
func (s *Stage) TileAt(tx, ty int) TileID {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return TileEmpty
	}
	return s.Tiles[ty][tx]
}

// Grid returns a collision view over this stage's tiles.
func (s *Stage) Grid() Grid {
	return Grid{Tiles: s, TileSize: s.TileSize}
}
