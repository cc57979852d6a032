package world

import (
	"fmt"

	"github.com/younwookim/plumber/internal/domain/entity"
	"github.com/younwookim/plumber/internal/infrastructure/config"
)

// Marker is an entity spawn point read from the stage's marker layer
type Marker struct {
	Kind string
	TX   int
	TY   int
}

var tileNames = map[string]entity.TileID{
	"empty":   entity.TileEmpty,
	"grass":   entity.TileGrass,
	"brick":   entity.TileBrick,
	"checker": entity.TileChecker,
	"cera":    entity.TileCera,
	"block":   entity.TileBlock,
	"gray":    entity.TileGray,
	"pipe-ul": entity.TilePipeUpperLeft,
	"pipe-ur": entity.TilePipeUpperRight,
	"pipe-ll": entity.TilePipeLowerLeft,
	"pipe-lr": entity.TilePipeLowerRight,
	"ladder":  entity.TileLadder,
	"vine":    entity.TileVine,
}

// LoadStage converts a StageConfig into the tile grid plus the entity
// spawn markers found in the rows. Characters missing from both the
// legend and the marker map read as empty tiles; an unknown tile NAME
// in the legend or an unknown marker KIND in the marker map is a
// configuration error and fails immediately.
func LoadStage(cfg *config.StageConfig) (*entity.Stage, []Marker, error) {
	width := 0
	for _, row := range cfg.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	height := len(cfg.Rows)

	tiles := make([][]entity.TileID, height)
	var markers []Marker
	for y, row := range cfg.Rows {
		tiles[y] = make([]entity.TileID, width)
		for x, ch := range row {
			charStr := string(ch)
			if name, ok := cfg.Legend[charStr]; ok {
				id, known := tileNames[name]
				if !known {
					return nil, nil, fmt.Errorf("stage %s: unknown tile name %q", cfg.Name, name)
				}
				tiles[y][x] = id
				continue
			}
			if kind, ok := cfg.Markers[charStr]; ok {
				if !markerKinds[kind] {
					return nil, nil, fmt.Errorf("stage %s: unknown marker kind %q for %q", cfg.Name, kind, charStr)
				}
				markers = append(markers, Marker{Kind: kind, TX: x, TY: y})
			}
		}
	}

	ts := float64(cfg.TileSize)
	return &entity.Stage{
		Width:    width,
		Height:   height,
		TileSize: cfg.TileSize,
		Tiles:    tiles,
		SpawnX:   float64(cfg.Spawn.X) * ts,
		SpawnY:   float64(cfg.Spawn.Y) * ts,
	}, markers, nil
}

// BoundsOf derives the world scroll limits from the world config
func BoundsOf(w config.WorldConfig) entity.Bounds {
	ts := float64(w.TileSize)
	return entity.Bounds{
		Right:   float64(w.ScrollBorderXTiles) * ts,
		Bottom:  float64(w.ScrollBorderYTiles) * ts,
		Ceiling: float64(w.CeilingTiles) * ts,
	}
}
