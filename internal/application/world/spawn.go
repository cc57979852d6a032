package world

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/plumber/internal/domain/entity"
	"github.com/younwookim/plumber/internal/infrastructure/config"
)

// SpawnDeps bundles the collaborators marker-spawned entities need
type SpawnDeps struct {
	Grid     entity.Grid
	Stats    *Stats
	Bounds   entity.Bounds
	World    config.WorldConfig
	Entities *config.EntitiesConfig
	Rng      *rand.Rand
}

// markerKinds is the set of marker kinds Populate knows how to spawn.
// LoadStage checks stage files against it so a typo in a marker map
// fails at load time instead of mid-session.
var markerKinds = map[string]bool{
	"coin":            true,
	"shroom":          true,
	"turtle":          true,
	"piranha":         true,
	"fireball":        true,
	"flamering":       true,
	"flameringblock":  true,
	"movingplatform":  true,
	"fallingplatform": true,
	"breakblock":      true,
}

// Populate instantiates every stage marker into the registry.
// Lethal contacts go into the hazard collection, pushback/carry props
// into the prop collection, matching the tick phases they depend on.
func Populate(reg *Registry, markers []Marker, deps SpawnDeps) error {
	ts := float64(deps.World.TileSize)
	killBelow := deps.Bounds.Bottom + float64(deps.World.TileSize)

	walkerCfg := func(corpse entity.Look) entity.WalkerConfig {
		return entity.WalkerConfig{
			Speed:            deps.Entities.Walker.Speed,
			Gravity:          deps.World.Gravity,
			TerminalVelocity: deps.World.TerminalVelocity,
			Score:            deps.Entities.Walker.Score,
			Corpse:           corpse,
			KillBelow:        killBelow,
		}
	}

	for _, m := range markers {
		x := float64(m.TX) * ts
		y := float64(m.TY) * ts

		switch m.Kind {
		case "coin":
			reg.AddHazard(entity.NewCoin(x, y, ts, ts, reg, deps.Stats.AddCoin, deps.Rng))

		case "shroom", "turtle":
			dir := float64(deps.Rng.Intn(2)*2 - 1)
			reg.AddHazard(entity.NewWalker(x, y, ts, ts, dir, walkerCfg(entity.LookCorpse), deps.Grid, reg, deps.Stats.AddScore))

		case "piranha":
			reg.AddHazard(entity.NewPiranhaPlant(x, y, ts, ts))

		case "fireball":
			reg.AddHazard(entity.NewFireball(x, y, ts, ts,
				deps.Entities.Fireball.Speed,
				deps.Entities.Fireball.CeilingTiles*ts))

		case "flamering", "flameringblock":
			var ring *entity.FlameRing
			if m.Kind == "flameringblock" {
				block := entity.NewFlameRingBlock(x, y, ts, ts,
					deps.Entities.FlameRing.RotationSpeed, ts, deps.Entities.FlameRing.Count)
				reg.AddProp(block)
				ring = &block.FlameRing
			} else {
				ring = entity.NewFlameRing(x, y, ts, ts,
					deps.Entities.FlameRing.RotationSpeed, ts, deps.Entities.FlameRing.Count)
				reg.AddProp(ring)
			}
			for _, flame := range ring.Flames() {
				reg.AddHazard(flame)
			}

		case "movingplatform":
			reg.AddProp(entity.NewMovingPlatform(x, y,
				deps.Entities.MovingPlatform.WidthTiles*ts, ts,
				deps.Entities.MovingPlatform.Speed,
				deps.Entities.MovingPlatform.DistanceTiles*ts))

		case "fallingplatform":
			reg.AddProp(entity.NewFallingPlatform(x, y, ts, ts, entity.FallingPlatformConfig{
				FallDelayTicks:   deps.Entities.FallingPlatform.FallDelayTicks,
				JiggleAmount:     deps.Entities.FallingPlatform.JiggleAmount,
				Gravity:          deps.World.Gravity,
				TerminalVelocity: deps.World.TerminalVelocity,
				KillBelow:        killBelow,
			}, reg))

		case "breakblock":
			hp := deps.Entities.BreakBlock.MinHP
			if deps.Entities.BreakBlock.MaxHP > hp {
				hp += deps.Rng.Intn(deps.Entities.BreakBlock.MaxHP - hp + 1)
			}
			reg.AddProp(entity.NewBreakBlock(x, y, ts, ts, entity.BreakBlockConfig{
				HP:               hp,
				Gravity:          deps.World.Gravity,
				TerminalVelocity: deps.World.TerminalVelocity,
				KillBelow:        killBelow,
			}, reg, deps.Rng))

		default:
			return fmt.Errorf("unknown marker kind %q at tile (%d,%d)", m.Kind, m.TX, m.TY)
		}
	}
	return nil
}
