// Package playing provides the main gameplay scene: it owns the
// session (player, camera, registry, stats), drives the world tick and
// rebuilds everything when the player's liveness flag drops.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/plumber/internal/application/replay"
	"github.com/younwookim/plumber/internal/application/scene"
	"github.com/younwookim/plumber/internal/application/state"
	"github.com/younwookim/plumber/internal/application/system"
	"github.com/younwookim/plumber/internal/application/world"
	"github.com/younwookim/plumber/internal/domain/entity"
	"github.com/younwookim/plumber/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{92, 148, 252, 255}
	colorSolid    = color.RGBA{150, 90, 40, 255}
	colorLadder   = color.RGBA{40, 160, 60, 255}
	colorPlayer   = color.RGBA{216, 40, 0, 255}
	colorHazard   = color.RGBA{0, 168, 0, 255}
	colorCoin     = color.RGBA{255, 215, 0, 255}
	colorFlame    = color.RGBA{255, 120, 30, 255}
	colorPlatform = color.RGBA{200, 76, 12, 255}
	colorEffect   = color.RGBA{252, 252, 252, 200}
)

// Playing is the main gameplay scene
type Playing struct {
	cfg      *config.GameConfig
	stageCfg *config.StageConfig
	stage    *entity.Stage
	markers  []world.Marker
	grid     entity.Grid
	bounds   entity.Bounds

	phase    state.Phase
	registry *world.Registry
	stats    *world.Stats
	player   *entity.Player
	camera   *world.Camera

	sampler *system.Sampler

	screenW  int
	screenH  int
	tileSize int

	// Deterministic RNG
	rng  *rand.Rand
	seed int64

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	// Physics reloads queued by the config watcher; applied between
	// ticks, effective from the next session reset.
	pendingPhysics chan *config.PhysicsConfig
}

// New creates a new Playing scene. src is the input source (keyboard
// or a replayer). If recordPath is not empty, input is recorded.
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, stage *entity.Stage, markers []world.Marker, src system.Source, seed int64, recordPath string) *Playing {
	p := &Playing{
		cfg:            cfg,
		stageCfg:       stageCfg,
		stage:          stage,
		markers:        markers,
		grid:           stage.Grid(),
		bounds:         world.BoundsOf(cfg.Physics.World),
		phase:          state.PhasePlaying,
		sampler:        system.NewSampler(src),
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		tileSize:       stage.TileSize,
		rng:            rand.New(rand.NewSource(seed)),
		seed:           seed,
		recordFilename: recordPath,
		pendingPhysics: make(chan *config.PhysicsConfig, 1),
	}

	p.camera = world.NewCamera(float64(p.screenW), float64(p.screenH), p.bounds)

	if recordPath != "" {
		p.recorder = replay.NewRecorder(seed, stageCfg.Name)
		log.Printf("Recording enabled: %s (seed: %d)", recordPath, seed)
	}

	return p
}

// OnEnter builds the first session
func (p *Playing) OnEnter() {
	p.reset()
}

// OnExit saves any active recording
func (p *Playing) OnExit() {
	p.saveRecording()
}

// QueuePhysics hands a freshly reloaded physics config to the scene.
// Safe to call from the watcher goroutine; the scene drains it between
// ticks.
func (p *Playing) QueuePhysics(cfg *config.PhysicsConfig) {
	select {
	case p.pendingPhysics <- cfg:
	default:
	}
}

// reset rebuilds the session: fresh player, cleared registry,
// re-spawned stage content. The camera survives and retargets.
func (p *Playing) reset() {
	p.registry = world.NewRegistry()
	p.stats = &world.Stats{}

	pcfg := p.cfg.Physics.Player
	wcfg := p.cfg.Physics.World
	p.player = entity.NewPlayer(p.stage.SpawnX, p.stage.SpawnY, entity.PlayerConfig{
		Width:            pcfg.Width,
		Height:           pcfg.Height,
		Speed:            pcfg.Speed,
		Jump:             pcfg.Jump,
		Momentum:         pcfg.Momentum,
		ClimbSpeed:       pcfg.ClimbSpeed,
		Gravity:          wcfg.Gravity,
		TerminalVelocity: wcfg.TerminalVelocity,
		DeathTicks:       pcfg.DeathTicks,
	}, p.sampler, p.grid, p.registry, p.bounds)
	p.camera.SetTarget(p.player.Body())

	if err := world.Populate(p.registry, p.markers, world.SpawnDeps{
		Grid:     p.grid,
		Stats:    p.stats,
		Bounds:   p.bounds,
		World:    wcfg,
		Entities: p.cfg.Entities,
		Rng:      p.rng,
	}); err != nil {
		// Markers were validated when the stage loaded; an unknown
		// kind here is a programming error.
		panic(err)
	}
}

// Update advances the session one tick
func (p *Playing) Update() (scene.Scene, error) {
	select {
	case cfg := <-p.pendingPhysics:
		p.cfg.Physics = cfg
		p.bounds = world.BoundsOf(cfg.World)
		log.Printf("physics config reloaded; applies on next reset")
	default:
	}

	switch p.phase {
	case state.PhasePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.phase = state.PhasePlaying
		}
		return nil, nil
	case state.PhasePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.phase = state.PhasePaused
			return nil, nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.sampler.Tick()
	if p.recorder != nil {
		p.recorder.Record(p.sampler.Current())
	}

	p.registry.Tick(p.player, p.camera)

	if !p.player.Body().Alive {
		p.reset()
	}

	return nil, nil
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the session
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX := p.camera.X
	camY := p.camera.Y

	p.drawTiles(screen, camX, camY)
	p.drawProps(screen, camX, camY)
	p.drawHazards(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawEffects(screen, camX, camY)
	p.drawHUD(screen)

	if p.phase == state.PhasePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	ts := p.tileSize
	startTX := int(camX) / ts
	startTY := int(camY) / ts
	endTX := (int(camX)+p.screenW)/ts + 1
	endTY := (int(camY)+p.screenH)/ts + 1

	for ty := startTY; ty <= endTY && ty < p.stage.Height; ty++ {
		for tx := startTX; tx <= endTX && tx < p.stage.Width; tx++ {
			if tx < 0 || ty < 0 {
				continue
			}
			id := p.stage.TileAt(tx, ty)

			var c color.Color
			switch {
			case entity.IsSolid(id):
				c = colorSolid
			case entity.IsLadder(id):
				c = colorLadder
			default:
				continue
			}

			x := float64(tx*ts) - camX
			y := float64(ty*ts) - camY
			ebitenutil.DrawRect(screen, x, y, float64(ts), float64(ts), c)
		}
	}
}

func (p *Playing) drawProps(screen *ebiten.Image, camX, camY float64) {
	for _, e := range p.registry.Props() {
		b := e.Body()
		x := b.X - camX
		y := b.Y - camY

		switch prop := e.(type) {
		case *entity.FallingPlatform:
			ebitenutil.DrawRect(screen, x, y+prop.YOffset(), b.W, b.H, colorPlatform)
		case *entity.BreakBlock:
			ebitenutil.DrawRect(screen, x, y-prop.HitOffset()*2, b.W, b.H, colorPlatform)
		default:
			// Flame ring pivots land here too; their flames render from
			// the hazard collection.
			ebitenutil.DrawRect(screen, x, y, b.W, b.H, colorPlatform)
		}
	}
}

func (p *Playing) drawHazards(screen *ebiten.Image, camX, camY float64) {
	for _, e := range p.registry.Hazards() {
		b := e.Body()
		x := b.X - camX
		y := b.Y - camY

		var c color.Color
		switch e.(type) {
		case *entity.Coin:
			c = colorCoin
		case *entity.Fireball, *entity.SpinnerFlame:
			c = colorFlame
		default:
			c = colorHazard
		}
		ebitenutil.DrawRect(screen, x, y, b.W, b.H, c)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	if p.player.State() == entity.StateDead {
		// The death effect carries the visual from here.
		return
	}
	b := p.player.Body()
	ebitenutil.DrawRect(screen, b.X-camX, b.Y-camY, b.W, b.H, colorPlayer)
}

func (p *Playing) drawEffects(screen *ebiten.Image, camX, camY float64) {
	for _, e := range p.registry.Effects() {
		b := e.Body()
		ebitenutil.DrawRect(screen, b.X-camX, b.Y-camY, b.W, b.H, colorEffect)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("COINS: %d", p.stats.Coins), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE: %d", p.stats.Score), 8, 20)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
}
