package main

import (
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/plumber/internal/application/game"
	"github.com/younwookim/plumber/internal/application/replay"
	"github.com/younwookim/plumber/internal/application/scene/playing"
	"github.com/younwookim/plumber/internal/application/system"
	"github.com/younwookim/plumber/internal/application/world"
	"github.com/younwookim/plumber/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "demo", "Stage to load")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay input from file (e.g., -replay replay.json)")
	watchFlag := flag.String("watch", "", "Watch a config directory and hot-reload physics.json")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Input source and determinism: a replay pins the seed and stage it
	// was recorded with; a live session seeds from the clock.
	var src system.Source = system.Keyboard{}
	seed := time.Now().UnixNano()
	stageName := *stageFlag

	if *replayFlag != "" {
		data, err := replay.Load(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer := replay.NewReplayer(*data)
		src = replayer
		seed = replayer.Seed()
		if replayer.Stage() != "" {
			stageName = replayer.Stage()
		}
		log.Printf("Replaying %s: %d frames (seed: %d)", *replayFlag, replayer.TotalFrames(), seed)
	}

	// Load stage
	stageCfg, err := loader.LoadStage(stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}
	stage, markers, err := world.LoadStage(stageCfg)
	if err != nil {
		log.Fatalf("Failed to build stage: %v", err)
	}

	scene := playing.New(cfg, stageCfg, stage, markers, src, seed, *recordFlag)

	// Optional hot reload of physics tunables from an on-disk copy
	if *watchFlag != "" {
		watcher, err := config.NewWatcher(*watchFlag, scene.QueuePhysics)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *watchFlag, err)
		}
		defer watcher.Close()
		log.Printf("Watching %s for physics changes", *watchFlag)
	}

	g := game.New(scene, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Physics.Display.ScreenWidth*cfg.Physics.Display.Scale,
		cfg.Physics.Display.ScreenHeight*cfg.Physics.Display.Scale)
	ebiten.SetWindowTitle("Plumber")
	ebiten.SetTPS(cfg.Physics.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
