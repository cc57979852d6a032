// Package config loads game configuration: physics and entity tunables
// from JSON, stage layouts from YAML. All reads go through fs.FS so
// both embedded and on-disk config trees work.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration using the fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a config loader from an fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads a stage YAML file from stages/<name>.yaml
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: tileSize must be positive", name)
	}
	if len(cfg.Rows) == 0 {
		return nil, fmt.Errorf("stage %s: no rows", name)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}
