package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Walker          WalkerConfig          `json:"walker"`
	Fireball        FireballConfig        `json:"fireball"`
	FlameRing       FlameRingConfig       `json:"flameRing"`
	MovingPlatform  MovingPlatformConfig  `json:"movingPlatform"`
	FallingPlatform FallingPlatformConfig `json:"fallingPlatform"`
	BreakBlock      BreakBlockConfig      `json:"breakBlock"`
}

// WalkerConfig tunes the patrolling walkers (shrooms and turtles)
type WalkerConfig struct {
	Speed float64 `json:"speed"`
	Score int     `json:"score"`
}

// FireballConfig tunes the vertical oscillator hazard.
// CeilingTiles is the rise height above the spawn point, in tiles.
type FireballConfig struct {
	Speed        float64 `json:"speed"`
	CeilingTiles float64 `json:"ceilingTiles"`
}

// FlameRingConfig tunes the rotating flame chains
type FlameRingConfig struct {
	RotationSpeed float64 `json:"rotationSpeed"`
	Count         int     `json:"count"`
}

// MovingPlatformConfig tunes the carrying platforms.
// DistanceTiles is the one-way patrol distance, in tiles.
type MovingPlatformConfig struct {
	Speed         float64 `json:"speed"`
	DistanceTiles float64 `json:"distanceTiles"`
	WidthTiles    float64 `json:"widthTiles"`
}

// FallingPlatformConfig tunes the collapsing platforms
type FallingPlatformConfig struct {
	FallDelayTicks int     `json:"fallDelayTicks"`
	JiggleAmount   float64 `json:"jiggleAmount"`
}

// BreakBlockConfig tunes the smashable blocks. HP is rolled uniformly
// in [MinHP, MaxHP] per block.
type BreakBlockConfig struct {
	MinHP int `json:"minHp"`
	MaxHP int `json:"maxHp"`
}
