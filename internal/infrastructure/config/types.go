package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig  `json:"display"`
	World   WorldConfig    `json:"world"`
	Player  PlayerSettings `json:"player"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// WorldConfig holds gravity and the scroll limits. Border fields are
// in tiles; multiply by TileSize for world units.
type WorldConfig struct {
	TileSize           int     `json:"tileSize"`
	Gravity            float64 `json:"gravity"`
	TerminalVelocity   float64 `json:"terminalVelocity"`
	ScrollBorderXTiles int     `json:"scrollBorderXTiles"`
	ScrollBorderYTiles int     `json:"scrollBorderYTiles"`
	CeilingTiles       int     `json:"ceilingTiles"`
}

// PlayerSettings holds the player movement tunables
type PlayerSettings struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Speed      float64 `json:"speed"`
	Jump       float64 `json:"jump"`
	Momentum   float64 `json:"momentum"`
	ClimbSpeed float64 `json:"climbSpeed"`
	DeathTicks int     `json:"deathTicks"`
}
