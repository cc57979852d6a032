package config

// StageConfig is the root config for stage YAML files. The collision
// layer is rows of characters; the legend maps characters to tile
// names, the marker map maps characters to entity spawn kinds. A
// character appears in at most one of the two maps.
type StageConfig struct {
	Name     string            `yaml:"name"`
	TileSize int               `yaml:"tileSize"`
	Spawn    TilePos           `yaml:"spawn"`
	Legend   map[string]string `yaml:"legend"`
	Markers  map[string]string `yaml:"markers"`
	Rows     []string          `yaml:"rows"`
}

// TilePos is a position in tile coordinates
type TilePos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}
