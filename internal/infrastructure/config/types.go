package config

// EngineConfig is the root config for engine.yaml
type EngineConfig struct {
	Display DisplayConfig `yaml:"display"`
	Loop    LoopConfig    `yaml:"loop"`
	Audio   AudioConfig   `yaml:"audio"`
}

type DisplayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
}

// LoopConfig configures frame pacing
type LoopConfig struct {
	// DesiredFrameRate in frames per second. Zero or negative runs unpaced.
	DesiredFrameRate float64 `yaml:"desiredFrameRate"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sampleRate"`
	BufferMs   int     `yaml:"bufferMs"`
	Volume     float64 `yaml:"volume"` // 0..1
}

// BattleshipConfig is the root config for battleship.yaml
type BattleshipConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Fleet   []ShipConfig  `yaml:"fleet"`
	Timings TimingsConfig `yaml:"timings"`
	Score   ScoreConfig   `yaml:"score"`
}

type BoardConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	TileSize  int     `yaml:"tileSize"`  // on-screen pixels per tile
	TileScale float64 `yaml:"tileScale"` // sprite scale from source frame to tile
}

type ShipConfig struct {
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
}

// TimingsConfig holds scene animation durations in milliseconds
type TimingsConfig struct {
	FadeMs        float64 `yaml:"fadeMs"`
	ButtonSlideMs float64 `yaml:"buttonSlideMs"`
	WaterFrameMs  float64 `yaml:"waterFrameMs"`
	LabelHoldMs   float64 `yaml:"labelHoldMs"`
	LabelRiseMs   float64 `yaml:"labelRiseMs"`
	ScoreCountMs  float64 `yaml:"scoreCountMs"`
}

// ScoreConfig maps a shot count to a percentage.
// PerfectShots scores 100%, MaxShots scores 0%.
type ScoreConfig struct {
	PerfectShots int `yaml:"perfectShots"`
	MaxShots     int `yaml:"maxShots"`
}
