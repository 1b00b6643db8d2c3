package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultGameConfig returns the hardcoded default configuration, used as the
// final fallback when no config file is present and the embedded YAML fails
// to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 15,
		},
		Snake: SnakeConfig{
			InitialLength: 3,
		},
		Timed: TimedConfig{
			TimeLimitSeconds: 30,
		},
		Pace: PaceConfig{
			MovesPerSecond: 10,
		},
	}
}
