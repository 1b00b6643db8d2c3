// Package config provides YAML-based game configuration loading for the
// snake platform.
package config

// GameConfig contains all tunable parameters for a snake session.
type GameConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Snake SnakeConfig `yaml:"snake"`
	Timed TimedConfig `yaml:"timed"`
	Pace  PaceConfig  `yaml:"pace"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the snake's starting parameters.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// TimedConfig defines the timed mode's budget.
type TimedConfig struct {
	TimeLimitSeconds float64 `yaml:"time_limit_seconds"`
}

// PaceConfig defines how fast the snake advances.
type PaceConfig struct {
	// MovesPerSecond is the base movement rate before the challenge mode's
	// speed multiplier is applied.
	MovesPerSecond int `yaml:"moves_per_second"`
}

// Normalize clamps nonsensical values back to their defaults so a partial
// or hand-edited config file cannot produce an unplayable session.
func (c *GameConfig) Normalize() {
	def := DefaultGameConfig()

	if c.Grid.Width < 4 {
		c.Grid.Width = def.Grid.Width
	}
	if c.Grid.Height < 4 {
		c.Grid.Height = def.Grid.Height
	}
	if c.Snake.InitialLength < 1 {
		c.Snake.InitialLength = def.Snake.InitialLength
	}
	if c.Timed.TimeLimitSeconds <= 0 {
		c.Timed.TimeLimitSeconds = def.Timed.TimeLimitSeconds
	}
	if c.Pace.MovesPerSecond < 1 {
		c.Pace.MovesPerSecond = def.Pace.MovesPerSecond
	}
}
