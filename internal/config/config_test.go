package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGameEmbeddedDefault(t *testing.T) {
	cfg, err := LoadGame("")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}

	def := DefaultGameConfig()
	if cfg.Grid != def.Grid {
		t.Errorf("Grid = %+v, expected %+v", cfg.Grid, def.Grid)
	}
	if cfg.Snake != def.Snake {
		t.Errorf("Snake = %+v, expected %+v", cfg.Snake, def.Snake)
	}
	if cfg.Timed != def.Timed {
		t.Errorf("Timed = %+v, expected %+v", cfg.Timed, def.Timed)
	}
	if cfg.Pace != def.Pace {
		t.Errorf("Pace = %+v, expected %+v", cfg.Pace, def.Pace)
	}
}

func TestLoadGameCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	content := []byte("grid:\n  width: 30\n  height: 20\ntimed:\n  time_limit_seconds: 60\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}

	if cfg.Grid.Width != 30 || cfg.Grid.Height != 20 {
		t.Errorf("Grid = %+v, expected 30x20", cfg.Grid)
	}
	if cfg.Timed.TimeLimitSeconds != 60 {
		t.Errorf("TimeLimitSeconds = %v, expected 60", cfg.Timed.TimeLimitSeconds)
	}
	// Omitted sections fall back to defaults via Normalize
	if cfg.Snake.InitialLength != 3 {
		t.Errorf("InitialLength = %d, expected default 3", cfg.Snake.InitialLength)
	}
	if cfg.Pace.MovesPerSecond != 10 {
		t.Errorf("MovesPerSecond = %d, expected default 10", cfg.Pace.MovesPerSecond)
	}
}

func TestLoadGameMissingCustomPathFails(t *testing.T) {
	if _, err := LoadGame(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadGame with a missing explicit path should fail")
	}
}

func TestNormalizeClampsBadValues(t *testing.T) {
	cfg := GameConfig{
		Grid:  GridConfig{Width: 0, Height: -5},
		Snake: SnakeConfig{InitialLength: 0},
		Timed: TimedConfig{TimeLimitSeconds: -1},
		Pace:  PaceConfig{MovesPerSecond: 0},
	}

	cfg.Normalize()

	def := DefaultGameConfig()
	if cfg != def {
		t.Errorf("Normalized config = %+v, expected defaults %+v", cfg, def)
	}
}
