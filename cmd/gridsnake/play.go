package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoval/gridsnake/internal/core"
	"github.com/dkoval/gridsnake/internal/games/snake"
	"github.com/dkoval/gridsnake/internal/platform/tui"
	"github.com/dkoval/gridsnake/internal/registry"
	"github.com/dkoval/gridsnake/internal/storage"
)

var (
	flagConfig    string
	flagGrid      string
	flagTimeLimit float64
	flagLength    int
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD/HJKL - Steer the snake
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  gridsnake play classic
  gridsnake play timed --seed 42 --time-limit 60
  gridsnake play challenge --grid 30x20 --length 5
  gridsnake play classic --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagGrid, "grid", "", "Grid size as WxH (e.g. 30x20)")
	playCmd.Flags().Float64Var(&flagTimeLimit, "time-limit", 0, "Timed mode budget in seconds")
	playCmd.Flags().IntVar(&flagLength, "length", 0, "Initial snake length")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'gridsnake list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and overrides before game creation
	snake.SetConfigPath(flagConfig)
	if flagGrid != "" {
		var w, h int
		if _, err := fmt.Sscanf(flagGrid, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid --grid %q, expected WxH (e.g. 30x20)\n", flagGrid)
			os.Exit(1)
		}
		snake.SetGridSize(w, h)
	}
	if flagTimeLimit > 0 {
		snake.SetTimeLimit(flagTimeLimit)
	}
	if flagLength > 0 {
		snake.SetInitialLength(flagLength)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "err", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
