// gridsnake is a terminal snake arcade with three rule variants.
//
// Usage:
//
//	gridsnake list               - List available modes
//	gridsnake play <mode>        - Play a mode
//	gridsnake menu               - Start menu to pick modes interactively
//	gridsnake scores <mode>      - Show high scores for a mode
//	gridsnake stats              - Show aggregated statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.gridsnake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/dkoval/gridsnake/internal/games/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Gridsnake - Play snake in your terminal",
	Long: `Gridsnake is a terminal snake game with three rule variants:
classic (wrapping walls), timed (beat the clock for bonus points) and
challenge (solid walls, growing obstacles, increasing speed).

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  scores   - View high scores
  stats    - View aggregated statistics

Examples:
  gridsnake list
  gridsnake play classic
  gridsnake menu
  gridsnake scores challenge`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridsnake/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
