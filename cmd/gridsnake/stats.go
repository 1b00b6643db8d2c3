package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dkoval/gridsnake/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated statistics per mode",
	Long: `Display run counts, best, average and total scores for every mode
that has been played.

Examples:
  gridsnake stats
  gridsnake stats --db ./scores.db`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllModesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	modes := make([]string, 0, len(stats))
	for mode := range stats {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	fmt.Println("Statistics:")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %-7s  %s\n", "Mode", "Runs", "Best", "Average", "Total", "Last played")
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %-7s  %s\n", "----", "----", "----", "-------", "-----", "-----------")

	for _, mode := range modes {
		s := stats[mode]
		lastPlayed := "-"
		if !s.LastPlayed.IsZero() {
			lastPlayed = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-10s  %-6d  %-6d  %-8.1f  %-7d  %s\n",
			s.Mode, s.RunsCount, s.HighScore, s.AvgScore, s.TotalScore, lastPlayed)
	}
}
