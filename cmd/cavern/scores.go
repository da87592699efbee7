package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cavern-arcade/cavern/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show saved high scores",
	Long: `Display the top 10 saved runs.

Examples:
  cavern scores
  cavern scores --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns("cavern", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Cavern")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cavern play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %s\n", "Rank", "Score", "Level", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %s\n", "----", "-----", "-----", "----------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-10s  %s\n", i+1, entry.Score, entry.Level, entry.Difficulty, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.GetGameStats("cavern"); statsErr == nil && stats.RunCount > 0 {
		fmt.Printf("Best: %d over %d runs (avg %.0f, deepest level %d)\n",
			stats.HighScore, stats.RunCount, stats.AvgScore, stats.BestLevel)
	}
}
