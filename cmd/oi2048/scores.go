package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oi2048/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded games",
	Long: `Display the top 10 recorded games and overall statistics.

Examples:
  oi2048 scores
  oi2048 scores --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'oi2048 play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-4s  %s\n", "Rank", "Score", "Max Tile", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-4s  %s\n", "----", "-----", "--------", "-----", "---", "----")

	for i, entry := range results {
		won := ""
		if entry.Won {
			won = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-6d  %-4s  %s\n",
			i+1, entry.Score, entry.MaxTile, entry.Moves, won, dateStr)
	}

	stats, err := store.GetStats()
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Best tile: %d  Avg score: %.1f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.BestTile, stats.AvgScore)
}
