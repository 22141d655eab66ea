// oi2048 is a terminal 2048 variant where multiplier tiles (×1, ×2, ×4)
// share the board with the usual powers of two.
//
// Usage:
//
//	oi2048 play              - Play in the terminal
//	oi2048 scores            - Show the best recorded games
//	oi2048 serve             - Start SSH server for remote play
//	oi2048 bench             - Benchmark the move engine
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.oi2048/results.db)
//	--config <path> - Path to a custom rules YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oi2048",
	Short: "oi2048 - 2048 with multiplier tiles, in your terminal",
	Long: `oi2048 is a 2048 variant played in the terminal. Besides the usual
number tiles, multiplier tiles (shown as ×1, ×2, ×4) spawn on the board.
Multipliers merge like numbers but subtract from your score, and they
never merge with number tiles, so they clog the board until you pair
them off.

Available commands:
  play     - Play in the terminal
  scores   - Show the best recorded games
  serve    - Start SSH server for remote play
  bench    - Benchmark the move engine

Examples:
  oi2048 play
  oi2048 play --seed 42
  oi2048 scores
  oi2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.oi2048/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
}
