package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/oi2048/internal/config"
	"github.com/vovakirdan/oi2048/internal/engine"
	"github.com/vovakirdan/oi2048/internal/storage"
	"github.com/vovakirdan/oi2048/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/hjkl/wasd - Move tiles
  R                - Restart
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  oi2048 play
  oi2048 play --seed 42
  oi2048 play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// loadRules resolves the game rules from the config search path.
func loadRules() (engine.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return engine.Config{}, err
	}
	return cfg.Rules()
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: oi2048 play needs an interactive terminal")
		os.Exit(1)
	}

	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(flagSeed, rules, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
