package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/oi2048/internal/engine"
)

var (
	flagBenchSteps int
	flagInitTrials int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the move engine",
	Long: `Run the move engine in a tight loop and report the throughput.

The step benchmark replays random moves against a fixed warm board, so it
measures validation, sliding, spawning and status evaluation together.
The init sweep repeatedly creates fresh boards and verifies each one
holds exactly two spawned tiles.

Examples:
  oi2048 bench
  oi2048 bench --steps 5000000
  oi2048 bench --init-trials 1000000`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchSteps, "steps", 1_000_000, "Number of Step calls to benchmark")
	benchCmd.Flags().IntVar(&flagInitTrials, "init-trials", 0, "Also run N board-init trials (0 = skip)")
}

func runBench(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "oi2048-bench",
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	eng := engine.New(rng, engine.DefaultConfig())

	logger.Info("benchmarking Step", "steps", flagBenchSteps, "seed", seed)

	// Warm board with a bit of everything on it
	board, err := engine.BoardFromFlat([]int{
		2, 0, 0, -1,
		0, 4, 0, 0,
		0, 0, -2, 0,
		16, 0, 0, 8,
	})
	if err != nil {
		logger.Fatal("bad warm board", "error", err)
	}

	start := time.Now()
	for i := 0; i < flagBenchSteps; i++ {
		next, _, status, stepErr := eng.Step(board, rng.Intn(4))
		if stepErr != nil {
			logger.Fatal("step failed", "error", stepErr)
		}
		// Restart from the warm board when a game runs out
		if status == engine.StatusOngoing {
			board = next
		} else {
			board, _ = engine.BoardFromFlat([]int{
				2, 0, 0, -1,
				0, 4, 0, 0,
				0, 0, -2, 0,
				16, 0, 0, 8,
			})
		}
	}
	elapsed := time.Since(start)

	perSec := float64(flagBenchSteps) / elapsed.Seconds()
	logger.Info("done",
		"elapsed", elapsed.Round(time.Millisecond),
		"steps_per_sec", fmt.Sprintf("%.0f", perSec),
	)

	if flagInitTrials > 0 {
		runInitSweep(logger, eng, flagInitTrials)
	}
}

// runInitSweep verifies the two-tile init invariant over many boards.
func runInitSweep(logger *log.Logger, eng *engine.Engine, trials int) {
	logger.Info("running init sweep", "trials", trials)

	start := time.Now()
	for i := 0; i < trials; i++ {
		board := eng.Init()
		if got := engine.Cells - len(engine.EmptyCells(board)); got != 2 {
			logger.Fatal("init invariant violated", "trial", i, "tiles", got)
		}
	}

	logger.Info("init sweep passed", "elapsed", time.Since(start).Round(time.Millisecond))
}
