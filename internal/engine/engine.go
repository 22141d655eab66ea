// Package engine implements the deterministic board-transition rules of
// oi2048, a 2048 variant where signed multiplier tiles (×1, ×2, ×4, stored
// as -1, -2, -4) share the board with the usual powers of two.
//
// The engine is pure: boards are value types passed in and out of every
// call, randomness is an injected *rand.Rand, and no call retains state
// beyond the Engine's own rule set. Multipliers merge like numbers
// (doubling magnitude, score delta 2v, so merging them costs points) but
// cap at ×4, and the two tile classes never merge with each other.
package engine

import (
	"math/rand"
	"time"
)

// Config tunes the rules that are policy rather than structure: the win
// tile and the spawn distribution.
type Config struct {
	WinTile int
	Spawn   Distribution
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		WinTile: DefaultWinTile,
		Spawn:   DefaultDistribution(),
	}
}

// Validate checks that the win tile is a Number tile and the spawn
// distribution is well-formed.
func (c Config) Validate() error {
	if c.WinTile <= 0 || !ValidTile(c.WinTile) {
		return &InvalidTileError{Value: c.WinTile}
	}
	return c.Spawn.Validate()
}

// Engine steps boards under a fixed rule set with an injected randomness
// source. It keeps no board state; the rand.Rand is its only mutable
// field, so each concurrent caller should own its own Engine.
type Engine struct {
	rng *rand.Rand
	cfg Config
}

// New creates an engine. A nil rng falls back to a time-seeded source.
func New(rng *rand.Rand, cfg Config) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng, cfg: cfg}
}

// Config returns the rule set the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Init returns a fresh board holding exactly two spawned tiles. The second
// spawn only selects from still-empty cells, so the two tiles always land
// on distinct coordinates.
func (e *Engine) Init() Board {
	var b Board
	b, _ = Spawn(b, e.rng, e.cfg.Spawn)
	b, _ = Spawn(b, e.rng, e.cfg.Spawn)
	return b
}

// Step validates the board, applies the move encoded by dir (0 = down,
// 1 = up, 2 = left, 3 = right), spawns one tile when the move changed the
// board, and evaluates the terminal status of the result.
//
// On error the input board is returned untouched, no tile is spawned, and
// the status is StatusOngoing.
func (e *Engine) Step(b Board, dir int) (Board, int, Status, error) {
	if err := ValidateBoard(b); err != nil {
		return b, 0, StatusOngoing, err
	}
	d, err := ParseDirection(dir)
	if err != nil {
		return b, 0, StatusOngoing, err
	}

	next, delta, changed := Slide(b, d)
	if changed {
		// A changed move always leaves at least one empty cell.
		next, _ = Spawn(next, e.rng, e.cfg.Spawn)
	}
	return next, delta, evaluate(next, e.cfg.WinTile), nil
}

// Evaluate reports the terminal status of a board under the engine's rules.
func (e *Engine) Evaluate(b Board) Status {
	return evaluate(b, e.cfg.WinTile)
}
