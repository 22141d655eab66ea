package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// WeightedTile pairs a spawnable value with its relative weight.
type WeightedTile struct {
	Value  int
	Weight float64
}

// Distribution is the weighted set of values the spawn generator draws
// from. Weights are relative and do not need to sum to 1.
type Distribution []WeightedTile

// DefaultDistribution returns the classic oi2048 spawn weights: mostly 2s,
// some 4s, and the occasional ×1 or ×2 multiplier.
func DefaultDistribution() Distribution {
	return Distribution{
		{Value: 2, Weight: 0.783},
		{Value: 4, Weight: 0.078},
		{Value: -1, Weight: 0.1118},
		{Value: -2, Weight: 0.0272},
	}
}

// Validate checks that every entry is a legal non-empty tile with a
// positive weight.
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return errors.New("engine: empty spawn distribution")
	}
	for _, wt := range d {
		if wt.Value == 0 || !ValidTile(wt.Value) {
			return &InvalidTileError{Value: wt.Value}
		}
		if wt.Weight <= 0 {
			return fmt.Errorf("engine: non-positive spawn weight %v for tile %d", wt.Weight, wt.Value)
		}
	}
	return nil
}

// pick draws one value from the distribution.
func (d Distribution) pick(rng *rand.Rand) int {
	total := 0.0
	for _, wt := range d {
		total += wt.Weight
	}

	p := rng.Float64() * total
	for _, wt := range d {
		p -= wt.Weight
		if p < 0 {
			return wt.Value
		}
	}
	// Float64 rounding can leave p at exactly 0 after the loop.
	return d[len(d)-1].Value
}

// ErrBoardFull reports a spawn attempt on a board with no empty cells.
// Callers treat it as a no-op condition rather than a failure: spawning
// only follows a move that changed the board, and such a move always
// leaves at least one empty cell.
var ErrBoardFull = errors.New("engine: board full")

// Spawn places one tile drawn from the distribution on a uniformly random
// empty cell.
func Spawn(b Board, rng *rand.Rand, dist Distribution) (Board, error) {
	empties := EmptyCells(b)
	if len(empties) == 0 {
		return b, ErrBoardFull
	}

	cell := empties[rng.Intn(len(empties))]
	b[cell.Row][cell.Col] = dist.pick(rng)
	return b, nil
}
