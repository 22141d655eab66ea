package engine

import "fmt"

// Tile domain. A cell holds 0 (empty), a Number tile (a power of two in
// [MinNumber, MaxNumber]), or a Multiplier tile (-1, -2 or -4, rendered
// ×1/×2/×4). Everything else is rejected before any board mutation.
const (
	MinNumber = 2
	MaxNumber = 65536

	// MultiplierCap is the largest multiplier magnitude. A -4 tile never
	// merges further.
	MultiplierCap = 4
)

// InvalidTileError reports a cell value outside the tile domain.
type InvalidTileError struct {
	Value int
}

func (e *InvalidTileError) Error() string {
	return fmt.Sprintf("engine: invalid tile value: %d", e.Value)
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// ValidTile reports whether v is a legal cell value. Note that 1 is not:
// the smallest Number tile is 2.
func ValidTile(v int) bool {
	switch {
	case v == 0:
		return true
	case v > 0:
		return v >= MinNumber && v <= MaxNumber && isPowerOfTwo(v)
	default:
		return v == -1 || v == -2 || v == -MultiplierCap
	}
}

// ValidateBoard checks all 16 cells and returns an InvalidTileError carrying
// the first illegal value found. Validation is all-or-nothing: callers run
// it before touching the board.
func ValidateBoard(b Board) error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !ValidTile(b[r][c]) {
				return &InvalidTileError{Value: b[r][c]}
			}
		}
	}
	return nil
}
