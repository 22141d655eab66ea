package engine

import "fmt"

// Size is the board dimension.
const Size = 4

// Cells is the total number of cells on a board.
const Cells = Size * Size

// Board is the canonical 4x4 grid. Row 0 is the top row, column 0 the left
// column. Boards are value types: every operation returns a new board and
// leaves its input untouched, so independent boards can be worked on from
// separate goroutines without coordination.
type Board [Size][Size]int

// Coord addresses a single cell by (row, column).
type Coord struct {
	Row int
	Col int
}

// BoardFromFlat builds a board from a row-major 16-element sequence, the
// alternate representation accepted at the caller boundary.
func BoardFromFlat(cells []int) (Board, error) {
	var b Board
	if len(cells) != Cells {
		return b, fmt.Errorf("engine: board must be 4x4, got %d cells", len(cells))
	}
	for i, v := range cells {
		b[i/Size][i%Size] = v
	}
	return b, nil
}

// Flat returns the board as a row-major 16-element slice.
func (b Board) Flat() []int {
	out := make([]int, 0, Cells)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out = append(out, b[r][c])
		}
	}
	return out
}

// EmptyCells returns the coordinates of all empty cells.
func EmptyCells(b Board) []Coord {
	var cells []Coord
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == 0 {
				cells = append(cells, Coord{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if at least one cell is empty.
func HasEmptyCell(b Board) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest tile value on the board, 0 for an empty board.
// Multiplier tiles are negative and never win this comparison.
func MaxTile(b Board) int {
	maxVal := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}
