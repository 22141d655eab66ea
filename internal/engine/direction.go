package engine

import "fmt"

// Direction represents a move direction. The numeric values are the wire
// codes used at the caller boundary: 0 moves tiles toward the bottom edge,
// matching the original puzzle protocol.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// Directions lists all four directions in wire order.
var Directions = [...]Direction{DirDown, DirUp, DirLeft, DirRight}

// InvalidDirectionError reports a direction code outside 0..3.
type InvalidDirectionError struct {
	Value int
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("engine: invalid direction: %d", e.Value)
}

// ParseDirection converts a wire code into a Direction.
func ParseDirection(v int) (Direction, error) {
	if v < 0 || v >= len(Directions) {
		return 0, &InvalidDirectionError{Value: v}
	}
	return Direction(v), nil
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
