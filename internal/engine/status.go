package engine

import "fmt"

// Status is the terminal state of a board after a step.
type Status int

const (
	StatusLost    Status = -1
	StatusOngoing Status = 0
	StatusWon     Status = 1
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusLost:
		return "lost"
	case StatusOngoing:
		return "ongoing"
	case StatusWon:
		return "won"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// DefaultWinTile is the Number tile that ends the game in a win. The
// classic rules stop at the largest legal tile; Config.WinTile makes it
// tunable.
const DefaultWinTile = MaxNumber

// evaluate reports the terminal status of a board. Win is checked before
// loss: a full, stuck board that holds the win tile still counts as won.
// Loss requires a full board with no direction able to change it.
func evaluate(b Board, winTile int) Status {
	if MaxTile(b) >= winTile {
		return StatusWon
	}
	if HasEmptyCell(b) {
		return StatusOngoing
	}
	for _, dir := range Directions {
		if _, _, changed := Slide(b, dir); changed {
			return StatusOngoing
		}
	}
	return StatusLost
}
