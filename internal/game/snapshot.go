package game

import "github.com/vovakirdan/oi2048/internal/engine"

// Snapshot captures the session state for determinism checks and replay.
type Snapshot struct {
	Seed    int64
	Moves   int
	Score   int
	Board   engine.Board
	MaxTile int
	Status  engine.Status
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Seed:    s.seed,
		Moves:   s.moves,
		Score:   s.score,
		Board:   s.board,
		MaxTile: engine.MaxTile(s.board),
		Status:  s.status,
	}
}
