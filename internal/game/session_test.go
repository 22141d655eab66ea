package game

import (
	"testing"

	"github.com/vovakirdan/oi2048/internal/engine"
)

// playOut drives a session until it finishes, cycling through all four
// directions. If no direction changes the board the session must already
// be over, so the loop always terminates.
func playOut(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 100000; i++ {
		if s.Over() {
			return
		}
		moved := false
		for _, dir := range engine.Directions {
			if s.Move(dir) {
				moved = true
				break
			}
		}
		if !moved && !s.Over() {
			t.Fatal("no move changed the board but the session is not over")
		}
	}
	t.Fatal("session did not finish within the move cap")
}

func TestNewSessionStartsWithTwoTiles(t *testing.T) {
	s := NewSession(42, engine.DefaultConfig())

	nonEmpty := engine.Cells - len(engine.EmptyCells(s.Board()))
	if nonEmpty != 2 {
		t.Errorf("new session board has %d tiles, want 2", nonEmpty)
	}
	if s.Score() != 0 || s.Moves() != 0 {
		t.Errorf("new session score/moves = %d/%d, want 0/0", s.Score(), s.Moves())
	}
	if s.Over() {
		t.Error("new session should be ongoing")
	}
	if s.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", s.Seed())
	}
}

func TestZeroSeedIsReplaced(t *testing.T) {
	s := NewSession(0, engine.DefaultConfig())
	if s.Seed() == 0 {
		t.Error("zero seed should be replaced with a time seed")
	}
}

func TestSameSeedSameGame(t *testing.T) {
	script := []engine.Direction{
		engine.DirLeft, engine.DirDown, engine.DirRight, engine.DirDown,
		engine.DirLeft, engine.DirUp, engine.DirLeft, engine.DirDown,
	}

	s1 := NewSession(777, engine.DefaultConfig())
	s2 := NewSession(777, engine.DefaultConfig())

	for i, dir := range script {
		m1 := s1.Move(dir)
		m2 := s2.Move(dir)
		if m1 != m2 {
			t.Fatalf("move %d diverged: %v vs %v", i, m1, m2)
		}
	}

	if s1.Snapshot() != s2.Snapshot() {
		t.Errorf("same seed and moves produced different snapshots:\n%+v\nvs\n%+v",
			s1.Snapshot(), s2.Snapshot())
	}
}

func TestMoveUpdatesScoreAndCount(t *testing.T) {
	s := NewSession(5, engine.DefaultConfig())

	for _, dir := range engine.Directions {
		if s.Move(dir) {
			break
		}
	}

	if s.Moves() != 1 {
		t.Fatalf("Moves() = %d, want 1", s.Moves())
	}
	if s.Score() != s.LastDelta() {
		t.Errorf("Score() = %d, LastDelta() = %d, want equal after one move",
			s.Score(), s.LastDelta())
	}
}

func TestFinishedSessionRejectsMoves(t *testing.T) {
	s := NewSession(123, engine.DefaultConfig())
	playOut(t, s)

	snap := s.Snapshot()
	for _, dir := range engine.Directions {
		if s.Move(dir) {
			t.Errorf("finished session accepted move %v", dir)
		}
	}
	if s.Snapshot() != snap {
		t.Error("moves on a finished session changed its state")
	}
}

func TestRestartResets(t *testing.T) {
	s := NewSession(9, engine.DefaultConfig())
	for i := 0; i < 5 && !s.Over(); i++ {
		for _, dir := range engine.Directions {
			if s.Move(dir) {
				break
			}
		}
	}

	oldSeed := s.Seed()
	s.Restart()

	if s.Score() != 0 || s.Moves() != 0 {
		t.Errorf("restart left score/moves = %d/%d", s.Score(), s.Moves())
	}
	if s.Over() {
		t.Error("restarted session should be ongoing")
	}
	if s.Seed() == oldSeed {
		t.Error("restart should draw a fresh seed")
	}
	nonEmpty := engine.Cells - len(engine.EmptyCells(s.Board()))
	if nonEmpty != 2 {
		t.Errorf("restarted board has %d tiles, want 2", nonEmpty)
	}
}

func TestSnapshotReflectsSession(t *testing.T) {
	s := NewSession(31, engine.DefaultConfig())
	for _, dir := range engine.Directions {
		if s.Move(dir) {
			break
		}
	}

	snap := s.Snapshot()
	if snap.Board != s.Board() || snap.Score != s.Score() || snap.Moves != s.Moves() {
		t.Errorf("snapshot out of sync: %+v", snap)
	}
	if snap.MaxTile != engine.MaxTile(s.Board()) {
		t.Errorf("snapshot MaxTile = %d, want %d", snap.MaxTile, engine.MaxTile(s.Board()))
	}
}
