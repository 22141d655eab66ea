// Package game holds a single play-through of oi2048 on top of the pure
// engine: board, score, move count, and terminal status, advanced one move
// at a time.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/oi2048/internal/engine"
)

// Session is one game from Init to a terminal status. It owns its engine
// (and therefore its RNG), so sessions can run concurrently.
type Session struct {
	eng  *engine.Engine
	seed int64
	cfg  engine.Config

	board  engine.Board
	score  int
	moves  int
	delta  int
	status engine.Status
}

// NewSession starts a game with the given seed and rules. A zero seed is
// replaced by the current time, so casual play stays unpredictable while
// explicit seeds replay exactly.
func NewSession(seed int64, cfg engine.Config) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{seed: seed, cfg: cfg}
	s.start()
	return s
}

func (s *Session) start() {
	s.eng = engine.New(rand.New(rand.NewSource(s.seed)), s.cfg)
	s.board = s.eng.Init()
	s.score = 0
	s.moves = 0
	s.delta = 0
	s.status = s.eng.Evaluate(s.board)
}

// Restart begins a fresh game under the same rules with a new time seed.
func (s *Session) Restart() {
	s.seed = time.Now().UnixNano()
	s.start()
}

// Move applies one move and reports whether it changed the board. Moves on
// a finished session, invalid directions, and blocked moves all return
// false and leave the session untouched.
func (s *Session) Move(dir engine.Direction) bool {
	if s.status != engine.StatusOngoing {
		return false
	}

	next, delta, status, err := s.eng.Step(s.board, int(dir))
	if err != nil || next == s.board {
		return false
	}

	s.board = next
	s.score += delta
	s.delta = delta
	s.moves++
	s.status = status
	return true
}

// Board returns the current board.
func (s *Session) Board() engine.Board { return s.board }

// Score returns the running score. Multiplier merges subtract, so the
// score can go negative.
func (s *Session) Score() int { return s.score }

// Moves returns how many moves have changed the board.
func (s *Session) Moves() int { return s.moves }

// LastDelta returns the score change of the most recent effective move.
func (s *Session) LastDelta() int { return s.delta }

// Seed returns the seed this session was started with.
func (s *Session) Seed() int64 { return s.seed }

// MaxTile returns the largest number tile on the board.
func (s *Session) MaxTile() int { return engine.MaxTile(s.board) }

// Status returns the session's terminal status.
func (s *Session) Status() engine.Status { return s.status }

// Over reports whether the session reached a terminal status.
func (s *Session) Over() bool { return s.status != engine.StatusOngoing }

// Won reports whether the session reached the win tile.
func (s *Session) Won() bool { return s.status == engine.StatusWon }
