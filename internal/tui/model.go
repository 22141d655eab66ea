// Package tui provides the terminal UI for oi2048, both as a local Bubble
// Tea program and served over SSH via Wish.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/oi2048/internal/engine"
	"github.com/vovakirdan/oi2048/internal/game"
	"github.com/vovakirdan/oi2048/internal/storage"
)

// Model is the Bubble Tea model for a single game. The game is turn-based,
// so the model is purely event-driven: no tick loop, every update is a key
// press or a resize.
type Model struct {
	session *game.Session
	store   *storage.Store
	rules   engine.Config
	keys    KeyMap
	help    help.Model

	width    int
	height   int
	saved    bool
	quitting bool
}

// NewModel creates a game model. store may be nil; results are then not
// persisted.
func NewModel(seed int64, rules engine.Config, store *storage.Store) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session: game.NewSession(seed, rules),
		store:   store,
		rules:   rules,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveResult()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.saveResult()
		m.session.Restart()
		m.saved = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.move(engine.DirUp)
	case key.Matches(msg, m.keys.Down):
		return m.move(engine.DirDown)
	case key.Matches(msg, m.keys.Left):
		return m.move(engine.DirLeft)
	case key.Matches(msg, m.keys.Right):
		return m.move(engine.DirRight)
	}
	return m, nil
}

// move applies one move and persists the result when the game ends.
func (m Model) move(dir engine.Direction) (tea.Model, tea.Cmd) {
	m.session.Move(dir)
	if m.session.Over() {
		m.saveResult()
	}
	return m, nil
}

// saveResult records a finished game once. Games abandoned mid-play are
// not recorded.
func (m *Model) saveResult() {
	if m.store == nil || m.saved || !m.session.Over() {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveResult(storage.Result{
		Score:   m.session.Score(),
		MaxTile: m.session.MaxTile(),
		Moves:   m.session.Moves(),
		Won:     m.session.Won(),
	})
	m.saved = true
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run runs the game as a local terminal program until the user quits.
func Run(seed int64, rules engine.Config, store *storage.Store) error {
	p := tea.NewProgram(
		NewModel(seed, rules, store),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
