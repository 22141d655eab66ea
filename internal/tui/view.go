package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/oi2048/internal/engine"
)

const tileWidth = 7

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("238"))

	multiplierStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(lipgloss.Color("203"))

	statusWonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	statusLostStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// numberColors maps number tiles to foreground colors, brightening as the
// tiles grow. Tiles above the last entry reuse it.
var numberColors = []struct {
	value int
	color lipgloss.Color
}{
	{2, lipgloss.Color("250")},
	{4, lipgloss.Color("252")},
	{8, lipgloss.Color("222")},
	{16, lipgloss.Color("215")},
	{32, lipgloss.Color("209")},
	{64, lipgloss.Color("203")},
	{128, lipgloss.Color("228")},
	{256, lipgloss.Color("227")},
	{512, lipgloss.Color("226")},
	{1024, lipgloss.Color("220")},
	{2048, lipgloss.Color("214")},
	{4096, lipgloss.Color("213")},
	{8192, lipgloss.Color("207")},
	{16384, lipgloss.Color("201")},
	{32768, lipgloss.Color("165")},
	{65536, lipgloss.Color("129")},
}

// tileLabel formats a cell value. Multipliers render with the × prefix.
func tileLabel(v int) string {
	switch {
	case v == 0:
		return "·"
	case v < 0:
		return fmt.Sprintf("×%d", -v)
	default:
		return strconv.Itoa(v)
	}
}

// tileStyle returns the style for a cell value.
func tileStyle(v int) lipgloss.Style {
	switch {
	case v == 0:
		return emptyTileStyle
	case v < 0:
		return multiplierStyle
	}

	color := numberColors[len(numberColors)-1].color
	for _, nc := range numberColors {
		if nc.value == v {
			color = nc.color
			break
		}
	}
	return lipgloss.NewStyle().
		Width(tileWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(color)
}

// View renders the game.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("oi2048"))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf(
		"Score: %d   Max: %d   Moves: %d",
		m.session.Score(), m.session.MaxTile(), m.session.Moves(),
	)))
	b.WriteString("\n\n")

	b.WriteString(boardStyle.Render(renderBoard(m.session.Board())))
	b.WriteString("\n")

	switch m.session.Status() {
	case engine.StatusWon:
		b.WriteString(statusWonStyle.Render(fmt.Sprintf(
			"You reached %d! Press r to play again.", m.rules.WinTile,
		)))
		b.WriteString("\n")
	case engine.StatusLost:
		b.WriteString(statusLostStyle.Render("No moves left. Press r to restart."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderBoard draws the 4x4 grid.
func renderBoard(board engine.Board) string {
	rows := make([]string, 0, engine.Size)
	for r := 0; r < engine.Size; r++ {
		cells := make([]string, 0, engine.Size)
		for c := 0; c < engine.Size; c++ {
			v := board[r][c]
			cells = append(cells, tileStyle(v).Render(tileLabel(v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	return strings.Join(rows, "\n\n")
}
