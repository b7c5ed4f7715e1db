package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared styles for game narration. Exported so game runners can color
// their own board output consistently.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	GoodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	BadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	diceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
)

// Banner renders the highlighted session title line.
func Banner(text string) string {
	return titleStyle.Render(text)
}

// WinLine renders the winner announcement.
func WinLine(name string) string {
	return winStyle.Render(fmt.Sprintf("🏁 %s wins! 🏆", name))
}

// RollLine renders a dice roll.
func RollLine(player string, roll int) string {
	return diceStyle.Render(fmt.Sprintf("  🎲 %s rolled a %d.", player, roll))
}

// RenderGrid draws a Tic-Tac-Toe style rune grid with separators.
func RenderGrid(size int, at func(row, col int) rune) string {
	var b strings.Builder
	sep := MutedStyle.Render(strings.Repeat("-", size*4-1))

	b.WriteString(sep)
	b.WriteByte('\n')
	for row := 0; row < size; row++ {
		cells := make([]string, size)
		for col := 0; col < size; col++ {
			cells[col] = string(at(row, col))
		}
		b.WriteString(" " + strings.Join(cells, " | "))
		b.WriteByte('\n')
		b.WriteString(sep)
		b.WriteByte('\n')
	}
	return b.String()
}
