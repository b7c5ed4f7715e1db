package snakeladder

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tabletop/internal/platform/cli"
)

// narrateEvent renders one resolver event as a narration line. EventMove is
// skipped; the plain advance is summarized by the caller's position line.
func narrateEvent(ev Event, target int) (string, bool) {
	switch ev.Kind {
	case EventLadder:
		return cli.GoodStyle.Render(fmt.Sprintf("  🎉 Ladder! %d → %d", ev.From, ev.To)), true
	case EventSnake:
		return cli.BadStyle.Render(fmt.Sprintf("  🐍 Snake! %d → %d", ev.From, ev.To)), true
	case EventBounce:
		return cli.MutedStyle.Render(fmt.Sprintf("  Overshoot! Bounce from %d to %d.", target, ev.To)), true
	case EventStay:
		return cli.MutedStyle.Render(fmt.Sprintf("  Needs exact roll to reach %d. Stay at %d.", target, ev.From)), true
	default:
		return "", false
	}
}

// renderLinks lists the snakes and ladders of a board, sorted by start cell.
func renderLinks(links LinkTable) string {
	var b strings.Builder

	if len(links.Snakes) == 0 {
		b.WriteString("Snakes: (none)\n")
	} else {
		b.WriteString("Snakes:\n")
		for _, head := range links.SortedSnakes() {
			b.WriteString(cli.BadStyle.Render(fmt.Sprintf("  %d → %d", head, links.Snakes[head])))
			b.WriteByte('\n')
		}
	}

	if len(links.Ladders) == 0 {
		b.WriteString("Ladders: (none)\n")
	} else {
		b.WriteString("Ladders:\n")
		for _, start := range links.SortedLadders() {
			b.WriteString(cli.GoodStyle.Render(fmt.Sprintf("  %d → %d", start, links.Ladders[start])))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// renderBoard draws the N×N grid with its boustrophedon cell numbering:
// cell 1 sits at the bottom-left and rows alternate direction on the way
// up. Link starts are colored and occupied cells show player initials.
func renderBoard(dim int, links LinkTable, players []Player) string {
	cellWidth := len(fmt.Sprint(dim*dim)) + 2

	occupied := make(map[int]string)
	for _, p := range players {
		if p.Pos > 0 {
			occupied[p.Pos] += string([]rune(p.Name)[0])
		}
	}

	var b strings.Builder
	for row := dim - 1; row >= 0; row-- {
		for col := 0; col < dim; col++ {
			cell := boardCell(dim, row, col)

			label := fmt.Sprint(cell)
			if marks, ok := occupied[cell]; ok {
				label += ":" + marks
			}
			padded := fmt.Sprintf("%*s", cellWidth, label)

			if _, ok := links.Ladders[cell]; ok {
				padded = cli.GoodStyle.Render(padded)
			} else if _, ok := links.Snakes[cell]; ok {
				padded = cli.BadStyle.Render(padded)
			} else if _, ok := occupied[cell]; !ok {
				padded = cli.MutedStyle.Render(padded)
			}
			b.WriteString(padded)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// boardCell returns the cell number at grid position (row, col), counting
// rows from the bottom with serpentine direction.
func boardCell(dim, row, col int) int {
	base := row * dim
	if row%2 == 0 {
		return base + col + 1
	}
	return base + (dim - col)
}
