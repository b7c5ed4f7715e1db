// Package tui provides the Bubble Tea surfaces of the platform: the game
// picker menu and the match history browser. Game sessions themselves run
// as plain line-based console loops after the TUI exits.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tabletop/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items    []registry.GameInfo
	cursor   int
	quitting bool
	selected *registry.GameInfo
}

// NewMenuModel creates a menu over all registered games.
func NewMenuModel() MenuModel {
	return MenuModel{items: registry.List()}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "enter", " ":
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit the TUI to start the game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting && m.selected == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("Tabletop — pick a game"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s — %s", item.ID, item.Title)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line[2:])
		} else {
			line = normalStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: move • enter: play • q: quit"))
	b.WriteString("\n")
	return b.String()
}

// RunMenu shows the picker and returns the chosen game ID, or an empty
// string when the user quit without choosing.
func RunMenu() (string, error) {
	p := tea.NewProgram(NewMenuModel())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: menu failed: %w", err)
	}

	model, ok := final.(MenuModel)
	if !ok || model.selected == nil {
		return "", nil
	}
	return model.selected.ID, nil
}
