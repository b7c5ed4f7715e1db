package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tabletop/internal/registry"
	"github.com/vovakirdan/tui-tabletop/internal/storage"
)

const maxHistoryRows = 100

// ScoreboardKeyMap defines the key bindings for the match browser.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel browses match history per game: win tallies on top, the
// most recent matches below.
type ScoreboardModel struct {
	store    *storage.Store
	games    []registry.GameInfo
	gameIdx  int
	table    table.Model
	wins     []storage.WinCount
	keys     ScoreboardKeyMap
	help     help.Model
	err      error
	quitting bool
}

// NewScoreboardModel creates the browser over all registered games.
func NewScoreboardModel(store *storage.Store) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		games: registry.List(),
		keys:  DefaultScoreboardKeyMap(),
		help:  help.New(),
	}

	columns := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Players", Width: 30},
		{Title: "Winner", Width: 16},
		{Title: "Turns", Width: 6},
	}
	m.table = table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithFocused(true),
	)
	m.reload()
	return m
}

// reload pulls the rows for the currently selected game.
func (m *ScoreboardModel) reload() {
	if len(m.games) == 0 || m.store == nil {
		return
	}
	gameID := m.games[m.gameIdx].ID

	wins, err := m.store.WinCounts(gameID)
	if err != nil {
		m.err = err
		return
	}
	m.wins = wins

	matches, err := m.store.RecentMatches(gameID, maxHistoryRows)
	if err != nil {
		m.err = err
		return
	}

	rows := make([]table.Row, 0, len(matches))
	for _, rec := range matches {
		winner := rec.Winner
		if rec.Draw {
			winner = "(draw)"
		}
		rows = append(rows, table.Row{
			rec.CreatedAt.Format("2006-01-02 15:04"),
			strings.Join(rec.Players, ", "),
			winner,
			fmt.Sprint(rec.Turns),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation across games and within the table.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.NextGame):
		if len(m.games) > 0 {
			m.gameIdx = (m.gameIdx + 1) % len(m.games)
			m.reload()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.PrevGame):
		if len(m.games) > 0 {
			m.gameIdx = (m.gameIdx - 1 + len(m.games)) % len(m.games)
			m.reload()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(keyMsg)
	return m, cmd
}

// View renders the browser.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("error loading matches: %v\n", m.err)
	}
	if len(m.games) == 0 {
		return "No games registered.\n"
	}

	game := m.games[m.gameIdx]

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render(fmt.Sprintf("Match history — %s", game.Title)))
	b.WriteString("\n\n")

	if len(m.wins) == 0 {
		b.WriteString(helpStyle.Render("No wins recorded yet."))
		b.WriteByte('\n')
	} else {
		for i, wc := range m.wins {
			b.WriteString(fmt.Sprintf("  %d. %-20s %d wins\n", i+1, wc.Name, wc.Wins))
		}
	}
	b.WriteByte('\n')

	b.WriteString(lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View()))
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

// RunScoreboard shows the interactive match history browser.
func RunScoreboard(store *storage.Store) error {
	p := tea.NewProgram(NewScoreboardModel(store))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: scoreboard failed: %w", err)
	}
	return nil
}
