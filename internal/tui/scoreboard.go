package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askorohod/twenty48/internal/core"
	"github.com/askorohod/twenty48/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 56  // Minimum width for the full column set
	maxGames      = 100 // Max games to load per difficulty
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextDiff key.Binding
	PrevDiff key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextDiff, k.PrevDiff, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextDiff, k.PrevDiff},
		{k.Back, k.Quit},
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
		NextDiff: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next difficulty"),
		),
		PrevDiff: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/S-tab", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high scores screen.
type ScoreboardModel struct {
	difficulties []string
	diffCursor   int
	store        *storage.Store
	games        []storage.GameEntry
	stats        *storage.HighScore
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool
}

// NewScoreboardModel creates a new scoreboard model showing the given
// difficulty first.
func NewScoreboardModel(store *storage.Store, difficulties []string, current string, width, height int) ScoreboardModel {
	diffCursor := 0
	for i, name := range difficulties {
		if name == current {
			diffCursor = i
			break
		}
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		difficulties: difficulties,
		diffCursor:   diffCursor,
		store:        store,
		keys:         DefaultScoreboardKeyMap(),
		help:         h,
		width:        width,
		height:       height,
	}

	m.table = m.createTable()
	m.loadGames()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Max Tile", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 14},
	}

	if m.width > tableMinWidth+8 {
		columns[1].Width = 10
		columns[5].Width = 18
	}

	// Leave room for header, stats and help; keep the table usable on
	// tiny terminals.
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.height-10, 3, 40)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadGames loads games and aggregates for the selected difficulty.
func (m *ScoreboardModel) loadGames() {
	m.games = nil
	m.stats = nil

	if m.store == nil || len(m.difficulties) == 0 {
		m.updateTableRows()
		return
	}

	difficulty := m.difficulties[m.diffCursor]
	if games, err := m.store.TopGames(difficulty, maxGames); err == nil {
		m.games = games
	}
	if stats, err := m.store.Stats(difficulty); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current games.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", g.Score),
			fmt.Sprintf("%d", g.MaxTile),
			fmt.Sprintf("%d", g.Moves),
			formatDuration(g.DurationSeconds),
			g.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders a duration in seconds as m:ss.
func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextDiff):
			if len(m.difficulties) > 0 {
				m.diffCursor = (m.diffCursor + 1) % len(m.difficulties)
				m.loadGames()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevDiff):
			if len(m.difficulties) > 0 {
				m.diffCursor--
				if m.diffCursor < 0 {
					m.diffCursor = len(m.difficulties) - 1
				}
				m.loadGames()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "HIGH SCORES"
	if len(m.difficulties) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", strings.ToUpper(m.difficulties[m.diffCursor]))
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	// Difficulty tabs
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	// Aggregates footer
	if m.stats != nil {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		summary := fmt.Sprintf(
			"Games: %d   Wins: %d   Best: %d   Best tile: %d   Avg score: %.0f",
			m.stats.GamesPlayed, m.stats.Wins, m.stats.BestScore, m.stats.BestTile, m.stats.AvgScore(),
		)
		b.WriteString(statsStyle.Render(centerText(summary, m.width)))
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the difficulty selector line.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.difficulties))
	for i, name := range m.difficulties {
		if i == m.diffCursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.games) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, difficulties []string, current string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, difficulties, current, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
