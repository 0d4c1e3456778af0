package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askorohod/twenty48/internal/core"
	"github.com/askorohod/twenty48/internal/storage"
)

// Menu entry indices.
const (
	menuItemNewGame = iota
	menuItemDifficulty
	menuItemScores
	menuItemQuit
	menuItemCount
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	cursor       int
	width        int
	height       int
	store        *storage.Store
	config       core.RuntimeConfig
	difficulties []string
	diffCursor   int
	keyMapper    *KeyMapper
	quitting     bool
	startGame    bool
	openScores   bool
	bestScore    int
}

// NewMenuModel creates a new menu model. difficulties lists the
// selectable presets, current is the one initially highlighted.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulties []string, current string) MenuModel {
	diffCursor := 0
	for i, name := range difficulties {
		if name == current {
			diffCursor = i
			break
		}
	}

	m := MenuModel{
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		store:        store,
		config:       cfg,
		difficulties: difficulties,
		diffCursor:   diffCursor,
		keyMapper:    NewKeyMapper(),
	}
	m.loadBestScore()
	return m
}

// loadBestScore fetches the best score for the highlighted difficulty.
func (m *MenuModel) loadBestScore() {
	m.bestScore = 0
	if m.store == nil || len(m.difficulties) == 0 {
		return
	}
	if best, err := m.store.BestScore(m.difficulties[m.diffCursor]); err == nil {
		m.bestScore = best
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuItemCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == menuItemDifficulty {
			m.cycleDifficulty(-1)
		}

	case MenuActionRight:
		if m.cursor == menuItemDifficulty {
			m.cycleDifficulty(1)
		}

	case MenuActionSelect:
		switch m.cursor {
		case menuItemNewGame:
			m.startGame = true
			return m, tea.Quit
		case menuItemDifficulty:
			m.cycleDifficulty(1)
		case menuItemScores:
			m.openScores = true
			return m, tea.Quit
		case menuItemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// cycleDifficulty moves the difficulty selection by delta, wrapping.
func (m *MenuModel) cycleDifficulty(delta int) {
	if len(m.difficulties) == 0 {
		return
	}
	m.diffCursor = (m.diffCursor + delta + len(m.difficulties)) % len(m.difficulties)
	m.loadBestScore()
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Join the numbers and get to the big tile!", m.width))
	b.WriteString("\n\n")

	items := []string{
		"New Game",
		fmt.Sprintf("Difficulty: < %s >", m.Difficulty()),
		"High Scores",
		"Quit",
	}

	for i, item := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item, m.width))
		b.WriteString("\n")
	}

	if m.bestScore > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("Best (%s): %d", m.Difficulty(), m.bestScore), m.width))
	}

	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Difficulty returns the currently highlighted difficulty name.
func (m MenuModel) Difficulty() string {
	if len(m.difficulties) == 0 {
		return ""
	}
	return m.difficulties[m.diffCursor]
}

// StartsGame returns true if the user chose to start a new game.
func (m MenuModel) StartsGame() bool {
	return m.startGame
}

// WantsScoreboard returns true if the user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScores
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
