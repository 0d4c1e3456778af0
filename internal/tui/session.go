package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/askorohod/twenty48/internal/config"
	"github.com/askorohod/twenty48/internal/core"
	"github.com/askorohod/twenty48/internal/game"
	"github.com/askorohod/twenty48/internal/storage"
)

// SessionModel manages the full flow: menu -> game -> menu, with the
// scoreboard as a side screen. It is the top-level model for both
// local play and SSH sessions.
type SessionModel struct {
	store      *storage.Store
	appConfig  config.Config
	config     core.RuntimeConfig
	menu       MenuModel
	gameModel  *Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, appCfg config.Config, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:     store,
		appConfig: appCfg,
		config:    cfg,
		menu:      NewMenuModel(store, cfg, appCfg.DifficultyNames(), appCfg.Difficulty),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so every screen starts with it
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.scoreboard != nil:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(
			m.store,
			m.appConfig.DifficultyNames(),
			m.menu.Difficulty(),
			m.config.ScreenW,
			m.config.ScreenH,
		)
		m.scoreboard = &sb
		return m, m.scoreboard.Init()
	}

	if m.menu.StartsGame() {
		appCfg := m.appConfig
		appCfg.Difficulty = m.menu.Difficulty()

		opts, err := game.OptionsFromConfig(appCfg)
		if err != nil {
			// Menu only offers configured presets
			return m, nil
		}

		m.config = m.menu.Config()
		gameModel := NewModel(game.New(opts), m.store, m.config)
		m.gameModel = &gameModel
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		difficulty := m.gameModel.game.Options().Difficulty
		m.gameModel = nil
		m.menu = NewMenuModel(m.store, m.config, m.appConfig.DifficultyNames(), difficulty)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScoreboard handles updates when viewing the scoreboard.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsGoingBack() {
		difficulty := m.menu.Difficulty()
		m.scoreboard = nil
		m.menu = NewMenuModel(m.store, m.config, m.appConfig.DifficultyNames(), difficulty)
		return m, m.menu.Init()
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts the full menu-driven session locally.
func RunSession(store *storage.Store, appCfg config.Config, cfg core.RuntimeConfig) error {
	model := NewSessionModel(store, appCfg, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
