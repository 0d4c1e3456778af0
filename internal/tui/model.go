package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askorohod/twenty48/internal/core"
	"github.com/askorohod/twenty48/internal/game"
	"github.com/askorohod/twenty48/internal/storage"
)

// Model is the Bubble Tea model for a running game.
type Model struct {
	game        *game.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	quitting    bool
	backToMenu  bool
	recordSaved bool // Whether the session has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickEvery(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRecord()
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc leaves for the menu when nothing is at stake: the game
	// is over, won, or paused.
	if m.inputFrame.Has(core.ActionBack) &&
		(m.gameState.GameOver || m.gameState.Won || m.gameState.Paused) {
		m.saveRecord()
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. The board survives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.SetScreenSize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart is allowed at any point; a finished session is persisted
	// before the board resets.
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRecord()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recordSaved = false
		m.inputFrame.Clear()
		return m, tickEvery(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// A lost game records its session immediately; a won one records
	// when the player restarts or quits, so playing on keeps counting.
	if m.gameState.GameOver {
		m.saveRecord()
	}

	m.inputFrame.Clear()
	return m, tickEvery(m.config.TickRate)
}

// saveRecord persists the session once, and only when it reached an
// outcome. Best-effort: the game continues without storage.
func (m *Model) saveRecord() {
	if m.recordSaved || m.store == nil || !m.game.Finished() {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveGame(m.game.Record())
	m.recordSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
