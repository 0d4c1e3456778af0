// Package game implements the 2048 turn loop: it owns the board, the
// session statistics and the win/loss state machine, and adapts raw
// platform input into board moves.
package game

import (
	"math/rand"
	"time"

	"github.com/askorohod/twenty48/internal/board"
	"github.com/askorohod/twenty48/internal/config"
	"github.com/askorohod/twenty48/internal/core"
)

// Options selects the rules for a game instance.
type Options struct {
	Difficulty string  // Preset name, recorded with the session
	BoardSize  int     // Grid dimension
	FourProb   float64 // Probability a spawned tile is a 4
	WinTarget  int     // Tile value that wins the game
	Theme      string  // Tile color theme
}

// OptionsFromConfig builds game options from the loaded configuration.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	preset, err := cfg.Preset()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Difficulty: cfg.Difficulty,
		BoardSize:  preset.BoardSize,
		FourProb:   preset.FourProb,
		WinTarget:  cfg.WinTarget,
		Theme:      cfg.Theme,
	}, nil
}

// Game is a single 2048 session: one board, one score, one outcome.
type Game struct {
	opts Options
	rng  *rand.Rand
	tick uint64

	board   board.Board
	session Session

	screenW int
	screenH int

	gameOver      bool // No legal move remains
	won           bool // Target reached at least once
	keepPlaying   bool // Player dismissed the win overlay
	paused        bool
	tooSmall      bool
	moveProcessed bool // One accepted move per tick

	// Animation state
	animating      bool
	animationPhase AnimationPhase
	animationTicks int
	animations     []TileAnimation
	pendingSpawn   *PendingTile
}

// New creates a game with the given options.
func New(opts Options) *Game {
	if opts.BoardSize == 0 {
		opts.BoardSize = board.DefaultSize
	}
	if opts.WinTarget == 0 {
		opts.WinTarget = 2048
	}
	return &Game{opts: opts}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Options returns the rules this game was created with.
func (g *Game) Options() Options {
	return g.opts
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.gameOver = false
	g.won = false
	g.keepPlaying = false
	g.paused = false
	g.moveProcessed = false

	g.animating = false
	g.animationPhase = PhaseNone
	g.animations = nil
	g.pendingSpawn = nil

	g.board = board.New(g.opts.BoardSize)
	g.session = Session{StartedAt: time.Now()}

	// Classic opening: two tiles
	g.board.Spawn(g.rng, g.opts.FourProb)
	g.board.Spawn(g.rng, g.opts.FourProb)

	g.checkScreenSize()
}

// SetScreenSize updates the screen dimensions without restarting the
// game. The board survives terminal resizes.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the board plus HUD.
func (g *Game) checkScreenSize() {
	minW := g.opts.BoardSize*cellWidth + 1 + 4
	minH := g.opts.BoardSize*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Let a running slide/pop animation play out before accepting the
	// next move; input during animation is dropped.
	if g.updateAnimation() {
		return core.StepResult{State: g.State()}
	}

	// Win overlay: wait for the player to continue or restart.
	if g.won && !g.keepPlaying {
		if in.Has(core.ActionContinue) {
			g.keepPlaying = true
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := moveDirection(in); ok && !g.moveProcessed {
		g.processMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// moveDirection maps frame input to a board direction.
func moveDirection(in core.InputFrame) (board.Direction, bool) {
	action, ok := in.Direction()
	if !ok {
		return 0, false
	}
	switch action {
	case core.ActionUp:
		return board.DirUp, true
	case core.ActionDown:
		return board.DirDown, true
	case core.ActionLeft:
		return board.DirLeft, true
	default:
		return board.DirRight, true
	}
}

// processMove handles one move attempt in the given direction.
func (g *Game) processMove(dir board.Direction) {
	res := board.Slide(g.board, dir)
	if !res.Moved {
		// No-op move: no spawn, no score, no move count.
		return
	}

	g.startSlideAnimation(res.Moves)

	g.board = res.Board
	g.session.Score += res.ScoreDelta
	g.session.Moves++

	if !g.won && g.board.MaxTile() >= g.opts.WinTarget {
		g.won = true
	}

	if cell, value, ok := g.board.Spawn(g.rng, g.opts.FourProb); ok {
		g.pendingSpawn = &PendingTile{X: cell.X, Y: cell.Y, Value: value}
	}

	if !g.board.CanMove() {
		g.gameOver = true
		g.session.Duration = time.Since(g.session.StartedAt)
	}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Moves:    g.session.Moves,
		MaxTile:  g.board.MaxTile(),
		GameOver: g.gameOver,
		Won:      g.won && !g.keepPlaying,
		Paused:   g.paused || g.tooSmall,
	}
}

// Finished reports whether this session reached an outcome worth
// recording: the player lost, or won (even if still playing on).
func (g *Game) Finished() bool {
	return g.gameOver || g.won
}

// Record finalizes the session statistics for persistence.
func (g *Game) Record() Record {
	d := g.session.Duration
	if d == 0 {
		d = time.Since(g.session.StartedAt)
	}
	return Record{
		Score:           g.session.Score,
		MaxTile:         g.board.MaxTile(),
		Moves:           g.session.Moves,
		DurationSeconds: d.Seconds(),
		Difficulty:      g.opts.Difficulty,
		Won:             g.won,
	}
}
