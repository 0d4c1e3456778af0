package game

import (
	"fmt"
	"strconv"

	"github.com/askorohod/twenty48/internal/config"
	"github.com/askorohod/twenty48/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// darkTiles maps tile values to colors on dark terminals.
var darkTiles = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorOrange,
	16:   core.ColorBrightRed,
	32:   core.ColorRed,
	64:   core.ColorBrightMagenta,
	128:  core.ColorYellow,
	256:  core.ColorBrightYellow,
	512:  core.ColorGreen,
	1024: core.ColorBrightGreen,
	2048: core.ColorBrightCyan,
}

// lightTiles maps tile values to colors on light terminals.
var lightTiles = map[int]core.Color{
	2:    core.ColorGray,
	4:    core.ColorBlue,
	8:    core.ColorOrange,
	16:   core.ColorRed,
	32:   core.ColorBrightRed,
	64:   core.ColorMagenta,
	128:  core.ColorYellow,
	256:  core.ColorBrightYellow,
	512:  core.ColorGreen,
	1024: core.ColorBrightGreen,
	2048: core.ColorCyan,
}

// tileColor returns the display color for a tile value.
// Values beyond 2048 share one celebratory color.
func (g *Game) tileColor(value int) core.Color {
	palette := darkTiles
	if g.opts.Theme == config.ThemeLight {
		palette = lightTiles
	}
	if c, ok := palette[value]; ok {
		return c
	}
	return core.ColorBrightBlue
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.board.Size()
	boardW := size*cellWidth + 1  // +1 for right border
	boardH := size*cellHeight + 1 // +1 for bottom border

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)

	if g.animating && g.animationPhase == PhaseSlide {
		g.renderSlidingTiles(dst, boardX, boardY)
	} else {
		g.renderTiles(dst, boardX, boardY)
	}

	if y := boardY + boardH + 1; y < g.screenH {
		dst.DrawTextCentered(y, g.Controls())
	}

	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a resize hint. Kept short so it survives on
// terminals narrower than the board.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Too small")
	dst.DrawTextCentered(y+1, "Resize me")
}

// renderHUD draws the score line and session info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColored(titleX, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.session.Score))

	info := fmt.Sprintf("Max: %d  Moves: %d", g.board.MaxTile(), g.session.Moves)
	infoX := boardX + boardW - len(info)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, info)

	mode := fmt.Sprintf("%s / target %d", g.opts.Difficulty, g.opts.WinTarget)
	modeX := boardX + (boardW-len(mode))/2
	dst.DrawTextColored(modeX, 2, mode, core.ColorGray)
}

// renderGrid draws the grid borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	size := g.board.Size()

	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
}

// renderTiles draws the board tiles in their settled positions.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	size := g.board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			val := g.board.At(x, y)
			if val == 0 {
				continue
			}

			// A freshly spawned tile pops in halfway through the
			// animation rather than appearing instantly.
			if g.animating && g.animationPhase == PhasePop &&
				len(g.animations) == 1 &&
				g.animations[0].FromX == x && g.animations[0].FromY == y &&
				g.animations[0].Progress < 0.5 {
				continue
			}

			g.drawTile(dst, boardX, boardY, x, y, val)
		}
	}
}

// renderSlidingTiles draws tiles at interpolated positions mid-slide.
func (g *Game) renderSlidingTiles(dst *core.Screen, boardX, boardY int) {
	for i := range g.animations {
		a := &g.animations[i]
		fx, fy := a.interpolatePosition()
		cellX := boardX + int(fx*cellWidth+0.5) + 1
		cellY := boardY + int(fy*cellHeight+0.5) + 1
		g.drawTileAt(dst, cellX, cellY, a.Value)
	}
}

// drawTile draws a tile value centered in its grid cell.
func (g *Game) drawTile(dst *core.Screen, boardX, boardY, x, y, val int) {
	cellX := boardX + x*cellWidth + 1
	cellY := boardY + y*cellHeight + 1
	g.drawTileAt(dst, cellX, cellY, val)
}

// drawTileAt draws a tile value at an absolute screen position.
func (g *Game) drawTileAt(dst *core.Screen, cellX, cellY, val int) {
	valStr := strconv.Itoa(val)
	padLeft := (cellWidth - 1 - len(valStr)) / 2
	if padLeft < 0 {
		padLeft = 0
	}
	dst.DrawTextColored(cellX+padLeft, cellY, valStr, g.tileColor(val))
}

// renderOverlays draws state overlays over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")

	case g.won && !g.keepPlaying:
		target := fmt.Sprintf("You reached %d!", g.opts.WinTarget)
		g.drawOverlay(dst, centerX, centerY, "YOU WIN", target,
			"C: keep playing  R: restart")

	case g.gameOver:
		score := fmt.Sprintf("Score: %d  Max tile: %d", g.session.Score, g.board.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", score, "Press R to restart")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	box := core.Rect{
		X: centerX - (maxLen+4)/2,
		Y: centerY - (len(lines)+2)/2,
		W: maxLen + 4,
		H: len(lines) + 2,
	}

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints shown under the board.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
