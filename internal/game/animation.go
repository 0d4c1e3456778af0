package game

import "github.com/askorohod/twenty48/internal/board"

// Animation durations in ticks.
const (
	slideAnimationDuration = 8 // ~133ms at 60fps
	popAnimationDuration   = 6 // ~100ms at 60fps
)

// TileAnimation is one tile moving across the grid during a slide, or
// popping into existence after a spawn.
type TileAnimation struct {
	Value    int     // Tile value to draw (pre-merge value for sliders)
	FromX    int     // Start position (in cells)
	FromY    int
	ToX      int // End position (in cells)
	ToY      int
	Progress float64 // 0.0 -> 1.0
	Merged   bool    // Tile merges into its destination
	IsNew    bool    // Freshly spawned tile (pop effect)
}

// PendingTile stores the spawned tile animated after the slide phase.
type PendingTile struct {
	X, Y  int
	Value int
}

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// startSlideAnimation initializes slide animations from move records.
func (g *Game) startSlideAnimation(moves []board.TileMove) {
	g.animations = nil
	for _, m := range moves {
		g.animations = append(g.animations, TileAnimation{
			Value:  m.Value,
			FromX:  m.FromX,
			FromY:  m.FromY,
			ToX:    m.ToX,
			ToY:    m.ToY,
			Merged: m.Merged,
		})
	}
	g.animating = true
	g.animationPhase = PhaseSlide
	g.animationTicks = 0
}

// startPopAnimation initializes the pop animation for a spawned tile.
func (g *Game) startPopAnimation(x, y, value int) {
	g.animations = []TileAnimation{
		{
			Value: value,
			FromX: x, FromY: y,
			ToX: x, ToY: y,
			IsNew: true,
		},
	}
	g.animating = true
	g.animationPhase = PhasePop
	g.animationTicks = 0
}

// updateAnimation advances the animation state.
// Returns true while an animation is still in progress.
func (g *Game) updateAnimation() bool {
	if !g.animating {
		return false
	}

	g.animationTicks++

	var duration int
	switch g.animationPhase {
	case PhaseSlide:
		duration = slideAnimationDuration
	case PhasePop:
		duration = popAnimationDuration
	default:
		g.animating = false
		return false
	}

	progress := float64(g.animationTicks) / float64(duration)
	if progress > 1.0 {
		progress = 1.0
	}
	for i := range g.animations {
		g.animations[i].Progress = progress
	}

	if g.animationTicks >= duration {
		g.finishAnimation()
		return false
	}

	return true
}

// finishAnimation completes the current phase, chaining the spawn pop
// after the slide.
func (g *Game) finishAnimation() {
	if g.animationPhase == PhaseSlide && g.pendingSpawn != nil {
		g.startPopAnimation(g.pendingSpawn.X, g.pendingSpawn.Y, g.pendingSpawn.Value)
		g.pendingSpawn = nil
		return
	}

	g.animating = false
	g.animationPhase = PhaseNone
	g.animations = nil
}

// easeOutQuad provides smooth deceleration for the slide.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolatePosition calculates the tile's current position.
func (a *TileAnimation) interpolatePosition() (x, y float64) {
	t := easeOutQuad(a.Progress)
	x = float64(a.FromX) + (float64(a.ToX)-float64(a.FromX))*t
	y = float64(a.FromY) + (float64(a.ToY)-float64(a.FromY))*t
	return x, y
}
