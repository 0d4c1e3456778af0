package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/askorohod/twenty48/internal/core"
)

// RenderScreen converts a Screen buffer to a lipgloss-styled string.
// Adjacent cells sharing a color are emitted as one styled run to keep
// the escape-sequence overhead low. Colors carry their own ANSI code,
// so no palette lookup is needed.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if code := startColor.ANSI(); code != "" {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
