package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles. Frames use a handful of
// pairs, so styles are built once per renderer.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg: fg, bg: bg}
	if s, ok := c[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	c[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, make(styleCache))
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			first := s.GetGlyph(x, y)

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Fg != first.Fg || g.Bg != first.Bg {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			sb.WriteString(styles.get(first.Fg, first.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
