package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// colorStyles maps each palette entry to a lipgloss style. ColorDefault
// stays unstyled so the terminal's own foreground shows through.
var colorStyles = buildColorStyles()

func buildColorStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, core.PaletteSize+1)
	for i := range core.PaletteSize {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(core.Color(i).Hex()))
	}
	styles[core.ColorDefault] = lipgloss.NewStyle()
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(colorStyles) {
		return colorStyles[core.ColorDefault]
	}
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
