package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette maps core.Color to lipgloss styles for one renderer. SSH sessions
// get their own renderer so colors follow the client's terminal.
type palette map[core.Color]lipgloss.Style

func newPalette(r *lipgloss.Renderer) palette {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return palette{
		core.ColorDefault:      r.NewStyle(),
		core.ColorRed:          fg("1"),
		core.ColorGreen:        fg("2"),
		core.ColorYellow:       fg("3"),
		core.ColorWhite:        fg("7"),
		core.ColorBrightGreen:  fg("10"),
		core.ColorBrightYellow: fg("11"),
		core.ColorOrange:       fg("208"),
		core.ColorGray:         fg("245"),
	}
}

// render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p palette) render(s *core.Screen) string {
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

			style, ok := p[color]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
