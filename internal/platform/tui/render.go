package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/reef-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           fg("1"),
	core.ColorGreen:         fg("2"),
	core.ColorYellow:        fg("3"),
	core.ColorBlue:          fg("4"),
	core.ColorMagenta:       fg("5"),
	core.ColorCyan:          fg("6"),
	core.ColorWhite:         fg("7"),
	core.ColorBrightRed:     fg("9"),
	core.ColorBrightGreen:   fg("10"),
	core.ColorBrightYellow:  fg("11"),
	core.ColorBrightBlue:    fg("12"),
	core.ColorBrightMagenta: fg("13"),
	core.ColorBrightCyan:    fg("14"),
	core.ColorBrightWhite:   fg("15"),
	core.ColorOrange:        fg("208"),
	core.ColorGray:          fg("245"),
	core.ColorDeepBlue:      fg("24"),
	core.ColorTeal:          fg("30"),
	core.ColorPink:          fg("218"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderScreen converts a whole Screen buffer to a styled string.
func RenderScreen(s *core.Screen) string {
	return RenderRect(s, core.NewRect(0, 0, s.Width(), s.Height()))
}

// RenderRect converts the cells of s inside r to a styled string.
// Adjacent cells with the same color share one escape sequence.
func RenderRect(s *core.Screen, r core.Rect) string {
	var sb strings.Builder
	sb.Grow(r.W*r.H*2 + r.H)

	var run strings.Builder
	for y := r.Y; y < r.Bottom(); y++ {
		if y > r.Y {
			sb.WriteRune('\n')
		}

		x := r.X
		for x < r.Right() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < r.Right(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
