package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// palette is indexed by core.Color.
var palette = [...]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightCyan:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// styleFor returns the style of c, falling back to the default style for
// colors outside the palette.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Most of the playfield is empty, so runs of blanks are written unstyled
// whatever their color.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes row y as runs of equally colored cells.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	for x := 0; x < s.Width(); {
		color := s.GetCell(x, y).Color
		blank := true

		run.Reset()
		for ; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				break
			}
			blank = blank && cell.Rune == ' '
			run.WriteRune(cell.Rune)
		}

		if blank {
			sb.WriteString(run.String())
			continue
		}
		sb.WriteString(styleFor(color).Render(run.String()))
	}
}
