package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// palette gives each tetromino its ANSI 256 color and keeps the well
// border, empty cells and ghost in muted grays.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),   // Z
	core.ColorGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),   // S
	core.ColorYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),   // O, counters
	core.ColorBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),   // J
	core.ColorMagenta:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),   // I
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),   // overlay border
	core.ColorOrange:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // L
	core.ColorPurple:   lipgloss.NewStyle().Foreground(lipgloss.Color("129")), // T
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // border, ghost
	core.ColorDarkGray: lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // empty cells
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := palette[c]; ok {
		return st
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the frame drawn by tetris.Render into the string
// Model.View returns. A board row is mostly long stretches of one color,
// so each stretch is styled once instead of per cell.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var (
		out   strings.Builder
		run   strings.Builder
		color core.Color
	)
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(styleFor(color).Render(run.String()))
			run.Reset()
		}
	}

	for x, _n := 0, s.Width(); x < _n; x++ {
		cell := s.GetCell(x, y)
		if x == 0 || cell.Color != color {
			flush()
			color = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return out.String()
}
