package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cavern-arcade/cavern/internal/core"
)

// colorStyles maps core.Color values to lipgloss styles, indexed by the
// color constant.
var colorStyles = func() []lipgloss.Style {
	ansi := map[core.Color]string{
		core.ColorRed:           "1",
		core.ColorGreen:         "2",
		core.ColorYellow:        "3",
		core.ColorBlue:          "4",
		core.ColorMagenta:       "5",
		core.ColorCyan:          "6",
		core.ColorWhite:         "7",
		core.ColorBrightRed:     "9",
		core.ColorBrightGreen:   "10",
		core.ColorBrightYellow:  "11",
		core.ColorBrightBlue:    "12",
		core.ColorBrightMagenta: "13",
		core.ColorBrightCyan:    "14",
		core.ColorBrightWhite:   "15",
		core.ColorOrange:        "208",
		core.ColorGray:          "245",
	}
	styles := make([]lipgloss.Style, int(core.ColorGray)+1)
	for c := range styles {
		if code, ok := ansi[core.Color(c)]; ok {
			styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		} else {
			styles[c] = lipgloss.NewStyle()
		}
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent same-colored cells are grouped into one styled run to keep the
// ANSI overhead down at 60 frames per second.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() && s.GetCell(x, y).Color == start {
				run.WriteRune(s.GetCell(x, y).Rune)
				x++
			}

			if int(start) < len(colorStyles) {
				sb.WriteString(colorStyles[start].Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
