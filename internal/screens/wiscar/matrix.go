package wiscar

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/results"
	"github.com/abhisek/navigator/internal/ui/theme"
)

const (
	matrixRows   = 11
	markerGlyph  = "◆"
	maxGridWidth = 48
)

// cell maps a percentage position onto a grid of n cells.
func cell(pct float64, n int) int {
	c := int(math.Round(pct / 100 * float64(n-1)))
	return min(max(c, 0), n-1)
}

// renderMatrix draws the readiness and alignment quadrants with a marker
// at p.
func renderMatrix(p results.Point, w int) string {
	cols := min(max(w-14, 21), maxGridWidth)
	midCol, midRow := cols/2, matrixRows/2
	markCol, markRow := cell(p.X, cols), cell(p.Y, matrixRows)

	grid := lipgloss.NewStyle().Foreground(theme.Border)
	marker := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)

	var b strings.Builder
	for r := range matrixRows {
		label := "          "
		switch r {
		case 0:
			label = "High Align"
		case matrixRows - 1:
			label = "Low Align "
		}
		b.WriteString(theme.Hint.Render(label) + " ")

		for c := range cols {
			switch {
			case r == markRow && c == markCol:
				b.WriteString(marker.Render(markerGlyph))
			case r == midRow && c == midCol:
				b.WriteString(grid.Render("┼"))
			case r == midRow:
				b.WriteString(grid.Render("─"))
			case c == midCol:
				b.WriteString(grid.Render("│"))
			default:
				b.WriteString(grid.Render("·"))
			}
		}
		b.WriteString("\n")
	}

	axis := "Low Readiness" + strings.Repeat(" ", max(cols-len("Low Readiness")-len("High Readiness"), 1)) + "High Readiness"
	b.WriteString(strings.Repeat(" ", 11) + theme.Hint.Render(axis) + "\n\n")
	b.WriteString(marker.Render(markerGlyph+" You are here") + "  " +
		theme.Subtitle.Render(results.Quadrant(p)))
	return b.String()
}
