package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for page sections.
// All cards are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 96)
}

// Card wraps a titled body in a rounded border at width cw.
func Card(title, body string, cw int, accent color.Color) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(accent).Render(title))
		if body != "" {
			b.WriteString("\n")
		}
	}
	b.WriteString(body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(b.String())
}

// Badge renders a short inline label.
func Badge(label string, fg color.Color) string {
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(theme.BgCard).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// Bullets renders items as a bulleted list.
func Bullets(items []string, mark string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = mark + " " + it
	}
	return strings.Join(lines, "\n")
}

// PageHeading renders a page title and subtitle.
func PageHeading(title, subtitle string, accent color.Color) string {
	t := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(title)
	if subtitle == "" {
		return t
	}
	return t + "\n" + theme.Subtitle.Render(subtitle)
}
