package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/ui/components"
	"github.com/abhisek/navigator/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const titleFull = `██████╗ ███████╗██╗   ██╗ ██████╗ ██████╗ ███████╗
██╔══██╗██╔════╝██║   ██║██╔═══██╗██╔══██╗██╔════╝
██║  ██║█████╗  ██║   ██║██║   ██║██████╔╝███████╗
██║  ██║██╔══╝  ╚██╗ ██╔╝██║   ██║██╔═══╝ ╚════██║
██████╔╝███████╗ ╚████╔╝ ╚██████╔╝██║     ███████║
╚═════╝ ╚══════╝  ╚═══╝   ╚═════╝ ╚═╝     ╚══════╝`

const titleCompact = "DevOps Navigator AI"

const description = "Discover your DevOps readiness with our comprehensive assessment platform. " +
	"Get personalized insights into your skills, personality fit, and career alignment."

type stat struct {
	value, label string
}

var stats = []stat{
	{"20-30", "Minutes Assessment"},
	{"6", "Assessment Modules"},
	{"100%", "Personalized Results"},
}

func center(cw int, s string) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

// renderTitle returns the badge, title block and description.
func renderTitle(cw int, compact bool) string {
	badge := components.Badge("AI-Powered Career Assessment", theme.Secondary)
	if compact {
		return center(cw, badge+"\n\n"+theme.Title.Render(titleCompact))
	}

	art := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(titleFull)
	navigator := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("N A V I G A T O R   A I")
	desc := lipgloss.NewStyle().
		Width(min(cw, 72)).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(description)

	return center(cw, strings.Join([]string{badge, "", art, navigator, "", desc}, "\n"))
}

// renderStatsBar renders the three landing stats in a bordered box.
func renderStatsBar(cw int, compact bool) string {
	valueStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	sep := "   "
	if compact {
		sep = "  "
	}
	parts := make([]string, len(stats))
	for i, s := range stats {
		parts[i] = valueStyle.Render(s.value) + " " + labelStyle.Render(s.label)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, sep))
}
