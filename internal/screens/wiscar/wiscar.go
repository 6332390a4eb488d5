package wiscar

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/results"
	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screen"
	"github.com/abhisek/navigator/internal/ui/components"
	"github.com/abhisek/navigator/internal/ui/layout"
	"github.com/abhisek/navigator/internal/ui/theme"
)

// WISCARScreen shows the six-dimension readiness analysis.
type WISCARScreen struct {
	scores results.Scores
	scroll components.Scroll
}

var _ screen.Screen = (*WISCARScreen)(nil)

// New creates a WISCARScreen for scores.
func New(scores results.Scores) *WISCARScreen {
	return &WISCARScreen{scores: scores}
}

func (s *WISCARScreen) Init() tea.Cmd { return nil }

func (s *WISCARScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, components.Keys.Next), kmsg.String() == "enter":
		return s, router.NavigateTo(router.RouteRecommendations)
	case key.Matches(kmsg, components.Keys.Back):
		return s, router.NavigateTo(router.RouteTechnical)
	}
	s.scroll, _ = s.scroll.Update(msg)
	return s, nil
}

func (s *WISCARScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		components.PageHeading("WISCAR Framework Analysis",
			"Holistic readiness assessment across six key dimensions", theme.WISCAR),
		s.renderOverall(cw),
		s.renderDimensions(cw),
		components.Card("Readiness Matrix", renderMatrix(results.MatrixPosition(s.scores), cw-4), cw, theme.WISCAR),
		components.Card("Key Insights", renderInsights(), cw, theme.Primary),
		components.NavBar(
			components.NewButton("← Back to Technical Assessment", true),
			components.NewButton("View Personalized Recommendations →", true),
			cw),
	}

	content := lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(sections, "\n\n"))
	return s.scroll.View(content, height)
}

func (s *WISCARScreen) renderOverall(cw int) string {
	overall := s.scores.Overall()
	r := results.ReadinessFor(overall)

	score := theme.ScoreStyle(overall).Bold(true).Render(fmt.Sprintf("%d/100", overall))
	body := lipgloss.NewStyle().Width(cw - 4).Align(lipgloss.Center).Render(
		score + "\n" +
			components.Badge(r.Level, theme.ScoreStyle(overall).GetForeground()) + "\n" +
			theme.Subtitle.Render(r.Description))
	return components.Card("Overall Readiness Score", body, cw, theme.WISCAR)
}

// renderDimensions lays the dimension cards out two per row.
func (s *WISCARScreen) renderDimensions(cw int) string {
	perRow := 2
	if cw < 60 {
		perRow = 1
	}
	cardWidth := cw/perRow - (perRow - 1)

	var rows []string
	var row []string
	for _, d := range results.Dimensions {
		row = append(row, s.renderDimension(d, cardWidth))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, join(row, " ")...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, join(row, " ")...))
	}
	return strings.Join(rows, "\n")
}

func (s *WISCARScreen) renderDimension(d results.Dimension, w int) string {
	info := d.Info()
	score := s.scores[d]
	interp := results.Interpret(score)
	style := theme.ScoreStyle(score)

	head := style.Bold(true).Render(fmt.Sprintf("%d", score)) + "  " +
		components.Badge(interp.Label, style.GetForeground())
	bar := components.NewProgressBar("", float64(score)/100, false, w-4)
	fill := lipgloss.NewStyle().Background(style.GetForeground())
	bar.Fill = &fill

	body := head + "\n" + bar.View() + "\n" + theme.Subtitle.Render(info.Description)
	return components.Card(info.Name, body, w, theme.WISCAR)
}

func join(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}

func renderInsights() string {
	lines := make([]string, len(results.KeyInsights))
	for i, in := range results.KeyInsights {
		lines[i] = theme.Heading.Render(in.Title) + "\n" + theme.Subtitle.Render(in.Text)
	}
	return strings.Join(lines, "\n\n")
}

func (s *WISCARScreen) Title() string {
	return "WISCAR Analysis"
}

func (s *WISCARScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return []layout.KeyHint{
		components.Hint(k.PageDown),
		{Key: "n", Description: "Recommendations"},
		{Key: "p", Description: "Technical"},
	}
}
