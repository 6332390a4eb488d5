package recommendations

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

// RecommendationsScreen presents the career recommendation and plan.
type RecommendationsScreen struct {
	confidence int
	rec        results.Recommendation
	scroll     components.Scroll
}

var _ screen.Screen = (*RecommendationsScreen)(nil)

// New creates a RecommendationsScreen for a confidence score.
func New(confidence int) *RecommendationsScreen {
	return &RecommendationsScreen{
		confidence: confidence,
		rec:        results.RecommendationFor(confidence),
	}
}

func (s *RecommendationsScreen) Init() tea.Cmd { return nil }

func (s *RecommendationsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, components.Keys.Next), kmsg.String() == "enter":
		return s, router.NavigateTo(router.RouteGuidance)
	case key.Matches(kmsg, components.Keys.Back):
		return s, router.NavigateTo(router.RouteWISCAR)
	}
	s.scroll, _ = s.scroll.Update(msg)
	return s, nil
}

func (s *RecommendationsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		components.PageHeading("AI-Powered Recommendations",
			"Personalized career advice based on your comprehensive assessment", theme.Recommendation),
		s.renderHeadline(cw),
		s.renderInsights(cw),
	}
	if s.rec.ShowsPlan() {
		sections = append(sections,
			components.Card("Recommended Learning Path", renderPath(), cw, theme.Primary),
			components.Card("Recommended Hands-on Projects", renderProjects(), cw, theme.Technical),
		)
	}
	sections = append(sections,
		components.Card("Alternative Career Paths", renderAlternatives(), cw, theme.Secondary),
		components.NavBar(
			components.NewButton("← Back to WISCAR Analysis", true),
			components.NewButton("Explore Career Guidance →", true),
			cw),
	)

	content := lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(sections, "\n\n"))
	return s.scroll.View(content, height)
}

func verdictStyle(v results.Verdict) lipgloss.Style {
	switch v {
	case results.VerdictYes:
		return theme.Correct
	case results.VerdictMaybe:
		return lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	}
	return theme.Incorrect
}

func verdictIcon(v results.Verdict) string {
	switch v {
	case results.VerdictYes:
		return "✓"
	case results.VerdictMaybe:
		return "!"
	}
	return "✗"
}

func (s *RecommendationsScreen) renderHeadline(cw int) string {
	style := verdictStyle(s.rec.Verdict)
	title := style.Render(verdictIcon(s.rec.Verdict) + " " + s.rec.Title)
	conf := components.Badge(fmt.Sprintf("Confidence Score: %d%%", s.confidence), style.GetForeground())
	bar := components.NewProgressBar("", float64(s.confidence)/100, true, cw-4)

	body := title + "\n" + theme.Subtitle.Render(s.rec.Description) + "\n\n" + conf + "\n" + bar.View()
	return components.Card("", body, cw, theme.Recommendation)
}

func (s *RecommendationsScreen) renderInsights(cw int) string {
	notes := func(ns []results.Note, mark string, style lipgloss.Style) string {
		lines := make([]string, len(ns))
		for i, n := range ns {
			lines[i] = style.Render(mark) + " " + theme.Heading.Render(n.Title) + "\n  " + theme.Subtitle.Render(n.Detail)
		}
		return strings.Join(lines, "\n")
	}

	strengths := theme.Correct.Render("Key Strengths") + "\n" +
		notes(results.Strengths, "✓", theme.Correct)
	areas := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render("Development Areas") + "\n" +
		notes(results.DevelopmentAreas, "!", lipgloss.NewStyle().Foreground(theme.Warning))

	var body string
	if cw >= 70 {
		half := (cw - 6) / 2
		col := lipgloss.NewStyle().Width(half)
		body = lipgloss.JoinHorizontal(lipgloss.Top, col.Render(strengths), "  ", col.Render(areas))
	} else {
		body = strengths + "\n\n" + areas
	}
	return components.Card("Personalized Insights", body, cw, theme.Recommendation)
}

func renderPath() string {
	var b strings.Builder
	for i, p := range results.LearningPath {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(theme.Heading.Render(fmt.Sprintf("%d. %s", i+1, p.Name)) + "\n")
		b.WriteString(components.Bullets(p.Items, theme.Hint.Render("•")))
		if len(p.Resources) > 0 {
			res := make([]string, len(p.Resources))
			for j, r := range p.Resources {
				tag := components.Badge("Paid", theme.Warning)
				if r.Free {
					tag = components.Badge("Free", theme.Accent)
				}
				res[j] = r.Name + " " + tag
			}
			b.WriteString("\n" + theme.Subtitle.Render("Resources: ") + strings.Join(res, "  "))
		}
	}
	return b.String()
}

func renderProjects() string {
	lines := make([]string, len(results.Projects))
	for i, p := range results.Projects {
		lines[i] = theme.Heading.Render(p.Title) + "  " + components.Badge(p.Level, levelColor(p.Level)) + "\n" +
			theme.Subtitle.Render(p.Description) + "\n" +
			theme.Hint.Render(strings.Join(p.Skills, " · "))
	}
	return strings.Join(lines, "\n\n")
}

func renderAlternatives() string {
	lines := make([]string, len(results.Alternatives))
	for i, a := range results.Alternatives {
		lines[i] = theme.Heading.Render(a.Role) + "  " +
			components.Badge(string(a.Overlap)+" overlap", overlapColor(a.Overlap)) + "\n" +
			theme.Subtitle.Render(a.Description) + "\n" +
			theme.Hint.Render(a.Reasoning)
	}
	return strings.Join(lines, "\n\n")
}

func (s *RecommendationsScreen) Title() string {
	return "Recommendations"
}

func (s *RecommendationsScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return []layout.KeyHint{
		components.Hint(k.PageDown),
		{Key: "n", Description: "Guidance"},
		{Key: "p", Description: "WISCAR"},
	}
}
