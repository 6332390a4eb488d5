package guidance

import (
	"fmt"
	"image/color"
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

// GuidanceScreen lists target roles and how well the user matches them.
type GuidanceScreen struct {
	roles  []results.CareerRole
	scroll components.Scroll
}

var _ screen.Screen = (*GuidanceScreen)(nil)

// New creates a GuidanceScreen for roles.
func New(roles []results.CareerRole) *GuidanceScreen {
	return &GuidanceScreen{roles: roles}
}

func (s *GuidanceScreen) Init() tea.Cmd { return nil }

func (s *GuidanceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	k := components.Keys
	switch {
	case key.Matches(kmsg, k.Home), key.Matches(kmsg, k.Next), kmsg.String() == "enter":
		return s, router.NavigateTo(router.RouteHome)
	case key.Matches(kmsg, k.Back):
		return s, router.NavigateTo(router.RouteRecommendations)
	}
	s.scroll, _ = s.scroll.Update(msg)
	return s, nil
}

func tierColor(t results.Tier) color.Color {
	switch t {
	case results.TierStrong:
		return theme.Accent
	case results.TierGood:
		return theme.Primary
	}
	return theme.TextDim
}

func (s *GuidanceScreen) renderRole(r results.CareerRole, cw int) string {
	title := r.Title + "  " + components.Badge(fmt.Sprintf("%d%% Match", r.Match), tierColor(r.Tier()))

	facts := strings.Join([]string{
		theme.Subtitle.Render("Salary: ") + theme.Body.Render(r.Salary),
		theme.Subtitle.Render("Demand: ") + theme.Body.Render(r.Demand),
		theme.Subtitle.Render("⏱ ") + theme.Body.Render(results.TimeToReady),
	}, "   ")

	skills := make([]string, len(r.Skills))
	for i, sk := range r.Skills {
		skills[i] = lipgloss.NewStyle().
			Foreground(theme.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Render(sk)
	}

	body := theme.Subtitle.Render(r.Description) + "\n" + facts + "\n\n" +
		theme.Heading.Render("Key Skills Required") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, skills...)
	return components.Card(title, body, cw, theme.Recommendation)
}

func (s *GuidanceScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		components.PageHeading("Career & Learning Guidance",
			"Your personalized DevOps career roadmap", theme.Primary),
		components.PageHeading("DevOps Career Roles & Market Fit",
			"Based on your assessment results", theme.Recommendation),
	}
	for _, r := range s.roles {
		sections = append(sections, s.renderRole(r, cw))
	}
	sections = append(sections, components.NavBar(
		components.NewButton("← Back to Recommendations", true),
		components.NewButton("Return to Home →", true),
		cw))

	content := lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(sections, "\n\n"))
	return s.scroll.View(content, height)
}

func (s *GuidanceScreen) Title() string {
	return "Career Guidance"
}

func (s *GuidanceScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return []layout.KeyHint{
		components.Hint(k.PageDown),
		components.Hint(k.Home),
		{Key: "p", Description: "Recommendations"},
	}
}
