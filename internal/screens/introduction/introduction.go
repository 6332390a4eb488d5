package introduction

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screen"
	"github.com/abhisek/navigator/internal/ui/components"
	"github.com/abhisek/navigator/internal/ui/layout"
	"github.com/abhisek/navigator/internal/ui/theme"
)

type entry struct {
	name, detail string
}

var practices = []string{
	"Automated CI/CD pipelines",
	"Cloud infrastructure management",
	"Continuous monitoring & security",
	"Cross-functional collaboration",
}

var roles = []entry{
	{"DevOps Engineer", "Build & maintain CI/CD pipelines"},
	{"Site Reliability Engineer", "Ensure system uptime & reliability"},
	{"Cloud Infrastructure Engineer", "Architect cloud solutions"},
	{"Automation Engineer", "Develop automation tools"},
}

var roleColors = []color.Color{theme.Primary, theme.Accent, theme.Technical, theme.Recommendation}

var traits = []entry{
	{"Strong Collaboration", "Work effectively across development and operations teams"},
	{"Automation Mindset", "Think in terms of scalable, repeatable processes"},
	{"Problem-Solving", "Analytical approach to complex system challenges"},
	{"Adaptability", "Embrace change and new technologies quickly"},
	{"Continuous Learning", "Stay current with evolving tools and practices"},
	{"Ownership Mindset", "Take responsibility for end-to-end delivery"},
}

var journey = []entry{
	{"Psychometric Analysis (8-10 mins)", "Personality fit, cognitive style, motivation assessment"},
	{"Technical & Aptitude (10-12 mins)", "Logical reasoning, DevOps knowledge, tool familiarity"},
	{"WISCAR Framework (5 mins)", "Holistic readiness across 6 key dimensions"},
	{"Personalized Results & Guidance", "Detailed insights, recommendations, and career pathways"},
}

// IntroductionScreen explains DevOps before the assessment starts.
type IntroductionScreen struct {
	showVideo bool
	scroll    components.Scroll
}

var _ screen.Screen = (*IntroductionScreen)(nil)

// New creates an IntroductionScreen.
func New() *IntroductionScreen {
	return &IntroductionScreen{}
}

func (s *IntroductionScreen) Init() tea.Cmd { return nil }

func (s *IntroductionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	k := components.Keys
	switch {
	case key.Matches(kmsg, k.Video):
		s.showVideo = !s.showVideo
		return s, nil
	case key.Matches(kmsg, k.Next), kmsg.String() == "enter":
		return s, router.NavigateTo(router.RoutePsychometric)
	case key.Matches(kmsg, k.Back):
		return s, router.NavigateTo(router.RouteHome)
	}

	s.scroll, _ = s.scroll.Update(msg)
	return s, nil
}

// ShowingVideo reports whether the video placeholder is expanded.
func (s *IntroductionScreen) ShowingVideo() bool {
	return s.showVideo
}

func (s *IntroductionScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		components.Badge("Welcome to DevOps Navigator AI", theme.Secondary),
		components.PageHeading("Discover Your DevOps Potential",
			"Take our comprehensive 20-30 minute assessment to understand your readiness for a career in DevOps engineering.",
			theme.Primary),
		components.Card("What is DevOps?", s.renderDevOps(cw), cw, theme.Primary),
		components.Card("Key Success Traits", renderList(traits, theme.Accent), cw, theme.Accent),
		components.Card("Your Assessment Journey", renderJourney(), cw, theme.Secondary),
		components.Card("Ready to Begin Your Assessment?",
			theme.Subtitle.Render("The assessment is designed to be comprehensive yet efficient. "+
				"Take your time, answer honestly, and get insights that could shape your career path."),
			cw, theme.Primary),
		components.NavBar(
			components.NewButton("← Back to Home", true),
			components.NewButton("Start Assessment →", true),
			cw),
	}

	content := lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(sections, "\n\n"))
	return s.scroll.View(content, height)
}

func (s *IntroductionScreen) renderDevOps(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Definition & Purpose") + "\n")
	b.WriteString(theme.Subtitle.Render("DevOps integrates development and operations teams to improve "+
		"software delivery and infrastructure management through:") + "\n")
	b.WriteString(components.Bullets(practices, theme.Correct.Render("✓")) + "\n\n")

	b.WriteString(theme.Heading.Render("Career Roles") + "\n")
	for i, r := range roles {
		name := lipgloss.NewStyle().Bold(true).Foreground(roleColors[i%len(roleColors)]).Render(r.name)
		b.WriteString(name + "  " + theme.Subtitle.Render(r.detail) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(s.renderVideo(cw - 8))
	return b.String()
}

func (s *IntroductionScreen) renderVideo(w int) string {
	head := theme.Heading.Render("▶ Quick Overview Video") + "  " + components.Badge("2 minutes", theme.TextDim)
	if !s.showVideo {
		return head + "\n" + theme.Hint.Render("Press v to watch: DevOps Explained in 2 Minutes")
	}
	screenBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		Width(max(w, 20)).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render(theme.Body.Render(`Video: "Introduction to DevOps"`) + "\n" +
			theme.Hint.Render("Educational content would be embedded here"))
	return head + "\n" +
		theme.Heading.Render("DevOps Explained in 2 Minutes") + "\n" +
		theme.Subtitle.Render("Watch this quick overview to understand DevOps fundamentals") + "\n" +
		screenBox
}

func renderList(items []entry, accent color.Color) string {
	name := lipgloss.NewStyle().Bold(true).Foreground(accent)
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = name.Render(it.name) + "\n  " + theme.Subtitle.Render(it.detail)
	}
	return strings.Join(lines, "\n")
}

func renderJourney() string {
	lines := make([]string, len(journey))
	for i, j := range journey {
		num := lipgloss.NewStyle().Bold(true).Foreground(theme.TextDim).Render(fmt.Sprintf("%d.", i+1))
		label := theme.Heading.Render(j.name)
		if i == 0 {
			num = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render(fmt.Sprintf("%d.", i+1))
			label += "  " + components.Badge("Next", theme.Primary)
		}
		lines[i] = num + " " + label + "\n   " + theme.Subtitle.Render(j.detail)
	}
	return strings.Join(lines, "\n")
}

func (s *IntroductionScreen) Title() string {
	return "Introduction"
}

func (s *IntroductionScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return []layout.KeyHint{
		components.Hint(k.PageDown),
		components.Hint(k.Video),
		{Key: "n", Description: "Start"},
		{Key: "p", Description: "Home"},
	}
}
