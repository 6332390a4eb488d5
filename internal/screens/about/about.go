// Package about renders the assessment framework overview opened from the
// home screen.
package about

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screen"
	"github.com/abhisek/navigator/internal/ui/components"
	"github.com/abhisek/navigator/internal/ui/layout"
	"github.com/abhisek/navigator/internal/ui/theme"
)

type framework struct {
	name     string
	duration string
	blurb    string
	accent   color.Color
}

var frameworks = []framework{
	{"Psychometric Analysis", "2-10 mins", "Evaluate personality traits, interests, and cognitive style compatibility with DevOps roles.", theme.Psychometric},
	{"Technical & Aptitude", "10-12 mins", "Test logical reasoning, technical knowledge, and problem-solving abilities.", theme.Technical},
	{"WISCAR Framework", "5 mins", "Comprehensive analysis of Will, Interest, Skill, Cognitive, Ability, and Real-world alignment.", theme.WISCAR},
	{"AI Recommendations", "2 mins", "Get a personalized career recommendation with confidence scoring.", theme.Recommendation},
	{"Career Guidance", "3-5 mins", "Explore matching DevOps roles, salary ranges, and market demand.", theme.Secondary},
	{"Detailed Results", "Instant", "Review strengths, development areas, and a step-by-step learning path.", theme.Accent},
}

var pillars = []string{
	"Automation Focus: streamline development and deployment processes",
	"Cross-Functional Collaboration: bridge development and operations teams",
	"Continuous Learning: keep pace with evolving tools and practices",
}

var roles = []string{"DevOps Engineer", "Site Reliability Engineer", "Cloud Engineer", "Automation Engineer"}

// AboutScreen lists the assessment modules.
type AboutScreen struct {
	scroll components.Scroll
}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates an AboutScreen.
func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd { return nil }

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return a, router.NavigateTo(router.RouteIntroduction)
	}
	a.scroll, _ = a.scroll.Update(msg)
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, components.PageHeading("Assessment Framework",
		"Our comprehensive evaluation covers six key areas to provide you with accurate career guidance",
		theme.Primary))

	for _, f := range frameworks {
		title := f.name + "  " + components.Badge(f.duration, theme.TextDim)
		sections = append(sections, components.Card(title, theme.Body.Render(f.blurb), cw, f.accent))
	}

	devops := components.Bullets(pillars, "•") + "\n\n" +
		theme.Heading.Render("Career Roles") + "\n" +
		theme.Subtitle.Render(strings.Join(roles, " · "))
	sections = append(sections, components.Card("What is DevOps?", devops, cw, theme.Primary))
	sections = append(sections, theme.Hint.Render("Enter to start the assessment · Esc to go back"))

	content := lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(sections, "\n\n"))
	return a.scroll.View(content, height)
}

func (a *AboutScreen) Title() string {
	return "Learn More"
}

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return append(components.Hints(k.PageDown),
		layout.KeyHint{Key: "Enter", Description: "Start"},
		layout.KeyHint{Key: "Esc", Description: "Back"})
}
