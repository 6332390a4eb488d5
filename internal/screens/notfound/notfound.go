package notfound

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screen"
	"github.com/abhisek/navigator/internal/ui/layout"
	"github.com/abhisek/navigator/internal/ui/theme"
)

// NotFoundScreen is shown for paths that match no route.
type NotFoundScreen struct {
	path string
}

var _ screen.Screen = (*NotFoundScreen)(nil)

// New creates a NotFoundScreen for the unresolved path.
func New(path string) *NotFoundScreen {
	return &NotFoundScreen{path: path}
}

func (p *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (p *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "space", "g":
			return p, router.NavigateTo(router.RouteHome)
		}
	}
	return p, nil
}

// Path returns the path that failed to resolve.
func (p *NotFoundScreen) Path() string {
	return p.path
}

func (p *NotFoundScreen) View(width, height int) string {
	code := lipgloss.NewStyle().Bold(true).Foreground(theme.Error).Render("404")
	msg := theme.Heading.Render("Oops! Page not found")
	path := theme.Subtitle.Render("No page at ") + lipgloss.NewStyle().Foreground(theme.Warning).Render(p.path)
	hint := theme.Hint.Render("Press Enter to return to Home")

	content := lipgloss.JoinVertical(lipgloss.Center, code, "", msg, path, "", hint)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *NotFoundScreen) Title() string {
	return "Not Found"
}

func (p *NotFoundScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Home"}}
}
