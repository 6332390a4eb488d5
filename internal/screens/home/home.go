package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screen"
	"github.com/abhisek/navigator/internal/screens/about"
	"github.com/abhisek/navigator/internal/ui/components"
	"github.com/abhisek/navigator/internal/ui/layout"
)

// HomeScreen is the landing page.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New() *HomeScreen {
	items := []components.MenuItem{
		{Label: "Start Assessment", Action: func() tea.Cmd {
			return router.NavigateTo(router.RouteIntroduction)
		}},
		{Label: "Learn More", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: about.New()}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || width < 60

	cw := min(components.ContentWidth(width), 80)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(cw, compact),
		center(cw, h.menu.View()),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return components.Hints(k.Up, k.Select, k.Path)
}
