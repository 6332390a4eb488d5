package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screen"
	"github.com/abhisek/navigator/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// pipeline stages light up one by one during the first phase.
var stages = []string{"plan", "code", "build", "test", "release", "deploy", "operate", "monitor"}

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation and then opens the start path.
type WelcomeScreen struct {
	start        string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that navigates to start when dismissed.
func New(start string) *WelcomeScreen {
	return &WelcomeScreen{start: start}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Navigate(w.start)
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, w.renderPipeline())

	if w.elapsed >= phase1End {
		sections = append(sections, "", RenderBanner(width))
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("N A V I G A T O R"))
	}

	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Discover your DevOps readiness"))
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("press any key to continue"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderPipeline draws the DevOps loop, one stage per tick until all are lit.
func (w *WelcomeScreen) renderPipeline() string {
	lit := min(w.tickCount, len(stages))
	on := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	off := lipgloss.NewStyle().Foreground(theme.Border)

	parts := make([]string, len(stages))
	for i, s := range stages {
		if i < lit {
			parts[i] = on.Render(s)
		} else {
			parts[i] = off.Render(s)
		}
	}
	spin := lipgloss.NewStyle().Foreground(theme.Primary).
		Render(spinnerFrames[w.tickCount%len(spinnerFrames)])
	return spin + " " + strings.Join(parts, off.Render(" → ")) + " " + spin
}
