package psychometric

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/navigator/internal/assessment"
	"github.com/abhisek/navigator/internal/bank"
	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screen"
	"github.com/abhisek/navigator/internal/ui/components"
	"github.com/abhisek/navigator/internal/ui/layout"
	"github.com/abhisek/navigator/internal/ui/theme"
)

// PsychometricScreen walks through the self-report questions. Answers are
// kept only for the lifetime of the screen.
type PsychometricScreen struct {
	flow   *assessment.Flow
	radio  components.RadioGroup
	slider components.Slider
	logger *zap.Logger
}

var _ screen.Screen = (*PsychometricScreen)(nil)

// New creates a PsychometricScreen over m. A nil logger discards logs.
func New(m *bank.Module, logger *zap.Logger) *PsychometricScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PsychometricScreen{
		flow:   assessment.NewFlow(m),
		logger: logger.With(zap.String("module", string(m.ID))),
	}
	s.loadQuestion()
	return s
}

// loadQuestion resets the input widgets for the current question, restoring
// any answer already given.
func (s *PsychometricScreen) loadQuestion() {
	q := s.flow.CurrentQuestion()
	ans, answered := s.flow.CurrentAnswer()

	if q.Type == bank.TypeSlider {
		s.slider = components.NewSlider(bank.SliderMin, bank.SliderMax, bank.SliderDefault)
		s.slider.MinLabel = fmt.Sprintf("Not Important (%d)", bank.SliderMin)
		s.slider.MaxLabel = fmt.Sprintf("Extremely Important (%d)", bank.SliderMax)
		if answered {
			s.slider = s.slider.WithValue(ans)
		}
		return
	}

	s.radio = components.NewRadioGroup(q.Choices())
	if answered {
		s.radio = s.radio.WithChosen(ans)
	}
}

func (s *PsychometricScreen) Init() tea.Cmd {
	return nil
}

func (s *PsychometricScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, components.Keys.Next):
		return s, s.next()
	case key.Matches(kmsg, components.Keys.Back):
		return s, s.previous()
	}

	q := s.flow.CurrentQuestion()
	if q.Type == bank.TypeSlider {
		var changed bool
		s.slider, changed = s.slider.Update(msg)
		if changed {
			s.record(q.ID, s.slider.Value)
		}
		return s, nil
	}

	var picked bool
	s.radio, picked = s.radio.Update(msg)
	if picked {
		s.record(q.ID, s.radio.Chosen)
	}
	return s, nil
}

func (s *PsychometricScreen) record(id string, value int) {
	if err := s.flow.RecordAnswer(id, value); err != nil {
		s.logger.Warn("answer rejected", zap.String("question", id), zap.Error(err))
		return
	}
	s.logger.Debug("answer recorded", zap.String("question", id), zap.Int("value", value))
}

func (s *PsychometricScreen) next() tea.Cmd {
	switch s.flow.Advance() {
	case assessment.SignalAdvanced:
		s.loadQuestion()
	case assessment.SignalModuleComplete:
		s.logger.Info("module complete", zap.Int("answered", s.flow.Answered()))
		return router.NavigateTo(router.RouteTechnical)
	}
	return nil
}

func (s *PsychometricScreen) previous() tea.Cmd {
	switch s.flow.Retreat() {
	case assessment.SignalRetreated:
		s.loadQuestion()
	case assessment.SignalExitPrevious:
		return router.NavigateTo(router.RouteIntroduction)
	}
	return nil
}

func (s *PsychometricScreen) View(width, height int) string {
	m := s.flow.Module()
	q := s.flow.CurrentQuestion()
	cw := components.ContentWidth(width)

	status := components.Badge(m.CategoryName(q.Category), theme.Psychometric) + "  " +
		theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.flow.Index()+1, s.flow.Len()))
	if m.Estimate != "" {
		est := theme.Hint.Render("⏱ " + m.Estimate)
		gap := max(cw-lipgloss.Width(status)-lipgloss.Width(est), 1)
		status += strings.Repeat(" ", gap) + est
	}

	bar := components.NewProgressBar("", s.flow.Percent(), false, cw)
	fill := lipgloss.NewStyle().Background(theme.Psychometric)
	bar.Fill = &fill

	var body strings.Builder
	body.WriteString(theme.Heading.Render(q.Prompt))
	if q.Description != "" {
		body.WriteString("\n" + theme.Subtitle.Render(q.Description))
	}
	body.WriteString("\n\n")
	if q.Type == bank.TypeSlider {
		body.WriteString(s.slider.View(cw - 4))
		body.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("Current: %d/%d", s.slider.Value, bank.SliderMax)))
	} else {
		body.WriteString(s.radio.View())
	}

	sections := []string{
		components.PageHeading(m.Title, m.Subtitle, theme.Psychometric),
		status + "\n" + bar.View(),
		components.Card("", body.String(), cw, theme.Psychometric),
		s.renderNav(cw),
	}
	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = append(sections, renderCategories(m, cw))
	}

	return lipgloss.NewStyle().Padding(0, 2).MaxHeight(height).
		Render(strings.Join(sections, "\n\n"))
}

func (s *PsychometricScreen) renderNav(cw int) string {
	back := "← Previous"
	if s.flow.IsFirst() {
		back = "← Back to Introduction"
	}
	next := "Next →"
	if s.flow.IsLast() {
		next = "Continue to Technical Assessment →"
	}

	progress := theme.Subtitle.Render(fmt.Sprintf("Progress: %d%%", int(s.flow.Percent()*100+0.5)))
	dots := components.Dots(s.flow.Len(), s.flow.Index(), func(i int) bool {
		_, ok := s.flow.Answer(s.flow.Module().Questions[i].ID)
		return ok
	})
	nav := components.NavBar(
		components.NewButton(back, true),
		components.NewButton(next, s.flow.CanAdvance()),
		cw)
	return nav + "\n" + lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(progress+"  "+dots)
}

func renderCategories(m *bank.Module, cw int) string {
	cols := make([]string, len(m.Categories))
	colWidth := max(cw/max(len(m.Categories), 1)-2, 12)
	for i, c := range m.Categories {
		cols[i] = lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center).Render(
			theme.Heading.Render(c.Label) + "\n" + theme.Hint.Render(c.Blurb))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (s *PsychometricScreen) Title() string {
	return "Psychometric Assessment"
}

func (s *PsychometricScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	hints := components.Hints(k.Up, k.Select)
	if s.flow.CurrentQuestion().Type == bank.TypeSlider {
		hints = components.Hints(k.Left, k.Select)
	}
	return append(hints, components.Hint(k.Next), components.Hint(k.Back))
}
