package technical

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/bank"
	"github.com/abhisek/navigator/internal/ui/components"
	"github.com/abhisek/navigator/internal/ui/layout"
	"github.com/abhisek/navigator/internal/ui/theme"
)

func (s *TechnicalScreen) View(width, height int) string {
	m := s.quiz.Module()
	q := s.quiz.CurrentQuestion()
	cw := components.ContentWidth(width)

	sections := []string{
		components.PageHeading(m.Title, m.Subtitle, theme.Technical),
		s.renderStats(cw),
		components.Card("", s.renderQuestion(q, cw), cw, theme.Technical),
		s.renderNav(cw),
	}
	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = append(sections, renderCategories(m, cw))
	}

	return lipgloss.NewStyle().Padding(0, 2).MaxHeight(height).
		Render(strings.Join(sections, "\n\n"))
}

// renderStats shows score, time left and question position side by side.
func (s *TechnicalScreen) renderStats(cw int) string {
	boxWidth := max(cw/3-1, 14)
	box := func(label, value string) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Width(boxWidth).
			Align(lipgloss.Center).
			Render(theme.Subtitle.Render(label) + "\n" + value)
	}

	score := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).
		Render(fmt.Sprintf("%d/%d", s.quiz.Score(), s.quiz.Len()))
	timer := s.renderTimer()
	pos := lipgloss.NewStyle().Bold(true).Foreground(theme.Technical).
		Render(fmt.Sprintf("%d/%d", s.quiz.Index()+1, s.quiz.Len()))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		box("Score", score), " ",
		box("Time Left", timer), " ",
		box("Question", pos))
}

func (s *TechnicalScreen) renderTimer() string {
	style := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	switch {
	case !s.countdown.Running() && !s.countdown.Expired():
		style = theme.Disabled.Bold(true)
	case s.countdown.Urgent():
		style = theme.Incorrect
	}
	return style.Render("⏱ " + s.countdown.String())
}

func (s *TechnicalScreen) renderQuestion(q bank.Question, cw int) string {
	m := s.quiz.Module()
	var b strings.Builder

	b.WriteString(components.Badge(m.CategoryName(q.Category), categoryColor(q.Category)))
	if q.Difficulty != "" {
		b.WriteString(" " + components.Badge(titleCase(string(q.Difficulty)), difficultyColor(q.Difficulty)))
	}
	b.WriteString("  " + theme.Hint.Render(fmt.Sprintf("%ds", int(s.limit(q).Seconds()))))
	b.WriteString("\n\n" + theme.Heading.Render(q.Prompt) + "\n")

	bar := components.NewProgressBar("", s.quiz.Percent(), false, cw-4)
	fill := lipgloss.NewStyle().Background(theme.Technical)
	bar.Fill = &fill
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(s.radio.View())

	if s.radio.Locked {
		b.WriteString("\n\n" + s.renderExplanation(q, cw-4))
	} else if s.countdown.Expired() {
		b.WriteString("\n\n" + theme.Hint.Render("Time's up! You can still pick an answer."))
	}
	return b.String()
}

func (s *TechnicalScreen) renderExplanation(q bank.Question, w int) string {
	correct, _ := s.quiz.WasCorrect(q.ID)
	verdict := theme.Incorrect.Render("✗ Incorrect")
	if correct {
		verdict = theme.Correct.Render("✓ Correct!")
	}
	body := verdict
	if q.Explanation != "" {
		body += "\n" + theme.Body.Render(q.Explanation)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Primary).
		PaddingLeft(1).
		Width(max(w, 20)).
		Render(body)
}

func (s *TechnicalScreen) renderNav(cw int) string {
	back := "← Previous"
	if s.quiz.IsFirst() {
		back = "← Back to Psychometric"
	}
	next := "Next Question →"
	if s.quiz.IsLast() {
		next = "Continue to WISCAR Analysis →"
	}
	return components.NavBar(
		components.NewButton(back, true),
		components.NewButton(next, s.quiz.CanAdvance()),
		cw)
}

func renderCategories(m *bank.Module, cw int) string {
	cols := make([]string, len(m.Categories))
	colWidth := max(cw/max(len(m.Categories), 1)-2, 12)
	for i, c := range m.Categories {
		name := lipgloss.NewStyle().Bold(true).Foreground(categoryColor(c.ID)).Render(c.Label)
		cols[i] = lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center).
			Render(name + "\n" + theme.Hint.Render(c.Blurb))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func categoryColor(id string) color.Color {
	switch id {
	case "aptitude":
		return theme.Primary
	case "prerequisite":
		return theme.Technical
	case "devops":
		return theme.Accent
	}
	return theme.TextDim
}

func difficultyColor(d bank.Difficulty) color.Color {
	switch d {
	case bank.DifficultyEasy:
		return theme.Accent
	case bank.DifficultyMedium:
		return theme.Warning
	case bank.DifficultyHard:
		return theme.Error
	}
	return theme.TextDim
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
