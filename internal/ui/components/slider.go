package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/ui/theme"
)

// Slider is a numeric rating in [Min, Max]. It starts at a displayed
// default that does not count as an answer until the user moves or
// confirms it.
type Slider struct {
	Min, Max int
	Value    int
	Touched  bool
	MinLabel string
	MaxLabel string
}

// NewSlider returns an untouched slider showing value.
func NewSlider(lo, hi, value int) Slider {
	return Slider{Min: lo, Max: hi, Value: value}
}

// WithValue returns s set to v and marked as answered.
func (s Slider) WithValue(v int) Slider {
	s.Value = min(max(v, s.Min), s.Max)
	s.Touched = true
	return s
}

// Update adjusts the value. changed reports whether the value should be
// recorded.
func (s Slider) Update(msg tea.Msg) (_ Slider, changed bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}
	switch {
	case key.Matches(kmsg, Keys.Left):
		if s.Value > s.Min {
			s.Value--
		}
	case key.Matches(kmsg, Keys.Right):
		if s.Value < s.Max {
			s.Value++
		}
	case key.Matches(kmsg, Keys.Select):
	default:
		return s, false
	}
	s.Touched = true
	return s, true
}

// View renders the track with the current value.
func (s Slider) View(width int) string {
	steps := s.Max - s.Min
	if steps <= 0 {
		return ""
	}
	track := max(width-10, steps+1)
	pos := (s.Value - s.Min) * (track - 1) / steps

	knob := theme.Selected
	if !s.Touched {
		knob = theme.Disabled
	}
	bar := theme.Selected.Render(strings.Repeat("━", pos)) +
		knob.Render("●") +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("━", track-pos-1))

	value := theme.Heading.Render(fmt.Sprintf("%d", s.Value))
	if !s.Touched {
		value += theme.Hint.Render("  (←/→ to set)")
	}

	labels := ""
	if s.MinLabel != "" || s.MaxLabel != "" {
		gap := max(track-lipgloss.Width(s.MinLabel)-lipgloss.Width(s.MaxLabel), 1)
		labels = "\n" + theme.Subtitle.Render(s.MinLabel+strings.Repeat(" ", gap)+s.MaxLabel)
	}
	return bar + "  " + value + labels
}
