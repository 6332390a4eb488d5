package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/ui/theme"
)

// RadioGroup is a single-choice option list. Moving the cursor does not
// choose; Enter, space or a number key does.
type RadioGroup struct {
	Options []string
	Cursor  int
	// Chosen is the picked index, or -1.
	Chosen int
	// Locked groups ignore input, like a disabled radio group.
	Locked bool
	// Correct, when >= 0 and the group is locked, marks the right option.
	Correct int
}

// NewRadioGroup returns a group with nothing chosen.
func NewRadioGroup(options []string) RadioGroup {
	return RadioGroup{
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// WithChosen returns g with i chosen and the cursor on it.
func (g RadioGroup) WithChosen(i int) RadioGroup {
	if i >= 0 && i < len(g.Options) {
		g.Chosen = i
		g.Cursor = i
	}
	return g
}

// Update moves the cursor or picks an option. picked reports whether an
// option was chosen by this message.
func (g RadioGroup) Update(msg tea.Msg) (_ RadioGroup, picked bool) {
	if g.Locked {
		return g, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, false
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if g.Cursor > 0 {
			g.Cursor--
		}
	case key.Matches(kmsg, Keys.Down):
		if g.Cursor < len(g.Options)-1 {
			g.Cursor++
		}
	case key.Matches(kmsg, Keys.Select):
		g.Chosen = g.Cursor
		return g, true
	default:
		if n, err := strconv.Atoi(kmsg.String()); err == nil && n >= 1 && n <= len(g.Options) {
			g.Cursor = n - 1
			g.Chosen = n - 1
			return g, true
		}
	}
	return g, false
}

// View renders the options with radio marks. Locked groups with a known
// correct option show ✓ and ✗ marks.
func (g RadioGroup) View() string {
	var b strings.Builder
	reveal := g.Locked && g.Correct >= 0

	for i, opt := range g.Options {
		mark := "○"
		if i == g.Chosen {
			mark = "●"
		}
		prefix := "  "
		if i == g.Cursor && !g.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %d) %s", prefix, mark, i+1, opt)

		var style lipgloss.Style
		switch {
		case reveal && i == g.Correct:
			style = theme.Correct
			line += "  ✓"
		case reveal && i == g.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case g.Locked:
			style = theme.Disabled
		case i == g.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		if i < len(g.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
