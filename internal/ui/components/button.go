package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/ui/theme"
)

// Button is a styled navigation button. Inactive buttons render dimmed.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render(b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// NavBar renders a back button on the left and a forward button on the
// right, spread across width.
func NavBar(back, next Button, width int) string {
	left := back.View()
	right := next.View()
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		left,
		lipgloss.NewStyle().Width(gap).Render(""),
		right,
	)
}
