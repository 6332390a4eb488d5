package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// PathInput wraps bubbles/textinput as a one-line path prompt.
type PathInput struct {
	Model textinput.Model
}

// NewPathInput creates a focused prompt prefilled with current.
func NewPathInput(current string) PathInput {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "/assessment/introduction"
	ti.CharLimit = 128
	ti.SetValue(current)
	ti.CursorEnd()
	ti.Focus()
	return PathInput{Model: ti}
}

// Init returns the initial command.
func (t PathInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t PathInput) Update(msg tea.Msg) (PathInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t PathInput) View() string {
	return t.Model.View()
}

// Value returns the trimmed input value.
func (t PathInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}
