package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/navigator/internal/ui/layout"
)

// Screen is one page of the assessment. The router owns a stack of them
// and the app frames the top one with the step header and key footer.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the header label. Empty hides the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own keys. The app
// footer lists these hints first, then Esc when an overlay can be popped,
// then the global ":" and Ctrl+C hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
