package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/navigator/internal/ui/layout"
)

// KeyMap is the shared set of key bindings used by screens and components.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Next     key.Binding
	Back     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Video    key.Binding
	Path     key.Binding
	Home     key.Binding
}

// Keys are the default bindings.
var Keys = KeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "Move")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "Adjust")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←→", "Adjust")),
	Select:   key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Select")),
	Next:     key.NewBinding(key.WithKeys("n", "tab"), key.WithHelp("n", "Next")),
	Back:     key.NewBinding(key.WithKeys("p", "b", "shift+tab"), key.WithHelp("p", "Previous")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("PgUp/PgDn", "Scroll")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("PgUp/PgDn", "Scroll")),
	Video:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Video")),
	Path:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "Go to path")),
	Home:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "Home")),
}

// Hint converts a binding's help text into a footer hint.
func Hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

// Hints converts bindings into footer hints, in order.
func Hints(bs ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bs))
	for _, b := range bs {
		out = append(out, Hint(b))
	}
	return out
}
