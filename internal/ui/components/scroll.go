package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navigator/internal/ui/theme"
)

// Scroll is a line offset into content taller than the screen.
type Scroll struct {
	Offset int
	// lines and height from the last render, used to clamp the offset.
	lines, height int
}

// Update scrolls on arrow and page keys. It reports whether the key was
// consumed.
func (s Scroll) Update(msg tea.Msg) (_ Scroll, handled bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}
	page := max(s.height-1, 1)
	switch {
	case key.Matches(kmsg, Keys.Up):
		s.Offset--
	case key.Matches(kmsg, Keys.Down):
		s.Offset++
	case key.Matches(kmsg, Keys.PageUp):
		s.Offset -= page
	case key.Matches(kmsg, Keys.PageDown):
		s.Offset += page
	default:
		return s, false
	}
	s.clamp()
	return s, true
}

func (s *Scroll) clamp() {
	maxOffset := 0
	if s.height > 1 && s.lines > s.height {
		// One line is reserved for the indicator.
		maxOffset = s.lines - (s.height - 1)
	}
	s.Offset = min(max(s.Offset, 0), maxOffset)
}

// View returns the visible window of content at the given height, with a
// dim indicator when more content follows.
func (s *Scroll) View(content string, height int) string {
	lines := strings.Split(content, "\n")
	s.lines, s.height = len(lines), height
	s.clamp()
	if height <= 0 || len(lines) <= height {
		return content
	}

	end := min(s.Offset+height-1, len(lines))
	visible := lines[s.Offset:end]
	more := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	indicator := more.Render("  ↓ more (PgDn)")
	if end >= len(lines) {
		indicator = more.Render("  (end)")
	}
	return strings.Join(visible, "\n") + "\n" + indicator
}
