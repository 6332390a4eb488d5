package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestRadioGroupCursorDoesNotChoose(t *testing.T) {
	g := NewRadioGroup([]string{"a", "b", "c"})

	g, picked := g.Update(press(tea.KeyDown))
	if picked {
		t.Error("moving the cursor should not pick")
	}
	if g.Cursor != 1 || g.Chosen != -1 {
		t.Errorf("expected cursor 1 and nothing chosen, got cursor %d chosen %d", g.Cursor, g.Chosen)
	}

	g, picked = g.Update(press(tea.KeyEnter))
	if !picked || g.Chosen != 1 {
		t.Errorf("expected enter to pick 1, got picked=%v chosen=%d", picked, g.Chosen)
	}
}

func TestRadioGroupNumberKeys(t *testing.T) {
	g := NewRadioGroup([]string{"a", "b", "c", "d"})

	g, picked := g.Update(char('3'))
	if !picked || g.Chosen != 2 || g.Cursor != 2 {
		t.Errorf("expected '3' to pick index 2, got picked=%v chosen=%d", picked, g.Chosen)
	}

	_, picked = g.Update(char('9'))
	if picked {
		t.Error("out of range number should not pick")
	}
}

func TestRadioGroupLocked(t *testing.T) {
	g := NewRadioGroup([]string{"right", "wrong"}).WithChosen(1)
	g.Locked = true
	g.Correct = 0

	g, picked := g.Update(char('1'))
	if picked || g.Chosen != 1 {
		t.Error("locked group should ignore input")
	}

	view := g.View()
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Error("expected correct and incorrect marks when locked")
	}
}

func TestSliderTouch(t *testing.T) {
	s := NewSlider(1, 10, 5)
	if s.Touched {
		t.Fatal("new slider should be untouched")
	}

	s, changed := s.Update(press(tea.KeyRight))
	if !changed || !s.Touched || s.Value != 6 {
		t.Errorf("expected value 6 and touched, got %d touched=%v", s.Value, s.Touched)
	}

	s = NewSlider(1, 10, 5)
	s, changed = s.Update(press(tea.KeyEnter))
	if !changed || s.Value != 5 {
		t.Errorf("expected enter to confirm 5, got %d", s.Value)
	}

	s = NewSlider(1, 10, 1)
	s, _ = s.Update(press(tea.KeyLeft))
	if s.Value != 1 {
		t.Errorf("expected value clamped at 1, got %d", s.Value)
	}

	if v := NewSlider(1, 10, 5).WithValue(42).Value; v != 10 {
		t.Errorf("expected WithValue to clamp to 10, got %d", v)
	}
}

func TestScrollClamps(t *testing.T) {
	content := strings.TrimSuffix(strings.Repeat("line\n", 20), "\n")
	var s Scroll

	view := s.View(content, 10)
	if got := strings.Count(view, "\n") + 1; got != 10 {
		t.Errorf("expected 10 visible lines, got %d", got)
	}

	s, _ = s.Update(press(tea.KeyUp))
	if s.Offset != 0 {
		t.Errorf("expected offset clamped at 0, got %d", s.Offset)
	}

	for range 50 {
		s, _ = s.Update(press(tea.KeyPgDown))
	}
	if s.Offset != 11 {
		t.Errorf("expected offset clamped at 11, got %d", s.Offset)
	}
	if view := s.View(content, 10); !strings.Contains(view, "(end)") {
		t.Error("expected end indicator at bottom")
	}
}

func TestScrollShortContent(t *testing.T) {
	var s Scroll
	if got := s.View("a\nb", 10); got != "a\nb" {
		t.Errorf("expected short content unchanged, got %q", got)
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{
		{Label: "one"},
		{Label: "two", Disabled: true},
		{Label: "three", Action: func() tea.Cmd {
			called = true
			return nil
		}},
	})

	m, _ = m.Update(press(tea.KeyDown))
	if m.Selected != 2 {
		t.Fatalf("expected disabled item skipped, got %d", m.Selected)
	}
	m.Update(press(tea.KeyEnter))
	if !called {
		t.Error("expected action to run")
	}
}

func TestDots(t *testing.T) {
	view := Dots(4, 1, func(i int) bool { return i == 0 })
	if strings.Count(view, "◉") != 1 || strings.Count(view, "●") != 1 || strings.Count(view, "○") != 2 {
		t.Errorf("unexpected dots %q", view)
	}
}
