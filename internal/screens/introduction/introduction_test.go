package introduction

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/navigator/internal/router"
)

func navigatePath(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	return msg.Path
}

func TestVideoToggle(t *testing.T) {
	s := New()
	if s.ShowingVideo() {
		t.Fatal("video should start collapsed")
	}
	if strings.Contains(s.View(100, 200), "Educational content") {
		t.Error("collapsed video should not render its placeholder")
	}

	s.Update(tea.KeyPressMsg{Code: 'v', Text: "v"})
	if !s.ShowingVideo() {
		t.Fatal("v should show the video")
	}
	if !strings.Contains(s.View(100, 200), "Educational content would be embedded here") {
		t.Error("expected the video placeholder")
	}

	s.Update(tea.KeyPressMsg{Code: 'v', Text: "v"})
	if s.ShowingVideo() {
		t.Error("v should hide the video again")
	}
}

func TestStartNavigatesToPsychometric(t *testing.T) {
	for _, k := range []tea.KeyPressMsg{
		{Code: 'n', Text: "n"},
		{Code: tea.KeyEnter},
	} {
		_, cmd := New().Update(k)
		if got := navigatePath(t, cmd); got != "/assessment/psychometric" {
			t.Errorf("%s: expected psychometric, got %q", k.String(), got)
		}
	}
}

func TestBackNavigatesHome(t *testing.T) {
	_, cmd := New().Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	if got := navigatePath(t, cmd); got != "/" {
		t.Errorf("expected home, got %q", got)
	}
}

func TestViewListsTraits(t *testing.T) {
	view := New().View(100, 200)
	for _, tr := range traits {
		if !strings.Contains(view, tr.name) {
			t.Errorf("expected trait %q in view", tr.name)
		}
	}
}
