package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screens/about"
)

func TestStartAssessmentNavigates(t *testing.T) {
	h := New()

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from Start Assessment")
	}
	msg, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if msg.Path != "/assessment/introduction" {
		t.Errorf("expected introduction path, got %q", msg.Path)
	}
}

func TestLearnMorePushesAbout(t *testing.T) {
	h := New()
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from Learn More")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*about.AboutScreen); !ok {
		t.Errorf("expected about screen, got %T", push.Screen)
	}
}

func TestQuit(t *testing.T) {
	h := New()
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewShowsStats(t *testing.T) {
	view := New().View(120, 40)
	for _, want := range []string{"Minutes Assessment", "Assessment Modules", "Personalized Results", "Start Assessment"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
