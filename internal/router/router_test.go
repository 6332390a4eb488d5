package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/navigator/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

// recordingFactory builds stub screens and remembers what it was asked for.
type recordingFactory struct {
	paths []string
}

func (f *recordingFactory) build(r Route, path string) screen.Screen {
	f.paths = append(f.paths, path)
	return &stubScreen{title: string(r.ID)}
}

func TestNavigateReplacesStack(t *testing.T) {
	f := &recordingFactory{}
	r := New(nil, WithFactory(f.build))

	r.Navigate("/")
	r.Push(&stubScreen{title: "about"})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2 before navigate, got %d", r.Depth())
	}

	r.Update(NavigateMsg{Path: "/assessment/introduction/"})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after navigate, got %d", r.Depth())
	}
	if r.Active().Title() != "introduction" {
		t.Errorf("expected active 'introduction', got %q", r.Active().Title())
	}
	if !r.Active().(*stubScreen).initRan {
		t.Error("expected Init() to run on navigated screen")
	}
	if r.Current().Step != 1 {
		t.Errorf("expected current step 1, got %d", r.Current().Step)
	}
}

func TestNavigateBuildsFreshScreen(t *testing.T) {
	f := &recordingFactory{}
	r := New(nil, WithFactory(f.build))

	r.Navigate("/assessment/psychometric")
	first := r.Active()
	r.Navigate("/assessment/psychometric")

	if r.Active() == first {
		t.Error("expected a new screen instance on re-entry")
	}
}

func TestNavigateUnknownPath(t *testing.T) {
	f := &recordingFactory{}
	r := New(nil, WithFactory(f.build))

	r.Navigate("/assessment/unknown")

	if r.Current().ID != RouteNotFound {
		t.Errorf("expected not-found route, got %q", r.Current().ID)
	}
	if got := f.paths[len(f.paths)-1]; got != "/assessment/unknown" {
		t.Errorf("expected factory to see requested path, got %q", got)
	}
}

func TestNavigateWithoutGuardAllowsDeepLink(t *testing.T) {
	f := &recordingFactory{}
	r := New(nil, WithFactory(f.build))

	r.Navigate("/assessment/guidance")

	if r.Current().ID != RouteGuidance {
		t.Errorf("expected guidance, got %q", r.Current().ID)
	}
	if r.Furthest() != 6 {
		t.Errorf("expected furthest 6, got %d", r.Furthest())
	}
}

func TestStrictOrderRedirects(t *testing.T) {
	f := &recordingFactory{}
	r := New(nil, WithFactory(f.build), WithStrictOrder(true))

	r.Navigate("/assessment/wiscar")
	if r.Current().ID != RouteIntroduction {
		t.Fatalf("expected redirect to introduction, got %q", r.Current().ID)
	}

	r.Navigate("/assessment/psychometric")
	if r.Current().ID != RoutePsychometric {
		t.Errorf("expected psychometric, got %q", r.Current().ID)
	}

	r.Navigate("/assessment/guidance")
	if r.Current().ID != RouteTechnical {
		t.Errorf("expected redirect to technical, got %q", r.Current().ID)
	}

	// Going back is always allowed.
	r.Navigate("/")
	if r.Current().ID != RouteHome {
		t.Errorf("expected home, got %q", r.Current().ID)
	}
	r.Navigate("/nowhere")
	if r.Current().ID != RouteNotFound {
		t.Errorf("expected not-found, got %q", r.Current().ID)
	}
}

func TestNavigateCmd(t *testing.T) {
	msg := NavigateTo(RouteTechnical)()
	nav, ok := msg.(NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", msg)
	}
	if nav.Path != "/assessment/technical" {
		t.Errorf("expected technical path, got %q", nav.Path)
	}
}
