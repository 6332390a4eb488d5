package router

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/navigator/internal/screen"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to swap the top screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// NavigateMsg requests the router to open the page at Path.
type NavigateMsg struct {
	Path string
}

// Navigate returns a command that emits a NavigateMsg for path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// NavigateTo returns a command that opens the route with the given id.
func NavigateTo(id RouteID) tea.Cmd {
	r, _ := Lookup(id)
	return Navigate(r.Path)
}

// Factory builds the screen for a resolved route. path is the normalised
// path as requested, which differs from r.Path for the not-found route.
type Factory func(r Route, path string) screen.Screen

// Option configures a Router.
type Option func(*Router)

// WithFactory sets the screen factory used by Navigate.
func WithFactory(f Factory) Option {
	return func(r *Router) { r.factory = f }
}

// WithStrictOrder enables the ordering guard.
func WithStrictOrder(strict bool) Option {
	return func(r *Router) { r.strict = strict }
}

// WithLogger sets the navigation logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) { r.log = l }
}

// Router manages a stack of screens and the current route.
type Router struct {
	stack    []screen.Screen
	factory  Factory
	strict   bool
	log      *zap.Logger
	current  Route
	furthest int
}

// New creates a Router with the given initial screen, which may be nil when
// the first screen comes from Navigate.
func New(initial screen.Screen, opts ...Option) *Router {
	r := &Router{
		log:     zap.NewNop(),
		current: table[0],
	}
	if initial != nil {
		r.stack = []screen.Screen{initial}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace swaps the top screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		r.stack = []screen.Screen{s}
	} else {
		r.stack[len(r.stack)-1] = s
	}
	return s.Init()
}

// Navigate resolves path, applies the ordering guard and replaces the whole
// stack with the route's screen. Each entry builds a fresh screen.
func (r *Router) Navigate(path string) tea.Cmd {
	path = Normalize(path)
	rt := Resolve(path)
	if target, redirected := r.guard(rt); redirected {
		r.log.Info("navigation redirected",
			zap.String("requested", path),
			zap.String("path", target.Path))
		rt, path = target, target.Path
	}
	if r.factory == nil {
		return nil
	}

	r.log.Info("navigate",
		zap.String("path", path),
		zap.String("route", string(rt.ID)),
		zap.Int("step", rt.Step))

	s := r.factory(rt, path)
	r.current = rt
	r.furthest = max(r.furthest, rt.Step)
	r.stack = []screen.Screen{s}
	return s.Init()
}

// guard redirects a jump past the step after the furthest one reached.
func (r *Router) guard(rt Route) (Route, bool) {
	if !r.strict || rt.Step <= r.furthest+1 {
		return rt, false
	}
	target, _ := ForStep(r.furthest + 1)
	return target, true
}

// Current returns the route of the page on screen.
func (r *Router) Current() Route {
	return r.current
}

// Furthest returns the highest step entered so far.
func (r *Router) Furthest() int {
	return r.furthest
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case NavigateMsg:
		return r.Navigate(msg.Path)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
