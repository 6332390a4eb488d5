package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/navigator/internal/bank"
	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screen"
	"github.com/abhisek/navigator/internal/screens/welcome"
	"github.com/abhisek/navigator/internal/ui/components"
	"github.com/abhisek/navigator/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Bank *bank.Bank
	// Start is the path opened first.
	Start string
	// Splash shows the welcome animation before Start.
	Splash bool
	// StrictOrder redirects deep links past the next unvisited step.
	StrictOrder      bool
	DefaultTimeLimit time.Duration
	Logger           *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	// pathInput is the open ":" prompt, or nil.
	pathInput *components.PathInput
	logger    *zap.Logger
	initCmd   tea.Cmd
	width     int
	height    int
}

// newAppModel wires the router to a screen for every route.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Start == "" {
		opts.Start = "/"
	}
	factory, err := newFactory(opts)
	if err != nil {
		return AppModel{}, err
	}

	m := AppModel{logger: opts.Logger}
	routerOpts := []router.Option{
		router.WithFactory(factory),
		router.WithStrictOrder(opts.StrictOrder),
		router.WithLogger(opts.Logger),
	}

	if opts.Splash {
		splash := welcome.New(opts.Start)
		m.router = router.New(splash, routerOpts...)
		m.initCmd = splash.Init()
	} else {
		m.router = router.New(nil, routerOpts...)
		m.initCmd = m.router.Navigate(opts.Start)
	}
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.pathInput != nil {
			return m.updatePathInput(msg)
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case ":":
			if m.splashing() {
				break
			}
			pi := components.NewPathInput(m.router.Current().Path)
			m.pathInput = &pi
			return m, pi.Init()
		}
		return m, m.router.Update(msg)
	}

	// Non-key messages reach the prompt as well as the screens so cursor
	// blinks and countdown ticks both keep running.
	var cmds []tea.Cmd
	if m.pathInput != nil {
		pi, cmd := m.pathInput.Update(msg)
		m.pathInput = &pi
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.router.Update(msg))
	return m, tea.Batch(cmds...)
}

func (m AppModel) updatePathInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.pathInput = nil
		return m, nil
	case "enter":
		path := m.pathInput.Value()
		m.pathInput = nil
		if path == "" {
			return m, nil
		}
		m.logger.Debug("path entered", zap.String("path", path))
		return m, router.Navigate(path)
	}
	pi, cmd := m.pathInput.Update(msg)
	m.pathInput = &pi
	return m, cmd
}

// splashing reports whether the untitled welcome screen is showing.
func (m AppModel) splashing() bool {
	active := m.router.Active()
	return active != nil && active.Title() == ""
}

func (m AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return append(hints,
		components.Hint(components.Keys.Path),
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if m.splashing() {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}
	step := m.router.Current().Step
	header := layout.RenderHeader(title, step, router.TotalSteps, m.width)

	var footer string
	if m.pathInput != nil {
		footer = layout.RenderPrompt(m.pathInput.View(), m.width)
	} else {
		footer = layout.RenderFooter(m.footerHints(), m.width)
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
