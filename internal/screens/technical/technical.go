package technical

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/navigator/internal/assessment"
	"github.com/abhisek/navigator/internal/bank"
	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/screen"
	"github.com/abhisek/navigator/internal/ui/components"
	"github.com/abhisek/navigator/internal/ui/layout"
)

// TechnicalScreen runs the timed, scored quiz.
type TechnicalScreen struct {
	quiz         *assessment.Quiz
	radio        components.RadioGroup
	countdown    *assessment.Countdown
	defaultLimit time.Duration
	logger       *zap.Logger
}

var _ screen.Screen = (*TechnicalScreen)(nil)

// New creates a TechnicalScreen over m. defaultLimit applies to questions
// without their own budget; zero means bank.DefaultTimeLimit.
func New(m *bank.Module, defaultLimit time.Duration, logger *zap.Logger) *TechnicalScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultLimit <= 0 {
		defaultLimit = bank.DefaultTimeLimit
	}
	s := &TechnicalScreen{
		quiz:         assessment.NewQuiz(m),
		defaultLimit: defaultLimit,
		logger:       logger.With(zap.String("module", string(m.ID))),
	}
	s.loadQuestion()
	return s
}

func (s *TechnicalScreen) limit(q bank.Question) time.Duration {
	if d := q.TimeBudget(); d > 0 {
		return d
	}
	return s.defaultLimit
}

// loadQuestion prepares the current question. Answered questions come back
// locked with a stopped, full timer; fresh ones start a new countdown.
func (s *TechnicalScreen) loadQuestion() tea.Cmd {
	q := s.quiz.CurrentQuestion()
	s.radio = components.NewRadioGroup(q.Choices())
	s.countdown = assessment.NewCountdown(s.limit(q))

	if sel, answered := s.quiz.CurrentAnswer(); answered {
		s.lock(q, sel)
		return nil
	}
	return tickCmd(s.countdown.Gen())
}

func (s *TechnicalScreen) lock(q bank.Question, selected int) {
	s.countdown.Stop()
	s.radio = s.radio.WithChosen(selected)
	s.radio.Locked = true
	if c, ok := q.CorrectIndex(); ok {
		s.radio.Correct = c
	}
}

func (s *TechnicalScreen) Init() tea.Cmd {
	if s.countdown.Running() {
		return tickCmd(s.countdown.Gen())
	}
	return nil
}

func (s *TechnicalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s, s.handleTimerTick(msg)
	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *TechnicalScreen) handleTimerTick(msg timerTickMsg) tea.Cmd {
	if msg.gen != s.countdown.Gen() {
		return nil
	}
	if s.countdown.Tick() {
		return tickCmd(s.countdown.Gen())
	}
	if s.countdown.Expired() {
		s.logger.Debug("time expired", zap.String("question", s.quiz.CurrentQuestion().ID))
	}
	return nil
}

func (s *TechnicalScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, components.Keys.Next):
		return s.next()
	case key.Matches(msg, components.Keys.Back):
		return s.previous()
	}

	var picked bool
	s.radio, picked = s.radio.Update(msg)
	if picked {
		s.submit(s.radio.Chosen)
	}
	return nil
}

func (s *TechnicalScreen) submit(selected int) {
	q := s.quiz.CurrentQuestion()
	sub, err := s.quiz.Submit(q.ID, selected)
	if err != nil {
		s.logger.Warn("answer rejected", zap.String("question", q.ID), zap.Error(err))
		return
	}
	if !sub.Accepted {
		return
	}
	s.lock(q, selected)
	s.logger.Debug("answer recorded",
		zap.String("question", q.ID),
		zap.Int("value", selected),
		zap.Bool("correct", sub.Correct),
		zap.Duration("remaining", s.countdown.Remaining()),
	)
}

func (s *TechnicalScreen) next() tea.Cmd {
	switch s.quiz.Advance() {
	case assessment.SignalAdvanced:
		return s.loadQuestion()
	case assessment.SignalModuleComplete:
		s.countdown.Stop()
		s.logger.Info("module complete",
			zap.Int("score", s.quiz.Score()),
			zap.Int("total", s.quiz.Len()),
		)
		return router.NavigateTo(router.RouteWISCAR)
	}
	return nil
}

func (s *TechnicalScreen) previous() tea.Cmd {
	switch s.quiz.Retreat() {
	case assessment.SignalRetreated:
		return s.loadQuestion()
	case assessment.SignalExitPrevious:
		s.countdown.Stop()
		return router.NavigateTo(router.RoutePsychometric)
	}
	return nil
}

func (s *TechnicalScreen) Title() string {
	return "Technical Assessment"
}

func (s *TechnicalScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	if s.radio.Locked {
		return components.Hints(k.Next, k.Back)
	}
	return components.Hints(k.Up, k.Select, k.Next, k.Back)
}
