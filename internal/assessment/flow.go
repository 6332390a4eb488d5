package assessment

import "github.com/abhisek/navigator/internal/bank"

// Signal is the outcome of a navigation action on a Flow.
type Signal int

const (
	SignalNone           Signal = iota // nothing happened
	SignalBlocked                      // current question is unanswered
	SignalAdvanced                     // moved to the next question
	SignalRetreated                    // moved to the previous question
	SignalModuleComplete               // advanced past the last question
	SignalExitPrevious                 // retreated from the first question
)

func (s Signal) String() string {
	switch s {
	case SignalBlocked:
		return "blocked"
	case SignalAdvanced:
		return "advanced"
	case SignalRetreated:
		return "retreated"
	case SignalModuleComplete:
		return "module-complete"
	case SignalExitPrevious:
		return "exit-previous"
	}
	return "none"
}

// Flow walks one module's questions in order. It owns the current index and
// the AnswerSet; views read from it and never mutate its state directly.
//
// A Flow is built fresh every time its module is entered, so progress and
// answers start empty.
type Flow struct {
	module    *bank.Module
	index     int
	answers   *AnswerSet
	completed bool
}

// NewFlow starts a flow at the first question of m. m must have at least
// one question; bank validation guarantees this for loaded banks.
func NewFlow(m *bank.Module) *Flow {
	return &Flow{
		module:  m,
		answers: NewAnswerSet(),
	}
}

// Module returns the module being walked.
func (f *Flow) Module() *bank.Module {
	return f.module
}

// CurrentQuestion returns the question at the current index.
func (f *Flow) CurrentQuestion() bank.Question {
	return f.module.Questions[f.index]
}

// Index returns the zero-based current index.
func (f *Flow) Index() int {
	return f.index
}

// Len returns the number of questions in the module.
func (f *Flow) Len() int {
	return f.module.Len()
}

// IsFirst reports whether the current question is the first.
func (f *Flow) IsFirst() bool {
	return f.index == 0
}

// IsLast reports whether the current question is the last.
func (f *Flow) IsLast() bool {
	return f.index == f.Len()-1
}

// Completed reports whether the module-complete signal has been emitted.
func (f *Flow) Completed() bool {
	return f.completed
}

// Percent returns question progress as a fraction in (0, 1], counting the
// current question as reached.
func (f *Flow) Percent() float64 {
	return float64(f.index+1) / float64(f.Len())
}

// RecordAnswer stores value for the question id. Recording again for the
// same id overwrites the previous value.
func (f *Flow) RecordAnswer(id string, value int) error {
	q, ok := f.module.Question(id)
	if !ok {
		return &InvalidQuestionIDError{Module: f.module.ID, ID: id}
	}
	if lo, hi := q.Range(); value < lo || value > hi {
		return &InvalidValueError{ID: id, Value: value, Min: lo, Max: hi}
	}
	f.answers.Set(id, value)
	return nil
}

// Answer returns the recorded value for id.
func (f *Flow) Answer(id string) (int, bool) {
	return f.answers.Get(id)
}

// CurrentAnswer returns the recorded value for the current question.
func (f *Flow) CurrentAnswer() (int, bool) {
	return f.answers.Get(f.CurrentQuestion().ID)
}

// Answered returns the number of questions with a recorded answer.
func (f *Flow) Answered() int {
	return f.answers.Len()
}

// Answers returns a copy of the AnswerSet.
func (f *Flow) Answers() map[string]int {
	return f.answers.Snapshot()
}

// CanAdvance reports whether the current question has a recorded answer.
func (f *Flow) CanAdvance() bool {
	return f.answers.Has(f.CurrentQuestion().ID)
}

// Advance moves to the next question. It is a no-op until the current
// question is answered. On the last question it reports module completion
// once; later calls return SignalNone.
func (f *Flow) Advance() Signal {
	if !f.CanAdvance() {
		return SignalBlocked
	}
	if f.IsLast() {
		if f.completed {
			return SignalNone
		}
		f.completed = true
		return SignalModuleComplete
	}
	f.index++
	return SignalAdvanced
}

// Retreat moves to the previous question, keeping recorded answers. At the
// first question it reports SignalExitPrevious and stays put.
func (f *Flow) Retreat() Signal {
	if f.index == 0 {
		return SignalExitPrevious
	}
	f.index--
	return SignalRetreated
}
