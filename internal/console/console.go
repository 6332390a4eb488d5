// Package console runs an assessment module as a plain line-oriented
// question and answer session, for terminals without full-screen support
// and for scripted runs.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/navigator/internal/assessment"
	"github.com/abhisek/navigator/internal/bank"
)

// ErrQuit is returned when the user quits before finishing the module.
var ErrQuit = errors.New("assessment quit")

// Result summarises a finished module.
type Result struct {
	Module   bank.ModuleID
	Answers  map[string]int
	Answered int
	// Score and Total are set for scored modules only.
	Scored bool
	Score  int
	Total  int
}

// Runner reads answers from in and writes prompts to out.
type Runner struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

// New creates a Runner. A nil logger discards logs.
func New(in io.Reader, out io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{in: bufio.NewScanner(in), out: out, logger: logger}
}

// scored reports whether any question in m has a correct answer.
func scored(m *bank.Module) bool {
	for _, q := range m.Questions {
		if _, ok := q.CorrectIndex(); ok {
			return true
		}
	}
	return false
}

// Run walks m from the first question to completion. Typing "b" goes back
// one question and "q" quits. On a scored module each question can be
// answered once, and the verdict is printed straight away.
func (r *Runner) Run(ctx context.Context, m *bank.Module) (Result, error) {
	quiz := assessment.NewQuiz(m)
	isScored := scored(m)

	r.printf("%s\n", m.Title)
	if m.Subtitle != "" {
		r.printf("%s\n", m.Subtitle)
	}
	r.printf("Enter a number to answer, b to go back, q to quit.\n\n")

	for !quiz.Completed() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		q := quiz.CurrentQuestion()
		r.printQuestion(quiz, q)

		line, err := r.readLine()
		if err != nil {
			return Result{}, err
		}

		switch strings.ToLower(line) {
		case "q", "quit":
			return Result{}, ErrQuit
		case "b", "back":
			if quiz.Retreat() == assessment.SignalExitPrevious {
				r.printf("Already at the first question.\n\n")
			}
			continue
		case "":
			if quiz.Advance() == assessment.SignalBlocked {
				r.printf("Please answer before continuing.\n\n")
			}
			continue
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			r.printf("Not a number: %q\n\n", line)
			continue
		}
		if q.Type != bank.TypeSlider {
			value-- // options are shown 1-based
		}

		if err := r.answer(quiz, q, value, isScored); err != nil {
			if errors.Is(err, assessment.ErrInvalidValue) {
				lo, hi := displayRange(q)
				r.printf("Enter a number from %d to %d.\n\n", lo, hi)
				continue
			}
			return Result{}, err
		}
		r.printf("\n")
		quiz.Advance()
	}

	res := Result{
		Module:   m.ID,
		Answers:  quiz.Answers(),
		Answered: quiz.Answered(),
		Scored:   isScored,
		Total:    quiz.Len(),
	}
	if isScored {
		res.Score = quiz.Score()
		r.printf("── Summary: %d/%d correct ──\n", res.Score, res.Total)
	} else {
		r.printf("── Summary: %d/%d answered ──\n", res.Answered, res.Total)
	}
	r.logger.Info("module complete",
		zap.String("module", string(m.ID)),
		zap.Int("answered", res.Answered),
		zap.Int("score", res.Score),
	)
	return res, nil
}

func (r *Runner) answer(quiz *assessment.Quiz, q bank.Question, value int, isScored bool) error {
	if !isScored {
		return quiz.RecordAnswer(q.ID, value)
	}

	sub, err := quiz.Submit(q.ID, value)
	if err != nil {
		return err
	}
	if !sub.Accepted {
		r.printf("Already answered; your first answer stands.\n")
		return nil
	}
	if sub.Correct {
		r.printf("✓ Correct!\n")
	} else {
		c, _ := q.CorrectIndex()
		r.printf("✗ Incorrect. Answer: %s\n", q.Choices()[c])
	}
	if q.Explanation != "" {
		r.printf("Explanation: %s\n", q.Explanation)
	}
	return nil
}

func (r *Runner) printQuestion(quiz *assessment.Quiz, q bank.Question) {
	m := quiz.Module()
	r.printf("── Question %d/%d · %s ──\n", quiz.Index()+1, quiz.Len(), m.CategoryName(q.Category))
	r.printf("%s\n", q.Prompt)
	if q.Description != "" {
		r.printf("%s\n", q.Description)
	}

	prev, answered := quiz.CurrentAnswer()
	if q.Type == bank.TypeSlider {
		r.printf("  Rate from %d (not important) to %d (extremely important)\n", bank.SliderMin, bank.SliderMax)
		if answered {
			r.printf("  Current: %d (press Enter to keep)\n", prev)
		}
	} else {
		for i, opt := range q.Choices() {
			mark := " "
			if answered && i == prev {
				mark = "*"
			}
			r.printf(" %s%d) %s\n", mark, i+1, opt)
		}
		if answered {
			r.printf("  (press Enter to keep your answer)\n")
		}
	}
	r.printf("\nYour answer: ")
}

func displayRange(q bank.Question) (int, int) {
	lo, hi := q.Range()
	if q.Type != bank.TypeSlider {
		return lo + 1, hi + 1
	}
	return lo, hi
}

func (r *Runner) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(r.in.Text()), nil
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
