package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/navigator/internal/bank"
)

func module(t *testing.T, id bank.ModuleID) *bank.Module {
	t.Helper()
	b, err := bank.Default()
	require.NoError(t, err)
	m, err := b.Module(id)
	require.NoError(t, err)
	return m
}

func run(t *testing.T, id bank.ModuleID, input string) (Result, string, error) {
	t.Helper()
	var out bytes.Buffer
	res, err := New(strings.NewReader(input), &out, nil).Run(context.Background(), module(t, id))
	return res, out.String(), err
}

func lines(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

func repeat(answer string, n int) string {
	return strings.Repeat(answer+"\n", n)
}

func TestTechnicalAllCorrect(t *testing.T) {
	m := module(t, bank.ModuleTechnical)
	var in []string
	for _, q := range m.Questions {
		c, ok := q.CorrectIndex()
		require.True(t, ok)
		in = append(in, string(rune('1'+c)))
	}

	res, out, err := run(t, bank.ModuleTechnical, lines(in...))
	require.NoError(t, err)

	assert.True(t, res.Scored)
	assert.Equal(t, m.Len(), res.Score)
	assert.Equal(t, m.Len(), res.Total)
	assert.Equal(t, m.Len(), strings.Count(out, "✓ Correct!"))
	assert.Contains(t, out, "Summary: 9/9 correct")
}

func TestTechnicalScoresFirstAnswerOnly(t *testing.T) {
	m := module(t, bank.ModuleTechnical)
	c0, _ := m.Questions[0].CorrectIndex()
	wrong := string(rune('1' + (c0+1)%len(m.Questions[0].Options)))
	right := string(rune('1' + c0))

	// Answer wrong, go back, try the right answer, then finish.
	input := lines(wrong, "b", right) + repeat(right, m.Len()-1)
	res, out, err := run(t, bank.ModuleTechnical, input)
	require.NoError(t, err)

	assert.Contains(t, out, "your first answer stands")
	assert.Less(t, res.Score, m.Len())
}

func TestPsychometricAnswersEverything(t *testing.T) {
	m := module(t, bank.ModulePsychometric)
	res, out, err := run(t, bank.ModulePsychometric, repeat("2", m.Len()))
	require.NoError(t, err)

	assert.False(t, res.Scored)
	assert.Equal(t, m.Len(), res.Answered)
	assert.Len(t, res.Answers, m.Len())
	assert.Contains(t, out, "answered")
	assert.NotContains(t, out, "Correct")
}

func TestInvalidInputReprompts(t *testing.T) {
	m := module(t, bank.ModuleTechnical)
	input := lines("abc", "9", "") + repeat("1", m.Len())
	res, out, err := run(t, bank.ModuleTechnical, input)
	require.NoError(t, err)

	assert.Contains(t, out, `Not a number: "abc"`)
	assert.Contains(t, out, "Enter a number from 1 to 4")
	assert.Contains(t, out, "Please answer before continuing")
	assert.Equal(t, m.Len(), res.Answered)
}

func TestBackAtFirstQuestion(t *testing.T) {
	m := module(t, bank.ModuleTechnical)
	_, out, err := run(t, bank.ModuleTechnical, lines("b")+repeat("1", m.Len()))
	require.NoError(t, err)
	assert.Contains(t, out, "Already at the first question")
}

func TestQuit(t *testing.T) {
	_, _, err := run(t, bank.ModuleTechnical, lines("1", "q"))
	assert.ErrorIs(t, err, ErrQuit)
}

func TestInputClosed(t *testing.T) {
	_, _, err := run(t, bank.ModuleTechnical, lines("1", "1"))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(strings.NewReader("1\n"), io.Discard, nil).Run(ctx, module(t, bank.ModuleTechnical))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogsCompletion(t *testing.T) {
	m := module(t, bank.ModuleTechnical)
	core, logs := observer.New(zapcore.InfoLevel)

	_, err := New(strings.NewReader(repeat("1", m.Len())), io.Discard, zap.New(core)).
		Run(context.Background(), m)
	require.NoError(t, err)

	entries := logs.FilterMessage("module complete").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "technical", entries[0].ContextMap()["module"])
}

const scoredLikertBank = `version: v1.0.0
modules:
  psychometric:
    title: P
    questions:
      - id: p_1
        category: interest
        type: likert
        prompt: Do you like it?
        correct: 4
  technical:
    title: T
    questions:
      - id: t_1
        category: devops
        type: choice
        prompt: Pick one
        options: [a, b]
        correct: 0
`

func TestScoredLikertShowsLabel(t *testing.T) {
	b, err := bank.Parse("test", []byte(scoredLikertBank))
	require.NoError(t, err)
	m, err := b.Module(bank.ModulePsychometric)
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := New(strings.NewReader("1\n"), &out, nil).Run(context.Background(), m)
	require.NoError(t, err)

	assert.True(t, res.Scored)
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, out.String(), "✗ Incorrect. Answer: Strongly Agree")
}
