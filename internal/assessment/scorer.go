package assessment

import "github.com/abhisek/navigator/internal/bank"

// Scorer checks selections against a module's correct indices.
type Scorer struct {
	module *bank.Module
}

// NewScorer returns a Scorer for m.
func NewScorer(m *bank.Module) *Scorer {
	return &Scorer{module: m}
}

// Evaluate reports whether selected is the correct index for question id.
// Unscored questions are never correct.
func (s *Scorer) Evaluate(id string, selected int) (bool, error) {
	q, ok := s.module.Question(id)
	if !ok {
		return false, &InvalidQuestionIDError{Module: s.module.ID, ID: id}
	}
	c, scored := q.CorrectIndex()
	return scored && c == selected, nil
}

// Submission is the outcome of Quiz.Submit.
type Submission struct {
	// Accepted is false when the question already had an answer; the
	// earlier answer and score stand.
	Accepted bool
	Correct  bool
}

// Quiz is a Flow whose answers are scored. Each question can be answered
// once and counts toward the score at most once.
type Quiz struct {
	*Flow
	scorer  *Scorer
	score   int
	correct map[string]bool
}

// NewQuiz starts a scored flow over m.
func NewQuiz(m *bank.Module) *Quiz {
	return &Quiz{
		Flow:    NewFlow(m),
		scorer:  NewScorer(m),
		correct: make(map[string]bool),
	}
}

// Submit records selected for question id and updates the score. A second
// submission for the same id is rejected without error.
func (q *Quiz) Submit(id string, selected int) (Submission, error) {
	if _, answered := q.Answer(id); answered {
		return Submission{Correct: q.correct[id]}, nil
	}
	ok, err := q.scorer.Evaluate(id, selected)
	if err != nil {
		return Submission{}, err
	}
	if err := q.RecordAnswer(id, selected); err != nil {
		return Submission{}, err
	}
	q.correct[id] = ok
	if ok {
		q.score++
	}
	return Submission{Accepted: true, Correct: ok}, nil
}

// Score returns the number of correct first answers.
func (q *Quiz) Score() int {
	return q.score
}

// WasCorrect reports the result for an answered question.
func (q *Quiz) WasCorrect(id string) (correct, answered bool) {
	correct, answered = q.correct[id]
	return correct, answered
}
