package assessment

// AnswerSet maps question id to the selected value: a choice index for
// choice and likert questions, a rating for sliders.
type AnswerSet struct {
	values map[string]int
}

// NewAnswerSet returns an empty AnswerSet.
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{values: make(map[string]int)}
}

// Set records value for id. Last write wins.
func (a *AnswerSet) Set(id string, value int) {
	a.values[id] = value
}

// Get returns the value recorded for id.
func (a *AnswerSet) Get(id string) (int, bool) {
	v, ok := a.values[id]
	return v, ok
}

// Has reports whether id has a recorded answer.
func (a *AnswerSet) Has(id string) bool {
	_, ok := a.values[id]
	return ok
}

// Len returns the number of answered questions.
func (a *AnswerSet) Len() int {
	return len(a.values)
}

// Snapshot returns a copy of the recorded values.
func (a *AnswerSet) Snapshot() map[string]int {
	out := make(map[string]int, len(a.values))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}
