package bank

import "time"

// ModuleID identifies an assessment module that carries questions.
type ModuleID string

const (
	ModulePsychometric ModuleID = "psychometric"
	ModuleTechnical    ModuleID = "technical"
)

// ModuleOrder is the order in which question modules are presented.
var ModuleOrder = []ModuleID{ModulePsychometric, ModuleTechnical}

// QuestionType is the input style of a question.
type QuestionType string

const (
	TypeChoice QuestionType = "choice" // single choice from Options
	TypeLikert QuestionType = "likert" // scaled choice from LikertLabels
	TypeSlider QuestionType = "slider" // numeric rating SliderMin..SliderMax
)

// Difficulty grades technical questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// LikertLabels are the fixed labels of a scaled-choice question, in value order.
var LikertLabels = []string{"Strongly Disagree", "Disagree", "Neutral", "Agree", "Strongly Agree"}

// Slider bounds.
const (
	SliderMin     = 1
	SliderMax     = 10
	SliderDefault = 5
)

// DefaultTimeLimit applies to timed modules when a question has no budget.
const DefaultTimeLimit = 60 * time.Second

// Question is a single immutable question record.
type Question struct {
	ID          string       `yaml:"id"`
	Category    string       `yaml:"category"`
	Type        QuestionType `yaml:"type"`
	Difficulty  Difficulty   `yaml:"difficulty,omitempty"`
	Prompt      string       `yaml:"prompt"`
	Description string       `yaml:"description,omitempty"`
	Options     []string     `yaml:"options,omitempty"`
	Correct     *int         `yaml:"correct,omitempty"`
	Explanation string       `yaml:"explanation,omitempty"`
	TimeLimit   int          `yaml:"time_limit,omitempty"` // seconds
}

// Choices returns the selectable labels for choice and likert questions.
// Slider questions have none.
func (q Question) Choices() []string {
	switch q.Type {
	case TypeLikert:
		return LikertLabels
	case TypeChoice:
		return q.Options
	}
	return nil
}

// Range returns the inclusive bounds of a valid answer value.
func (q Question) Range() (lo, hi int) {
	if q.Type == TypeSlider {
		return SliderMin, SliderMax
	}
	return 0, len(q.Choices()) - 1
}

// CorrectIndex returns the correct choice index, if the question is scored.
func (q Question) CorrectIndex() (int, bool) {
	if q.Correct == nil {
		return 0, false
	}
	return *q.Correct, true
}

// TimeBudget returns the per-question time budget, or zero if none is set.
func (q Question) TimeBudget() time.Duration {
	return time.Duration(q.TimeLimit) * time.Second
}

// Category groups questions within a module.
type Category struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Label string `yaml:"label,omitempty"`
	Blurb string `yaml:"blurb,omitempty"`
}

// Module is an ordered question list plus its display metadata.
type Module struct {
	ID         ModuleID   `yaml:"-"`
	Title      string     `yaml:"title"`
	Subtitle   string     `yaml:"subtitle,omitempty"`
	Estimate   string     `yaml:"estimate,omitempty"`
	Categories []Category `yaml:"categories,omitempty"`
	Questions  []Question `yaml:"questions"`
}

// Len returns the number of questions.
func (m *Module) Len() int {
	return len(m.Questions)
}

// Question looks up a question by id.
func (m *Module) Question(id string) (Question, bool) {
	for _, q := range m.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Category looks up a category by id.
func (m *Module) Category(id string) (Category, bool) {
	for _, c := range m.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryName returns the display name for a category id, falling back to
// a generic label.
func (m *Module) CategoryName(id string) string {
	if c, ok := m.Category(id); ok {
		return c.Name
	}
	return "Assessment"
}

// Bank is the full set of question modules.
type Bank struct {
	Version string               `yaml:"version"`
	Modules map[ModuleID]*Module `yaml:"modules"`
}
