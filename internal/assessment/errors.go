package assessment

import (
	"errors"
	"fmt"

	"github.com/abhisek/navigator/internal/bank"
)

var (
	// ErrInvalidQuestionID is matched by errors for answers recorded against
	// a question id that is not in the active module.
	ErrInvalidQuestionID = errors.New("invalid question id")

	// ErrInvalidValue is matched by errors for answer values outside the
	// question's range.
	ErrInvalidValue = errors.New("invalid answer value")
)

// InvalidQuestionIDError names the module and the unknown id.
type InvalidQuestionIDError struct {
	Module bank.ModuleID
	ID     string
}

func (e *InvalidQuestionIDError) Error() string {
	return fmt.Sprintf("%v: %q is not in module %s", ErrInvalidQuestionID, e.ID, e.Module)
}

func (e *InvalidQuestionIDError) Is(target error) bool { return target == ErrInvalidQuestionID }

// InvalidValueError reports a value outside [Min, Max] for a question.
type InvalidValueError struct {
	ID       string
	Value    int
	Min, Max int
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%v: %d for %q (want %d..%d)", ErrInvalidValue, e.Value, e.ID, e.Min, e.Max)
}

func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }
