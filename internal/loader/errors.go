package loader

import "fmt"

// Code is a machine-readable validation failure.
type Code string

const (
	CodeDeadEnd         Code = "DEAD_END"
	CodeNoExitStage     Code = "NO_EXIT_STAGE"
	CodeDuplicateID     Code = "DUPLICATE_ID"
	CodeUnknownStat     Code = "UNKNOWN_STAT"
	CodeUnknownStage    Code = "UNKNOWN_STAGE"
	CodeUnknownItem     Code = "UNKNOWN_ITEM"
	CodeEmptyOptionText Code = "EMPTY_OPTION_TEXT"
)

// ValidationError explains why a story was rejected. Messages always use
// the ids written in the story file.
type ValidationError struct {
	Code    Code
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func fail(code Code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
