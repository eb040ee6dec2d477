package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds a solver can report. Match with errors.Is.
var (
	ErrSolve          = errors.New("solve failed")
	ErrEmptyInput     = errors.New("empty input")
	ErrMalformedInput = errors.New("malformed input")
	ErrParse          = errors.New("parse failure")
	ErrOverflow       = errors.New("arithmetic overflow")
	ErrNoAnswer       = errors.New("no answer")
)

// SolveError describes why a part could not produce an answer.
// Line is 0 when the failure is not tied to a single line.
type SolveError struct {
	Kind error
	Line int
	Msg  string
	Err  error
}

func (e *SolveError) Error() string {
	if e == nil {
		return ""
	}
	kind := e.Kind
	if kind == nil {
		kind = ErrSolve
	}
	parts := []string{kind.Error()}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap exposes both the kind and the underlying cause.
func (e *SolveError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// AsSolveError returns err as a *SolveError, wrapping it with kind ErrSolve
// when it is not one already. It returns nil for a nil error.
func AsSolveError(err error) *SolveError {
	if err == nil {
		return nil
	}
	var se *SolveError
	if errors.As(err, &se) {
		return se
	}
	return &SolveError{Kind: ErrSolve, Err: err}
}

// Malformed reports input that does not have the expected shape.
func Malformed(line Line, format string, args ...any) error {
	return &SolveError{
		Kind: ErrMalformedInput,
		Line: line.Number,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// ParseFailure reports a value on line that could not be converted.
func ParseFailure(line Line, err error, format string, args ...any) error {
	return &SolveError{
		Kind: ErrParse,
		Line: line.Number,
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}

// Overflow reports a result that does not fit the answer type.
func Overflow(format string, args ...any) error {
	return &SolveError{Kind: ErrOverflow, Msg: fmt.Sprintf(format, args...)}
}
