// Package input loads puzzle input files.
//
// A file is read once, in full, and handed to the solvers unmodified. There
// is no caching and no retry: a failed read is reported immediately.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"aoc2023/internal/puzzle"
)

// Load failure kinds. Match with errors.Is.
var (
	ErrNotFound        = errors.New("input not found")
	ErrUnreadable      = errors.New("input unreadable")
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// LoadError wraps a failed load with the path and the underlying cause.
type LoadError struct {
	Kind error
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Load reads path into a puzzle.Input. Empty files load successfully;
// deciding whether empty input is acceptable is up to the solvers.
func Load(path string) (puzzle.Input, error) {
	if path == "" {
		return puzzle.Input{}, &LoadError{Kind: ErrNotFound, Path: path, Err: errors.New("empty path")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return puzzle.Input{}, classify(path, err)
	}

	if !utf8.Valid(data) {
		return puzzle.Input{}, &LoadError{
			Kind: ErrInvalidEncoding,
			Path: path,
			Err:  fmt.Errorf("invalid byte sequence at offset %d", invalidOffset(data)),
		}
	}

	return puzzle.NewInput(path, string(data)), nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &LoadError{Kind: ErrNotFound, Path: path, Err: err}
	default:
		// permission denied, directories and anything else the OS reports
		return &LoadError{Kind: ErrUnreadable, Path: path, Err: err}
	}
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
