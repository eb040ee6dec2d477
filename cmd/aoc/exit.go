package main

import (
	"errors"

	"aoc2023/internal/harness"
	"aoc2023/internal/registry"
)

// Exit codes. These are part of the command's interface; do not renumber.
const (
	exitOK             = 0 // both parts produced an answer
	exitUsage          = 1 // bad arguments, bad config, internal error
	exitUnknownDay     = 2 // day not registered; nothing was run
	exitInputLoad      = 3 // input file missing, unreadable or not UTF-8
	exitPartialFailure = 4 // exactly one part failed
	exitTotalFailure   = 5 // both parts failed
)

// usageError marks errors caused by the command line or the config file.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func exitCodeFor(o harness.Outcome) int {
	switch o {
	case harness.Success:
		return exitOK
	case harness.PartialFailure:
		return exitPartialFailure
	case harness.TotalFailure:
		return exitTotalFailure
	case harness.LoadFailure:
		return exitInputLoad
	default:
		return exitUsage
	}
}

func exitCodeForError(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, registry.ErrUnknownDay):
		return exitUnknownDay
	default:
		return exitUsage
	}
}
