package harness

import (
	"time"

	"aoc2023/internal/puzzle"
)

// Outcome is the aggregate result of one invocation.
type Outcome int

const (
	// Success means both parts produced an answer.
	Success Outcome = iota
	// PartialFailure means exactly one part failed.
	PartialFailure
	// TotalFailure means both parts failed.
	TotalFailure
	// LoadFailure means the input could not be loaded and no part ran.
	LoadFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case PartialFailure:
		return "partial failure"
	case TotalFailure:
		return "total failure"
	case LoadFailure:
		return "input load failure"
	default:
		return "unknown"
	}
}

// PartResult is the outcome of running one part.
type PartResult struct {
	Index    int // 1 or 2
	Name     string
	Answer   puzzle.Answer
	Err      *puzzle.SolveError
	Duration time.Duration
}

// OK reports whether the part produced an answer.
func (p PartResult) OK() bool { return p.Err == nil }

// Display returns the answer, or the failure message.
func (p PartResult) Display() string {
	if p.Err != nil {
		return p.Err.Error()
	}
	return p.Answer.String()
}

// Report describes one invocation of the harness.
type Report struct {
	RunID       string
	Day         string
	Description string
	InputPath   string

	// State is the final state; Trace lists every state visited, in order.
	State State
	Trace []State

	LoadErr      error
	LoadDuration time.Duration
	InputBytes   int

	// Parts holds the results in variant order. Empty when loading failed.
	Parts []PartResult
}

// Outcome aggregates the part results.
func (r *Report) Outcome() Outcome {
	if r.LoadErr != nil {
		return LoadFailure
	}
	failed := 0
	for _, p := range r.Parts {
		if !p.OK() {
			failed++
		}
	}
	switch {
	case failed == 0:
		return Success
	case failed == len(r.Parts):
		return TotalFailure
	default:
		return PartialFailure
	}
}

// Failed returns the results of the parts that failed, in order.
func (r *Report) Failed() []PartResult {
	var out []PartResult
	for _, p := range r.Parts {
		if !p.OK() {
			out = append(out, p)
		}
	}
	return out
}
