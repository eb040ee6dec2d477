// Package harness runs the two parts of a day against one input file.
//
// A run loads the input once, invokes part one and then part two on the
// calling goroutine, times each step, and records everything in a Report.
// A failing part never prevents the other from running; a failed load
// prevents both.
package harness

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aoc2023/internal/input"
	"aoc2023/internal/logging"
	"aoc2023/internal/puzzle"
	"aoc2023/internal/registry"
)

// Loader reads an input file.
type Loader func(path string) (puzzle.Input, error)

// Harness executes days. It holds no per-run state and may be reused.
type Harness struct {
	log      *zap.Logger
	inputLog *zap.Logger
	load     Loader
	now      func() time.Time
	newRunID func() string
	slow     time.Duration
}

// Option configures a Harness.
type Option func(*Harness)

// WithLoader replaces input.Load.
func WithLoader(l Loader) Option {
	return func(h *Harness) { h.load = l }
}

// WithClock replaces time.Now for duration measurement.
func WithClock(now func() time.Time) Option {
	return func(h *Harness) { h.now = now }
}

// WithRunID replaces the random run id generator.
func WithRunID(fn func() string) Option {
	return func(h *Harness) { h.newRunID = fn }
}

// WithSlowThreshold logs a warning for parts that run longer than d.
// Zero disables the warning.
func WithSlowThreshold(d time.Duration) Option {
	return func(h *Harness) { h.slow = d }
}

// New creates a harness logging through logger (nil discards logs).
func New(logger *zap.Logger, opts ...Option) *Harness {
	h := &Harness{
		log:      logging.For(logger, logging.CategoryHarness),
		inputLog: logging.For(logger, logging.CategoryInput),
		load:     input.Load,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var partStates = [2]State{StateVariant1Run, StateVariant2Run}

// Run executes day against the file at path.
func (h *Harness) Run(day registry.Day, path string) *Report {
	m := newMachine()
	r := &Report{
		RunID:       h.newRunID(),
		Day:         day.ID,
		Description: day.Description,
		InputPath:   path,
	}
	runFields := []zap.Field{zap.String("run_id", r.RunID), zap.String("day", day.ID)}
	log := h.log.With(runFields...)

	timer := logging.StartTimerWithClock(h.inputLog.With(runFields...), h.now, "load input", zap.String("path", path))
	in, err := h.load(path)
	if err != nil {
		r.LoadDuration = timer.StopWithError(err, zap.String("path", path))
		r.LoadErr = err
		m.transition(StateError)
		return r.finish(m)
	}
	r.LoadDuration = timer.Stop(zap.Int("bytes", in.Len()))
	r.InputBytes = in.Len()
	m.transition(StateInputLoaded)

	for i, part := range day.Parts {
		r.Parts = append(r.Parts, h.runPart(log, i, part, in))
		m.transition(partStates[i])
	}

	for _, p := range r.Parts {
		log.Info("part result",
			zap.Int("part", p.Index),
			zap.String("name", p.Name),
			zap.Bool("ok", p.OK()),
			zap.String("result", p.Display()),
			zap.Duration("elapsed", p.Duration))
	}
	m.transition(StateReported)

	log.Debug("run finished", zap.Stringer("outcome", r.Outcome()))
	m.transition(StateDone)
	return r.finish(m)
}

func (h *Harness) runPart(log *zap.Logger, i int, part registry.Part, in puzzle.Input) PartResult {
	res := PartResult{Index: i + 1, Name: part.Name}
	plog := log.With(zap.Int("part", res.Index))

	timer := logging.StartTimerWithClock(plog, h.now, "solve", zap.String("name", part.Name))
	answer, err := part.Solve(in)
	if err == nil && answer == nil {
		err = &puzzle.SolveError{Kind: puzzle.ErrNoAnswer, Msg: "solver returned neither answer nor error"}
	}
	if err != nil {
		res.Err = puzzle.AsSolveError(err)
		res.Duration = timer.StopWithError(res.Err)
		return res
	}

	res.Answer = answer
	if h.slow > 0 {
		res.Duration = timer.StopWithThreshold(h.slow, zap.Stringer("answer", answer))
	} else {
		res.Duration = timer.Stop(zap.Stringer("answer", answer))
	}
	return res
}

func (r *Report) finish(m *machine) *Report {
	r.State = m.current
	r.Trace = append([]State(nil), m.path...)
	return r
}
