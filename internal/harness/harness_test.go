package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aoc2023/internal/input"
	"aoc2023/internal/puzzle"
	"aoc2023/internal/registry"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stepClock advances by step on every call.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newClock(step time.Duration) *stepClock {
	return &stepClock{t: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), step: step}
}

func countLines(in puzzle.Input) (puzzle.Answer, error) {
	lines, err := in.NonEmptyLines()
	if err != nil {
		return nil, err
	}
	return puzzle.Number(len(lines)), nil
}

func countBytes(in puzzle.Input) (puzzle.Answer, error) {
	return puzzle.Number(in.Len()), nil
}

func failing(msg string) puzzle.Solver {
	return func(puzzle.Input) (puzzle.Answer, error) {
		return nil, errors.New(msg)
	}
}

func testDay(p1, p2 puzzle.Solver) registry.Day {
	return registry.Day{
		ID:          "day1",
		Description: "Test day",
		Parts: [2]registry.Part{
			{Name: "first", Solve: p1},
			{Name: "second", Solve: p2},
		},
	}
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "day1.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestHarness(logger *zap.Logger, opts ...Option) *Harness {
	base := []Option{
		WithClock(newClock(time.Millisecond).now),
		WithRunID(func() string { return "run-1" }),
	}
	return New(logger, append(base, opts...)...)
}

func TestRun_Success(t *testing.T) {
	path := writeInput(t, "1abc2\npqr3str8vwx\n")

	r := newTestHarness(nil).Run(testDay(countLines, countBytes), path)

	assert.Equal(t, "run-1", r.RunID)
	assert.Equal(t, "day1", r.Day)
	assert.Equal(t, path, r.InputPath)
	assert.NoError(t, r.LoadErr)
	assert.Equal(t, 18, r.InputBytes)
	assert.Equal(t, Success, r.Outcome())
	assert.Equal(t, StateDone, r.State)
	assert.Equal(t, []State{
		StateIdle, StateInputLoaded, StateVariant1Run, StateVariant2Run, StateReported, StateDone,
	}, r.Trace)

	require.Len(t, r.Parts, 2)
	assert.Equal(t, 1, r.Parts[0].Index)
	assert.Equal(t, "first", r.Parts[0].Name)
	assert.Equal(t, puzzle.Number(2), r.Parts[0].Answer)
	assert.Equal(t, 2, r.Parts[1].Index)
	assert.Equal(t, puzzle.Number(18), r.Parts[1].Answer)
	assert.Equal(t, time.Millisecond, r.Parts[0].Duration)
	assert.Equal(t, time.Millisecond, r.LoadDuration)
}

func TestRun_PartialFailureStillRunsOtherPart(t *testing.T) {
	path := writeInput(t, "abc\n")
	calls := 0
	second := func(in puzzle.Input) (puzzle.Answer, error) {
		calls++
		return countBytes(in)
	}

	r := newTestHarness(nil).Run(testDay(failing("boom"), second), path)

	assert.Equal(t, 1, calls)
	assert.Equal(t, PartialFailure, r.Outcome())
	assert.Equal(t, StateDone, r.State)
	require.Len(t, r.Parts, 2)
	require.NotNil(t, r.Parts[0].Err)
	assert.ErrorIs(t, r.Parts[0].Err, puzzle.ErrSolve)
	assert.Equal(t, "solve failed: boom", r.Parts[0].Display())
	assert.True(t, r.Parts[1].OK())

	failed := r.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, 1, failed[0].Index)
}

func TestRun_TotalFailure(t *testing.T) {
	path := writeInput(t, "\n\n")

	r := newTestHarness(nil).Run(testDay(countLines, countLines), path)

	assert.Equal(t, TotalFailure, r.Outcome())
	for _, p := range r.Parts {
		assert.ErrorIs(t, p.Err, puzzle.ErrEmptyInput)
	}
}

func TestRun_NilAnswerIsFailure(t *testing.T) {
	path := writeInput(t, "x\n")
	nothing := func(puzzle.Input) (puzzle.Answer, error) { return nil, nil }

	r := newTestHarness(nil).Run(testDay(nothing, countBytes), path)

	assert.Equal(t, PartialFailure, r.Outcome())
	assert.ErrorIs(t, r.Parts[0].Err, puzzle.ErrNoAnswer)
}

func TestRun_LoadFailureRunsNoPart(t *testing.T) {
	called := false
	solve := func(puzzle.Input) (puzzle.Answer, error) {
		called = true
		return puzzle.Number(0), nil
	}
	path := filepath.Join(t.TempDir(), "missing.txt")

	r := newTestHarness(nil).Run(testDay(solve, solve), path)

	assert.False(t, called)
	assert.Equal(t, LoadFailure, r.Outcome())
	assert.ErrorIs(t, r.LoadErr, input.ErrNotFound)
	assert.Empty(t, r.Parts)
	assert.Equal(t, StateError, r.State)
	assert.Equal(t, []State{StateIdle, StateError}, r.Trace)
}

func TestRun_CustomLoader(t *testing.T) {
	var loaded []string
	loader := func(path string) (puzzle.Input, error) {
		loaded = append(loaded, path)
		return puzzle.NewInput(path, "a\nb\nc\n"), nil
	}

	r := newTestHarness(nil, WithLoader(loader)).Run(testDay(countLines, countLines), "virtual")

	assert.Equal(t, []string{"virtual"}, loaded, "input must be loaded exactly once")
	assert.Equal(t, puzzle.Number(3), r.Parts[0].Answer)
	assert.Equal(t, puzzle.Number(3), r.Parts[1].Answer)
}

func TestRun_Deterministic(t *testing.T) {
	path := writeInput(t, "1abc2\npqr3str8vwx\n")
	day := testDay(countLines, countBytes)

	first := New(nil).Run(day, path)
	second := New(nil).Run(day, path)

	assert.NotEqual(t, first.RunID, second.RunID)
	opts := cmp.Options{
		cmpopts.IgnoreFields(Report{}, "RunID", "LoadDuration"),
		cmpopts.IgnoreFields(PartResult{}, "Duration"),
	}
	if diff := cmp.Diff(first, second, opts); diff != "" {
		t.Errorf("reports differ (-first +second):\n%s", diff)
	}
}

func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	path := writeInput(t, "abc\n")

	newTestHarness(zap.New(core)).Run(testDay(countLines, failing("bad")), path)

	for _, msg := range []string{"load input started", "load input completed", "solve started", "solve completed", "solve failed"} {
		assert.Equal(t, 1, logs.FilterMessage(msg).Len(), msg)
	}
	for _, entry := range logs.All() {
		want := "harness"
		if strings.HasPrefix(entry.Message, "load input") {
			want = "input"
		}
		assert.Equal(t, want, entry.LoggerName, entry.Message)
		fields := entry.ContextMap()
		assert.Equal(t, "run-1", fields["run_id"], entry.Message)
		assert.Equal(t, "day1", fields["day"], entry.Message)
	}

	failed := logs.FilterMessage("solve failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, int64(2), failed[0].ContextMap()["part"])
}

func TestRun_SlowThreshold(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path := writeInput(t, "abc\n")
	h := New(zap.New(core),
		WithClock(newClock(2*time.Second).now),
		WithSlowThreshold(time.Second))

	r := h.Run(testDay(countLines, countBytes), path)

	assert.Equal(t, Success, r.Outcome())
	assert.Equal(t, 2, logs.FilterMessage("solve was slow").Len())
}

func TestWriteSummary(t *testing.T) {
	path := writeInput(t, "abc\n")
	r := newTestHarness(nil).Run(testDay(countLines, failing("bad")), path)

	var out bytes.Buffer
	require.NoError(t, WriteSummary(&out, r))

	want := strings.Join([]string{
		fmt.Sprintf("day1 - Test day (%s)", path),
		"Part 1 (first): 1 [1ms]",
		"Part 2 (second): failed [1ms]",
		"Outcome: partial failure",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestWriteErrors(t *testing.T) {
	t.Run("part failure", func(t *testing.T) {
		path := writeInput(t, "abc\n")
		r := newTestHarness(nil).Run(testDay(countLines, failing("bad")), path)

		var out bytes.Buffer
		require.NoError(t, WriteErrors(&out, r))
		assert.Equal(t, "error: day1 part 2 (second): solve failed: bad\n", out.String())
	})

	t.Run("load failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.txt")
		r := newTestHarness(nil).Run(testDay(countLines, countLines), path)

		var out bytes.Buffer
		require.NoError(t, WriteErrors(&out, r))
		assert.True(t, strings.HasPrefix(out.String(), "error: day1: cannot load input: "), out.String())
		assert.Contains(t, out.String(), path)
	})

	t.Run("success writes nothing", func(t *testing.T) {
		path := writeInput(t, "abc\n")
		r := newTestHarness(nil).Run(testDay(countLines, countLines), path)

		var out bytes.Buffer
		require.NoError(t, WriteErrors(&out, r))
		assert.Empty(t, out.String())
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "partial failure", PartialFailure.String())
	assert.Equal(t, "total failure", TotalFailure.String())
	assert.Equal(t, "input load failure", LoadFailure.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
