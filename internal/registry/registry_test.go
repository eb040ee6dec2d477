package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func constant(v uint64) puzzle.Solver {
	return func(puzzle.Input) (puzzle.Answer, error) { return puzzle.Number(v), nil }
}

func day(id string) Day {
	return Day{
		ID:          id,
		Description: "test " + id,
		Parts:       [2]Part{{Name: "one", Solve: constant(1)}, {Name: "two", Solve: constant(2)}},
	}
}

func TestLookup_Registered(t *testing.T) {
	r := MustNew(day("day1"), day("day2"), day("day10"))

	for _, id := range r.IDs() {
		d, err := r.Lookup(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, d.ID)
		assert.Len(t, d.Parts, 2)
		for _, p := range d.Parts {
			assert.NotNil(t, p.Solve)
		}
	}
}

func TestLookup_Normalized(t *testing.T) {
	r := MustNew(day("day1"), day("day10"))

	for _, id := range []string{"day1", "DAY1", " day1 ", "1", "01"} {
		d, err := r.Lookup(id)
		require.NoError(t, err, id)
		assert.Equal(t, "day1", d.ID)
	}
	d, err := r.Lookup("10")
	require.NoError(t, err)
	assert.Equal(t, "day10", d.ID)
}

func TestLookup_Unknown(t *testing.T) {
	r := MustNew(day("day1"), day("day2"))

	for _, id := range []string{"day99", "", "help", "day", "0", "day1x"} {
		_, err := r.Lookup(id)
		require.Error(t, err, id)
		assert.ErrorIs(t, err, ErrUnknownDay)

		var ude *UnknownDayError
		require.True(t, errors.As(err, &ude))
		assert.Equal(t, id, ude.ID)
		assert.Equal(t, []string{"day1", "day2"}, ude.Known)
	}
}

func TestNew_Invalid(t *testing.T) {
	missing := day("day3")
	missing.Parts[1].Solve = nil

	tests := []struct {
		name string
		days []Day
		msg  string
	}{
		{"empty id", []Day{day("")}, "empty identifier"},
		{"duplicate", []Day{day("day1"), day("day1")}, "registered twice"},
		{"not canonical", []Day{day("Day1")}, "canonical form"},
		{"missing solver", []Day{missing}, "part 2 has no solver"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.days...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(day("day1"), day("day1")) })
}

func TestRegistry_CopiesAreIndependent(t *testing.T) {
	r := MustNew(day("day1"), day("day2"))

	ids := r.IDs()
	ids[0] = "mutated"
	days := r.Days()
	days[0].ID = "mutated"

	assert.Equal(t, []string{"day1", "day2"}, r.IDs())
	_, err := r.Lookup("day1")
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"day1":   "day1",
		" Day4 ": "day4",
		"7":      "day7",
		"007":    "day7",
		"0":      "day0",
		"":       "",
		"help":   "help",
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), in)
	}
}
