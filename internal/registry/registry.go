// Package registry maps day identifiers to their two solvers.
//
// A Registry is built once from a fixed table and never changes afterwards,
// so it can be shared without synchronization.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"aoc2023/internal/puzzle"
)

// ErrUnknownDay is matched by lookups for identifiers that are not registered.
var ErrUnknownDay = errors.New("unknown day")

// Part is one of the two variants of a day.
type Part struct {
	Name  string
	Solve puzzle.Solver
}

// Day is a registered puzzle with exactly two parts.
type Day struct {
	ID          string
	Description string
	Parts       [2]Part
}

// UnknownDayError is returned by Lookup. Known lists the registered ids.
type UnknownDayError struct {
	ID    string
	Known []string
}

func (e *UnknownDayError) Error() string {
	return fmt.Sprintf("unknown day %q (registered: %s)", e.ID, strings.Join(e.Known, ", "))
}

func (e *UnknownDayError) Unwrap() error { return ErrUnknownDay }

// Registry is an immutable day table.
type Registry struct {
	days  []Day
	index map[string]int
}

// New validates days and builds a registry in the given order.
func New(days ...Day) (*Registry, error) {
	r := &Registry{
		days:  make([]Day, 0, len(days)),
		index: make(map[string]int, len(days)),
	}
	for i, d := range days {
		id := Normalize(d.ID)
		if id == "" {
			return nil, fmt.Errorf("day #%d: empty identifier", i)
		}
		if id != d.ID {
			return nil, fmt.Errorf("day %q: identifier must be in canonical form %q", d.ID, id)
		}
		if _, dup := r.index[id]; dup {
			return nil, fmt.Errorf("day %q: registered twice", id)
		}
		for p, part := range d.Parts {
			if part.Solve == nil {
				return nil, fmt.Errorf("day %q: part %d has no solver", id, p+1)
			}
		}
		r.index[id] = len(r.days)
		r.days = append(r.days, d)
	}
	return r, nil
}

// MustNew is New for static tables; an invalid table panics.
func MustNew(days ...Day) *Registry {
	r, err := New(days...)
	if err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	return r
}

// Lookup returns the day registered under id. The id is normalized first,
// so "Day1", " day1 " and "1" all find "day1".
func (r *Registry) Lookup(id string) (Day, error) {
	if i, ok := r.index[Normalize(id)]; ok {
		return r.days[i], nil
	}
	return Day{}, &UnknownDayError{ID: id, Known: r.IDs()}
}

// IDs returns the registered identifiers in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.days))
	for i, d := range r.days {
		ids[i] = d.ID
	}
	return ids
}

// Days returns a copy of the table in registration order.
func (r *Registry) Days() []Day {
	out := make([]Day, len(r.days))
	copy(out, r.days)
	return out
}

// Len returns the number of registered days.
func (r *Registry) Len() int { return len(r.days) }

// Normalize trims and lowercases id and turns a bare number into "day<n>".
func Normalize(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id != "" && isDigits(id) {
		n := strings.TrimLeft(id, "0")
		if n == "" {
			n = "0"
		}
		return "day" + n
	}
	return id
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) || r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
