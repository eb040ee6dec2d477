package harness

import "fmt"

// State is a step of a single invocation.
//
//	Idle → InputLoaded → Variant1Run → Variant2Run → Reported → Done
//
// Error is reachable from every non-terminal state.
type State string

const (
	StateIdle        State = "idle"
	StateInputLoaded State = "input_loaded"
	StateVariant1Run State = "variant1_run"
	StateVariant2Run State = "variant2_run"
	StateReported    State = "reported"
	StateDone        State = "done"
	StateError       State = "error"
)

// IsTerminal reports whether no further transition is possible.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateError
}

func isAllowedTransition(from, to State) bool {
	if to == StateError {
		return !from.IsTerminal()
	}
	switch from {
	case StateIdle:
		return to == StateInputLoaded
	case StateInputLoaded:
		return to == StateVariant1Run
	case StateVariant1Run:
		return to == StateVariant2Run
	case StateVariant2Run:
		return to == StateReported
	case StateReported:
		return to == StateDone
	default:
		return false
	}
}

// machine tracks the current state and the path taken to reach it.
type machine struct {
	current State
	path    []State
}

func newMachine() *machine {
	return &machine{current: StateIdle, path: []State{StateIdle}}
}

// transition moves to the next state. An illegal transition means the
// harness itself is broken, so it panics rather than returning an error.
func (m *machine) transition(to State) {
	if !isAllowedTransition(m.current, to) {
		panic(fmt.Sprintf("harness: disallowed transition %s -> %s", m.current, to))
	}
	m.current = to
	m.path = append(m.path, to)
}
