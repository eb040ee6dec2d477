package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_HappyPath(t *testing.T) {
	m := newMachine()
	for _, s := range []State{StateInputLoaded, StateVariant1Run, StateVariant2Run, StateReported, StateDone} {
		m.transition(s)
	}
	assert.Equal(t, StateDone, m.current)
	assert.Len(t, m.path, 6)
	assert.True(t, m.current.IsTerminal())
}

func TestMachine_ErrorFromAnyNonTerminalState(t *testing.T) {
	for _, from := range []State{StateIdle, StateInputLoaded, StateVariant1Run, StateVariant2Run, StateReported} {
		assert.True(t, isAllowedTransition(from, StateError), from)
	}
	assert.False(t, isAllowedTransition(StateDone, StateError))
	assert.False(t, isAllowedTransition(StateError, StateError))
}

func TestMachine_DisallowedTransitionPanics(t *testing.T) {
	tests := []struct {
		name string
		path []State
		to   State
	}{
		{"skip load", nil, StateVariant1Run},
		{"variant order", []State{StateInputLoaded}, StateVariant2Run},
		{"after done", []State{StateInputLoaded, StateVariant1Run, StateVariant2Run, StateReported, StateDone}, StateIdle},
		{"after error", []State{StateError}, StateInputLoaded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine()
			for _, s := range tt.path {
				m.transition(s)
			}
			assert.Panics(t, func() { m.transition(tt.to) })
		})
	}
}
