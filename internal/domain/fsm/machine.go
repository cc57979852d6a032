// Package fsm provides a small keyed state machine. A machine holds a
// fixed map of named states and one current state; transitions run the
// exit hook of the old state and the enter hook of the new one. It is
// reusable for any stateful entity.
package fsm

import "fmt"

// Key names a state within a machine
type Key string

// State is one behavior of a state machine. A state is bound to its
// parent entity at construction and holds no other mutable state of its
// own besides transition-scoped data (countdowns started in OnEnter).
type State interface {
	// OnEnter runs when the machine transitions into this state.
	OnEnter()

	// OnExit runs when the machine transitions out of this state.
	OnExit()

	// Update advances the parent entity one tick.
	Update()
}

// Machine holds the state map and the current key.
// The current key is always a valid key of the map.
type Machine struct {
	states  map[Key]State
	current Key
}

// New creates a machine from a state map and initial key. The initial
// state's OnEnter is not called. Construction errors are programming
// errors and are rejected immediately.
func New(states map[Key]State, initial Key) (*Machine, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("fsm: empty state map")
	}
	for k, s := range states {
		if s == nil {
			return nil, fmt.Errorf("fsm: nil state for key %q", k)
		}
	}
	if _, ok := states[initial]; !ok {
		return nil, fmt.Errorf("fsm: initial state %q not in state map", initial)
	}
	return &Machine{states: states, current: initial}, nil
}

// MustNew is New for call sites with compile-time keys; it panics on a
// construction error.
func MustNew(states map[Key]State, initial Key) *Machine {
	m, err := New(states, initial)
	if err != nil {
		panic(err)
	}
	return m
}

// Current returns the current state key
func (m *Machine) Current() Key {
	return m.current
}

// Update advances the current state one tick
func (m *Machine) Update() {
	m.states[m.current].Update()
}

// Set transitions to the given key, running the exit and enter hooks.
// Setting the current key again is a no-op; an unknown key is an error.
func (m *Machine) Set(key Key) error {
	next, ok := m.states[key]
	if !ok {
		return fmt.Errorf("fsm: state %q not in state map", key)
	}
	if m.current == key {
		return nil
	}
	m.states[m.current].OnExit()
	m.current = key
	next.OnEnter()
	return nil
}

// MustSet is Set for transitions between compile-time keys; it panics
// on an unknown key.
func (m *Machine) MustSet(key Key) {
	if err := m.Set(key); err != nil {
		panic(err)
	}
}
