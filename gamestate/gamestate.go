// Package gamestate tracks which state a game is in and tells subscribers when
// it moves.
package gamestate

import (
	"errors"
	"fmt"

	"github.com/delaneyj/slotsignals/signals"
)

// ErrInvalidGameState is returned when the game is asked to do something its
// current state does not allow, like opening the inventory from the main menu.
var ErrInvalidGameState = errors.New("invalid game state")

type InvalidStateError[S comparable] struct {
	Current S
	Allowed []S
}

func (e *InvalidStateError[S]) Error() string {
	return fmt.Sprintf("%v: in %v, want one of %v", ErrInvalidGameState, e.Current, e.Allowed)
}

func (e *InvalidStateError[S]) Unwrap() error {
	return ErrInvalidGameState
}

// Machine owns the state signals. Subscribers only ever see the Connectable
// views, so nothing outside the machine can fire a transition.
type Machine[S comparable] struct {
	state      *signals.Property[S]
	transition *signals.Signal2[S, S]

	edges      []edge[S] // transitions not yet sent to OnTransition
	delivering bool
}

type edge[S comparable] struct {
	from, to S
}

func New[S comparable](initial S, opts ...signals.Option) *Machine[S] {
	return &Machine[S]{
		state:      signals.NewProperty(initial, opts...),
		transition: signals.NewSignal2[S, S](opts...),
	}
}

func (m *Machine[S]) State() S {
	return m.state.Value()
}

// OnChanged fires with the new state after every transition.
func (m *Machine[S]) OnChanged() signals.Connectable1[S] {
	return m.state.OnChanged()
}

// OnTransition fires with (from, to) once OnChanged subscribers have run.
// Transitions started from inside a subscriber are delivered after the one
// that triggered them, so the edges always chain from the previous to.
func (m *Machine[S]) OnTransition() signals.Connectable2[S, S] {
	return m.transition.Connectable()
}

// Transition moves to the given state and reports whether anything changed.
func (m *Machine[S]) Transition(to S) bool {
	from := m.state.Value()
	if from == to {
		return false
	}
	m.edges = append(m.edges, edge[S]{from: from, to: to})
	if m.delivering {
		m.state.SetValue(to)
		return true
	}

	m.delivering = true
	defer func() {
		m.delivering = false
		m.edges = m.edges[:0]
	}()
	m.state.SetValue(to)
	for i := 0; i < len(m.edges); i++ {
		e := m.edges[i]
		m.transition.Invoke(e.from, e.to)
	}
	return true
}

func (m *Machine[S]) Require(allowed ...S) error {
	current := m.state.Value()
	for _, s := range allowed {
		if s == current {
			return nil
		}
	}
	return &InvalidStateError[S]{
		Current: current,
		Allowed: allowed,
	}
}

// Is reports whether the machine is currently in state.
func (m *Machine[S]) Is(state S) bool {
	return m.state.Value() == state
}
