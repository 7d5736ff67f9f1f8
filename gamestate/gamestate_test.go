package gamestate_test

import (
	"testing"

	"github.com/delaneyj/slotsignals/gamestate"
	"github.com/delaneyj/slotsignals/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screen int

const (
	mainMenu screen = iota
	playing
	inventory
	paused
)

func TestTransition(t *testing.T) {
	m := gamestate.New(mainMenu)

	var events []string
	m.OnChanged().Connect(func(s screen) {
		events = append(events, "changed")
		assert.Equal(t, s, m.State())
	})
	m.OnTransition().Connect(func(from, to screen) {
		events = append(events, "transition")
		assert.Equal(t, mainMenu, from)
		assert.Equal(t, playing, to)
	})

	assert.True(t, m.Transition(playing))
	assert.Equal(t, playing, m.State())
	assert.True(t, m.Is(playing))
	assert.Equal(t, []string{"changed", "transition"}, events)
}

func TestTransitionToSameState(t *testing.T) {
	m := gamestate.New(playing)
	calls := 0
	m.OnChanged().Connect(func(screen) { calls++ })
	m.OnTransition().Connect(func(screen, screen) { calls++ })

	assert.False(t, m.Transition(playing))
	assert.Equal(t, 0, calls)
}

func TestRequire(t *testing.T) {
	m := gamestate.New(mainMenu)

	err := m.Require(playing, paused)
	require.Error(t, err)
	assert.ErrorIs(t, err, gamestate.ErrInvalidGameState)

	var stateErr *gamestate.InvalidStateError[screen]
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, mainMenu, stateErr.Current)
	assert.Equal(t, []screen{playing, paused}, stateErr.Allowed)

	m.Transition(playing)
	assert.NoError(t, m.Require(playing, paused))
}

func TestOpenInventoryOnce(t *testing.T) {
	m := gamestate.New(mainMenu, signals.WithStalePolicy(signals.StaleError))

	opened := 0
	c := m.OnTransition().ConnectOneTime(func(_, to screen) {
		if to == inventory {
			opened++
		}
	})

	m.Transition(playing)
	m.Transition(inventory)
	assert.Equal(t, 0, opened, "the one-time subscriber fired on the first transition")
	assert.ErrorIs(t, c.Disconnect(), signals.ErrStaleConnection)
}

func TestTransitionFromSubscriber(t *testing.T) {
	m := gamestate.New(mainMenu)
	var path []screen
	m.OnChanged().Connect(func(s screen) {
		path = append(path, s)
		if s == inventory {
			m.Transition(paused)
		}
	})

	m.Transition(inventory)
	assert.Equal(t, paused, m.State())
	assert.Equal(t, []screen{inventory, paused}, path)
}

func TestNestedTransitionEdgesChain(t *testing.T) {
	m := gamestate.New(mainMenu)
	m.OnChanged().Connect(func(s screen) {
		if s == inventory {
			m.Transition(paused)
		}
	})

	var edges [][2]screen
	m.OnTransition().Connect(func(from, to screen) {
		edges = append(edges, [2]screen{from, to})
	})

	require.True(t, m.Transition(inventory))
	assert.Equal(t, [][2]screen{{mainMenu, inventory}, {inventory, paused}}, edges)
	assert.Equal(t, m.State(), edges[len(edges)-1][1])

	// a transition started from OnTransition is queued behind the current edge
	edges = nil
	m2 := gamestate.New(mainMenu)
	m2.OnTransition().Connect(func(from, to screen) {
		edges = append(edges, [2]screen{from, to})
		if to == playing {
			m2.Transition(paused)
		}
	})
	require.True(t, m2.Transition(playing))
	assert.Equal(t, [][2]screen{{mainMenu, playing}, {playing, paused}}, edges)
	assert.Equal(t, paused, m2.State())

	// the queue is drained, later transitions start fresh
	edges = nil
	require.True(t, m2.Transition(mainMenu))
	assert.Equal(t, [][2]screen{{paused, mainMenu}}, edges)
}
