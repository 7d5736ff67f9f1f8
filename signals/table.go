package signals

import (
	"fmt"
	"slices"
)

// table is the slot array behind every SignalN. F is the callback type of the
// arity. Not safe for concurrent use.
type table[F any] struct {
	slots          []binding[F]
	free           []int // FIFO queue of empty slot ids
	nextGeneration uint64
	live           int
	opts           options
}

func (t *table[F]) configure(opts ...Option) {
	for _, opt := range opts {
		opt(&t.opts)
	}
}

func (t *table[F]) connect(fn F, oneTime bool) Connection {
	if t.nextGeneration == emptyGeneration {
		t.nextGeneration = emptyGeneration + 1
	}

	var slot int
	if len(t.free) > 0 {
		slot = t.free[0]
		t.free = t.free[1:]
	} else {
		slot = len(t.slots)
		t.slots = append(t.slots, binding[F]{slot: slot})
	}

	if !t.slots[slot].isEmpty() {
		panic(fmt.Sprintf("signals: free slot %d still holds generation %d", slot, t.slots[slot].generation))
	}

	generation := t.nextGeneration
	t.nextGeneration++

	t.slots[slot] = binding[F]{
		slot:       slot,
		generation: generation,
		fn:         fn,
		oneTime:    oneTime,
	}
	t.live++

	return Connection{
		slot:       slot,
		generation: generation,
		owner:      t,
	}
}

func (t *table[F]) disconnect(c Connection) error {
	if c.owner == nil {
		return nil
	}
	if c.owner != disconnecter(t) {
		return &DisconnectError{
			Op:         "Disconnect",
			Slot:       c.slot,
			Generation: c.generation,
			Err:        ErrForeignConnection,
		}
	}

	if c.slot < 0 || c.slot >= len(t.slots) || t.slots[c.slot].generation != c.generation {
		if t.opts.resolveStalePolicy() == StaleIgnore {
			return nil
		}
		return &DisconnectError{
			Op:         "Disconnect",
			Slot:       c.slot,
			Generation: c.generation,
			Err:        ErrStaleConnection,
		}
	}

	t.remove(c.slot)
	return nil
}

func (t *table[F]) remove(slot int) {
	t.slots[slot] = binding[F]{slot: slot}
	t.free = append(t.free, slot)
	t.live--
}

// disconnectAll keeps nextGeneration so handles issued before the reset can
// never match a later binding.
func (t *table[F]) disconnectAll() {
	t.slots = nil
	t.free = nil
	t.live = 0
}

func (t *table[F]) invoke(call func(fn F)) {
	if t.live == 0 {
		return
	}

	snapshot := slices.Clone(t.slots)
	for _, b := range snapshot {
		if b.isEmpty() {
			continue
		}

		call(b.fn)

		if b.oneTime && b.slot < len(t.slots) && t.slots[b.slot].generation == b.generation {
			t.remove(b.slot)
		}
	}
}

func (t *table[F]) len() int {
	return t.live
}
