// Package signals implements single-threaded publish/subscribe signals for game
// loops.
//
// A signal keeps its bindings in a slot array. Disconnected slots go on a FIFO
// free list and every binding gets a generation number that is never reused,
// so a Connection kept after its binding is gone is detected as stale instead
// of silently removing whoever took over the slot.
//
// Invoke works from a snapshot of the slots taken when it starts. Callbacks may
// connect, disconnect or invoke the same signal again: bindings added during a
// pass first run on the next Invoke, and bindings removed during a pass still
// run if the pass had already captured them.
//
// Disconnecting a stale Connection returns ErrStaleConnection when built with
// the dev tag and is ignored otherwise. WithStalePolicy overrides this per
// signal.
package signals
