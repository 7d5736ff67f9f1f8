package signals

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDisconnection is the parent of every Disconnect failure.
	ErrInvalidDisconnection = errors.New("invalid disconnection")

	// ErrForeignConnection is returned when a connection is handed to a signal
	// other than the one that issued it.
	ErrForeignConnection = fmt.Errorf("%w: connection does not belong to this signal", ErrInvalidDisconnection)

	// ErrStaleConnection is returned, under StaleError, when the binding behind a
	// connection is already gone.
	ErrStaleConnection = fmt.Errorf("%w: connection is no longer bound", ErrInvalidDisconnection)
)

// DisconnectError names the handle that a Disconnect rejected.
type DisconnectError struct {
	Op         string
	Slot       int
	Generation uint64
	Err        error
}

func (e *DisconnectError) Error() string {
	return fmt.Sprintf("signals.%s slot=%d generation=%d: %v", e.Op, e.Slot, e.Generation, e.Err)
}

func (e *DisconnectError) Unwrap() error {
	return e.Err
}
