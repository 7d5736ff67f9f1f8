package signals

type disconnecter interface {
	disconnect(c Connection) error
}

// Connection identifies one binding on the signal that issued it. It is a plain
// value: copy it, compare it, use it as a map key. The zero Connection is bound
// to nothing and disconnecting it does nothing.
type Connection struct {
	slot       int
	generation uint64
	owner      disconnecter
}

// Disconnect removes the binding from its signal.
func (c Connection) Disconnect() error {
	if c.owner == nil {
		return nil
	}
	return c.owner.disconnect(c)
}

// IsZero reports whether c is the zero Connection, which no signal issued.
func (c Connection) IsZero() bool {
	return c.owner == nil
}
