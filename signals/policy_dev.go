//go:build dev

package signals

// In dev builds double disconnects fail loudly so subscriber bugs surface early.
const defaultStalePolicy = StaleError
