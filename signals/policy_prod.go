//go:build !dev

package signals

const defaultStalePolicy = StaleIgnore
