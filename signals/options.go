package signals

// StalePolicy decides what happens when a connection that is no longer bound
// is disconnected.
type StalePolicy uint8

const (
	// StaleDefault follows the build: StaleError with the dev tag, StaleIgnore otherwise.
	StaleDefault StalePolicy = iota
	StaleError
	StaleIgnore
)

func (p StalePolicy) String() string {
	switch p {
	case StaleError:
		return "error"
	case StaleIgnore:
		return "ignore"
	default:
		return "default"
	}
}

// DefaultStalePolicy reports the policy this binary was built with.
func DefaultStalePolicy() StalePolicy {
	return defaultStalePolicy
}

type Option func(*options)

type options struct {
	stalePolicy StalePolicy
}

// WithStalePolicy overrides the build default for a single signal.
func WithStalePolicy(p StalePolicy) Option {
	return func(o *options) {
		o.stalePolicy = p
	}
}

func (o options) resolveStalePolicy() StalePolicy {
	if o.stalePolicy == StaleDefault {
		return defaultStalePolicy
	}
	return o.stalePolicy
}
