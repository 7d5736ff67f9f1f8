package signals

// emptyGeneration marks a slot with no live binding. Generations handed out by
// a table start at 1.
const emptyGeneration uint64 = 0

type binding[F any] struct {
	slot       int
	generation uint64
	fn         F
	oneTime    bool
}

func (b binding[F]) isEmpty() bool {
	return b.generation == emptyGeneration
}
