package signals

// ReadOnlyProperty is what a Property's owner hands to code that may watch the
// value but not change it.
type ReadOnlyProperty[T any] interface {
	Value() T
	OnChanged() Connectable1[T]
}

// Property is a value cell that invokes its change signal whenever SetValue
// stores a value that differs from the current one.
type Property[T any] struct {
	value   T
	equal   func(a, b T) bool
	changed Signal1[T]
}

// NewProperty returns a Property holding value, compared with ==.
func NewProperty[T comparable](value T, opts ...Option) *Property[T] {
	return NewPropertyFunc(value, func(a, b T) bool { return a == b }, opts...)
}

// NewPropertyFunc is NewProperty for values that are not comparable with ==.
func NewPropertyFunc[T any](value T, equal func(a, b T) bool, opts ...Option) *Property[T] {
	if equal == nil {
		panic("signals: nil equality func")
	}
	p := &Property[T]{
		value: value,
		equal: equal,
	}
	p.changed.t.configure(opts...)
	return p
}

func (p *Property[T]) Value() T {
	return p.value
}

// SetValue reports whether v replaced the current value.
func (p *Property[T]) SetValue(v T) bool {
	if p.equal(p.value, v) {
		return false
	}
	p.value = v
	p.changed.Invoke(v)
	return true
}

func (p *Property[T]) OnChanged() Connectable1[T] {
	return p.changed.Connectable()
}

var _ ReadOnlyProperty[int] = (*Property[int])(nil)
