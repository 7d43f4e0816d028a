package forge

// Definable is a tri-state optional value distinguishing "explicitly set"
// from "use the caller-supplied default at resolution time". The zero value
// is undefined.
type Definable[T any] struct {
	value   T
	defined bool
}

// Defined returns a Definable pinned to the given value.
func Defined[T any](value T) Definable[T] {
	return Definable[T]{value: value, defined: true}
}

// Undefined returns a Definable with no value.
func Undefined[T any]() Definable[T] {
	return Definable[T]{}
}

// Resolve returns the pinned value, or defaultValue if none was set.
func (d Definable[T]) Resolve(defaultValue T) T {
	if d.defined {
		return d.value
	}

	return defaultValue
}

// IsDefined returns true if a value was explicitly set. An undefined
// Definable is distinct from one set to a value that happens to equal the
// eventual default.
func (d Definable[T]) IsDefined() bool {
	return d.defined
}

// Value returns the pinned value and true, or the zero value and false.
func (d Definable[T]) Value() (T, bool) {
	return d.value, d.defined
}
