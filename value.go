package pipefn

// Value wraps a single value to allow method chaining.
//
// Go methods cannot declare their own type parameters, so steps that keep
// the type are methods on Value while steps that change it go through Map:
//
//	n := pipefn.Map(pipefn.Of(3).Then(inc).Then(double), strconv.Itoa).Get()
type Value[T any] struct {
	v T
}

// Of wraps v.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v}
}

// Get returns the wrapped value.
func (v Value[T]) Get() T {
	return v.v
}

// Then returns a Value holding fn applied to the wrapped value.
func (v Value[T]) Then(fn func(T) T) Value[T] {
	return Value[T]{v: fn(v.v)}
}

// Tap calls fn with the wrapped value and returns v unchanged.
// It is intended for side effects such as logging or counting.
func (v Value[T]) Tap(fn func(T)) Value[T] {
	fn(v.v)
	return v
}

// Ref calls fn with a pointer to the wrapped value and returns v.
// fn is expected to only read through the pointer.
func (v Value[T]) Ref(fn func(*T)) Value[T] {
	fn(&v.v)
	return v
}

// Mut calls fn with a pointer to the wrapped value and returns a Value
// holding the edited value.
func (v Value[T]) Mut(fn func(*T)) Value[T] {
	fn(&v.v)
	return v
}

// Map applies fn to the value wrapped by v and wraps the result.
func Map[T, R any](v Value[T], fn func(T) R) Value[R] {
	return Value[R]{v: fn(v.v)}
}
