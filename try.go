package pipefn

// TryFunc is a function that may fail.
type TryFunc[In, Out any] func(in In) (Out, error)

// TryPipe applies fn to v and returns its result and error untouched.
//
// The error is neither wrapped nor inspected, so errors.Is and errors.As
// behave exactly as they would on fn(v).
func TryPipe[T, R any](v T, fn TryFunc[T, R]) (R, error) {
	return fn(v)
}

// TryPipeRef is the fallible counterpart of PipeRef.
func TryPipeRef[T, R any](v *T, fn TryFunc[*T, R]) (R, error) {
	return fn(v)
}

// TryPipeMut is the fallible counterpart of PipeMut.
func TryPipeMut[T, R any](v *T, fn TryFunc[*T, R]) (R, error) {
	return fn(v)
}
