/*
Package pipefn provides generic chaining helpers that let any value be
passed to a function in reading order, turning nested calls such as
h(g(f(x))) into a left-to-right sequence.

All helpers are package-level functions because Go cannot attach methods
to every type. Each one calls the supplied function exactly once, right
away, and returns whatever it returns. Nothing is copied, retained, logged
or recovered: panics and errors raised by the function reach the caller
unchanged.

The helpers come in three flavours:

  - Pipe passes the value itself.
  - PipeRef and PipeMut pass a pointer to the caller's value, for reading
    and for editing in place respectively.
  - PipeAsRef, PipeAsMut, PipeDeref, PipeDerefMut, PipeBorrow and
    PipeBorrowMut first convert the value through a capability its type
    declares (see AsRef, Deref, Borrow and their mutable counterparts),
    then pass the converted view.

Example of a simple chain:

	inc := func(n int) int { return n + 1 }
	double := func(n int) int { return n + n }
	square := func(n int) int { return n * n }

	// square(double(inc(3)))
	n := pipefn.Pipe(pipefn.Pipe(pipefn.Pipe(3, inc), double), square)

	// The same chain using the Value wrapper.
	n = pipefn.Of(3).Then(inc).Then(double).Then(square).Get()

	// Map changes the wrapped type.
	s := pipefn.Map(pipefn.Of(n), strconv.Itoa).Get()

Functions that may fail are piped with TryPipe and friends, which return
the function's error as is:

	cfg, err := pipefn.TryPipe(path, LoadConfig)
	if err != nil {
		return err
	}
*/
package pipefn
