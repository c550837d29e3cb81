package pipefn

type (

	// AsRef is implemented by types that can hand out a read-only view of
	// themselves as a P, typically a string or slice over their own storage.
	AsRef[P any] interface {
		AsRef() P
	}

	// AsMut is the mutable counterpart of AsRef. The returned pointer must
	// point into the receiver so that writes through it are visible to the
	// receiver's owner.
	AsMut[P any] interface {
		AsMut() *P
	}

	// Deref is implemented by wrapper types that transparently expose an
	// inner value of type P.
	Deref[P any] interface {
		Deref() P
	}

	// DerefMut is the mutable counterpart of Deref.
	DerefMut[P any] interface {
		DerefMut() *P
	}

	// Borrow is implemented by types that can be borrowed as a P.
	//
	// Borrow and AsRef have the same shape but are distinct capabilities:
	// a type may implement one, the other, or both.
	Borrow[P any] interface {
		Borrow() P
	}

	// BorrowMut is the mutable counterpart of Borrow.
	BorrowMut[P any] interface {
		BorrowMut() *P
	}
)

// Pipe applies fn to v and returns its result.
//
// Pipe(v, fn) is equivalent to fn(v). It exists so that nested calls can be
// written in the order they run:
//
//	Pipe(Pipe(Pipe(x, f), g), h) // h(g(f(x)))
func Pipe[T, R any](v T, fn func(T) R) R {
	return fn(v)
}

// PipeRef applies fn to a pointer to the caller's value.
//
// fn is expected to only read through the pointer; the caller's value is
// still usable, and unchanged, once PipeRef returns.
func PipeRef[T, R any](v *T, fn func(*T) R) R {
	return fn(v)
}

// PipeMut applies fn to a pointer to the caller's value, letting fn edit it
// in place. Edits are visible to the caller when PipeMut returns.
func PipeMut[T, R any](v *T, fn func(*T) R) R {
	return fn(v)
}

// PipeAsRef converts v with its AsRef method and applies fn to the result.
func PipeAsRef[S AsRef[P], P, R any](v S, fn func(P) R) R {
	return fn(v.AsRef())
}

// PipeAsMut converts v with its AsMut method and applies fn to the result.
func PipeAsMut[S AsMut[P], P, R any](v S, fn func(*P) R) R {
	return fn(v.AsMut())
}

// PipeDeref dereferences v and applies fn to the inner value.
func PipeDeref[S Deref[P], P, R any](v S, fn func(P) R) R {
	return fn(v.Deref())
}

// PipeDerefMut dereferences v mutably and applies fn to the inner value.
func PipeDerefMut[S DerefMut[P], P, R any](v S, fn func(*P) R) R {
	return fn(v.DerefMut())
}

// PipeBorrow borrows v as a P and applies fn to it.
func PipeBorrow[S Borrow[P], P, R any](v S, fn func(P) R) R {
	return fn(v.Borrow())
}

// PipeBorrowMut borrows v mutably as a P and applies fn to it.
func PipeBorrowMut[S BorrowMut[P], P, R any](v S, fn func(*P) R) R {
	return fn(v.BorrowMut())
}
