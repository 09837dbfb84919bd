package dynarray

import "errors"

// Sentinel errors for all Array operations.
//
// Every error is surfaced synchronously by the operation that hit it;
// nothing is retried internally. Argument errors (ErrBadRange,
// ErrBadCapacity, ErrBadGrowth, ErrBadResize, ErrBadPartition and
// out-of-bounds indices) are checked before any mutation, so a failed
// call of that class leaves the array untouched.
var (
	// ErrIndexOutOfRange indicates an index or range endpoint outside the
	// array's valid bounds.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrBadRange indicates a range with lo > hi.
	ErrBadRange = errors.New("dynarray: range lo > hi")

	// ErrBadCapacity indicates a negative capacity argument.
	ErrBadCapacity = errors.New("dynarray: negative capacity")

	// ErrBadGrowth indicates a growth increment too small to admit at
	// least one more element per growth step.
	ErrBadGrowth = errors.New("dynarray: growth increment too small")

	// ErrBadResize indicates a negative target size passed to Resize.
	ErrBadResize = errors.New("dynarray: negative size")

	// ErrBadPartition indicates a non-positive part size or part count.
	ErrBadPartition = errors.New("dynarray: bad partition size")

	// ErrConcurrentModification indicates that a view, iterator or
	// splitter observed a structural change made through another handle.
	// For a view this is terminal: every later call fails the same way
	// until a fresh view is sliced.
	ErrConcurrentModification = errors.New("dynarray: structure modified through another handle")

	// ErrIncomparable indicates an ordering-dependent operation on an
	// array with no comparator and no intrinsic order, or a comparison
	// that failed at runtime.
	ErrIncomparable = errors.New("dynarray: elements are not comparable")

	// ErrExhaustedIterator indicates Next or Prev was called with no
	// element remaining in that direction.
	ErrExhaustedIterator = errors.New("dynarray: iterator exhausted")

	// ErrIteratorState indicates Remove or Set was called before any
	// Next or Prev produced a current element.
	ErrIteratorState = errors.New("dynarray: iterator has no current element")

	// ErrNilFunc indicates a nil predicate or transform argument.
	ErrNilFunc = errors.New("dynarray: nil function argument")
)
