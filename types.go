// Package dynarray: central Array type, functional options and constructors.
//
// This file declares Array, Option, the With* configuration options,
// the New/NewOrdered/From constructors, and the small internal guards
// (bounds checks, comodification check, element equality) every other
// file leans on.

package dynarray

import (
	"golang.org/x/exp/constraints"
)

// lazyInitCapacity is the first allocation made by a zero-capacity
// array under multiplicative growth.
const lazyInitCapacity = 10

// defaultGrowthFactor doubles capacity on each multiplicative step.
const defaultGrowthFactor = 2.0

// notFound is the index returned by lookups with zero matches.
const notFound = -1

// Comparator defines the ordering relation for elements of an Array.
// It must return a negative value when a < b, zero when a == b and a
// positive value when a > b, and must describe a total order over the
// elements actually stored.
type Comparator[T any] func(a, b T) int

// Array is a growable ordered sequence of elements.
//
// An Array is either a root (exclusively owning its backing store) or a
// live view over a contiguous range of a root, created by Slice. A view
// owns a second, independent store kept equal to the parent range by
// explicit double-writes; it never aliases the parent's storage.
//
// The zero value is not usable; construct with New, NewOrdered or From.
// Not safe for concurrent use.
type Array[T any] struct {
	// data holds the elements; len(data) is the logical size and
	// cap(data) the reserved capacity.
	data []T

	// modCount advances once per structural modification (any size- or
	// position-changing call). Capacity-only changes never advance it.
	modCount uint64

	// cmp is the active ordering relation; nil means the array has no
	// intrinsic order and lookups fall back to plain equality.
	cmp Comparator[T]

	// sorted is conservative: true guarantees the whole sequence is
	// non-decreasing under cmp; false guarantees nothing.
	sorted bool

	// Growth policy: multiplicative by factor unless additive, in which
	// case capacity grows by int(increment) per step.
	increment float64
	additive  bool

	// sortOnBulk re-sorts the array after every Append/InsertAll.
	sortOnBulk bool

	// View state. parent is nil for a root; for a view it is always the
	// root array (views never nest) and offset locates the view's first
	// element inside it. invalid is terminal once set.
	parent  *Array[T]
	offset  int
	invalid bool
}

// Option configures an Array at construction time.
type Option[T any] func(*Array[T]) error

// WithCapacity pre-allocates room for n elements.
// Returns ErrBadCapacity from the constructor when n is negative.
func WithCapacity[T any](n int) Option[T] {
	return func(a *Array[T]) error {
		if n < 0 {
			return ErrBadCapacity
		}
		a.data = make([]T, 0, n)

		return nil
	}
}

// WithGrowthFactor sets multiplicative capacity growth: a full array
// grows to factor×capacity, repeatedly, until the requested capacity
// fits. Returns ErrBadGrowth from the constructor when factor <= 1.
func WithGrowthFactor[T any](factor float64) Option[T] {
	return func(a *Array[T]) error {
		if factor <= 1 {
			return ErrBadGrowth
		}
		a.increment = factor
		a.additive = false

		return nil
	}
}

// WithAdditiveGrowth sets additive capacity growth: a full array grows
// by inc slots per step (or directly to the requested capacity when one
// step is not enough). Returns ErrBadGrowth from the constructor when
// inc < 1.
func WithAdditiveGrowth[T any](inc int) Option[T] {
	return func(a *Array[T]) error {
		if inc < 1 {
			return ErrBadGrowth
		}
		a.increment = float64(inc)
		a.additive = true

		return nil
	}
}

// WithComparator installs the ordering relation used by every
// order-dependent operation. A nil cmp leaves the array relation-free:
// lookups then use plain equality and Sort fails with ErrIncomparable.
func WithComparator[T any](cmp Comparator[T]) Option[T] {
	return func(a *Array[T]) error {
		a.cmp = cmp

		return nil
	}
}

// WithSortOnBulkInsert makes every Append and InsertAll re-sort the
// array afterwards (requires a comparator at call time).
func WithSortOnBulkInsert[T any]() Option[T] {
	return func(a *Array[T]) error {
		a.sortOnBulk = true

		return nil
	}
}

// New constructs an empty root Array with the given options.
// By default the array has zero capacity (first growth allocates 10
// slots), multiplicative ×2 growth, and no comparator.
// Complexity: O(1).
func New[T any](opts ...Option[T]) (*Array[T], error) {
	a := &Array[T]{increment: defaultGrowthFactor}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// NewOrdered constructs an empty root Array whose comparator is the
// natural ascending order of T. Equivalent to New with WithComparator
// over the < operator.
// Complexity: O(1).
func NewOrdered[T constraints.Ordered](opts ...Option[T]) (*Array[T], error) {
	base := []Option[T]{WithComparator[T](func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})}

	return New(append(base, opts...)...)
}

// From constructs a root Array holding a copy of vals in index order.
// When a comparator is configured the initial sortedness flag is set by
// a single full scan; otherwise the array starts unsorted.
// Complexity: O(n) (one scan when a comparator is present).
func From[T any](vals []T, opts ...Option[T]) (*Array[T], error) {
	a, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if cap(a.data) < len(vals) {
		a.data = make([]T, 0, len(vals))
	}
	a.data = a.data[:len(vals)]
	copy(a.data, vals)
	if len(vals) > 0 {
		a.sorted = a.scanSorted()
	}

	return a, nil
}

// Len returns the number of elements. O(1).
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Cap returns the reserved capacity. O(1).
func (a *Array[T]) Cap() int {
	return cap(a.data)
}

// IsView reports whether this Array is a live view over another Array.
func (a *Array[T]) IsView() bool {
	return a.parent != nil
}

// Comparator returns the active ordering relation, or nil.
func (a *Array[T]) Comparator() Comparator[T] {
	return a.cmp
}

// GrowthIncrement returns the configured growth increment: a
// multiplicative factor by default, or a slot count when the array
// grows additively.
func (a *Array[T]) GrowthIncrement() float64 {
	return a.increment
}

// GrowsAdditively reports whether capacity grows by addition rather
// than multiplication.
func (a *Array[T]) GrowsAdditively() bool {
	return a.additive
}

// checkLive verifies, for a view, that no structural change reached the
// parent through another handle. The first observed mismatch moves the
// view to its terminal invalidated state. Roots always pass.
func (a *Array[T]) checkLive() error {
	if a.parent == nil {
		return nil
	}
	if a.invalid || a.modCount != a.parent.modCount {
		a.invalid = true
		return ErrConcurrentModification
	}

	return nil
}

// parentFits verifies that slot n of this view still maps inside the
// parent's store. A stale view whose parent shrank underneath it fails
// here, terminally, rather than corrupting the parent.
func (a *Array[T]) parentFits(n int) error {
	if a.offset+n > len(a.parent.data) {
		a.invalid = true
		return ErrConcurrentModification
	}

	return nil
}

// indexCheck validates 0 <= i < len.
func (a *Array[T]) indexCheck(i int) error {
	if i < 0 || i >= len(a.data) {
		return ErrIndexOutOfRange
	}

	return nil
}

// insertIndexCheck validates 0 <= i <= len (one past the end is a
// legal insertion point).
func (a *Array[T]) insertIndexCheck(i int) error {
	if i < 0 || i > len(a.data) {
		return ErrIndexOutOfRange
	}

	return nil
}

// rangeCheck validates 0 <= lo <= hi <= len. A reversed range is an
// argument error (ErrBadRange); endpoints outside the array are
// ErrIndexOutOfRange.
func (a *Array[T]) rangeCheck(lo, hi int) error {
	if lo > hi {
		return ErrBadRange
	}
	if lo < 0 || hi > len(a.data) {
		return ErrIndexOutOfRange
	}

	return nil
}

// equal reports whether x equals y: by the comparator when one is set,
// by Go interface equality otherwise. An equality panic on a
// non-comparable dynamic type surfaces as ErrIncomparable.
func (a *Array[T]) equal(x, y T) (eq bool, err error) {
	if a.cmp != nil {
		return a.cmp(x, y) == 0, nil
	}
	defer func() {
		if recover() != nil {
			eq, err = false, ErrIncomparable
		}
	}()

	return any(x) == any(y), nil
}
