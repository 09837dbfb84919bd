// Package dynarray: core element operations on Array.
//
// Every mutator here follows the same discipline. Arguments are
// validated against this array first; a view then applies the
// equivalent mutation to its parent at offset-shifted indices, applies
// it to its own store, and finally compares modification counters,
// failing with ErrConcurrentModification (terminally) on disagreement.
// Roots skip the propagation and the final check is a no-op.

package dynarray

import (
	"fmt"
	"math/rand"
	"strings"
)

// Get returns the element at index i.
// Complexity: O(1).
func (a *Array[T]) Get(i int) (T, error) {
	var zero T
	if err := a.checkLive(); err != nil {
		return zero, err
	}
	if err := a.indexCheck(i); err != nil {
		return zero, err
	}

	return a.data[i], nil
}

// Set replaces the element at index i and returns the previous value.
// Set changes neither size nor positions, so it is not a structural
// modification: live views and iterators survive it. It does re-trigger
// the local sortedness recheck on both sides.
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) (T, error) {
	var zero T
	if err := a.checkLive(); err != nil {
		return zero, err
	}
	if err := a.indexCheck(i); err != nil {
		return zero, err
	}
	if a.parent != nil {
		if err := a.parentFits(i + 1); err != nil {
			return zero, err
		}
		pi := a.offset + i
		a.parent.data[pi] = v
		a.parent.recheckSorted(pi, pi+1)
	}
	old := a.data[i]
	a.data[i] = v
	a.recheckSorted(i, i+1)

	return old, a.checkLive()
}

// Push appends a single element.
// Complexity: amortized O(1); O(view len) extra on a view.
func (a *Array[T]) Push(v T) error {
	return a.Insert(len(a.data), v)
}

// Insert places v at index i, shifting subsequent elements right.
// Inserting through a view inserts into the parent at the shifted
// index, growing the view's range.
// Complexity: O(n).
func (a *Array[T]) Insert(i int, v T) error {
	if err := a.checkLive(); err != nil {
		return err
	}
	if err := a.insertIndexCheck(i); err != nil {
		return err
	}
	if a.parent != nil {
		if err := a.parentFits(i); err != nil {
			return err
		}
		a.parent.insertOne(a.offset+i, v)
	}
	a.insertOne(i, v)

	return a.checkLive()
}

// Append appends all vals in order, as one structural modification.
// With WithSortOnBulkInsert configured the array is re-sorted after the
// insertion (which requires a comparator).
// Complexity: amortized O(len(vals)).
func (a *Array[T]) Append(vals ...T) error {
	return a.InsertAll(len(a.data), vals)
}

// RemoveAt deletes and returns the element at index i, shifting
// subsequent elements left.
// Complexity: O(n).
func (a *Array[T]) RemoveAt(i int) (T, error) {
	var zero T
	if err := a.checkLive(); err != nil {
		return zero, err
	}
	if err := a.indexCheck(i); err != nil {
		return zero, err
	}
	if a.parent != nil {
		if err := a.parentFits(i + 1); err != nil {
			return zero, err
		}
		a.parent.eraseRange(a.offset+i, a.offset+i+1)
	}
	v := a.data[i]
	a.eraseRange(i, i+1)

	return v, a.checkLive()
}

// RemoveRange deletes the elements in [lo, hi) and returns them in
// order. An empty range returns an empty slice and is counter-neutral.
// Complexity: O(n).
func (a *Array[T]) RemoveRange(lo, hi int) ([]T, error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	if err := a.rangeCheck(lo, hi); err != nil {
		return nil, err
	}
	out := make([]T, hi-lo)
	copy(out, a.data[lo:hi])
	if lo == hi {
		return out, a.checkLive()
	}
	if a.parent != nil {
		if err := a.parentFits(hi); err != nil {
			return nil, err
		}
		a.parent.eraseRange(a.offset+lo, a.offset+hi)
	}
	a.eraseRange(lo, hi)

	return out, a.checkLive()
}

// Resize sets the length to n: shrinking removes the tail, growing
// pads with zero values (and marks the array unsorted). Growing a view
// inserts the padding into the parent at the view's end offset.
// Returns ErrBadResize when n is negative. Exactly one structural
// modification when the size actually changes.
func (a *Array[T]) Resize(n int) error {
	if err := a.checkLive(); err != nil {
		return err
	}
	if n < 0 {
		return ErrBadResize
	}
	size := len(a.data)
	switch {
	case n == size:
		return a.checkLive()
	case n < size:
		if a.parent != nil {
			if err := a.parentFits(size); err != nil {
				return err
			}
			a.parent.eraseRange(a.offset+n, a.offset+size)
		}
		a.eraseRange(n, size)
	default:
		filler := make([]T, n-size)
		if a.parent != nil {
			if err := a.parentFits(size); err != nil {
				return err
			}
			a.parent.insertMany(a.offset+size, filler)
		}
		a.insertMany(size, filler)
		a.sorted = false
	}

	return a.checkLive()
}

// Clear removes every element, leaving capacity in place. The array is
// unsorted afterwards. On a non-empty view the parent's corresponding
// range is removed in one call; an already-empty view performs only a
// counter-neutral no-op on itself.
func (a *Array[T]) Clear() error {
	if err := a.checkLive(); err != nil {
		return err
	}
	if a.parent != nil {
		if len(a.data) == 0 {
			return a.checkLive()
		}
		if err := a.parentFits(len(a.data)); err != nil {
			return err
		}
		a.parent.eraseRange(a.offset, a.offset+len(a.data))
	}
	var zero T
	for i := range a.data {
		a.data[i] = zero
	}
	a.data = a.data[:0]
	a.sorted = false
	a.modCount++

	return a.checkLive()
}

// Swap exchanges the elements at i and j. A position-changing
// structural modification; the sortedness flag is rechecked around both
// touched slots.
func (a *Array[T]) Swap(i, j int) error {
	if err := a.checkLive(); err != nil {
		return err
	}
	if err := a.indexCheck(i); err != nil {
		return err
	}
	if err := a.indexCheck(j); err != nil {
		return err
	}
	a.data[i], a.data[j] = a.data[j], a.data[i]
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	a.recheckSorted(lo, lo+1)
	a.recheckSorted(hi, hi+1)
	a.syncReorder(lo, hi+1)

	return a.checkLive()
}

// Reverse reverses the element order and marks the array unsorted.
func (a *Array[T]) Reverse() error {
	if err := a.checkLive(); err != nil {
		return err
	}
	for l, r := 0, len(a.data)-1; l < r; l, r = l+1, r-1 {
		a.data[l], a.data[r] = a.data[r], a.data[l]
	}
	a.sorted = false
	a.syncReorder(0, len(a.data))

	return a.checkLive()
}

// Shuffle randomly permutes the elements and marks the array unsorted.
func (a *Array[T]) Shuffle() error {
	if err := a.checkLive(); err != nil {
		return err
	}
	rand.Shuffle(len(a.data), func(i, j int) {
		a.data[i], a.data[j] = a.data[j], a.data[i]
	})
	a.sorted = false
	a.syncReorder(0, len(a.data))

	return a.checkLive()
}

// Values returns a copy of the elements in order.
// Complexity: O(n).
func (a *Array[T]) Values() ([]T, error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	out := make([]T, len(a.data))
	copy(out, a.data)

	return out, nil
}

// ForEach applies fn to every element in index order, rechecking the
// modification counter before each call so a structural change made by
// fn (or by a stale parent) aborts the walk.
func (a *Array[T]) ForEach(fn func(v T)) error {
	if fn == nil {
		return ErrNilFunc
	}
	if err := a.checkLive(); err != nil {
		return err
	}
	expected := a.modCount
	for i := 0; i < len(a.data); i++ {
		if err := a.checkLive(); err != nil {
			return err
		}
		if a.modCount != expected {
			return ErrConcurrentModification
		}
		fn(a.data[i])
	}
	if a.modCount != expected {
		return ErrConcurrentModification
	}

	return a.checkLive()
}

// Clone returns a detached deep copy of the slot array: always a root,
// with the same comparator, growth policy and sortedness flag, a fresh
// modification counter, and no parent link even when cloning a view.
// Element values themselves are not copied.
func (a *Array[T]) Clone() (*Array[T], error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	data := make([]T, len(a.data))
	copy(data, a.data)

	return &Array[T]{
		data:       data,
		cmp:        a.cmp,
		sorted:     a.sorted,
		increment:  a.increment,
		additive:   a.additive,
		sortOnBulk: a.sortOnBulk,
	}, nil
}

// Equal reports whether both arrays hold equal elements in the same
// order, compared by this array's equality (comparator when set, plain
// equality otherwise).
func (a *Array[T]) Equal(o *Array[T]) (bool, error) {
	if err := a.checkLive(); err != nil {
		return false, err
	}
	if o == nil || len(a.data) != len(o.data) {
		return false, nil
	}
	if err := o.checkLive(); err != nil {
		return false, err
	}
	for i := range a.data {
		eq, err := a.equal(a.data[i], o.data[i])
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}

	return true, nil
}

// String renders the elements as "[a, b, c]".
func (a *Array[T]) String() string {
	if len(a.data) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')

	return b.String()
}

// Internal helper methods:
////////////////////

// insertOne grows, shifts and places v at index i; one structural
// modification with a boundary sortedness recheck.
func (a *Array[T]) insertOne(i int, v T) {
	a.grow(len(a.data) + 1)
	a.data = a.data[:len(a.data)+1]
	copy(a.data[i+1:], a.data[i:])
	a.data[i] = v
	a.modCount++
	a.recheckSorted(i, i+1)
}

// insertMany splices vals in at index i; one structural modification
// with the whole inserted block rechecked against its neighbors.
func (a *Array[T]) insertMany(i int, vals []T) {
	k := len(vals)
	if k == 0 {
		return
	}
	a.grow(len(a.data) + k)
	a.data = a.data[:len(a.data)+k]
	copy(a.data[i+k:], a.data[i:])
	copy(a.data[i:], vals)
	a.modCount++
	a.recheckSorted(i, i+k)
}

// eraseRange deletes [lo, hi) from the store; one structural
// modification. Removal cannot unsort a sorted sequence, so the flag is
// left alone. Vacated tail slots are zeroed to release references.
func (a *Array[T]) eraseRange(lo, hi int) {
	if lo == hi {
		return
	}
	k := hi - lo
	copy(a.data[lo:], a.data[hi:])
	var zero T
	for i := len(a.data) - k; i < len(a.data); i++ {
		a.data[i] = zero
	}
	a.data = a.data[:len(a.data)-k]
	a.modCount++
}
