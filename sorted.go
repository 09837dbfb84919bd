// Package dynarray: the sortedness oracle.
//
// The sorted flag is maintained incrementally: after any localized
// mutation only the boundary comparisons around the touched region are
// re-examined. The check only ever weakens the flag; a false flag stays
// false until an explicit Sort. A true flag is a hard guarantee, a
// false flag guarantees nothing.

package dynarray

import "sort"

// IsSorted reports the current sortedness flag. The flag may be a false
// negative (conservatively cleared) but never a false positive.
func (a *Array[T]) IsSorted() bool {
	return a.sorted
}

// MarkSorted asserts that the array is sorted under the active
// relation. The assertion is trusted without verification; a wrong
// assertion makes subsequent sorted-path lookups undefined.
func (a *Array[T]) MarkSorted() {
	a.sorted = true
}

// SetComparator replaces the ordering relation used by all
// order-dependent operations. The array is not re-sorted; when the
// sorted flag is set and the array holds more than one element, a
// single boundary comparison re-validates the flag against the new
// relation, clearing it if the first pair disagrees (fail-fast on an
// incompatible relation; a panicking probe also clears the flag).
// Passing nil removes the relation and clears the flag.
func (a *Array[T]) SetComparator(cmp Comparator[T]) {
	a.cmp = cmp
	if cmp == nil {
		a.sorted = false
		return
	}
	if a.sorted && len(a.data) > 1 {
		a.probe(cmp)
	}
}

// probe runs the single re-validation comparison for SetComparator.
func (a *Array[T]) probe(cmp Comparator[T]) {
	defer func() {
		if recover() != nil {
			a.sorted = false
		}
	}()
	if cmp(a.data[0], a.data[1]) > 0 {
		a.sorted = false
	}
}

// Sort stably sorts the array under the active relation and sets the
// sorted flag. Sorting counts as a structural (position-changing)
// modification. On a view the reordered elements are written straight
// back into the parent's slots; the parent is never re-sorted itself.
// Returns ErrIncomparable when more than one element is present and no
// relation is configured, ErrConcurrentModification for a stale view.
// With no relation and at most one element the call succeeds but the
// flag stays false; the flag always requires a relation.
// Complexity: O(n log n).
func (a *Array[T]) Sort() error {
	if err := a.checkLive(); err != nil {
		return err
	}
	if a.cmp == nil {
		if len(a.data) > 1 {
			return ErrIncomparable
		}
		// A relation-free trivial sequence is left unflagged: the
		// sorted lookup path is meaningless without a relation, so
		// lookups must keep to the equality scan.
		a.syncReorder(0, len(a.data))

		return a.checkLive()
	}
	sort.SliceStable(a.data, func(i, j int) bool { return a.cmp(a.data[i], a.data[j]) < 0 })
	a.sorted = true
	a.syncReorder(0, len(a.data))

	return a.checkLive()
}

// SortFunc adopts cmp as the array's relation, then stably sorts with
// it. Equivalent to SetComparator followed by Sort, minus the probe.
func (a *Array[T]) SortFunc(cmp Comparator[T]) error {
	if cmp == nil {
		return ErrNilFunc
	}
	a.cmp = cmp

	return a.Sort()
}

// syncReorder records a position-changing modification confined to
// [lo, hi): the counter advances on both sides and, for a view, the
// post-reorder window is copied back into the parent's slots. The
// parent's flag is cleared conservatively; a view reorder can only be
// proven order-preserving for the view itself. A view whose parent has
// shrunk underneath it is marked invalid instead of writing out of
// range.
func (a *Array[T]) syncReorder(lo, hi int) {
	a.modCount++
	if a.parent == nil {
		return
	}
	if a.offset+hi > len(a.parent.data) {
		a.invalid = true
		return
	}
	copy(a.parent.data[a.offset+lo:a.offset+hi], a.data[lo:hi])
	a.parent.sorted = false
	a.parent.modCount++
}

// recheckSorted re-validates the flag after a mutation confined to
// [lo, hi). Only the pairs touching that window are compared: from the
// element just before lo through the element just after hi-1, clamped
// to the real ends of the array, so an append is checked against its
// true left neighbor and never against a slot past the end. The check
// weakens only: it is skipped entirely when the flag is already false.
// A missing relation or a panicking comparison clears the flag.
func (a *Array[T]) recheckSorted(lo, hi int) {
	if !a.sorted || len(a.data) < 2 {
		return
	}
	if a.cmp == nil {
		a.sorted = false
		return
	}
	from := lo - 1
	if from < 0 {
		from = 0
	}
	to := hi
	if to > len(a.data)-1 {
		to = len(a.data) - 1
	}
	defer func() {
		if recover() != nil {
			a.sorted = false
		}
	}()
	for i := from; i < to; i++ {
		if a.cmp(a.data[i], a.data[i+1]) > 0 {
			a.sorted = false
			return
		}
	}
}

// scanSorted reports whether the whole sequence is non-decreasing under
// the active relation; false when no relation is configured. Used once
// at construction, never by incremental maintenance.
func (a *Array[T]) scanSorted() (ok bool) {
	if a.cmp == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	for i := 0; i+1 < len(a.data); i++ {
		if a.cmp(a.data[i], a.data[i+1]) > 0 {
			return false
		}
	}

	return true
}
