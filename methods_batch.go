// Package dynarray: batch operations. Bulk insertion, value- and
// predicate-driven removal, retention, deduplication, partitioning
// and in-place replacement.
//
// Every removal family here compacts in one pass: matching indices are
// decided against a snapshot of the counter, survivors are spliced back
// as a single structural modification per side, and a no-match call is
// counter-neutral.

package dynarray

// InsertAll splices vals in at index i as one structural modification.
// In sort-on-bulk-insert mode an array left unsorted by the splice is
// re-sorted afterwards, which needs a comparator.
// Complexity: O(n + len(vals)), plus the sort when it fires.
func (a *Array[T]) InsertAll(i int, vals []T) error {
	if err := a.checkLive(); err != nil {
		return err
	}
	if err := a.insertIndexCheck(i); err != nil {
		return err
	}
	if len(vals) == 0 {
		return a.checkLive()
	}
	if a.parent != nil {
		if err := a.parentFits(i); err != nil {
			return err
		}
		a.parent.insertMany(a.offset+i, vals)
	}
	a.insertMany(i, vals)
	if a.sortOnBulk && !a.sorted && len(a.data) > 1 {
		return a.Sort()
	}

	return a.checkLive()
}

// RemoveValue deletes the first occurrence of v, located by the hybrid
// search, and reports whether one was found.
func (a *Array[T]) RemoveValue(v T) (bool, error) {
	return a.RemoveValueRange(0, len(a.data), v)
}

// RemoveValueRange is RemoveValue restricted to [lo, hi).
func (a *Array[T]) RemoveValueRange(lo, hi int, v T) (bool, error) {
	i, err := a.IndexOfRange(lo, hi, v)
	if err != nil {
		return false, err
	}
	if i == notFound {
		return false, nil
	}
	if _, err := a.RemoveAt(i); err != nil {
		return false, err
	}

	return true, nil
}

// RemoveValues deletes every occurrence of v and returns how many were
// removed. At most one structural modification per side.
func (a *Array[T]) RemoveValues(v T) (int, error) {
	return a.RemoveValuesRange(0, len(a.data), v)
}

// RemoveValuesRange is RemoveValues restricted to [lo, hi).
func (a *Array[T]) RemoveValuesRange(lo, hi int, v T) (int, error) {
	return a.removeMatched(lo, hi, func(x T) (bool, error) {
		return a.equal(x, v)
	})
}

// RemoveIf deletes every element satisfying pred and returns how many
// were removed. At most one structural modification per side; pred must
// not mutate the array.
func (a *Array[T]) RemoveIf(pred func(v T) bool) (int, error) {
	return a.RemoveIfRange(0, len(a.data), pred)
}

// RemoveIfRange is RemoveIf restricted to [lo, hi).
func (a *Array[T]) RemoveIfRange(lo, hi int, pred func(v T) bool) (int, error) {
	if pred == nil {
		return 0, ErrNilFunc
	}

	return a.removeMatched(lo, hi, func(x T) (bool, error) {
		return pred(x), nil
	})
}

// RemoveWhile deletes the leading run of elements satisfying pred and
// returns the run length. The removal is a single RemoveRange.
func (a *Array[T]) RemoveWhile(pred func(v T) bool) (int, error) {
	return a.RemoveWhileRange(0, len(a.data), pred)
}

// RemoveWhileRange is RemoveWhile anchored at lo and bounded by hi.
func (a *Array[T]) RemoveWhileRange(lo, hi int, pred func(v T) bool) (int, error) {
	if pred == nil {
		return 0, ErrNilFunc
	}
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	if err := a.rangeCheck(lo, hi); err != nil {
		return 0, err
	}
	expected := a.modCount
	end := lo
	for end < hi && pred(a.data[end]) {
		end++
	}
	if a.modCount != expected {
		return 0, ErrConcurrentModification
	}
	if end == lo {
		return 0, a.checkLive()
	}
	if _, err := a.RemoveRange(lo, end); err != nil {
		return 0, err
	}

	return end - lo, nil
}

// Retain keeps only the elements equal to v, deleting the rest, and
// returns how many were removed.
func (a *Array[T]) Retain(v T) (int, error) {
	return a.RetainRange(0, len(a.data), v)
}

// RetainRange is Retain restricted to [lo, hi).
func (a *Array[T]) RetainRange(lo, hi int, v T) (int, error) {
	return a.removeMatched(lo, hi, func(x T) (bool, error) {
		eq, err := a.equal(x, v)

		return !eq, err
	})
}

// RetainAll keeps only the elements equal to some member of vals and
// returns how many were removed.
// Complexity: O(n * len(vals)).
func (a *Array[T]) RetainAll(vals []T) (int, error) {
	return a.RetainAllRange(0, len(a.data), vals)
}

// RetainAllRange is RetainAll restricted to [lo, hi).
func (a *Array[T]) RetainAllRange(lo, hi int, vals []T) (int, error) {
	return a.removeMatched(lo, hi, func(x T) (bool, error) {
		for _, v := range vals {
			eq, err := a.equal(x, v)
			if err != nil {
				return false, err
			}
			if eq {
				return false, nil
			}
		}

		return true, nil
	})
}

// Dedupe deletes every element equal to an earlier one, keeping first
// occurrences in their original order, and returns how many were
// removed. Survivors form a subsequence, so a sorted array stays
// sorted. At most one structural modification per side.
// Complexity: O(n^2) comparisons.
func (a *Array[T]) Dedupe() (int, error) {
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	expected := a.modCount
	kept := make([]T, 0, len(a.data))
	removed := 0
	for _, v := range a.data {
		dup := false
		for _, k := range kept {
			eq, err := a.equal(k, v)
			if err != nil {
				return 0, err
			}
			if eq {
				dup = true
				break
			}
		}
		if dup {
			removed++
		} else {
			kept = append(kept, v)
		}
	}
	// A comparator that mutated either side invalidates the decisions.
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	if a.modCount != expected {
		return 0, ErrConcurrentModification
	}
	if removed == 0 {
		return 0, nil
	}
	if a.parent != nil {
		if err := a.parentFits(len(a.data)); err != nil {
			return 0, err
		}
		a.parent.compactRange(a.offset, a.offset+len(a.data), kept)
	}
	a.compactRange(0, len(a.data), kept)

	return removed, a.checkLive()
}

// Distinct returns a detached copy holding only first occurrences; the
// receiver is left untouched.
func (a *Array[T]) Distinct() (*Array[T], error) {
	c, err := a.Clone()
	if err != nil {
		return nil, err
	}
	if _, err := c.Dedupe(); err != nil {
		return nil, err
	}

	return c, nil
}

// Replace rewrites every element as fn(element), in index order, on
// both the view and its parent. Like Set this is not a structural
// modification, but both counters are rechecked after every callback
// so a structural change made by fn, on either side, aborts the walk
// before the next write. The sortedness flag is
// re-validated once over the whole rewritten window, so a monotone
// rewrite of a sorted array keeps the flag.
func (a *Array[T]) Replace(fn func(v T) T) error {
	if fn == nil {
		return ErrNilFunc
	}
	if err := a.checkLive(); err != nil {
		return err
	}
	expected := a.modCount
	for i := 0; i < len(a.data); i++ {
		v := fn(a.data[i])
		// Verify both counters after every callback and before any
		// write: a structural change made by fn (to this array or,
		// through any handle, to the parent) must abort before a slot
		// is touched at a now-shifted index.
		if err := a.checkLive(); err != nil {
			return err
		}
		if a.modCount != expected {
			return ErrConcurrentModification
		}
		if a.parent != nil {
			if err := a.parentFits(i + 1); err != nil {
				return err
			}
			a.parent.data[a.offset+i] = v
		}
		a.data[i] = v
	}
	a.recheckSorted(0, len(a.data))
	if a.parent != nil {
		a.parent.recheckSorted(a.offset, a.offset+len(a.data))
	}

	return a.checkLive()
}

// Trade exchanges elements pairwise with external, walking both sides
// in ascending index order from index i here and index 0 there, until
// either side runs out. external ends up holding the displaced
// elements. Returns the number of pairs exchanged.
func (a *Array[T]) Trade(i int, external []T) (int, error) {
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	if err := a.insertIndexCheck(i); err != nil {
		return 0, err
	}

	return a.TradeRange(i, len(a.data), external)
}

// TradeRange is Trade bounded by [lo, hi). Content-replacing like Set,
// so not a structural modification: live iterators and sibling views
// survive. The sortedness flag is re-validated over the traded window
// on both sides.
// Complexity: O(min(hi-lo, len(external))).
func (a *Array[T]) TradeRange(lo, hi int, external []T) (int, error) {
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	if err := a.rangeCheck(lo, hi); err != nil {
		return 0, err
	}
	n := hi - lo
	if len(external) < n {
		n = len(external)
	}
	if n == 0 {
		return 0, nil
	}
	if a.parent != nil {
		if err := a.parentFits(lo + n); err != nil {
			return 0, err
		}
	}
	for k := 0; k < n; k++ {
		a.data[lo+k], external[k] = external[k], a.data[lo+k]
		if a.parent != nil {
			a.parent.data[a.offset+lo+k] = a.data[lo+k]
		}
	}
	a.recheckSorted(lo, lo+n)
	if a.parent != nil {
		a.parent.recheckSorted(a.offset+lo, a.offset+lo+n)
	}

	return n, a.checkLive()
}

// Partition splits the array into consecutive live views of partSize
// elements each. When the element count does not divide evenly the
// final chunk is short, unless a pad value is supplied, in which case
// the final chunk is a detached array filled up to partSize with pad.
// Returns ErrBadPartition when partSize < 1.
func (a *Array[T]) Partition(partSize int, pad ...T) ([]*Array[T], error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	if partSize < 1 {
		return nil, ErrBadPartition
	}
	n := len(a.data)
	parts := make([]*Array[T], 0, (n+partSize-1)/partSize)
	for lo := 0; lo < n; lo += partSize {
		hi := lo + partSize
		if hi <= n {
			v, err := a.Slice(lo, hi)
			if err != nil {
				return nil, err
			}
			parts = append(parts, v)
			continue
		}
		if len(pad) == 0 {
			v, err := a.Slice(lo, n)
			if err != nil {
				return nil, err
			}
			parts = append(parts, v)
			continue
		}
		tail := make([]T, partSize)
		copied := copy(tail, a.data[lo:n])
		for i := copied; i < partSize; i++ {
			tail[i] = pad[0]
		}
		parts = append(parts, a.detached(tail))
	}

	return parts, nil
}

// FixedPartition splits the array into exactly parts chunks of equal
// ceiling size: views over the elements, followed (when a pad value is
// supplied) by fully padded detached chunks up to the requested count.
// Without a pad value fewer than parts chunks may come back. Returns
// ErrBadPartition when parts < 1.
func (a *Array[T]) FixedPartition(parts int, pad ...T) ([]*Array[T], error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	if parts < 1 {
		return nil, ErrBadPartition
	}
	n := len(a.data)
	if n == 0 {
		out := []*Array[T]{}
		if len(pad) > 0 {
			for i := 0; i < parts; i++ {
				out = append(out, a.detached([]T{pad[0]}))
			}
		}

		return out, nil
	}
	size := (n + parts - 1) / parts
	out, err := a.Partition(size, pad...)
	if err != nil {
		return nil, err
	}
	if len(pad) > 0 {
		for len(out) < parts {
			tail := make([]T, size)
			for i := range tail {
				tail[i] = pad[0]
			}
			out = append(out, a.detached(tail))
		}
	}

	return out, nil
}

// Internal helper methods:
////////////////////

// removeMatched compacts [lo, hi), dropping every element for which
// match reports true. The decision pass runs against a counter
// snapshot; survivors are applied as one structural modification per
// side. Returns the number removed; zero matches is counter-neutral.
func (a *Array[T]) removeMatched(lo, hi int, match func(v T) (bool, error)) (int, error) {
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	if err := a.rangeCheck(lo, hi); err != nil {
		return 0, err
	}
	expected := a.modCount
	kept := make([]T, 0, hi-lo)
	removed := 0
	for i := lo; i < hi; i++ {
		if err := a.checkLive(); err != nil {
			return 0, err
		}
		if a.modCount != expected {
			return 0, ErrConcurrentModification
		}
		m, err := match(a.data[i])
		if err != nil {
			return 0, err
		}
		if m {
			removed++
		} else {
			kept = append(kept, a.data[i])
		}
	}
	// Both sides must still agree before the splice lands; a match
	// callback that mutated either one invalidates the decisions.
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	if a.modCount != expected {
		return 0, ErrConcurrentModification
	}
	if removed == 0 {
		return 0, a.checkLive()
	}
	if a.parent != nil {
		if err := a.parentFits(hi); err != nil {
			return 0, err
		}
		a.parent.compactRange(a.offset+lo, a.offset+hi, kept)
	}
	a.compactRange(lo, hi, kept)

	return removed, a.checkLive()
}

// compactRange replaces [lo, hi) with kept, a subsequence of it; one
// structural modification. Removal preserves sortedness, so the flag is
// untouched; vacated tail slots are zeroed to release references.
func (a *Array[T]) compactRange(lo, hi int, kept []T) {
	copy(a.data[lo:hi], kept)
	copy(a.data[lo+len(kept):], a.data[hi:])
	n := len(a.data) - ((hi - lo) - len(kept))
	var zero T
	for i := n; i < len(a.data); i++ {
		a.data[i] = zero
	}
	a.data = a.data[:n]
	a.modCount++
}

// detached builds a root array around data, inheriting the receiver's
// comparator and growth policy.
func (a *Array[T]) detached(data []T) *Array[T] {
	d := &Array[T]{
		data:       data,
		cmp:        a.cmp,
		increment:  a.increment,
		additive:   a.additive,
		sortOnBulk: a.sortOnBulk,
	}
	if len(data) > 0 {
		d.sorted = d.scanSorted()
	}

	return d
}
