// Package dynarray: the hybrid locator.
//
// Every lookup picks its strategy from the sortedness flag: binary
// search plus bounded linear fan-out over the duplicate run when
// sorted, a directional linear scan otherwise. Matching uses the
// comparator when one is set and plain equality otherwise.

package dynarray

// IndexOf returns the index of the first occurrence of v, or -1.
// Complexity: O(log n + k) when sorted (k = duplicates of v), O(n) otherwise.
func (a *Array[T]) IndexOf(v T) (int, error) {
	return a.IndexOfRange(0, len(a.data), v)
}

// IndexOfRange returns the index of the first occurrence of v within
// [lo, hi), or -1. An empty range reports -1 immediately without
// invoking the relation.
func (a *Array[T]) IndexOfRange(lo, hi int, v T) (int, error) {
	if err := a.checkLive(); err != nil {
		return notFound, err
	}
	if err := a.rangeCheck(lo, hi); err != nil {
		return notFound, err
	}
	if lo == hi {
		return notFound, nil
	}
	if !a.sorted {
		return a.scanFor(lo, hi, v, true)
	}
	j, err := a.binarySearch(lo, hi, v)
	if err != nil || j == notFound {
		return notFound, err
	}
	// Fan outward toward lower indices until the run of equals ends.
	for j > lo && a.cmp(a.data[j-1], v) == 0 {
		j--
	}

	return j, nil
}

// LastIndexOf returns the index of the last occurrence of v, or -1.
// Complexity: O(log n + k) when sorted, O(n) otherwise.
func (a *Array[T]) LastIndexOf(v T) (int, error) {
	return a.LastIndexOfRange(0, len(a.data), v)
}

// LastIndexOfRange returns the index of the last occurrence of v within
// [lo, hi), or -1.
func (a *Array[T]) LastIndexOfRange(lo, hi int, v T) (int, error) {
	if err := a.checkLive(); err != nil {
		return notFound, err
	}
	if err := a.rangeCheck(lo, hi); err != nil {
		return notFound, err
	}
	if lo == hi {
		return notFound, nil
	}
	if !a.sorted {
		return a.scanFor(lo, hi, v, false)
	}
	j, err := a.binarySearch(lo, hi, v)
	if err != nil || j == notFound {
		return notFound, err
	}
	// Fan outward toward higher indices until the run of equals ends.
	for j+1 < hi && a.cmp(a.data[j+1], v) == 0 {
		j++
	}

	return j, nil
}

// AnyIndexOf returns some index holding v, or -1. When sorted this is
// the bare binary-search hit with ties broken arbitrarily, skipping the
// fan-out; use it when any occurrence will do.
func (a *Array[T]) AnyIndexOf(v T) (int, error) {
	return a.AnyIndexOfRange(0, len(a.data), v)
}

// AnyIndexOfRange returns some index in [lo, hi) holding v, or -1.
func (a *Array[T]) AnyIndexOfRange(lo, hi int, v T) (int, error) {
	if err := a.checkLive(); err != nil {
		return notFound, err
	}
	if err := a.rangeCheck(lo, hi); err != nil {
		return notFound, err
	}
	if lo == hi {
		return notFound, nil
	}
	if a.sorted {
		return a.binarySearch(lo, hi, v)
	}

	return a.scanFor(lo, hi, v, true)
}

// Contains reports whether at least one element equals v.
func (a *Array[T]) Contains(v T) (bool, error) {
	i, err := a.AnyIndexOf(v)

	return i != notFound, err
}

// ContainsRange reports whether [lo, hi) holds at least one element
// equal to v.
func (a *Array[T]) ContainsRange(lo, hi int, v T) (bool, error) {
	i, err := a.AnyIndexOfRange(lo, hi, v)

	return i != notFound, err
}

// ContainsAll reports whether every element of vals is present.
// Vacuously true for an empty vals.
func (a *Array[T]) ContainsAll(vals []T) (bool, error) {
	for _, v := range vals {
		ok, err := a.Contains(v)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, a.checkLive()
		}
	}

	return true, a.checkLive()
}

// IndicesOf returns every index holding v, in ascending order. Zero
// matches yield an empty slice, never an error.
func (a *Array[T]) IndicesOf(v T) ([]int, error) {
	return a.IndicesOfRange(0, len(a.data), v)
}

// IndicesOfRange returns every index in [lo, hi) holding v, ascending.
/// Complexity: O(log n + k) when sorted, O(range) otherwise.
func (a *Array[T]) IndicesOfRange(lo, hi int, v T) ([]int, error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	if err := a.rangeCheck(lo, hi); err != nil {
		return nil, err
	}
	out := []int{}
	if lo == hi {
		return out, nil
	}
	if a.sorted {
		first, err := a.IndexOfRange(lo, hi, v)
		if err != nil || first == notFound {
			return out, err
		}
		// Sorted: all occurrences form one contiguous run.
		for j := first; j < hi && a.cmp(a.data[j], v) == 0; j++ {
			out = append(out, j)
		}

		return out, nil
	}
	for i := lo; i < hi; i++ {
		eq, err := a.equal(a.data[i], v)
		if err != nil {
			return nil, err
		}
		if eq {
			out = append(out, i)
		}
	}

	return out, nil
}

// Count returns the number of elements equal to v.
func (a *Array[T]) Count(v T) (int, error) {
	return a.CountRange(0, len(a.data), v)
}

// CountRange returns the number of elements in [lo, hi) equal to v.
func (a *Array[T]) CountRange(lo, hi int, v T) (int, error) {
	idxs, err := a.IndicesOfRange(lo, hi, v)
	if err != nil {
		return 0, err
	}

	return len(idxs), nil
}

// scanFor is the unsorted strategy: a linear scan in the requested
// direction (forward finds the first occurrence, backward the last).
func (a *Array[T]) scanFor(lo, hi int, v T, forward bool) (int, error) {
	if forward {
		for i := lo; i < hi; i++ {
			eq, err := a.equal(a.data[i], v)
			if err != nil {
				return notFound, err
			}
			if eq {
				return i, nil
			}
		}

		return notFound, nil
	}
	for i := hi - 1; i >= lo; i-- {
		eq, err := a.equal(a.data[i], v)
		if err != nil {
			return notFound, err
		}
		if eq {
			return i, nil
		}
	}

	return notFound, nil
}

// binarySearch returns an arbitrary index in [lo, hi) whose element
// compares equal to v, or -1. Requires the sorted flag: a sorted array
// with no relation (a MarkSorted misuse) surfaces ErrIncomparable
// rather than guessing.
func (a *Array[T]) binarySearch(lo, hi int, v T) (int, error) {
	if a.cmp == nil {
		return notFound, ErrIncomparable
	}
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := a.cmp(a.data[mid], v)
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, nil
		}
	}

	return notFound, nil
}
