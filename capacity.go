// Package dynarray: backing-store capacity management.
//
// Capacity changes are observable only as performance, never as content
// or iteration order, so neither Reserve nor Trim advances the
// structural-modification counter: a live view or iterator survives
// them untouched.

package dynarray

// Reserve guarantees capacity for at least n elements, growing by the
// configured policy: multiplicative growth multiplies capacity by the
// factor repeatedly until n fits (allocating 10 slots first when the
// array has never been allocated); additive growth adds the increment
// once, then jumps straight to n if that was not enough.
// Capacity never shrinks implicitly.
// Returns ErrBadCapacity when n is negative.
// Complexity: O(len) on reallocation, O(1) otherwise.
func (a *Array[T]) Reserve(n int) error {
	if n < 0 {
		return ErrBadCapacity
	}
	a.grow(n)

	return nil
}

// Trim shrinks capacity to exactly the current size. Like Reserve this
// is not a structural modification.
// Complexity: O(len).
func (a *Array[T]) Trim() {
	if cap(a.data) == len(a.data) {
		return
	}
	shrunk := make([]T, len(a.data))
	copy(shrunk, a.data)
	a.data = shrunk
}

// SetGrowthPolicy reconfigures the growth increment and mode at
// runtime. Returns ErrBadGrowth when increment < 1. Returns false
// without changing anything when the policy is identical to the current
// one, or when the increment is too small to admit at least one more
// element after a single growth step (increment must be at least
// (cap+1)/cap for multiplicative growth on a non-empty store).
func (a *Array[T]) SetGrowthPolicy(increment float64, additive bool) (bool, error) {
	if increment < 1 {
		return false, ErrBadGrowth
	}
	c := float64(cap(a.data))
	if c*increment/(c+1) < 1.0 ||
		(increment == a.increment && additive == a.additive) {
		return false, nil
	}
	a.increment = increment
	a.additive = additive

	return true, nil
}

// grow ensures capacity >= minCap, reallocating per the active policy.
func (a *Array[T]) grow(minCap int) {
	if minCap <= cap(a.data) {
		return
	}
	c := cap(a.data)
	if a.additive {
		c += int(a.increment)
		if c < minCap {
			c = minCap
		}
	} else {
		if c == 0 {
			c = lazyInitCapacity
		}
		for c < minCap {
			// A small factor can round away at small capacities
			// (int(10*1.05) == 10); force at least one slot of progress.
			next := int(float64(c) * a.increment)
			if next <= c {
				next = c + 1
			}
			c = next
		}
	}
	fresh := make([]T, len(a.data), c)
	copy(fresh, a.data)
	a.data = fresh
}
