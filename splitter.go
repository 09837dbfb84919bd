// Package dynarray: order-preserving splitting iterator, the
// divide-and-conquer counterpart to Iterator.

package dynarray

// Splitter walks a half-open window of an Array in index order and can
// split itself for parallel-style decomposition: the receiver keeps the
// front half of its remaining window and hands the back half (never
// smaller than the front) to a new Splitter. Like Iterator it captures
// the modification counter at creation and rechecks it on every
// advance, so structural changes surface as ErrConcurrentModification.
type Splitter[T any] struct {
	a        *Array[T]
	i, end   int
	expected uint64
}

// Split returns a Splitter over the whole array.
func (a *Array[T]) Split() *Splitter[T] {
	return &Splitter[T]{a: a, end: len(a.data), expected: a.modCount}
}

// SplitRange returns a Splitter over [lo, hi).
func (a *Array[T]) SplitRange(lo, hi int) (*Splitter[T], error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	if err := a.rangeCheck(lo, hi); err != nil {
		return nil, err
	}

	return &Splitter[T]{a: a, i: lo, end: hi, expected: a.modCount}, nil
}

// Len returns the number of elements remaining in the window.
func (s *Splitter[T]) Len() int {
	return s.end - s.i
}

// TryAdvance applies fn to the next element and reports whether one
// existed.
func (s *Splitter[T]) TryAdvance(fn func(v T)) (bool, error) {
	if fn == nil {
		return false, ErrNilFunc
	}
	if err := s.check(); err != nil {
		return false, err
	}
	if s.i >= s.end {
		return false, nil
	}
	fn(s.a.data[s.i])
	s.i++

	return true, nil
}

// ForEachRemaining applies fn to every remaining element in order,
// rechecking the counter before each step.
func (s *Splitter[T]) ForEachRemaining(fn func(v T)) error {
	if fn == nil {
		return ErrNilFunc
	}
	for s.i < s.end {
		if err := s.check(); err != nil {
			return err
		}
		fn(s.a.data[s.i])
		s.i++
	}

	return s.check()
}

// Split halves the remaining window: the receiver keeps the front, the
// returned Splitter covers the back half, which is never smaller than
// the front. Returns nil when fewer than two elements remain or the
// window is stale.
func (s *Splitter[T]) Split() *Splitter[T] {
	if s.check() != nil || s.end-s.i < 2 {
		return nil
	}
	mid := s.i + (s.end-s.i)/2
	back := &Splitter[T]{a: s.a, i: mid, end: s.end, expected: s.expected}
	s.end = mid

	return back
}

func (s *Splitter[T]) check() error {
	if err := s.a.checkLive(); err != nil {
		return err
	}
	if s.a.modCount != s.expected {
		return ErrConcurrentModification
	}

	return nil
}
