// Package dynarray: bidirectional fail-fast cursor.

package dynarray

// Iterator is a bidirectional cursor over an Array. It captures the
// modification counter at creation and rechecks it before every
// operation, so a structural change made through any other handle
// (the array itself, another iterator, a view or its parent) surfaces
// as ErrConcurrentModification instead of silent corruption. The
// iterator's own Remove and Insert re-arm it with the fresh counter.
//
// An iterator is not safe for concurrent use.
type Iterator[T any] struct {
	a        *Array[T]
	i        int // next index Next would return
	lastRet  int // index last returned; -1 when none
	expected uint64
}

// Iter returns a cursor positioned before the first element.
func (a *Array[T]) Iter() *Iterator[T] {
	return &Iterator[T]{a: a, lastRet: -1, expected: a.modCount}
}

// IterAt returns a cursor positioned before index i, so the first Next
// yields element i and the first Prev yields element i-1. i may equal
// Len (cursor past the end).
func (a *Array[T]) IterAt(i int) (*Iterator[T], error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	if err := a.insertIndexCheck(i); err != nil {
		return nil, err
	}

	return &Iterator[T]{a: a, i: i, lastRet: -1, expected: a.modCount}, nil
}

// HasNext reports whether a forward element remains.
func (it *Iterator[T]) HasNext() bool {
	return it.i < len(it.a.data)
}

// HasPrev reports whether a backward element remains.
func (it *Iterator[T]) HasPrev() bool {
	return it.i > 0
}

// Index returns the index of the element the next Next would yield.
func (it *Iterator[T]) Index() int {
	return it.i
}

// Next yields the element after the cursor and advances. Returns
// ErrExhaustedIterator at the end, ErrConcurrentModification when the
// array changed structurally behind the cursor.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if err := it.check(); err != nil {
		return zero, err
	}
	if it.i >= len(it.a.data) {
		return zero, ErrExhaustedIterator
	}
	v := it.a.data[it.i]
	it.lastRet = it.i
	it.i++

	return v, nil
}

// Prev yields the element before the cursor and retreats.
func (it *Iterator[T]) Prev() (T, error) {
	var zero T
	if err := it.check(); err != nil {
		return zero, err
	}
	if it.i <= 0 {
		return zero, ErrExhaustedIterator
	}
	it.i--
	it.lastRet = it.i

	return it.a.data[it.i], nil
}

// Remove deletes the element last returned by Next or Prev and re-arms
// the cursor with the fresh counter. Returns ErrIteratorState when no
// element has been returned since the last Remove or Insert.
func (it *Iterator[T]) Remove() error {
	if it.lastRet < 0 {
		return ErrIteratorState
	}
	if err := it.check(); err != nil {
		return err
	}
	if _, err := it.a.RemoveAt(it.lastRet); err != nil {
		return err
	}
	if it.lastRet < it.i {
		it.i--
	}
	it.lastRet = -1
	it.expected = it.a.modCount

	return nil
}

// Set overwrites the element last returned by Next or Prev. Not a
// structural modification; the cursor stays armed.
func (it *Iterator[T]) Set(v T) error {
	if it.lastRet < 0 {
		return ErrIteratorState
	}
	if err := it.check(); err != nil {
		return err
	}
	if _, err := it.a.Set(it.lastRet, v); err != nil {
		return err
	}

	return nil
}

// Insert places v at the cursor position; the cursor ends up just past
// the inserted element, and the prior Next/Prev result is forgotten.
func (it *Iterator[T]) Insert(v T) error {
	if err := it.check(); err != nil {
		return err
	}
	if err := it.a.Insert(it.i, v); err != nil {
		return err
	}
	it.i++
	it.lastRet = -1
	it.expected = it.a.modCount

	return nil
}

func (it *Iterator[T]) check() error {
	if err := it.a.checkLive(); err != nil {
		return err
	}
	if it.a.modCount != it.expected {
		return ErrConcurrentModification
	}

	return nil
}
