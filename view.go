// Package dynarray: live sublist views.
//
// A view is an ordinary *Array carrying a parent pointer, an offset
// into the parent, and its own duplicated store. Reads are served from
// the duplicate after a counter check; writes go to the parent first
// (at offset-shifted indices) and then to the duplicate, after which
// the counters must agree. Any structural change that reaches the
// parent through another handle is detected on the view's next use and
// moves it to a terminal invalidated state.
//
// Views never nest: slicing a view produces another view of the same
// root with a shifted offset, so the counter protocol always spans
// exactly one parent/child pair.

package dynarray

// Slice returns a live view over [lo, hi): an independent O(hi-lo)
// snapshot of the window that stays bidirectionally synchronized with
// the root through the modification-counter protocol. The view inherits
// the comparator, the growth policy and the bulk-insert mode; its
// sortedness flag is taken from the parent when set and re-derived from
// the window otherwise.
// Returns ErrBadRange / ErrIndexOutOfRange on a bad window and
// ErrConcurrentModification on a stale view.
// Complexity: O(hi-lo).
func (a *Array[T]) Slice(lo, hi int) (*Array[T], error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	if err := a.rangeCheck(lo, hi); err != nil {
		return nil, err
	}
	root, off := a, lo
	if a.parent != nil {
		root, off = a.parent, a.offset+lo
	}
	data := make([]T, hi-lo)
	copy(data, a.data[lo:hi])
	v := &Array[T]{
		data:       data,
		cmp:        a.cmp,
		increment:  a.increment,
		additive:   a.additive,
		sortOnBulk: a.sortOnBulk,
		parent:     root,
		offset:     off,
		modCount:   root.modCount,
	}
	switch {
	case a.sorted:
		// A window of a sorted sequence is itself sorted.
		v.sorted = true
	case len(data) > 0:
		v.sorted = v.scanSorted()
	}

	return v, nil
}
