package dynarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoladuti1/dynarray"
)

func TestIterator_Walk(t *testing.T) {
	a, err := dynarray.From([]int{1, 2, 3})
	require.NoError(t, err)

	it := a.Iter()
	var got []int
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	_, err = it.Next()
	assert.ErrorIs(t, err, dynarray.ErrExhaustedIterator)

	// And straight back again.
	got = got[:0]
	for it.HasPrev() {
		v, err := it.Prev()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)

	_, err = it.Prev()
	assert.ErrorIs(t, err, dynarray.ErrExhaustedIterator)
}

func TestIterAt(t *testing.T) {
	a, err := dynarray.From([]int{1, 2, 3})
	require.NoError(t, err)

	it, err := a.IterAt(2)
	require.NoError(t, err)
	assert.Equal(t, 2, it.Index())

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	it, err = a.IterAt(a.Len())
	require.NoError(t, err)
	assert.False(t, it.HasNext())
	assert.True(t, it.HasPrev())

	_, err = a.IterAt(4)
	assert.ErrorIs(t, err, dynarray.ErrIndexOutOfRange)
}

func TestIterator_Remove(t *testing.T) {
	a, err := dynarray.From([]int{1, 2, 3, 4})
	require.NoError(t, err)

	it := a.Iter()
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		if v%2 == 0 {
			require.NoError(t, it.Remove())
		}
	}
	assertValues(t, a, 1, 3)

	t.Run("remove before any yield", func(t *testing.T) {
		it := a.Iter()
		assert.ErrorIs(t, it.Remove(), dynarray.ErrIteratorState)
	})

	t.Run("double remove", func(t *testing.T) {
		a, err := dynarray.From([]int{1, 2})
		require.NoError(t, err)
		it := a.Iter()
		_, err = it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())
		assert.ErrorIs(t, it.Remove(), dynarray.ErrIteratorState)
	})

	t.Run("remove after prev", func(t *testing.T) {
		a, err := dynarray.From([]int{1, 2, 3})
		require.NoError(t, err)
		it, err := a.IterAt(a.Len())
		require.NoError(t, err)
		v, err := it.Prev()
		require.NoError(t, err)
		require.Equal(t, 3, v)
		require.NoError(t, it.Remove())
		assertValues(t, a, 1, 2)
	})
}

func TestIterator_Set(t *testing.T) {
	a, err := dynarray.From([]int{1, 2, 3})
	require.NoError(t, err)

	it := a.Iter()
	v, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Set(v*10))
	assertValues(t, a, 10, 2, 3)

	// Set is non-structural: the cursor keeps walking.
	v, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	t.Run("set before any yield", func(t *testing.T) {
		it := a.Iter()
		assert.ErrorIs(t, it.Set(0), dynarray.ErrIteratorState)
	})
}

func TestIterator_Insert(t *testing.T) {
	a, err := dynarray.From([]int{1, 3})
	require.NoError(t, err)

	it := a.Iter()
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.NoError(t, it.Insert(2))
	assertValues(t, a, 1, 2, 3)

	// Cursor sits past the inserted element.
	v, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestIterator_FailFast(t *testing.T) {
	a, err := dynarray.From([]int{1, 2, 3})
	require.NoError(t, err)

	t.Run("outside structural change", func(t *testing.T) {
		it := a.Iter()
		require.NoError(t, a.Push(4))
		_, err := it.Next()
		assert.ErrorIs(t, err, dynarray.ErrConcurrentModification)
	})

	t.Run("sibling iterator removal", func(t *testing.T) {
		it1, it2 := a.Iter(), a.Iter()
		_, err := it1.Next()
		require.NoError(t, err)
		require.NoError(t, it1.Remove())

		_, err = it2.Next()
		assert.ErrorIs(t, err, dynarray.ErrConcurrentModification)
		// it1 re-armed itself and keeps going.
		_, err = it1.Next()
		assert.NoError(t, err)
	})

	t.Run("non-structural set does not trip", func(t *testing.T) {
		it := a.Iter()
		_, err := a.Set(0, 9)
		require.NoError(t, err)
		_, err = it.Next()
		assert.NoError(t, err)
	})
}

func TestViewIteratorChecksParent(t *testing.T) {
	a, err := dynarray.From([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	v, err := a.Slice(1, 4)
	require.NoError(t, err)

	it := v.Iter()
	_, err = it.Next()
	require.NoError(t, err)

	require.NoError(t, a.Push(5))
	_, err = it.Next()
	assert.ErrorIs(t, err, dynarray.ErrConcurrentModification)
}

func TestViewIteratorRemovePropagates(t *testing.T) {
	a, err := dynarray.From([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	v, err := a.Slice(1, 4)
	require.NoError(t, err)

	it := v.Iter()
	got, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, got)
	require.NoError(t, it.Remove())

	assertValues(t, v, 2, 3)
	assertValues(t, a, 0, 2, 3, 4)

	// The pair advanced together, so the view iterator keeps going.
	got, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
