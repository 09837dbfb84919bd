// Package dynarray is a growable, randomly-indexable ordered container
// with live sublist views, an incrementally-tracked sortedness flag,
// and fail-fast detection of out-of-band structural changes.
//
// 🚀 What is dynarray?
//
//	A generic dynamic array (Array[T]) in the spirit of a classic
//	list type, with three capabilities plain slices don't give you:
//	  • Sortedness tracking: a conservative flag maintained after every
//	    localized mutation, letting lookups switch between binary search
//	    (plus linear fan-out over duplicate runs) and plain linear scan.
//	  • Live views: Slice(lo, hi) carves out a fully functional
//	    sub-array that stays bidirectionally synchronized with the range
//	    of its parent it was sliced from.
//	  • Comodification detection: parents, views, iterators and
//	    splitters share a structural-modification counter; a stale
//	    handle fails with ErrConcurrentModification instead of serving
//	    corrupt data.
//
// ✨ Key features:
//   - First/last/any/all index lookups in O(log n + k) when sorted
//   - Multiplicative or additive capacity growth; Reserve and Trim are
//     capacity-only and never count as structural modifications
//   - Range-based forms of every lookup and bulk mutation
//   - Bulk helpers: InsertAll, RemoveValues, RemoveIf, RemoveWhile,
//     Retain, Dedupe, Partition, Replace, Trade
//   - Bidirectional iterators and an order-preserving splitting
//     iterator, all fail-fast
//
// ⚙️ Usage:
//
//	import "github.com/aoladuti1/dynarray"
//
//	a, _ := dynarray.NewOrdered[int]()
//	_ = a.Append(3, 1, 2)
//	_ = a.Sort()                    // a = [1 2 3], IsSorted() == true
//	i, _ := a.IndexOf(2)            // binary search: i == 1
//
//	v, _ := a.Slice(0, 2)           // live view over [1 2]
//	_ = v.Insert(1, 9)              // v = [1 9 2], a = [1 9 2 3]
//
// Not thread-safe: at most one logical caller may mutate a given
// parent-and-views family at a time. The modification counter is a
// debugging aid against single-threaded misuse (mutating during
// iteration, mutating a parent behind a view's back), not a
// concurrency primitive.
//
// See example_test.go for runnable walkthroughs.
package dynarray
