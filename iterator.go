package flathash

import "math/rand/v2"

// Iterator walks the occupied slots of a Table in circular order, starting
// from a randomly chosen bucket. Per spec §4.6, the starting point is
// chosen uniformly at random so that no caller can come to depend on a
// particular iteration order; two iterations over the same table are only
// guaranteed to visit the same multiset of entries, never the same
// sequence.
//
// An Iterator is invalidated by any insert, erase, or rehash performed on
// its Table after it was obtained; using it afterward has undefined
// results.
type Iterator[K comparable, V any] struct {
	t     *Table[K, V]
	idx   uint32
	start uint32
	done  bool
}

// newIterator returns an iterator positioned at the first occupied slot
// found starting from a random (or, with WithDeterministicIteration,
// fixed) bucket. If the table is empty, the returned Iterator reports
// Valid() false.
func newIterator[K comparable, V any](t *Table[K, V]) Iterator[K, V] {
	if t.s == nil || t.s.used == 0 {
		return Iterator[K, V]{t: t, done: true}
	}
	var b uint32
	if t.deterministic {
		b = 0
	} else {
		b = rand.Uint32() & t.s.mask()
	}
	for t.s.nodes[b].empty() {
		b = (b + 1) & t.s.mask()
	}
	return Iterator[K, V]{t: t, idx: b, start: b}
}

// Valid reports whether the iterator currently points at a live entry.
func (it *Iterator[K, V]) Valid() bool {
	return !it.done
}

// Key returns the key at the iterator's current position. It must only be
// called while Valid reports true.
func (it *Iterator[K, V]) Key() K {
	return it.t.s.nodes[it.idx].key
}

// Value returns the value at the iterator's current position. It must
// only be called while Valid reports true.
func (it *Iterator[K, V]) Value() V {
	return it.t.s.nodes[it.idx].value
}

// Next advances the iterator to the next occupied slot in circular order,
// reporting whether it now points at a live entry. Once it has walked all
// the way back to its starting slot, it becomes invalid.
func (it *Iterator[K, V]) Next() bool {
	if it.done {
		return false
	}
	mask := it.t.s.mask()
	for {
		it.idx = (it.idx + 1) & mask
		if it.idx == it.start {
			it.done = true
			return false
		}
		if !it.t.s.nodes[it.idx].empty() {
			return true
		}
	}
}
