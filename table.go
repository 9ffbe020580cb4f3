package flathash

import "fmt"

// HashFunc produces an at-least-32-bit hash for a key. Any quality is fine:
// the table's own mixer (mix.go) compensates for weak or identity-like
// hashers.
type HashFunc[K comparable] func(K) uint64

// EqFunc reports whether two keys are equal. It must be reflexive,
// symmetric and transitive. The default compares with Go's built-in ==.
type EqFunc[K comparable] func(a, b K) bool

// Table is the open-addressed engine shared by Map and Set. It is never
// used directly by callers; Map[K,V] and Set[K] (Set uses V = struct{})
// embed it.
//
// Table is not safe for concurrent use, and any insert, erase, or rehash
// invalidates every outstanding Iterator.
type Table[K comparable, V any] struct {
	s             *storage[K, V]
	hashFunc      HashFunc[K]
	eqFunc        EqFunc[K]
	deterministic bool
}

func (t *Table[K, V]) init(opts ...TableOption[K, V]) {
	t.eqFunc = func(a, b K) bool { return a == b }
	t.hashFunc = defaultHashFunc[K]()
	for _, opt := range opts {
		opt(t)
	}
}

// Len reports the number of live entries.
func (t *Table[K, V]) Len() int {
	if t.s == nil {
		return 0
	}
	return int(t.s.used)
}

// BucketCount reports the current capacity, or 0 before the first insert.
func (t *Table[K, V]) BucketCount() int {
	if t.s == nil {
		return 0
	}
	return int(t.s.bucketCnt)
}

func (t *Table[K, V]) homeBucket(key K, mask uint32) uint32 {
	return mix(t.hashFunc(key)) & mask
}

func (t *Table[K, V]) isEmptyKey(key K) bool {
	var zero K
	return t.eqFunc(key, zero)
}

// find returns the slot index holding key and true, or (0, false) if key
// is absent. A table with no storage block, or a key equal to the empty
// sentinel, always misses.
func (t *Table[K, V]) find(key K) (uint32, bool) {
	if t.s == nil || t.isEmptyKey(key) {
		return 0, false
	}
	mask := t.s.mask()
	b := t.homeBucket(key, mask)
	for {
		n := &t.s.nodes[b]
		if n.empty() {
			return 0, false
		}
		if t.eqFunc(n.key, key) {
			return b, true
		}
		b = (b + 1) & mask
	}
}

// emplace inserts key with value if absent, growing the table first if
// needed. It reports the slot index and whether a new entry was created;
// if the key was already present its value is left untouched and idx
// points at the existing slot.
func (t *Table[K, V]) emplace(key K, value V) (idx uint32, inserted bool) {
	if t.isEmptyKey(key) {
		panic(fmt.Sprintf("flathash: key %v equals the empty sentinel and cannot be stored", key))
	}
	t.growIfNeeded()
	mask := t.s.mask()
	b := t.homeBucket(key, mask)
	for {
		n := &t.s.nodes[b]
		if n.empty() {
			n.emplace(key, value)
			t.s.used++
			return b, true
		}
		if t.eqFunc(n.key, key) {
			return b, false
		}
		b = (b + 1) & mask
	}
}

// assign overwrites the value at key, inserting it if absent. It reports
// whether the key was newly inserted.
func (t *Table[K, V]) assign(key K, value V) bool {
	idx, inserted := t.emplace(key, value)
	if !inserted {
		t.s.nodes[idx].value = value
	}
	return inserted
}

// eraseByKey erases the entry for key, if any, reporting whether one was
// found.
func (t *Table[K, V]) eraseByKey(key K) bool {
	idx, ok := t.find(key)
	if !ok {
		return false
	}
	t.eraseAt(idx)
	return true
}

// eraseAt removes the occupied slot at idx using backward-shift deletion
// (spec §4.5): later entries on the same probe chain slide back to fill
// the hole, so no tombstone is ever written. try_shrink is considered
// afterward.
func (t *Table[K, V]) eraseAt(idx uint32) {
	if t.s == nil || uint32(len(t.s.nodes)) <= idx {
		panic("flathash: erase called with an out-of-range index")
	}
	if t.s.nodes[idx].empty() {
		panic("flathash: erase called on an empty slot")
	}
	t.eraseNode(idx)
	t.shrinkIfNeeded()
}

// eraseNode performs the backward-shift shift loop without considering a
// shrink; removeIf uses this directly so it only tries to shrink once,
// after the whole traversal.
func (t *Table[K, V]) eraseNode(idx uint32) {
	bucketCount := t.s.bucketCnt
	emptyI := idx
	emptyBucket := idx
	t.s.nodes[emptyBucket].clear()
	t.s.used--

	for testI := emptyI + 1; ; testI++ {
		testBucket := testI
		if testBucket >= bucketCount {
			testBucket -= bucketCount
		}
		if t.s.nodes[testBucket].empty() {
			break
		}

		wantI := t.homeBucket(t.s.nodes[testBucket].key, t.s.mask())
		if wantI < emptyI {
			wantI += bucketCount
		}

		if wantI <= emptyI || wantI > testI {
			t.s.nodes[emptyBucket].moveFrom(&t.s.nodes[testBucket])
			emptyI = testI
			emptyBucket = testBucket
		}
	}
}

// removeIf erases every entry for which pred returns true and then
// considers shrinking once. The traversal starts at the first empty slot
// found scanning forward from index 0 (the backward scan from the end only
// runs if that forward scan finds none) so that a backward shift triggered
// by an earlier erase in the same pass never moves an entry into a slot
// already visited.
func (t *Table[K, V]) removeIf(pred func(key K, value V) bool) {
	if t.s == nil || t.s.used == 0 {
		return
	}
	n := uint32(len(t.s.nodes))

	it := uint32(0)
	for it < n && !t.s.nodes[it].empty() {
		it++
	}
	firstEmpty := it
	if it == n {
		it = n - 1
		for !t.s.nodes[it].empty() {
			it--
		}
		firstEmpty = it
	}

	for i := firstEmpty; i < n; {
		if !t.s.nodes[i].empty() && pred(t.s.nodes[i].key, t.s.nodes[i].value) {
			t.eraseNode(i)
		} else {
			i++
		}
	}
	for i := uint32(0); i < firstEmpty; {
		if !t.s.nodes[i].empty() && pred(t.s.nodes[i].key, t.s.nodes[i].value) {
			t.eraseNode(i)
		} else {
			i++
		}
	}

	t.shrinkIfNeeded()
}

// reset releases the storage block and returns to the pre-allocation
// state.
func (t *Table[K, V]) reset() {
	t.s = nil
}

// clone returns a deep copy sharing no storage with t. Per spec §4.8, the
// clone allocates the same bucket count as the source (not renormalized)
// and copies each occupied slot, in index order, into the bucket its key
// probes to under the same mask. Duplicate keys cannot occur, so the clone
// holds exactly the source's entries; where a probe chain wraps past the
// end of the array, an entry can land in a different slot than it holds
// in the source.
func (t *Table[K, V]) clone() *Table[K, V] {
	c := &Table[K, V]{hashFunc: t.hashFunc, eqFunc: t.eqFunc, deterministic: t.deterministic}
	if t.s == nil {
		return c
	}
	c.s = newStorage[K, V](t.s.bucketCnt)
	c.s.used = t.s.used
	mask := c.s.mask()
	for i := range t.s.nodes {
		src := &t.s.nodes[i]
		if src.empty() {
			continue
		}
		b := c.homeBucket(src.key, mask)
		for !c.s.nodes[b].empty() {
			b = (b + 1) & mask
		}
		c.s.nodes[b].copyFrom(src)
	}
	return c
}
