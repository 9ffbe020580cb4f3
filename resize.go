package flathash

import "fmt"

// Resize thresholds, as fractions of bucket_count: grow once load factor
// would exceed growNum/growDen, consider shrinking once it falls below
// shrinkNum/shrinkDen. These mirror the source's integer comparisons
// (used*5 > mask*3, used*10 < mask) exactly, just spelled as constants.
const (
	growNum, growDen     = 3, 5
	shrinkNum, shrinkDen = 1, 10
)

// growIfNeeded allocates on first insert and doubles once the entries
// already present exceed 3/5 of the mask (used*5 > mask*3). It runs before
// the slot search in emplace and does not count the key about to be
// inserted, so a table can end up one entry past the 3/5 threshold.
func (t *Table[K, V]) growIfNeeded() {
	if t.s == nil {
		t.s = newStorage[K, V](minBucketCount)
		return
	}
	mask := t.s.mask()
	if uint64(t.s.used)*growDen > uint64(mask)*growNum {
		t.rehash(2 * (mask + 1))
	}
}

// shrinkIfNeeded is considered only after an erase, never after an insert.
func (t *Table[K, V]) shrinkIfNeeded() {
	if t.s == nil {
		return
	}
	mask := t.s.mask()
	if mask <= minBucketCount-1 {
		return
	}
	if uint64(t.s.used)*shrinkDen < uint64(mask) {
		t.rehash(normalize((t.s.used+1)*5/3 + 1))
	}
}

// rehash allocates a fresh block of newBucketCount buckets and reinserts
// every occupied slot from the old block. Because the destination block is
// freshly zeroed and nothing has ever been deleted from it, each key simply
// probes to its home bucket or the first empty slot after it — the
// probe-chain invariant holds trivially in the new block.
func (t *Table[K, V]) rehash(newBucketCount uint32) {
	old := t.s
	next := newStorage[K, V](newBucketCount)
	if old != nil {
		next.used = old.used
		mask := next.mask()
		for i := range old.nodes {
			src := &old.nodes[i]
			if src.empty() {
				continue
			}
			b := t.homeBucket(src.key, mask)
			for !next.nodes[b].empty() {
				b = (b + 1) & mask
			}
			next.nodes[b].moveFrom(src)
		}
	}
	t.s = next
}

// reserve ensures capacity is at least normalize(n*5/3+1) buckets without
// ever shrinking. It panics if n exceeds the 2^29 bucket limit, the same
// bound newStorage enforces, checked here first so an oversized request
// fails loudly instead of wrapping in the uint32 product n*5 and coming
// out as a small bucket count.
func (t *Table[K, V]) reserve(n uint32) {
	if n == 0 {
		return
	}
	if n > maxBucketCount {
		panic(fmt.Sprintf("flathash: reserve(%d) exceeds the 2^29 bucket limit", n))
	}
	want := normalize(n*5/3 + 1)
	if t.s == nil || want > t.s.bucketCnt {
		t.rehash(want)
	}
}
