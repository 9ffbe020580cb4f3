package flathash

import "math/bits"

const (
	minBucketCount uint32 = 8
	maxBucketCount uint32 = 1 << 29
)

// storage is the single allocation backing a table: a node array sized to
// a power of two, plus the bookkeeping the source keeps in a small header
// ahead of the node array. Go has no reason to fuse the header into the
// same allocation as the slice, so it is just a plain struct with a slice
// field.
type storage[K comparable, V any] struct {
	nodes     []node[K, V]
	used      uint32
	bucketCnt uint32
}

func newStorage[K comparable, V any](bucketCount uint32) *storage[K, V] {
	if bucketCount < minBucketCount {
		bucketCount = minBucketCount
	}
	if bucketCount&(bucketCount-1) != 0 {
		panic("flathash: bucket count must be a power of two")
	}
	if bucketCount > maxBucketCount {
		panic("flathash: requested bucket count exceeds 2^29")
	}
	return &storage[K, V]{
		nodes:     make([]node[K, V], bucketCount),
		bucketCnt: bucketCount,
	}
}

func (s *storage[K, V]) mask() uint32 {
	return s.bucketCnt - 1
}

// normalize returns the smallest power of two that is >= x and >= the
// minimum bucket count, matching the source's normalize().
func normalize(x uint32) uint32 {
	if x < minBucketCount {
		return minBucketCount
	}
	p := uint32(1) << bits.Len32(x-1)
	if p < minBucketCount {
		return minBucketCount
	}
	return p
}
