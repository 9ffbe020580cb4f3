package flathash

import "hash/maphash"

// TableOption configures a Table at construction time.
type TableOption[K comparable, V any] func(t *Table[K, V])

// WithHashFunc overrides the default hasher.
func WithHashFunc[K comparable, V any](f HashFunc[K]) TableOption[K, V] {
	return func(t *Table[K, V]) {
		t.hashFunc = f
	}
}

// WithEqFunc overrides the default key equality (Go's built-in ==).
func WithEqFunc[K comparable, V any](eq EqFunc[K]) TableOption[K, V] {
	return func(t *Table[K, V]) {
		t.eqFunc = eq
	}
}

// WithSeed fixes the seed used by the default hasher, for reproducible
// bucket placement across runs (e.g. in tests). It replaces the hasher, so
// if it is combined with WithHashFunc, whichever option comes later wins.
func WithSeed[K comparable, V any](seed maphash.Seed) TableOption[K, V] {
	return func(t *Table[K, V]) {
		t.hashFunc = func(k K) uint64 {
			return maphash.Comparable(seed, k)
		}
	}
}

// WithCapacity pre-reserves room for at least n entries, so that inserting
// up to n keys afterward never triggers an internal grow.
func WithCapacity[K comparable, V any](n int) TableOption[K, V] {
	return func(t *Table[K, V]) {
		if n > 0 {
			t.reserve(uint32(n))
		}
	}
}

// WithDeterministicIteration forces Iterator to always start at bucket 0
// instead of a random bucket. It exists only for debugging and tests; spec
// §9 calls out that any such escape hatch must be off by default, and it
// must not be relied on in production code since it exposes exactly the
// ordering dependence the randomized default is designed to prevent.
func WithDeterministicIteration[K comparable, V any](on bool) TableOption[K, V] {
	return func(t *Table[K, V]) {
		t.deterministic = on
	}
}

func defaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
