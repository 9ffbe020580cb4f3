package flathash

import "iter"

// Set is a key-only flat hash table: Table[K, struct{}] with the
// value-taking methods elided, so Map and Set share the exact same
// engine, probing discipline, and backward-shift deletion.
//
// Set is not safe for concurrent use, and iterating while mutating (other
// than through its own RemoveIf) has undefined results.
type Set[K comparable] struct {
	t Table[K, struct{}]
}

// NewSet returns an empty Set. No storage is allocated until the first
// insert, unless WithCapacity is given.
func NewSet[K comparable](opts ...TableOption[K, struct{}]) *Set[K] {
	s := &Set[K]{}
	s.t.init(opts...)
	return s
}

// NewSetFrom reserves room for len(keys) and inserts them in order. If the
// same key appears more than once, the first occurrence wins, matching
// Add's own semantics.
func NewSetFrom[K comparable](keys []K, opts ...TableOption[K, struct{}]) *Set[K] {
	s := NewSet(opts...)
	if len(keys) == 0 {
		return s
	}
	s.Reserve(len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Len reports the number of elements.
func (s *Set[K]) Len() int {
	return s.t.Len()
}

// Stats returns a snapshot of the set's occupancy.
func (s *Set[K]) Stats() Stats {
	return statsOf(&s.t)
}

// Has reports whether key is a member.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.t.find(key)
	return ok
}

// Add inserts key, growing the table first if needed, and reports whether
// it was newly inserted.
func (s *Set[K]) Add(key K) (inserted bool) {
	_, inserted = s.t.emplace(key, struct{}{})
	return inserted
}

// Delete removes key, reporting whether it was present.
func (s *Set[K]) Delete(key K) bool {
	return s.t.eraseByKey(key)
}

// Clear releases all storage, returning the set to its pre-allocation
// state.
func (s *Set[K]) Clear() {
	s.t.reset()
}

// Reserve ensures capacity for at least n elements without shrinking.
func (s *Set[K]) Reserve(n int) {
	if n > 0 {
		s.t.reserve(uint32(n))
	}
}

// Clone returns a deep copy that shares no storage with s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{t: *s.t.clone()}
}

// RemoveIf deletes every element for which pred returns true.
func (s *Set[K]) RemoveIf(pred func(key K) bool) {
	s.t.removeIf(func(k K, _ struct{}) bool { return pred(k) })
}

// Iterator returns a fresh Iterator starting at a randomly chosen bucket
// (see spec §4.6). Any mutation of s invalidates it.
func (s *Set[K]) Iterator() Iterator[K, struct{}] {
	return newIterator(&s.t)
}

// All returns a range-over-func view of the set's elements, in the same
// randomized, invalidate-on-mutation order as Iterator.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := newIterator(&s.t)
		for it.Valid() {
			if !yield(it.Key()) {
				return
			}
			it.Next()
		}
	}
}

// Keys is an alias for All, for readability at call sites that also range
// over a Map's Keys.
func (s *Set[K]) Keys() iter.Seq[K] {
	return s.All()
}

// Union returns a new set containing every element of s or other.
// Supplements spec.md's distilled operation set: the source's
// td::FlatHashSet is used throughout tdutils/td for exactly this kind of
// set algebra, built only from find/emplace/iteration, so it carries no
// new invariant.
func (s *Set[K]) Union(other *Set[K]) *Set[K] {
	out := s.Clone()
	for k := range other.All() {
		out.Add(k)
	}
	return out
}

// Intersect returns a new set containing every element present in both s
// and other.
func (s *Set[K]) Intersect(other *Set[K]) *Set[K] {
	out := NewSet[K]()
	small, big := s, other
	if big.Len() < small.Len() {
		small, big = big, small
	}
	for k := range small.All() {
		if big.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Difference returns a new set containing every element of s that is not
// in other.
func (s *Set[K]) Difference(other *Set[K]) *Set[K] {
	out := NewSet[K]()
	for k := range s.All() {
		if !other.Has(k) {
			out.Add(k)
		}
	}
	return out
}
