// Package flathash implements a flat, open-addressed hash table and the
// Map and Set collections built on top of it.
//
// The table uses linear probing from a mixed hash bucket and deletes
// entries with a backward-shift algorithm instead of tombstones, so a
// deleted slot is immediately available again and lookups never have to
// skip over dead entries. The price of carrying no tombstones is that the
// key type must have a value — its zero value — that will never be a
// legitimate key; that value is the slot-empty sentinel.
//
// Map[K,V] and Set[K] are thin façades over the same generic engine,
// Table[K,V] (Set uses V = struct{}). Neither type is safe for concurrent
// use: there is no internal locking, and iterators are invalidated by any
// insert, delete, or resize performed after they were obtained.
package flathash
