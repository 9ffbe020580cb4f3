package flathash

// mix applies a Murmur3-finalizer-equivalent avalanche to h so that a weak
// or identity-like user hash function still spreads evenly across buckets.
// All arithmetic wraps modulo 2^32, matching the fixed point sequence the
// table relies on for distribution.
func mix(h uint64) uint32 {
	x := uint32(h)
	x ^= x >> 16
	x *= 0x85ebca6b
	x ^= x >> 13
	x *= 0xc2b2ae35
	x ^= x >> 16
	return x
}
