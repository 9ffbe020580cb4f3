package flathash

// Stats is a point-in-time snapshot of a Table's occupancy.
type Stats struct {
	Len        int
	Buckets    int
	LoadFactor float64
}

func statsOf[K comparable, V any](t *Table[K, V]) Stats {
	s := Stats{Len: t.Len(), Buckets: t.BucketCount()}
	if s.Buckets > 0 {
		s.LoadFactor = float64(s.Len) / float64(s.Buckets)
	}
	return s
}
