package flathash

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap_GetOnEmpty(t *testing.T) {
	m := NewMap[string, int]()
	v, ok := m.Get("missing")
	require.False(t, ok)
	require.Equal(t, 0, v)
	require.False(t, m.Has("missing"))
	require.Equal(t, 0, m.Len())
}

func TestMap_PutThenGet(t *testing.T) {
	m := NewMap[string, int]()
	inserted := m.Put("a", 1)
	require.True(t, inserted)

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.True(t, m.Has("a"))
	require.Equal(t, 1, m.Len())
}

func TestMap_PutDoesNotOverwrite(t *testing.T) {
	m := NewMap[string, int]()
	m.Put("a", 1)
	inserted := m.Put("a", 999)
	require.False(t, inserted)

	v, _ := m.Get("a")
	require.Equal(t, 1, v)
}

func TestMap_SetOverwrites(t *testing.T) {
	m := NewMap[string, int]()
	inserted1 := m.Set("a", 1)
	require.True(t, inserted1)

	inserted2 := m.Set("a", 2)
	require.False(t, inserted2)

	v, _ := m.Get("a")
	require.Equal(t, 2, v)
}

func TestMap_GetOrInsert(t *testing.T) {
	m := NewMap[string, int]()
	v1 := m.GetOrInsert("a")
	require.Equal(t, 0, v1, "absent key gets the zero value on first touch")

	m.Set("a", 7)
	v2 := m.GetOrInsert("a")
	require.Equal(t, 7, v2, "present key keeps its existing value")
}

func TestMap_Delete(t *testing.T) {
	m := NewMap[string, int]()
	m.Put("a", 1)

	require.True(t, m.Delete("a"))
	require.False(t, m.Delete("a"))
	require.False(t, m.Has("a"))
	require.Equal(t, 0, m.Len())
}

func TestMap_Clear(t *testing.T) {
	m := NewMap[string, int]()
	for i := 0; i < 20; i++ {
		m.Put(string(rune('a'+i)), i)
	}
	m.Clear()
	require.Equal(t, 0, m.Len())
	require.Equal(t, 0, m.Stats().Buckets)
}

func TestMap_Reserve(t *testing.T) {
	m := NewMap[int, int]()
	m.Reserve(50)
	before := m.Stats().Buckets
	for i := 1; i <= 50; i++ {
		m.Put(i, i)
	}
	require.Equal(t, before, m.Stats().Buckets)
}

func TestMap_Clone(t *testing.T) {
	m := NewMap[int, int]()
	m.Put(1, 100)
	m.Put(2, 200)

	c := m.Clone()
	m.Set(1, -1)
	m.Delete(2)

	v1, ok1 := c.Get(1)
	require.True(t, ok1)
	require.Equal(t, 100, v1, "clone must not see later mutation of the source")

	v2, ok2 := c.Get(2)
	require.True(t, ok2)
	require.Equal(t, 200, v2)
}

func TestMap_RemoveIf(t *testing.T) {
	m := NewMap[int, int]()
	for i := 1; i <= 20; i++ {
		m.Put(i, i*i)
	}

	m.RemoveIf(func(k, v int) bool { return v%2 == 0 })

	for i := 1; i <= 20; i++ {
		_, ok := m.Get(i)
		require.Equal(t, (i*i)%2 != 0, ok, "key %d", i)
	}
}

func TestMap_All_Keys_Values(t *testing.T) {
	m := NewMap[int, string]()
	want := map[int]string{1: "one", 2: "two", 3: "three"}
	for k, v := range want {
		m.Put(k, v)
	}

	gotAll := map[int]string{}
	for k, v := range m.All() {
		gotAll[k] = v
	}
	require.Equal(t, want, gotAll)

	var keys []int
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	require.Equal(t, []int{1, 2, 3}, keys)

	var values []string
	for v := range m.Values() {
		values = append(values, v)
	}
	slices.Sort(values)
	require.Equal(t, []string{"one", "three", "two"}, values)
}

func TestMap_All_StopsOnFalse(t *testing.T) {
	m := NewMap[int, int]()
	for i := 1; i <= 10; i++ {
		m.Put(i, i)
	}

	count := 0
	for range m.All() {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}

func TestMap_Iterator_MatchesAll(t *testing.T) {
	m := NewMap[int, int]()
	for i := 1; i <= 10; i++ {
		m.Put(i, i)
	}

	var fromIterator []int
	it := m.Iterator()
	for it.Valid() {
		fromIterator = append(fromIterator, it.Key())
		it.Next()
	}

	var fromAll []int
	for k := range m.Keys() {
		fromAll = append(fromAll, k)
	}

	slices.Sort(fromIterator)
	slices.Sort(fromAll)
	require.Equal(t, fromAll, fromIterator)
}

func TestMap_NewMapFrom(t *testing.T) {
	m := NewMapFrom([]MapEntry[string, int]{
		{"a", 1},
		{"b", 2},
		{"a", 999}, // duplicate key: first occurrence wins
	})

	require.Equal(t, 2, m.Len())
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v, "the first occurrence of a duplicate key must win")
	v, ok = m.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestMap_NewMapFrom_Empty(t *testing.T) {
	m := NewMapFrom[string, int](nil)
	require.Equal(t, 0, m.Len())
}

func TestMap_Stats(t *testing.T) {
	m := NewMap[int, int]()
	for i := 1; i <= 5; i++ {
		m.Put(i, i)
	}
	stats := m.Stats()
	require.Equal(t, 5, stats.Len)
	require.Greater(t, stats.Buckets, 0)
	require.InDelta(t, float64(stats.Len)/float64(stats.Buckets), stats.LoadFactor, 1e-9)
}
