package status

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[int]()
	a := m.Get("x")
	b := m.Get("x")
	assert.Same(t, a, b)
	assert.Equal(t, 1, m.Count())
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("session.stomps").Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(16), r.Ints.Get("session.stomps").Load())
	assert.Equal(t, 1, r.Ints.Count())
}

func TestRegistrySnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b.count").Store(2)
	r.Ints.Get("a.count").Store(1)
	r.Bools.Get("paused").Store(true)
	r.Strings.Get("scene").Store("Playing")

	assert.Equal(t, []string{"a.count=1", "b.count=2", "paused=true", "scene=Playing"}, r.Snapshot())
	assert.Equal(t, 4, r.TotalCount())
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	long := "0123456789012345678901234567890123456789"
	s.Store(long)
	assert.Equal(t, long[:MaxStringLen], s.Load())
}

func TestAtomicStringKeepsWholeRunes(t *testing.T) {
	var s AtomicString
	name := strings.Repeat("ñ", MaxStringLen+4)
	s.Store(name)
	got := s.Load()
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, MaxStringLen, utf8.RuneCountInString(got))

	s.Store("Xochimilco")
	assert.Equal(t, "Xochimilco", s.Load())
}
