package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCaches(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	a := m.Get("anim")
	b := m.Get("anim")
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	if !m.Has("anim") || m.Has("other") || m.Count() != 1 {
		t.Errorf("Has/Count mismatch: count %d", m.Count())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("loop.ticks").Add(1)
		}()
	}
	wg.Wait()

	if got := r.Ints.Get("loop.ticks").Load(); got != 16 {
		t.Errorf("ticks = %d, want 16", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should be empty")
	}
	s.Store("a-very-long-animation-name")
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Load() = %q", got)
	}
}

func TestRegistryFormat(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("stat.hunger").Store(42)
	r.Bools.Get("sleep.active").Store(true)
	r.Strings.Get("anim.current").Store("eat")

	want := "sleep.active=true stat.hunger=42 anim.current=eat"
	if got := r.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if r.TotalCount() != 3 {
		t.Errorf("TotalCount() = %d", r.TotalCount())
	}
	if snap := r.Snapshot(); snap["stat.hunger"] != "42" {
		t.Errorf("Snapshot() = %v", snap)
	}
}
