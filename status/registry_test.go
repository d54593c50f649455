package status

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

// TestMetricMapCachesPointer verifies repeated Get returns the same metric
func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("game.ticks")
	b := r.Ints.Get("game.ticks")
	if a != b {
		t.Fatal("Expected cached pointer for same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

// TestMetricMapConcurrentGet verifies concurrent registration yields one metric
func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("food.spawned").Add(1)
		}()
	}
	wg.Wait()

	if r.Ints.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.Ints.Count())
	}
	if got := r.Ints.Get("food.spawned").Load(); got != 50 {
		t.Errorf("Expected 50 increments, got %d", got)
	}
}

// TestSummaryOrdering verifies sorted, typed output
func TestSummaryOrdering(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b.count").Store(2)
	r.Ints.Get("a.count").Store(1)
	r.Floats.Get("wander").Set(1.2)
	r.Strings.Get("speed").Store("medium")

	want := "a.count=1 b.count=2 wander=1.20 speed=medium"
	if got := r.Summary(); got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
	if r.TotalCount() != 4 {
		t.Errorf("TotalCount = %d, want 4", r.TotalCount())
	}
}

// TestAtomicStringTruncates verifies the length cap
func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should be empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+10))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}

	s.Store(strings.Repeat("x", MaxStringLen-1) + "é")
	if got := s.Load(); len(got) != MaxStringLen-1 || !utf8.ValidString(got) {
		t.Errorf("Multibyte cut = %q (len %d)", got, len(got))
	}
}

// TestAtomicFloatZeroAndSet verifies the zero value and round trip
func TestAtomicFloatZeroAndSet(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Zero value = %v", f.Get())
	}
	f.Set(-1.25)
	if f.Get() != -1.25 {
		t.Errorf("Get = %v, want -1.25", f.Get())
	}
}

// TestRangePrefix verifies prefix iteration stays sorted and bounded
func TestRangePrefix(t *testing.T) {
	m := NewMetricMap[int]()
	for _, k := range []string{"game.ticks", "food.spawned", "food.eaten", "score.best", "foo"} {
		*m.Get(k) = len(k)
	}

	var got []string
	m.RangePrefix("food.", func(key string, _ *int) {
		got = append(got, key)
	})
	if strings.Join(got, ",") != "food.eaten,food.spawned" {
		t.Errorf("RangePrefix(food.) = %v", got)
	}

	var all []string
	m.Range(func(key string, _ *int) {
		all = append(all, key)
	})
	if strings.Join(all, ",") != "foo,food.eaten,food.spawned,game.ticks,score.best" {
		t.Errorf("Range order = %v", all)
	}
}
