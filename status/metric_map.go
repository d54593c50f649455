package status

import (
	"slices"
	"strings"
	"sync"
)

// MetricMap is a thread-safe registry for metrics of type T
// Keys are kept sorted on insert so iteration never sorts
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	keys  []string
}

// NewMetricMap creates an initialized MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{
		items: make(map[string]*T),
	}
}

// Get returns the metric pointer for key, creating it on first use
// Callers cache the pointer and update it without the lock
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	idx, _ := slices.BinarySearch(m.keys, key)
	m.keys = slices.Insert(m.keys, idx, key)
	return ptr
}

// Range iterates over all metrics in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.RangePrefix("", fn)
}

// RangePrefix iterates, in key order, over metrics whose key starts with prefix
func (m *MetricMap[T]) RangePrefix(prefix string, fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start, _ := slices.BinarySearch(m.keys, prefix)
	for _, k := range m.keys[start:] {
		if !strings.HasPrefix(k, prefix) {
			break
		}
		fn(k, m.items[k])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
