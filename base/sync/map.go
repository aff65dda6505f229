// Package sync provides synchronized data structures for read-mostly registries.
package sync

import "sync"

// Map is a generic synchronized map. It is a wrapper around Go's standard
// sync.Map, with all the same caveats. Lookups are expected to vastly
// outnumber stores.
type Map[K comparable, V any] struct {
	m sync.Map
}

// Store a key,value pair. A value already stored for the key is replaced.
func (sm *Map[K, V]) Store(k K, v V) {
	sm.m.Store(k, v)
}

// Load returns the value stored for a key and whether the key was present.
func (sm *Map[K, V]) Load(k K) (V, bool) {
	vAny, ok := sm.m.Load(k)
	if !ok {
		var zero V
		return zero, false
	}
	return vAny.(V), true
}
