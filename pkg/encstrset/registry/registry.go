package registry

import (
	"iter"
	"maps"
	"slices"
	"strconv"
	"sync"
)

// Handle identifies one entry of a Registry.
type Handle uint64

// String returns the decimal form of the handle.
func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// Registry is a table of values indexed by issued handles. It is safe for
// concurrent use on its own. A caller that needs several calls to act as one
// step still has to hold its own lock around them.
type Registry[V any] struct {
	mu      sync.RWMutex
	entries map[Handle]V
	next    Handle
}

// New creates a new empty registry. The first handle it issues is 0.
func New[V any]() *Registry[V] {
	return &Registry[V]{
		entries: make(map[Handle]V),
	}
}

// Create stores v under the next handle and returns that handle.
// The counter advances on every call; wrap-around is not checked.
func (r *Registry[V]) Create(v V) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.next
	r.entries[h] = v
	r.next++
	return h
}

// Get returns the value for a handle and whether it exists.
func (r *Registry[V]) Get(h Handle) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[h]
	return v, ok
}

// Has returns true if the handle is live.
func (r *Registry[V]) Has(h Handle) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[h]
	return ok
}

// Delete removes a handle from the registry.
// It reports whether the handle was live; unknown handles are a no-op.
func (r *Registry[V]) Delete(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[h]; !ok {
		return false
	}
	delete(r.entries, h)
	return true
}

// Handles returns all live handles in ascending order.
func (r *Registry[V]) Handles() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedHandles()
}

// Len returns the number of live handles.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Next returns the handle the next Create call will issue.
func (r *Registry[V]) Next() Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.next
}

// All yields the live entries in ascending handle order. Each iteration
// copies the table first, so the loop body may Create or Delete freely;
// those changes show up in the next iteration, not the current one.
func (r *Registry[V]) All() iter.Seq2[Handle, V] {
	return func(yield func(Handle, V) bool) {
		r.mu.RLock()
		handles := r.sortedHandles()
		values := make([]V, len(handles))
		for i, h := range handles {
			values[i] = r.entries[h]
		}
		r.mu.RUnlock()

		for i, h := range handles {
			if !yield(h, values[i]) {
				return
			}
		}
	}
}

// sortedHandles requires r.mu to be held.
func (r *Registry[V]) sortedHandles() []Handle {
	handles := slices.Collect(maps.Keys(r.entries))
	slices.Sort(handles)
	return handles
}
