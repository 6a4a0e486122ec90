package symbols

import (
	"fmt"
	"sync"
)

// Registry interns names to numeric IDs.
//
// IDs are assigned sequentially from 0 in first-interning order. The
// table is append-only: a name's ID never changes once assigned and an
// ID is never reused for a different name, so comparing IDs replaces
// comparing strings for the life of the registry.
//
// The table is thread-safe. Reads run concurrently; only a first-time
// intern takes the write lock.
type Registry struct {
	mu    sync.RWMutex
	names []string       // ID -> name
	ids   map[string]int // name -> ID
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ids:   make(map[string]int),
		names: make([]string, 0, 64), // Pre-allocate for common case
	}
}

// Intern returns the ID for a name, assigning the next sequential ID if
// the name has not been seen before. It never fails.
func (r *Registry) Intern(name string) int {
	// Fast path: read-only lookup
	r.mu.RLock()
	if id, ok := r.ids[name]; ok {
		r.mu.RUnlock()
		return id
	}
	r.mu.RUnlock()

	// Slow path: need to add a new name
	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring the write lock; another goroutine
	// may have interned the same name in between.
	if id, ok := r.ids[name]; ok {
		return id
	}

	id := len(r.names)
	r.ids[name] = id
	r.names = append(r.names, name)
	return id
}

// Name returns the name assigned to id.
//
// It panics if id was never issued by this registry. IDs obtained from
// Intern can never trigger this; a raw ID carried over from another
// process can, which is exactly the misuse the panic is there to catch.
func (r *Registry) Name(id int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 0 || id >= len(r.names) {
		panic(fmt.Sprintf("symbols: ID %d was never issued by this registry", id))
	}
	return r.names[id]
}

// Lookup returns the ID for a name if it has already been interned.
// Use this when you don't want to create new entries.
func (r *Registry) Lookup(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.ids[name]
	return id, ok
}

// Len returns the number of interned names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// All returns all interned names in ID order.
// This allocates a new slice.
func (r *Registry) All() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// InternAll interns multiple names and returns their IDs.
func (r *Registry) InternAll(names ...string) []int {
	ids := make([]int, len(names))
	for i, name := range names {
		ids[i] = r.Intern(name)
	}
	return ids
}
