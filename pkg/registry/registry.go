// Package registry manages named machine definitions available to servers.
// The HTTP and MCP adapters resolve example names through a Registry, so
// hosts can expose machines beyond the built-in catalog.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/spindle/pkg/catalog"
	"github.com/aretw0/spindle/pkg/machine"
)

// Registry maps names to machine definitions. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]catalog.Entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]catalog.Entry),
	}
}

// NewFromCatalog creates a registry pre-seeded with the example catalog.
func NewFromCatalog() *Registry {
	r := NewRegistry()
	for _, e := range catalog.All() {
		r.entries[e.Name] = e
	}
	return r
}

// Register adds a machine to the registry.
// If a machine with the same name exists, it is overwritten.
func (r *Registry) Register(name, description string, def *machine.Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = catalog.Entry{Name: name, Description: description, Definition: def}
}

// Lookup finds a machine by name.
func (r *Registry) Lookup(name string) (catalog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return catalog.Entry{}, fmt.Errorf("machine not found: %s", name)
	}
	return entry, nil
}

// List returns the registered entries sorted by name.
func (r *Registry) List() []catalog.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]catalog.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
