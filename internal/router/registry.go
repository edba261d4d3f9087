// Package router provides the module router registry and startup discovery.
//
// Generated modules never register themselves with ambient global state:
// the generator maintains modules/manifest.go, the server builds a Registry
// from the manifest at boot, and Discover/Mount turn the registry into
// mounted HTTP handlers. One module's failure never blocks the others.
package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
)

// Deps carries the shared runtime dependencies handed to every module
// router factory.
type Deps struct {
	// DB is the application database handle.
	DB *mongo.Database
	// Logger is the structured application logger.
	Logger *slog.Logger
}

// Factory constructs a module's HTTP handler from the shared dependencies.
type Factory func(Deps) (http.Handler, error)

// Entry describes one module router as listed in the generated manifest.
type Entry struct {
	// Name is the module's feature name, e.g. "order_items".
	Name string
	// Prefix is the route prefix the handler serves, e.g. "/v1/order_items".
	Prefix string
	// Mount builds the module's handler.
	Mount Factory
}

// Registry maintains known module router entries. It is an explicit value
// constructed during startup and passed into the serving component.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]Entry{}}
}

// NewRegistryFromManifest builds a registry from manifest entries, typically
// the slice returned by modules.Manifest().
func NewRegistryFromManifest(entries []Entry) (*Registry, error) {
	reg := NewRegistry()
	for _, entry := range entries {
		if err := reg.Register(entry); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Register installs a module entry. Returns an error for a missing name or
// factory, or a duplicate name.
func (r *Registry) Register(entry Entry) error {
	if entry.Name == "" {
		return fmt.Errorf("router: module name is required")
	}
	if entry.Mount == nil {
		return fmt.Errorf("router: mount factory is required for %s", entry.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[entry.Name]; exists {
		return fmt.Errorf("router: module %s already registered", entry.Name)
	}
	r.entries[entry.Name] = entry
	return nil
}

// Entries returns the registered entries sorted by module name, so
// registration order is deterministic and route listings are reproducible.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Names returns the sorted module names.
func (r *Registry) Names() []string {
	entries := r.Entries()
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names
}
