package router

import (
	"fmt"
	"net/http"
	"strings"
)

// DiscoveredRouter records the outcome of building one module's router at
// startup. Failures carry the reason and are skipped during mounting.
type DiscoveredRouter struct {
	Name    string
	Prefix  string
	Handler http.Handler
	Err     error
}

// Discover builds every registered module router, in sorted name order.
// A factory that errors, panics, or returns a nil handler is recorded as a
// failed discovery and logged exactly once; the remaining modules are still
// discovered. Discover runs once at startup, before the server accepts
// traffic.
func Discover(reg *Registry, deps Deps) []DiscoveredRouter {
	entries := reg.Entries()
	discovered := make([]DiscoveredRouter, 0, len(entries))

	for _, entry := range entries {
		handler, err := buildRouter(entry, deps)
		record := DiscoveredRouter{Name: entry.Name, Prefix: entry.Prefix, Handler: handler, Err: err}
		if err != nil {
			if deps.Logger != nil {
				deps.Logger.Error("module router skipped",
					"module", entry.Name,
					"error", err)
			}
			record.Handler = nil
		} else if deps.Logger != nil {
			deps.Logger.Info("module router discovered",
				"module", entry.Name,
				"prefix", entry.Prefix)
		}
		discovered = append(discovered, record)
	}

	return discovered
}

// buildRouter invokes a module factory, converting panics from faulty
// module code into errors so one module cannot abort startup for the rest.
func buildRouter(entry Entry, deps Deps) (handler http.Handler, err error) {
	defer func() {
		if r := recover(); r != nil {
			handler = nil
			err = fmt.Errorf("module %s panicked: %v", entry.Name, r)
		}
	}()

	handler, err = entry.Mount(deps)
	if err != nil {
		return nil, fmt.Errorf("module %s failed to build: %w", entry.Name, err)
	}
	if handler == nil {
		return nil, fmt.Errorf("module %s returned no handler", entry.Name)
	}
	return handler, nil
}

// Mount registers every successfully discovered router on the mux and
// returns the number of mounted modules. Module handlers match on their
// full prefix, so both the bare prefix and its subtree are routed to them.
func Mount(mux *http.ServeMux, discovered []DiscoveredRouter) int {
	mounted := 0
	for _, d := range discovered {
		if d.Err != nil || d.Handler == nil {
			continue
		}
		prefix := strings.TrimSuffix(d.Prefix, "/")
		mux.Handle(prefix, d.Handler)
		mux.Handle(prefix+"/", d.Handler)
		mounted++
	}
	return mounted
}
