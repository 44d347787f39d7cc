package qc

import (
	"sort"
	"sync"
)

// globalRegistry is the single registry for all QC checks.
var globalRegistry = &Registry{
	checks: make(map[string]CheckDef),
}

// Registry stores registered checks for discovery and evaluation.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]CheckDef // keyed by ID
}

// Register adds a check to the global registry.
// Call this from init() functions in check packages.
func Register(def CheckDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.checks[def.ID] = def
}

// All returns every registered check in ID order. The fixed ordering is
// what gives reports their stable per-check layout.
func All() []CheckDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	defs := make([]CheckDef, 0, len(globalRegistry.checks))
	for _, def := range globalRegistry.checks {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// IDs returns the registered check IDs in order.
func IDs() []string {
	defs := All()
	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	return ids
}

// Get returns a check by its ID.
func Get(id string) (CheckDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.checks[id]
	return def, ok
}

// Count returns the number of registered checks.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.checks)
}
