package guide

import (
	"encoding/json"
	"sort"
	"sync"
)

// Module supplies the per-game instruction kinds: how to decode them from
// JSON and how to render each one as a single Markdown action line.
type Module interface {
	// Name returns the _schema discriminator this module handles.
	Name() string

	// Decode turns one raw instruction of the given kind into its typed
	// form, validating the kind-specific payload.
	Decode(kind string, data json.RawMessage) (Instruction, error)

	// Format renders one typed instruction as one line of prose. An
	// instruction type the module does not know is a programming-contract
	// violation; Decode is responsible for rejecting unknown kinds.
	Format(ins Instruction) (string, error)
}

// Registry manages game modules keyed by schema name.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// DefaultRegistry is the global module registry. Game modules register
// themselves here from init, so importing a game package for side effects
// makes its schema available to Parse.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty module registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register adds a module to the registry, replacing any module with the
// same name.
func (r *Registry) Register(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[m.Name()] = m
}

// Get returns the module for the given schema name.
func (r *Registry) Get(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[name]
	return m, ok
}

// Names returns the registered schema names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterModule adds a module to the default registry.
func RegisterModule(m Module) {
	DefaultRegistry.Register(m)
}
