package structpath

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry maps type names to reflect types; it is caller owned, the rest of the
// package keeps no shared state
type Registry struct {
	mux   sync.RWMutex
	types map[string]reflect.Type
}

// NewRegistry creates a registry
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]reflect.Type)}
}

// Register registers supplied type under its qualified name
func (r *Registry) Register(t reflect.Type) {
	r.RegisterNamed(t.String(), t)
}

// RegisterNamed registers supplied type under a custom name
func (r *Registry) RegisterNamed(name string, t reflect.Type) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.types[name] = t
}

// Lookup resolves a type by name, failing with ErrTypeNotFound for an unknown name
func (r *Registry) Lookup(name string) (reflect.Type, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	t, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("failed to lookup type %v, %w", name, ErrTypeNotFound)
	}
	return t, nil
}
