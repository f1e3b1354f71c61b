//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package tool

import (
	"fmt"
	"sort"
	"sync"
)

// PredefinedSpec describes one built-in tool implementation: the
// secrets and kwargs a flow must supply, the pip requirements its
// implementation needs, and the import it is served from.
type PredefinedSpec struct {
	// Name is the registry key and the callable name in generated code.
	Name string
	// Description explains what the tool does.
	Description string
	// RequiredSecrets are environment variable names that must be set
	// in the tool's secrets map.
	RequiredSecrets []string
	// RequiredKwargs are keyword arguments that must be present.
	RequiredKwargs []string
	// Requirements are the pip packages the implementation pulls in.
	Requirements []string
	// Implementation is the Python source registered for the tool.
	Implementation string
}

// Registry manages predefined tool registration and lookup. Built-in
// tools are registered at init time; callers may add their own before
// flows are validated.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]PredefinedSpec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]PredefinedSpec)}
}

// Register adds a spec. Registering a duplicate name is an error.
func (r *Registry) Register(spec PredefinedSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("predefined tool name cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.specs[spec.Name]; exists {
		return fmt.Errorf("predefined tool %q already registered", spec.Name)
	}
	r.specs[spec.Name] = spec
	return nil
}

// MustRegister registers a spec and panics on failure. Used for
// init-time registration of the built-ins.
func (r *Registry) MustRegister(spec PredefinedSpec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

// Get retrieves a spec by name.
func (r *Registry) Get(name string) (PredefinedSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[name]
	return spec, ok
}

// Has checks whether a spec is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns all registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PredefinedTools is the global registry consulted during validation.
var PredefinedTools = NewRegistry()
