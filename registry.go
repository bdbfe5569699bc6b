package textconv

import "sort"

// Registry manages named converters. Callers register converters under a
// name and look them up later, typically to resolve a converter chosen
// by user input.
type Registry struct {
	converters map[string]Converter
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{converters: make(map[string]Converter)}
}

// Register adds a converter under the given name. If a converter is
// already registered under the name, it is replaced.
func (r *Registry) Register(name string, c Converter) {
	r.converters[name] = c
}

// Get returns the converter registered under name.
// Returns ENOTFOUND if no converter is registered under the name.
func (r *Registry) Get(name string) (Converter, error) {
	c, ok := r.converters[name]
	if !ok {
		return nil, Errorf(ENOTFOUND, "converter %q not found", name)
	}
	return c, nil
}

// List returns the names of all registered converters in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.converters))
	for name := range r.converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
