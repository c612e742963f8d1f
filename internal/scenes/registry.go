package scenes

import (
	"fmt"
	"sort"

	"evalviz/internal/render"
)

// Registry maps scene names to their builders.
type Registry struct {
	builders map[string]func() render.Builder
}

func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]func() render.Builder)}

	r.builders["SquareOfPred"] = func() render.Builder { return SquareOfPred{} }
	r.builders["Fact"] = func() render.Builder { return Fact{} }

	return r
}

// Get returns a fresh builder for the named scene.
func (r *Registry) Get(name string) (render.Builder, error) {
	fn, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %s", name)
	}
	return fn(), nil
}

// List returns the registered scene names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
