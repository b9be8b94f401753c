// Package blank provides named blank templates: the solids legends are
// applied to. Templates are parametric builders resolved by name, so a
// batch run names its template once and every row starts from the same
// geometry.
package blank

import (
	"fmt"
	"sort"

	"github.com/ninicksicard/keylegend/pkg/geom"
	"github.com/ninicksicard/keylegend/pkg/kernel"
)

// Builder constructs a template solid. size is interpreted per template:
// boxes use X×Y×Z extents, cylinders use Z as height and X as diameter.
type Builder func(k kernel.Kernel, size geom.Vec3) kernel.Solid

// Registry maps template names to builders. Registration has
// replace-or-create semantics.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry returns a registry with the built-in templates.
func NewRegistry() *Registry {
	r := &Registry{builders: map[string]Builder{}}
	r.Register("box", func(k kernel.Kernel, size geom.Vec3) kernel.Solid {
		return k.Box(size.X, size.Y, size.Z)
	})
	r.Register("cylinder", func(k kernel.Kernel, size geom.Vec3) kernel.Solid {
		return k.Cylinder(size.Z, size.X/2)
	})
	return r
}

// Register adds or replaces a template builder.
func (r *Registry) Register(name string, b Builder) {
	r.builders[name] = b
}

// Resolve returns the builder for name.
func (r *Registry) Resolve(name string) (Builder, error) {
	b, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("blank: template not found: %s", name)
	}
	return b, nil
}

// Names lists the registered template names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
