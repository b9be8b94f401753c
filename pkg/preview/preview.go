// Package preview holds preview solids in explicit, owned slots with
// replace-or-create semantics: setting a preview for an owner replaces
// whatever that owner had before. This models the single reusable
// preview object of interactive CAD sessions without hidden global
// state.
package preview

import (
	"sync"

	"github.com/ninicksicard/keylegend/pkg/kernel"
)

// Registry maps owners to their current preview solid. Safe for
// concurrent use.
type Registry struct {
	mu    sync.Mutex
	slots map[string]kernel.Solid
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{slots: map[string]kernel.Solid{}}
}

// Set replaces (or creates) the preview for owner.
func (r *Registry) Set(owner string, s kernel.Solid) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[owner] = s
}

// Get returns owner's current preview, if any.
func (r *Registry) Get(owner string) (kernel.Solid, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[owner]
	return s, ok
}

// Remove drops owner's preview. Removing a missing slot is a no-op.
func (r *Registry) Remove(owner string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, owner)
}
