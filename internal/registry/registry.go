// Package registry holds the live set of guards and groups the
// orchestrator iterates over. The registry is an explicit instance passed
// into the orchestrator at construction, not process state.
//
// It is not safe for concurrent use: orchestration is single-goroutine by
// contract, and the single writer (guard removal) runs synchronously from
// within the executing call.
package registry

import (
	"fmt"

	"github.com/ppiankov/guardpost/internal/guard"
)

// Scope narrows an orchestration call to one guard or one group.
// The zero value means "all groups".
type Scope struct {
	Guard guard.Guard
	Group string
}

// All reports whether the scope covers every registered group.
func (s Scope) All() bool { return s.Guard == nil && s.Group == "" }

// Registry owns guard and group membership. Groups and the guards within
// them keep registration order; iteration hands out snapshots so removal
// during a visit cannot corrupt the traversal.
type Registry struct {
	groups []*guard.Group
	byName map[string]*guard.Group
	order  []guard.Guard
	// removed remembers every guard ever removed; removal is permanent
	// for the life of the process.
	removed map[guard.Guard]bool

	scope Scope
}

// New creates an empty registry with the default group pre-registered.
func New() *Registry {
	r := &Registry{
		byName:  make(map[string]*guard.Group),
		removed: make(map[guard.Guard]bool),
	}
	r.AddGroup(&guard.Group{Name: guard.DefaultGroup})
	return r
}

// AddGroup registers a group. Re-adding a name replaces its options but
// keeps its position.
func (r *Registry) AddGroup(g *guard.Group) {
	if existing, ok := r.byName[g.Name]; ok {
		*existing = *g
		return
	}
	r.groups = append(r.groups, g)
	r.byName[g.Name] = g
}

// Group resolves a group by name, or nil if unknown.
func (r *Registry) Group(name string) *guard.Group {
	return r.byName[name]
}

// Groups returns a snapshot of all groups in registration order.
func (r *Registry) Groups() []*guard.Group {
	out := make([]*guard.Group, len(r.groups))
	copy(out, r.groups)
	return out
}

// Add registers a guard under the group it names, creating the group with
// default options if needed. A guard that was previously removed cannot
// come back.
func (r *Registry) Add(g guard.Guard) error {
	if r.removed[g] {
		return fmt.Errorf("registry: guard %s was removed and cannot be re-added", g.Title())
	}
	name := g.Group()
	if name == "" {
		name = guard.DefaultGroup
	}
	if r.byName[name] == nil {
		r.AddGroup(&guard.Group{Name: name})
	}
	r.order = append(r.order, g)
	return nil
}

// Guards returns a snapshot of every registered guard in registration order.
func (r *Registry) Guards() []guard.Guard {
	out := make([]guard.Guard, len(r.order))
	copy(out, r.order)
	return out
}

// GuardsIn returns a snapshot of the guards belonging to the named group,
// in registration order.
func (r *Registry) GuardsIn(group string) []guard.Guard {
	var out []guard.Guard
	for _, g := range r.order {
		name := g.Group()
		if name == "" {
			name = guard.DefaultGroup
		}
		if name == group {
			out = append(out, g)
		}
	}
	return out
}

// Remove drops a guard permanently. Idempotent; a second call for the
// same guard is a no-op.
func (r *Registry) Remove(g guard.Guard) {
	if r.removed[g] {
		return
	}
	r.removed[g] = true
	for i, cur := range r.order {
		if cur == g {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Scope returns the ambient scope orchestration entry points run under.
func (r *Registry) Scope() Scope { return r.scope }

// SetScope replaces the ambient scope.
func (r *Registry) SetScope(s Scope) { r.scope = s }

// WithPreservedState runs fn with the ambient scope snapshotted and
// restored afterwards, whatever fn did to it. The registry treats fn as
// opaque; guard and group membership changes made by fn stick.
func (r *Registry) WithPreservedState(fn func() error) error {
	saved := r.scope
	defer func() { r.scope = saved }()
	return fn()
}
