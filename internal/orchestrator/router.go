package orchestrator

import (
	"github.com/ppiankov/guardpost/internal/guard"
	"github.com/ppiankov/guardpost/internal/registry"
	"github.com/ppiankov/guardpost/internal/watch"
)

// Candidate task chains per change category, fine-grained first, generic
// fallback last. A guard that implements none of a chain's tasks is left
// alone silently.
var (
	modificationTasks = []guard.TaskKind{guard.TaskRunOnModifications, guard.TaskRunOnChanges, guard.TaskRunAll}
	additionTasks     = []guard.TaskKind{guard.TaskRunOnAdditions, guard.TaskRunOnChanges, guard.TaskRunAll}
	removalTasks      = []guard.TaskKind{guard.TaskRunOnRemovals, guard.TaskRunOnDeletions}
)

// routeChanges visits the scope once per non-empty category. An empty
// category costs nothing: the matcher is never consulted for it.
func (o *Orchestrator) routeChanges(set watch.ChangeSet, scope registry.Scope) {
	categories := []struct {
		paths []string
		chain []guard.TaskKind
	}{
		{set.Modified, modificationTasks},
		{set.Added, additionTasks},
		{set.Removed, removalTasks},
	}

	for _, cat := range categories {
		if len(cat.paths) == 0 {
			continue
		}
		o.forEachInScope(scope, func(g guard.Guard) guard.Outcome {
			matched := o.matcher.MatchPaths(g, cat.paths)
			if len(matched) == 0 {
				return guard.Outcome{Status: guard.StatusSkipped}
			}
			return o.runFirstSupported(g, cat.chain, matched)
		})
	}
}

// runFirstSupported walks a candidate chain until one task sticks. The
// declared capability set settles most of it; a guard may still return
// the unimplemented signal at call time, which advances the chain the
// same way. Any other outcome — success, contained or escalating failure,
// fault — is final for this guard and category.
func (o *Orchestrator) runFirstSupported(g guard.Guard, chain []guard.TaskKind, paths []string) guard.Outcome {
	for _, kind := range chain {
		if !g.Capabilities().Has(kind) {
			continue
		}
		out := o.RunSupervised(g, kind, paths)
		if out.Status == guard.StatusSkipped {
			continue
		}
		return out
	}
	return guard.Outcome{Status: guard.StatusSkipped}
}
