// Package orchestrator decides which guards run, which task each guard is
// asked to perform, and how one guard's failure is contained or propagated
// to its peers. It owns no guards and watches no files: the registry, the
// path matcher, and the logger are collaborators handed in at construction.
package orchestrator

import (
	"github.com/ppiankov/guardpost/internal/guard"
	"github.com/ppiankov/guardpost/internal/registry"
	"github.com/ppiankov/guardpost/internal/watch"
)

// Matcher filters a batch of changed paths down to the subset a guard's
// watch patterns care about.
type Matcher interface {
	MatchPaths(g guard.Guard, paths []string) []string
}

// Logger is the narrow sink the orchestrator reports through.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Errorf(format string, args ...any)
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

// Orchestrator runs tasks on guards under supervision. Execution is
// strictly sequential: guards within a group run one at a time in
// registry order, and groups run one at a time.
type Orchestrator struct {
	reg     *registry.Registry
	matcher Matcher
	log     Logger
}

// New creates an orchestrator over an explicit registry.
func New(reg *registry.Registry, matcher Matcher, log Logger) *Orchestrator {
	return &Orchestrator{reg: reg, matcher: matcher, log: log}
}

// RunTask runs one task on every registered guard that declares it,
// group by group in registry order.
func (o *Orchestrator) RunTask(kind guard.TaskKind) {
	o.forEachInScope(registry.Scope{}, func(g guard.Guard) guard.Outcome {
		if !g.Capabilities().Has(kind) {
			return guard.Outcome{Status: guard.StatusSkipped}
		}
		return o.RunSupervised(g, kind, nil)
	})
}

// RunTaskIn runs one task within an explicit scope (a single guard or a
// single group) under the registry's preserved-state wrapper, so whatever
// the call does to the ambient scope is undone afterwards.
func (o *Orchestrator) RunTaskIn(kind guard.TaskKind, scope registry.Scope) error {
	return o.reg.WithPreservedState(func() error {
		o.reg.SetScope(scope)
		o.forEachInScope(scope, func(g guard.Guard) guard.Outcome {
			if !g.Capabilities().Has(kind) {
				return guard.Outcome{Status: guard.StatusSkipped}
			}
			return o.RunSupervised(g, kind, nil)
		})
		return nil
	})
}

// RouteChanges maps a batch of modified/added/removed paths onto per-guard
// task invocations under the preserved-state wrapper. See router.go for
// the category fallback chains.
func (o *Orchestrator) RouteChanges(set watch.ChangeSet) error {
	return o.reg.WithPreservedState(func() error {
		o.routeChanges(set, o.reg.Scope())
		return nil
	})
}
