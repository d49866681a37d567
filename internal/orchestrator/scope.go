package orchestrator

import (
	"github.com/ppiankov/guardpost/internal/guard"
	"github.com/ppiankov/guardpost/internal/registry"
)

// forEachInScope expands a scope into the ordered sequence of guards to
// visit and establishes the group-level containment boundary.
//
// A single-guard scope bypasses group logic entirely: there are no
// siblings, so no boundary is installed here. Otherwise the target group
// list and each group's guards are snapshotted at call time, because a
// visit may remove a guard from the live registry mid-iteration.
//
// When a visit reports StatusHalted — a deliberate failure signal that the
// escalation policy let past the guard boundary — the boundary here
// intercepts it: the remaining guards of that group are skipped for this
// call, and the next group starts clean.
func (o *Orchestrator) forEachInScope(scope registry.Scope, visit func(guard.Guard) guard.Outcome) {
	if scope.Guard != nil {
		visit(scope.Guard)
		return
	}

	var groups []*guard.Group
	if scope.Group != "" {
		grp := o.reg.Group(scope.Group)
		if grp == nil {
			o.log.Debugf("scope names unknown group %q, nothing to run", scope.Group)
			return
		}
		groups = []*guard.Group{grp}
	} else {
		groups = o.reg.Groups()
	}

	for _, grp := range groups {
		for _, g := range o.reg.GuardsIn(grp.Name) {
			out := visit(g)
			if out.Status == guard.StatusHalted {
				o.log.Infof("%s halted group %s: %v", g.Title(), grp.Name, out.Err)
				break
			}
		}
	}
}
