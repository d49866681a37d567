package orchestrator

import "github.com/ppiankov/guardpost/internal/guard"

// Boundary says where a deliberate failure signal raised during a guard's
// task stops.
type Boundary int

const (
	// Contain: the signal dies at the guard boundary; the group tolerates
	// individual guard failures and iteration continues.
	Contain Boundary = iota
	// Escalate: the signal passes the guard boundary untouched and aborts
	// the group's remaining guards at the group boundary.
	Escalate
)

func (b Boundary) String() string {
	if b == Escalate {
		return "escalate"
	}
	return "contain"
}

// boundaryFor computes the containment boundary for a guard. It consults
// live registry state on every call: the result is a pure function of the
// guard's group name and that group's halt_on_fail option right now.
//
// A guard with no named group to consult (unset, or the default group, or
// a name the registry does not know) always contains: there is no
// halt_on_fail option anywhere that could justify halting its siblings.
func (o *Orchestrator) boundaryFor(g guard.Guard) Boundary {
	name := g.Group()
	if name == "" || name == guard.DefaultGroup {
		return Contain
	}
	grp := o.reg.Group(name)
	if grp == nil || !grp.HaltOnFail {
		return Contain
	}
	return Escalate
}
