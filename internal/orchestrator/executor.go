package orchestrator

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/ppiankov/guardpost/internal/guard"
)

// PanicError is the fault produced when guard code panics during a task
// or hook. The stack is captured at the recovery point.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// RunSupervised invokes one task on one guard inside a failure-containment
// boundary.
//
// The three failure channels are kept strictly apart:
//   - the unimplemented signal is passed through as StatusSkipped so
//     fallback chains can advance; never logged, never fatal;
//   - the deliberate failure signal is contained here (StatusFailed) or
//     handed upward for the group boundary (StatusHalted), per the
//     escalation policy computed before the task ran;
//   - anything else is a guard fault: logged with full detail, the guard
//     is permanently removed from the registry, and the fault is returned
//     as the outcome rather than re-raised, so siblings keep running.
func (o *Orchestrator) RunSupervised(g guard.Guard, kind guard.TaskKind, paths []string) guard.Outcome {
	boundary := o.boundaryFor(g)

	result, err := o.invoke(g, kind, paths)
	switch {
	case err == nil:
		return guard.Outcome{Status: guard.StatusOK, Result: result}

	case guard.NotHandled(err):
		return guard.Outcome{Status: guard.StatusSkipped, Err: err}

	case guard.TaskFailed(err):
		if boundary == Escalate {
			return guard.Outcome{Status: guard.StatusHalted, Err: err}
		}
		o.log.Debugf("%s signalled failure on %s, contained", g.Title(), kind)
		return guard.Outcome{Status: guard.StatusFailed, Err: err}

	default:
		o.fireGuard(g, kind, err)
		return guard.Outcome{Status: guard.StatusFaulted, Err: err}
	}
}

// invoke runs the begin hook, the task, and the end hook, converting any
// panic out of guard code into a *PanicError. A hook that reports
// ErrNotHandled simply has no hook; any other hook error is handled at
// the same boundary as the task's own.
func (o *Orchestrator) invoke(g guard.Guard, kind guard.TaskKind, paths []string) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	if herr := g.Hook(kind, guard.HookBegin, paths); herr != nil && !guard.NotHandled(herr) {
		return nil, herr
	}
	result, err = g.Run(kind, paths)
	if err != nil {
		return nil, err
	}
	if herr := g.Hook(kind, guard.HookEnd, result); herr != nil && !guard.NotHandled(herr) {
		return nil, herr
	}
	return result, nil
}

// fireGuard handles a generic fault: one error log, one removal, one
// removal notice. The guard never comes back.
func (o *Orchestrator) fireGuard(g guard.Guard, kind guard.TaskKind, fault error) {
	var pe *PanicError
	if errors.As(fault, &pe) {
		o.log.Errorf("%s failed to run %s: %v\n%s", g.Title(), kind, pe.Value, pe.Stack)
	} else {
		o.log.Errorf("%s failed to run %s: %v", g.Title(), kind, fault)
	}
	o.reg.Remove(g)
	o.log.Infof("%s has just been fired", g.Title())
}
