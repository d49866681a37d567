package guard

import "errors"

// ErrNotHandled is the distinguished "unimplemented" signal. A guard whose
// capability for a task is decided at call time returns it to mean "not
// mine"; the orchestrator advances its fallback chain and nothing is
// logged or removed. It is never a failure.
var ErrNotHandled = errors.New("guard: task not handled")

// ErrTaskFailed is the deliberate failure signal: a guard-authored abort,
// distinct from a fault the guard didn't expect. It is contained at the
// guard boundary or escalated to the group boundary depending on the
// group's halt_on_fail option, and never removes the guard.
//
// Guards wrap it to attach detail:
//
//	return nil, fmt.Errorf("rubocop found offenses: %w", guard.ErrTaskFailed)
var ErrTaskFailed = errors.New("guard: task failed")

// NotHandled reports whether err carries the unimplemented signal.
func NotHandled(err error) bool {
	return errors.Is(err, ErrNotHandled)
}

// TaskFailed reports whether err carries the deliberate failure signal.
func TaskFailed(err error) bool {
	return errors.Is(err, ErrTaskFailed)
}
