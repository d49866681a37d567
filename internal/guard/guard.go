// Package guard defines the vocabulary shared by the registry and the
// orchestrator: the Guard unit itself, the closed task enumeration, the
// two sentinel signals a guard may raise, and the supervised outcome.
package guard

// HookPhase brackets a task invocation.
type HookPhase string

const (
	// HookBegin fires before the task, carrying the task's paths.
	HookBegin HookPhase = "begin"
	// HookEnd fires after a successful task, carrying the task's result.
	HookEnd HookPhase = "end"
)

// Guard is a plugin-like unit that reacts to orchestration requests.
// Implementations are supplied by the surrounding system; the orchestrator
// only ever drives them through this surface.
//
// Run and Hook report absence of a capability with ErrNotHandled and a
// deliberate abort with ErrTaskFailed; anything else they return (or panic
// with) is treated as a fault of the guard.
type Guard interface {
	// Name is the guard's type, e.g. "shell".
	Name() string
	// Title identifies this instance in logs.
	Title() string
	// Group is the owning group's name; empty means the default group.
	Group() string
	// Patterns are the watch patterns this guard is interested in.
	Patterns() []string
	// Capabilities declares which tasks Run implements.
	Capabilities() Capabilities
	// Run performs one task. Paths is empty for TaskRunAll.
	Run(kind TaskKind, paths []string) (any, error)
	// Hook invokes the guard's begin/end callback for a task.
	// Guards without hooks return ErrNotHandled.
	Hook(kind TaskKind, phase HookPhase, payload any) error
}
