package guard

// TaskKind is the closed vocabulary of operations a guard may implement.
// Dispatch is by kind, not by method-name string, so the set of tasks the
// orchestrator can ask for is fixed at compile time.
type TaskKind int

const (
	// TaskRunAll is the primary task: react to everything the guard watches.
	TaskRunAll TaskKind = iota
	TaskRunOnModifications
	TaskRunOnAdditions
	TaskRunOnRemovals
	// TaskRunOnChanges is the generic fallback for modifications and additions.
	TaskRunOnChanges
	// TaskRunOnDeletions is the generic fallback for removals.
	TaskRunOnDeletions
)

var taskNames = map[TaskKind]string{
	TaskRunAll:             "run_all",
	TaskRunOnModifications: "run_on_modifications",
	TaskRunOnAdditions:     "run_on_additions",
	TaskRunOnRemovals:      "run_on_removals",
	TaskRunOnChanges:       "run_on_changes",
	TaskRunOnDeletions:     "run_on_deletions",
}

func (k TaskKind) String() string {
	if name, ok := taskNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseTaskKind maps a task name back to its kind.
// Returns TaskRunAll, false for unknown names.
func ParseTaskKind(name string) (TaskKind, bool) {
	for k, n := range taskNames {
		if n == name {
			return k, true
		}
	}
	return TaskRunAll, false
}

// Capabilities is the declared set of tasks a guard implements.
// The probe is a lookup, not a trial call.
type Capabilities map[TaskKind]struct{}

// NewCapabilities builds a set from the given kinds.
func NewCapabilities(kinds ...TaskKind) Capabilities {
	c := make(Capabilities, len(kinds))
	for _, k := range kinds {
		c[k] = struct{}{}
	}
	return c
}

// Has reports whether the guard declares the given task.
func (c Capabilities) Has(k TaskKind) bool {
	_, ok := c[k]
	return ok
}
