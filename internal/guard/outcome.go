package guard

// Status classifies how a supervised task invocation ended.
type Status int

const (
	// StatusOK: the task (and its hooks) completed.
	StatusOK Status = iota
	// StatusSkipped: the guard does not implement the task; the caller's
	// fallback chain advances. Not a failure.
	StatusSkipped
	// StatusFailed: the guard raised the deliberate failure signal and the
	// guard-level boundary contained it. Siblings are unaffected.
	StatusFailed
	// StatusHalted: the guard raised the deliberate failure signal and the
	// policy let it escalate; the enclosing group boundary must intercept
	// it and skip the group's remaining guards.
	StatusHalted
	// StatusFaulted: the guard raised a generic fault. It has been logged
	// and the guard removed; the fault itself travels in Err.
	StatusFaulted
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	case StatusHalted:
		return "halted"
	case StatusFaulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// Outcome is the result of one supervised task invocation.
type Outcome struct {
	Status Status
	// Result is the task's return value on StatusOK.
	Result any
	// Err carries the signal or fault for every status but StatusOK.
	Err error
}

// OK reports whether the task completed.
func (o Outcome) OK() bool { return o.Status == StatusOK }
