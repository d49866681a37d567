package guard

// DefaultGroup is the group guards land in when none is configured.
const DefaultGroup = "default"

// Group is a named collection of guards sharing a halt-on-fail policy.
// Membership is owned by the registry; a Group value only carries the name
// and options.
type Group struct {
	Name string
	// HaltOnFail: a deliberate failure signal from any guard in this group
	// escalates past the guard boundary and aborts the group's remaining
	// guards for that call.
	HaltOnFail bool
}
