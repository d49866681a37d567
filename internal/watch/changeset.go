// Package watch is the delivery side of guardpost: glob matching of
// changed paths against guard patterns, and filesystem change sources
// (fsnotify with a polling fallback) that batch raw events into
// ChangeSets for the orchestrator.
package watch

// ChangeSet is one batch of filesystem changes, split into the three
// categories the orchestrator routes on. Paths are ordered within a
// category and never repeat across categories.
type ChangeSet struct {
	Modified []string
	Added    []string
	Removed  []string
}

// Empty reports whether the batch carries no paths at all.
func (c ChangeSet) Empty() bool {
	return len(c.Modified) == 0 && len(c.Added) == 0 && len(c.Removed) == 0
}

// Len is the total number of paths across categories.
func (c ChangeSet) Len() int {
	return len(c.Modified) + len(c.Added) + len(c.Removed)
}
