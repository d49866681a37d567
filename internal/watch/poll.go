package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"time"
)

// PollSource watches a directory tree by periodic scanning. Used as a
// fallback when fsnotify is unavailable (e.g., NFS or some containers).
type PollSource struct {
	root     string
	handler  Handler
	interval time.Duration
	seen     map[string]time.Time
}

// NewPollSource creates a polling-based source rooted at dir.
func NewPollSource(dir string, handler Handler, interval time.Duration) *PollSource {
	if interval == 0 {
		interval = pollDefault
	}
	return &PollSource{
		root:     dir,
		handler:  handler,
		interval: interval,
	}
}

// Run polls the tree until ctx is cancelled. The first scan establishes
// the baseline and reports nothing.
func (s *PollSource) Run(ctx context.Context) error {
	s.seen = s.snapshot()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if set := s.diff(); !set.Empty() {
				s.handler(set)
			}
		}
	}
}

// snapshot records the mtime of every file under the root.
func (s *PollSource) snapshot() map[string]time.Time {
	files := make(map[string]time.Time)
	_ = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return nil
		}
		files[rel] = info.ModTime()
		return nil
	})
	return files
}

// diff compares the current tree against the previous scan and advances
// the baseline.
func (s *PollSource) diff() ChangeSet {
	current := s.snapshot()
	var set ChangeSet

	for path, mtime := range current {
		prev, ok := s.seen[path]
		switch {
		case !ok:
			set.Added = append(set.Added, path)
		case mtime.After(prev):
			set.Modified = append(set.Modified, path)
		}
	}
	for path := range s.seen {
		if _, ok := current[path]; !ok {
			set.Removed = append(set.Removed, path)
		}
	}

	s.seen = current
	sortSet(&set)
	return set
}

func sortSet(set *ChangeSet) {
	slices.Sort(set.Modified)
	slices.Sort(set.Added)
	slices.Sort(set.Removed)
}
