package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDefault is the default debounce interval for file events.
// Editors routinely emit several events per save; one batch per burst is
// what the orchestrator wants to see.
const debounceDefault = 200 * time.Millisecond

// pollDefault is the default polling interval when fsnotify is unavailable.
const pollDefault = 2 * time.Second

// Handler receives one debounced batch of changes. Batches are delivered
// sequentially from a single goroutine; the handler owns the registry for
// the duration of the call.
type Handler func(ChangeSet)

// Source watches a directory tree using fsnotify and delivers debounced
// ChangeSets. Paths are reported relative to the root.
type Source struct {
	root     string
	handler  Handler
	debounce time.Duration
}

// NewSource creates a watcher rooted at dir.
func NewSource(dir string, handler Handler) *Source {
	return &Source{root: dir, handler: handler, debounce: debounceDefault}
}

// Run watches the tree until ctx is cancelled. Subdirectories created
// while running are picked up and watched too.
func (s *Source) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := addTree(watcher, s.root); err != nil {
		return err
	}

	// pending accumulates categorized paths that passed debounce. A single
	// timer resets on each event; when it fires, the whole batch flushes
	// to the handler in one ChangeSet. No per-event goroutines.
	var mu sync.Mutex
	pending := map[string]category{}

	flush := func() {
		mu.Lock()
		batch := pending
		pending = map[string]category{}
		mu.Unlock()
		set := toChangeSet(batch)
		if !set.Empty() {
			s.handler(set)
		}
	}

	debounceTimer := time.NewTimer(s.debounce)
	debounceTimer.Stop()
	defer debounceTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			flush()
			return nil

		case <-debounceTimer.C:
			flush()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			cat, ok := classify(event)
			if !ok {
				continue
			}
			if cat == catAdded {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					// New directory: watch it, report nothing.
					_ = addTree(watcher, event.Name)
					continue
				}
			}
			rel, err := filepath.Rel(s.root, event.Name)
			if err != nil {
				continue
			}
			mu.Lock()
			pending[rel] = merge(pending[rel], cat)
			mu.Unlock()

			if !debounceTimer.Stop() {
				select {
				case <-debounceTimer.C:
				default:
				}
			}
			debounceTimer.Reset(s.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			_ = err
		}
	}
}

// category is the per-path change classification accumulated during a
// debounce window.
type category int

const (
	catNone category = iota
	catModified
	catAdded
	catRemoved
)

func classify(event fsnotify.Event) (category, bool) {
	switch {
	case event.Has(fsnotify.Create):
		return catAdded, true
	case event.Has(fsnotify.Write):
		return catModified, true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return catRemoved, true
	default:
		return catNone, false
	}
}

// merge coalesces successive events for the same path within one window.
// A create followed by writes is still an addition; a removal wins over
// everything that preceded it.
func merge(prev, next category) category {
	switch {
	case next == catRemoved:
		return catRemoved
	case prev == catAdded:
		return catAdded
	case prev == catNone:
		return next
	default:
		return prev
	}
}

func toChangeSet(batch map[string]category) ChangeSet {
	var set ChangeSet
	keys := make([]string, 0, len(batch))
	for path := range batch {
		keys = append(keys, path)
	}
	slices.Sort(keys)
	for _, path := range keys {
		switch batch[path] {
		case catModified:
			set.Modified = append(set.Modified, path)
		case catAdded:
			set.Added = append(set.Added, path)
		case catRemoved:
			set.Removed = append(set.Removed, path)
		}
	}
	return set
}

// addTree registers dir and every subdirectory below it with the watcher.
func addTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
