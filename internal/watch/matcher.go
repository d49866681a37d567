package watch

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ppiankov/guardpost/internal/guard"
)

// Matcher filters changed paths against a guard's watch patterns.
// Patterns are doublestar globs ("**/*.go", "config/**"), matched against
// slash-normalized relative paths. A guard with no patterns matches
// nothing: it has declared no interest in file changes.
type Matcher struct{}

// NewMatcher creates a pattern matcher.
func NewMatcher() *Matcher { return &Matcher{} }

// MatchPaths returns the subset of paths relevant to the guard, in input
// order. Invalid patterns are skipped rather than failing the batch.
func (m *Matcher) MatchPaths(g guard.Guard, paths []string) []string {
	patterns := g.Patterns()
	if len(patterns) == 0 {
		return nil
	}
	var out []string
	for _, p := range paths {
		if matchAny(patterns, filepath.ToSlash(p)) {
			out = append(out, p)
		}
	}
	return out
}

func matchAny(patterns []string, path string) bool {
	for _, pat := range patterns {
		ok, err := doublestar.Match(pat, path)
		if err != nil {
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
