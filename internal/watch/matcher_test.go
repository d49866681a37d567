package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ppiankov/guardpost/internal/guard"
)

type patternGuard struct {
	patterns []string
}

func (g *patternGuard) Name() string                     { return "pattern" }
func (g *patternGuard) Title() string                    { return "pattern" }
func (g *patternGuard) Group() string                    { return "" }
func (g *patternGuard) Patterns() []string               { return g.patterns }
func (g *patternGuard) Capabilities() guard.Capabilities { return nil }
func (g *patternGuard) Run(guard.TaskKind, []string) (any, error) {
	return nil, guard.ErrNotHandled
}
func (g *patternGuard) Hook(guard.TaskKind, guard.HookPhase, any) error {
	return guard.ErrNotHandled
}

func TestMatchPathsDoublestar(t *testing.T) {
	m := NewMatcher()
	g := &patternGuard{patterns: []string{"**/*.go"}}

	got := m.MatchPaths(g, []string{
		"main.go",
		"internal/cli/root.go",
		"docs/readme.md",
	})

	assert.Equal(t, []string{"main.go", "internal/cli/root.go"}, got)
}

func TestMatchPathsMultiplePatterns(t *testing.T) {
	m := NewMatcher()
	g := &patternGuard{patterns: []string{"config/**", "*.yaml"}}

	got := m.MatchPaths(g, []string{"config/app.json", "top.yaml", "src/a.go"})

	assert.Equal(t, []string{"config/app.json", "top.yaml"}, got)
}

func TestMatchPathsNoPatternsMatchesNothing(t *testing.T) {
	m := NewMatcher()
	g := &patternGuard{}

	assert.Nil(t, m.MatchPaths(g, []string{"anything.go"}))
}

func TestMatchPathsSkipsInvalidPattern(t *testing.T) {
	m := NewMatcher()
	g := &patternGuard{patterns: []string{"[", "*.go"}}

	got := m.MatchPaths(g, []string{"ok.go", "ok.rb"})

	assert.Equal(t, []string{"ok.go"}, got)
}

func TestMatchPathsNormalizesSeparators(t *testing.T) {
	m := NewMatcher()
	g := &patternGuard{patterns: []string{"lib/**/*.rb"}}

	got := m.MatchPaths(g, []string{"lib/deep/nested/a.rb"})

	assert.Len(t, got, 1)
}

func TestChangeSetEmptyAndLen(t *testing.T) {
	assert.True(t, ChangeSet{}.Empty())
	set := ChangeSet{Added: []string{"x"}, Removed: []string{"y", "z"}}
	assert.False(t, set.Empty())
	assert.Equal(t, 3, set.Len())
}
