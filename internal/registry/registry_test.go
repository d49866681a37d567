package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/guardpost/internal/guard"
)

// stubGuard is the minimal Guard for membership tests.
type stubGuard struct {
	title string
	group string
}

func (g *stubGuard) Name() string                     { return "stub" }
func (g *stubGuard) Title() string                    { return g.title }
func (g *stubGuard) Group() string                    { return g.group }
func (g *stubGuard) Patterns() []string               { return nil }
func (g *stubGuard) Capabilities() guard.Capabilities { return nil }
func (g *stubGuard) Run(guard.TaskKind, []string) (any, error) {
	return nil, guard.ErrNotHandled
}
func (g *stubGuard) Hook(guard.TaskKind, guard.HookPhase, any) error {
	return guard.ErrNotHandled
}

func TestAddKeepsRegistrationOrder(t *testing.T) {
	r := New()
	a := &stubGuard{title: "a", group: "frontend"}
	b := &stubGuard{title: "b"}
	c := &stubGuard{title: "c", group: "frontend"}
	for _, g := range []guard.Guard{a, b, c} {
		require.NoError(t, r.Add(g))
	}

	assert.Equal(t, []guard.Guard{a, b, c}, r.Guards())
	assert.Equal(t, []guard.Guard{a, c}, r.GuardsIn("frontend"))
	assert.Equal(t, []guard.Guard{b}, r.GuardsIn(guard.DefaultGroup))
}

func TestAddCreatesUnknownGroup(t *testing.T) {
	r := New()
	require.NoError(t, r.Add(&stubGuard{title: "a", group: "backend"}))

	grp := r.Group("backend")
	require.NotNil(t, grp)
	assert.False(t, grp.HaltOnFail)
}

func TestAddGroupReplacesOptionsInPlace(t *testing.T) {
	r := New()
	r.AddGroup(&guard.Group{Name: "ci"})
	r.AddGroup(&guard.Group{Name: "docs"})
	r.AddGroup(&guard.Group{Name: "ci", HaltOnFail: true})

	assert.True(t, r.Group("ci").HaltOnFail)
	names := []string{}
	for _, g := range r.Groups() {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{guard.DefaultGroup, "ci", "docs"}, names)
}

func TestRemoveIsPermanent(t *testing.T) {
	r := New()
	g := &stubGuard{title: "doomed"}
	require.NoError(t, r.Add(g))

	r.Remove(g)
	assert.Empty(t, r.Guards())

	r.Remove(g) // idempotent
	assert.Empty(t, r.Guards())

	err := r.Add(g)
	require.Error(t, err)
	assert.Empty(t, r.Guards())
}

func TestGuardsReturnsSnapshot(t *testing.T) {
	r := New()
	a := &stubGuard{title: "a"}
	b := &stubGuard{title: "b"}
	require.NoError(t, r.Add(a))
	require.NoError(t, r.Add(b))

	snap := r.Guards()
	r.Remove(a)

	// The snapshot is unaffected by live removal.
	assert.Equal(t, []guard.Guard{a, b}, snap)
	assert.Equal(t, []guard.Guard{b}, r.Guards())
}

func TestWithPreservedStateRestoresScope(t *testing.T) {
	r := New()
	g := &stubGuard{title: "a"}
	require.NoError(t, r.Add(g))
	r.SetScope(Scope{Group: "outer"})

	err := r.WithPreservedState(func() error {
		r.SetScope(Scope{Guard: g})
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.Equal(t, Scope{Group: "outer"}, r.Scope())
}

func TestWithPreservedStateKeepsMembershipChanges(t *testing.T) {
	r := New()
	g := &stubGuard{title: "a"}
	require.NoError(t, r.Add(g))

	_ = r.WithPreservedState(func() error {
		r.Remove(g)
		return nil
	})

	assert.Empty(t, r.Guards())
}

func TestScopeAll(t *testing.T) {
	assert.True(t, Scope{}.All())
	assert.False(t, Scope{Group: "ci"}.All())
	assert.False(t, Scope{Guard: &stubGuard{}}.All())
}
