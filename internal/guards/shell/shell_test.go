package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/guardpost/internal/guard"
)

func TestRunSuccessReturnsOutput(t *testing.T) {
	g := New("echo", "", []string{"**"}, "echo hello", guard.TaskRunAll)

	out, err := g.Run(guard.TaskRunAll, nil)

	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunExposesTaskAndPaths(t *testing.T) {
	g := New("env", "", []string{"**"},
		`echo "$GUARDPOST_TASK:$GUARDPOST_PATHS"`, guard.TaskRunOnChanges)

	out, err := g.Run(guard.TaskRunOnChanges, []string{"a.go", "b.go"})

	require.NoError(t, err)
	assert.Equal(t, "run_on_changes:a.go b.go\n", out)
}

func TestNonZeroExitIsDeliberateFailure(t *testing.T) {
	g := New("failing", "", []string{"**"}, "echo offense found; exit 1", guard.TaskRunAll)

	_, err := g.Run(guard.TaskRunAll, nil)

	require.Error(t, err)
	assert.True(t, guard.TaskFailed(err), "non-zero exit signals deliberate failure, not a fault")
	assert.Contains(t, err.Error(), "offense found")
}

func TestCapabilitiesComeFromConstruction(t *testing.T) {
	g := New("t", "ci", []string{"*.go"}, "true",
		guard.TaskRunAll, guard.TaskRunOnChanges)

	assert.True(t, g.Capabilities().Has(guard.TaskRunAll))
	assert.False(t, g.Capabilities().Has(guard.TaskRunOnRemovals))
	assert.Equal(t, "ci", g.Group())
	assert.Equal(t, []string{"*.go"}, g.Patterns())
}

func TestHookNotHandled(t *testing.T) {
	g := New("t", "", nil, "true", guard.TaskRunAll)
	assert.True(t, guard.NotHandled(g.Hook(guard.TaskRunAll, guard.HookBegin, nil)))
}
