package guard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskKindNames(t *testing.T) {
	assert.Equal(t, "run_all", TaskRunAll.String())
	assert.Equal(t, "run_on_modifications", TaskRunOnModifications.String())
	assert.Equal(t, "run_on_deletions", TaskRunOnDeletions.String())
	assert.Equal(t, "unknown", TaskKind(99).String())
}

func TestParseTaskKind(t *testing.T) {
	k, ok := ParseTaskKind("run_on_changes")
	require.True(t, ok)
	assert.Equal(t, TaskRunOnChanges, k)

	_, ok = ParseTaskKind("run_on_everything")
	assert.False(t, ok)
}

func TestCapabilities(t *testing.T) {
	caps := NewCapabilities(TaskRunAll, TaskRunOnChanges)
	assert.True(t, caps.Has(TaskRunAll))
	assert.True(t, caps.Has(TaskRunOnChanges))
	assert.False(t, caps.Has(TaskRunOnRemovals))
	assert.False(t, Capabilities(nil).Has(TaskRunAll))
}

func TestSignalsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotHandled, ErrTaskFailed))
	assert.False(t, errors.Is(ErrTaskFailed, ErrNotHandled))
}

func TestSignalsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("rubocop found offenses: %w", ErrTaskFailed)
	assert.True(t, TaskFailed(wrapped))
	assert.False(t, NotHandled(wrapped))

	wrapped = fmt.Errorf("no handler for additions: %w", ErrNotHandled)
	assert.True(t, NotHandled(wrapped))
	assert.False(t, TaskFailed(wrapped))

	assert.False(t, TaskFailed(errors.New("boom")))
}

func TestOutcomeStatusStrings(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "halted", StatusHalted.String())
	assert.Equal(t, "faulted", StatusFaulted.String())
	assert.True(t, Outcome{Status: StatusOK}.OK())
	assert.False(t, Outcome{Status: StatusFailed}.OK())
}
