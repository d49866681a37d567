// Package shell provides the built-in guard: it runs a configured command
// whenever a task fires, with the matched paths exposed to the command.
package shell

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ppiankov/guardpost/internal/guard"
)

// Guard runs a shell command in reaction to tasks. A non-zero exit is a
// deliberate failure signal, not a fault: a failing test suite or linter
// is the guard doing its job.
type Guard struct {
	title    string
	group    string
	patterns []string
	command  string
	caps     guard.Capabilities
}

// New creates a shell guard.
func New(title, group string, patterns []string, command string, kinds ...guard.TaskKind) *Guard {
	return &Guard{
		title:    title,
		group:    group,
		patterns: patterns,
		command:  command,
		caps:     guard.NewCapabilities(kinds...),
	}
}

func (g *Guard) Name() string                     { return "shell" }
func (g *Guard) Title() string                    { return g.title }
func (g *Guard) Group() string                    { return g.group }
func (g *Guard) Patterns() []string               { return g.patterns }
func (g *Guard) Capabilities() guard.Capabilities { return g.caps }

// Run executes the command with the task name and matched paths in the
// environment. Returns the combined output on success.
func (g *Guard) Run(kind guard.TaskKind, paths []string) (any, error) {
	cmd := exec.Command("sh", "-c", g.command)
	cmd.Env = append(os.Environ(),
		"GUARDPOST_TASK="+kind.String(),
		"GUARDPOST_PATHS="+strings.Join(paths, " "),
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s exited: %v\n%s: %w",
			g.title, err, strings.TrimSpace(string(out)), guard.ErrTaskFailed)
	}
	return string(out), nil
}

// Hook is not implemented for shell guards.
func (g *Guard) Hook(guard.TaskKind, guard.HookPhase, any) error {
	return guard.ErrNotHandled
}
