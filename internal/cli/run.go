package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/guardpost/internal/guard"
)

var (
	runGuard string
	runGroup string
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runGuard, "guard", "", "Run only this guard")
	runCmd.Flags().StringVar(&runGroup, "group", "", "Run only this group")
}

var runCmd = &cobra.Command{
	Use:   "run [task]",
	Short: "Run a task once across the configured guards",
	Long:  "Runs the named task (default run_all) on every guard in scope.\nScope defaults to all groups; narrow it with --guard or --group.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	kind := guard.TaskRunAll
	if len(args) == 1 {
		k, ok := guard.ParseTaskKind(args[0])
		if !ok {
			return fmt.Errorf("unknown task %q", args[0])
		}
		kind = k
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	scope, err := s.scopeFromFlags(runGuard, runGroup)
	if err != nil {
		return err
	}
	if scope.All() {
		s.orch.RunTask(kind)
		return nil
	}
	return s.orch.RunTaskIn(kind, scope)
}
