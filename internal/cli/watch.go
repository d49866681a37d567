package cli

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/guardpost/internal/guard"
	"github.com/ppiankov/guardpost/internal/watch"
)

var (
	watchPoll     bool
	watchInterval time.Duration
	watchNoFirst  bool
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchPoll, "poll", false, "Poll instead of using fsnotify (for NFS and similar)")
	watchCmd.Flags().DurationVar(&watchInterval, "poll-interval", 0, "Polling interval (default 2s)")
	watchCmd.Flags().BoolVar(&watchNoFirst, "no-first-run", false, "Skip the initial run_all pass")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the configured tree and route changes to guards",
	Long:  "Watches the configured directory, batches filesystem events, and routes each\nbatch through the guards. Runs until interrupted.",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !watchNoFirst {
		s.orch.RunTask(guard.TaskRunAll)
	}

	handler := func(set watch.ChangeSet) {
		s.log.Debugf("routing %d changed paths", set.Len())
		if err := s.orch.RouteChanges(set); err != nil {
			s.log.Errorf("route changes: %v", err)
		}
	}

	s.log.Infof("watching %s (%d guards)", s.cfg.Dir, len(s.reg.Guards()))
	if watchPoll {
		return watch.NewPollSource(s.cfg.Dir, handler, watchInterval).Run(ctx)
	}
	return watch.NewSource(s.cfg.Dir, handler).Run(ctx)
}
