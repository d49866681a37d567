// Package cli wires the guardpost commands: load config, build the
// registry, hand everything to the orchestrator.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "guardpost",
	Short: "Supervised task orchestrator for file-change guards",
	Long: "Runs configured guards in reaction to filesystem changes. A guard's deliberate\n" +
		"failure is contained at the guard or group boundary per halt_on_fail; a guard\n" +
		"that faults is logged and permanently dropped without aborting its siblings.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to guardpost.yaml (default: ./guardpost.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
