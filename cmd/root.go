package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/pretty"
	"github.com/flightdeck-io/flightdeck/settings"
)

var (
	rootDirectory string
	silentFlag    bool
	debugFlag     bool
	traceFlag     bool
	numbersFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "flightdeck",
	Short: "flightdeck is a terminal launcher for a Python monorepo.",
	Long: `flightdeck discovers the runnable applications and scripts of a
Python monorepo, classifies them, and launches them as supervised
child processes with their output streamed back to you.

Running flightdeck without a subcommand opens the interactive deck.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		common.LogLinenumbers = numbersFlag
		if _, err := settings.SummonSettings(); err != nil {
			pretty.Exit(2, "Error: could not load settings: %v", err)
		}
		common.Trace("flightdeck %s on %s", common.Version, common.Platform())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return uiCmd.RunE(cmd, args)
	},
}

// Root resolves the monorepo root directory from the --root flag,
// defaulting to the current working directory.
func Root() string {
	if len(rootDirectory) > 0 {
		return common.ExpandPath(rootDirectory)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// Execute drives the whole command tree. Errors have already been
// rendered; only the exit escalation remains for the caller.
func Execute() {
	defer common.DisplayTimeline()
	if err := rootCmd.Execute(); err != nil {
		pretty.Exit(1, "Error: %v", err)
	}
	common.WaitLogs()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDirectory, "root", "", "", "Monorepo root directory (defaults to current directory)")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "Be less verbose, towards silence.")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "Turn on debugging output.")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "Turn on tracing output.")
	rootCmd.PersistentFlags().BoolVarP(&numbersFlag, "numbers", "", false, "Put line numbers on log output.")
}
