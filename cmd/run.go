package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/pretty"
	"github.com/flightdeck-io/flightdeck/settings"
	"github.com/flightdeck-io/flightdeck/supervisor"
)

var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run one discovered application headlessly.",
	Long: `Run the named application or script without the interactive
shell. Output is streamed to stdout; Ctrl+C requests a graceful stop
and escalates to a forced kill after the stop timeout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		units, err := newScanner().Scan()
		if err != nil {
			pretty.Exit(1, "Error: %v", err)
		}
		unit, ok := findUnit(units, name)
		pretty.Guard(ok, 2, "Error: no application or script named %q (try 'flightdeck list')", name)

		boss := supervisor.New(Root(), settings.Global.StopTimeout())
		handle, err := boss.Start(unit)
		if err != nil {
			pretty.Exit(3, "Error: %v", err)
		}
		common.Log("%sRunning %q as pid %d ...", pretty.Rocket, unit.Command, handle.Pid())

		interrupted := make(chan os.Signal, 1)
		signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(interrupted)
		go func() {
			<-interrupted
			pretty.Warning("Interrupt received, stopping %q ...", name)
			boss.Stop(name)
		}()

		for line := range handle.Stream() {
			common.Stdout("%s\n", line)
		}

		code := handle.Wait()
		if code != 0 {
			pretty.Exit(code, "Process exited with code %d.", code)
		}
		pretty.Ok()
		return nil
	},
}

func findUnit(units []discovery.Descriptor, name string) (discovery.Descriptor, bool) {
	for _, unit := range units {
		if unit.Name == name {
			return unit, true
		}
	}
	return discovery.Descriptor{}, false
}

func init() {
	rootCmd.AddCommand(runCmd)
}
