package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/pretty"
	"github.com/flightdeck-io/flightdeck/settings"
)

var jsonFlag bool

// newScanner builds the discovery scanner for the resolved root, with
// directory conventions taken from settings.
func newScanner() *discovery.Scanner {
	config := settings.Global
	scanner := discovery.NewScanner(Root())
	scanner.Applications = config.ApplicationsDirectory()
	scanner.Scripts = config.ScriptsDirectory()
	scanner.Entry = config.EntryFile()
	scanner.Glob = config.ScriptGlob()
	return scanner
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the discoverable applications and scripts.",
	Long: `List the runnable units discovered under the monorepo root,
sorted by category and name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if common.DebugFlag() {
			defer common.Stopwatch("List lasted").Report()
		}
		units, err := newScanner().Scan()
		if err != nil {
			pretty.Exit(1, "Error: %v", err)
		}
		if jsonFlag {
			content, err := json.MarshalIndent(units, "", "  ")
			if err != nil {
				return err
			}
			common.Stdout("%s\n", content)
			return nil
		}
		if len(units) == 0 {
			pretty.Note("No applications found under %q.", Root())
			return nil
		}
		pretty.Highlight("%-14s %-24s %-7s %s", "Category", "Name", "Port", "Description")
		pretty.Highlight("%-14s %-24s %-7s %s", "--------", "----", "----", "-----------")
		for _, unit := range units {
			port := ""
			if unit.HasPort() {
				port = fmt.Sprintf("%d", unit.Port)
			}
			common.Stdout("%-14s %-24s %-7s %s\n", unit.Category.Label(), unit.Name, port, unit.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&jsonFlag, "json", "j", false, "Output in JSON format.")
}
