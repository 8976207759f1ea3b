package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/pretty"
	"github.com/flightdeck-io/flightdeck/settings"
	"github.com/flightdeck-io/flightdeck/wizard"
)

var createKindOption string

var createCmd = &cobra.Command{
	Use:     "create [name]",
	Aliases: []string{"new"},
	Short:   "Scaffold a new application from a category template.",
	Long: `Scaffold a new application under the applications directory from
one of the category templates. Without arguments, asks interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		} else {
			asked, err := wizard.AskName("my-app")
			if err != nil {
				pretty.Exit(1, "Error: %v", err)
			}
			name = asked
		}
		kind := createKindOption
		if len(kind) == 0 {
			asked, err := wizard.AskCategory()
			if err != nil {
				pretty.Exit(1, "Error: %v", err)
			}
			kind = asked
		}
		config := settings.Global
		directory, err := wizard.CreateApplication(Root(), config.ApplicationsDirectory(), config.EntryFile(), name, kind)
		if err != nil {
			pretty.Exit(2, "Error: %v", err)
		}
		pretty.Success(fmt.Sprintf("%sCreated %s application %q at %s", pretty.Gear, kind, name, directory))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createKindOption, "kind", "k", "", "Application kind to scaffold (cli, gui, script, tui, or web).")
}
