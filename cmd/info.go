package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/pretty"
	"github.com/flightdeck-io/flightdeck/settings"
)

var infoJsonOption bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show a report of the runtime environment.",
	Long:  "Show a report of the runtime environment and active settings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := common.EnvironmentInfo()
		if infoJsonOption {
			content, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			common.Stdout("%s\n", content)
			return nil
		}
		config := settings.Global
		lines := []string{
			fmt.Sprintf("Version:       %s", report.Version),
			fmt.Sprintf("Platform:      %s", report.Platform),
			fmt.Sprintf("Runtime:       %s [%d cpus]", report.Runtime, report.Cpus),
			fmt.Sprintf("Working dir:   %s", report.WorkingDirectory),
			fmt.Sprintf("Home:          %s", report.Home),
			fmt.Sprintf("Applications:  %s", config.ApplicationsDirectory()),
			fmt.Sprintf("Scripts:       %s", config.ScriptsDirectory()),
			fmt.Sprintf("Entry file:    %s", config.EntryFile()),
			fmt.Sprintf("Variables:     %s", strings.Join(report.VariableNames, ", ")),
		}
		common.Stdout("%s\n", pretty.Frame(report.Product, lines))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVarP(&infoJsonOption, "json", "j", false, "Output the report as JSON.")
}
