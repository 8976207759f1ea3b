package cmd

import (
	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/common"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show the current version.",
	Long:    "Show the current version of this tool.",
	Run: func(cmd *cobra.Command, args []string) {
		common.Stdout("%s\n", common.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
