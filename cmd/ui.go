package cmd

import (
	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/interactive"
	"github.com/flightdeck-io/flightdeck/pretty"
)

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui", "deck"},
	Short:   "Launch the interactive deck.",
	Long: `Launch the interactive terminal shell.

The deck lists the discovered applications and scripts; selecting one
launches it as a supervised process and streams its output.

Navigation:
  j/k        Navigate up/down
  Enter      Run the selected application
  r          Refresh (re-scan)
  s          Stop the running process
  Esc        Back to the deck (process keeps running)
  q          Quit
  ?          Help

Example:
  flightdeck ui`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pretty.Guard(pretty.Interactive, 1, "The deck requires an interactive terminal (TTY)")
		return interactive.Run(Root())
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
