package cmd

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/journal"
	"github.com/flightdeck-io/flightdeck/pretty"
	"github.com/flightdeck-io/flightdeck/settings"
)

var (
	historyJsonOption  bool
	historyLimitOption int
)

// kindStatus maps a journal event onto the shared status palette.
func kindStatus(event journal.Event) string {
	switch event.Kind {
	case "start":
		return "running"
	case "stop":
		return "stopped"
	case "exit":
		if strings.Contains(event.Detail, "exit code 0") {
			return "completed"
		}
		return "failed"
	}
	return "pending"
}

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"journal"},
	Short:   "Show recent supervised run events.",
	Long:    "Show recent supervised run events from the run journal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := historyLimitOption
		if limit == 0 {
			limit = settings.Global.JournalLimit()
		}
		events, err := journal.Recent(limit)
		if err != nil {
			pretty.Exit(1, "Error: %v", err)
		}
		if historyJsonOption {
			content, err := json.MarshalIndent(events, "", "  ")
			if err != nil {
				return err
			}
			common.Stdout("%s\n", content)
			return nil
		}
		if len(events) == 0 {
			pretty.Note("Journal is empty.")
			return nil
		}
		pretty.Header("Run history")
		common.Stdout("%-20s  %-8s  %-18s  %s\n", "When", "Kind", "Unit", "Detail")
		for _, event := range events {
			when := time.Unix(event.When, 0).Format("2006-01-02 15:04:05")
			color := pretty.StatusColor(kindStatus(event))
			common.Stdout("%-20s  %s%-8s%s  %-18s  %s\n", when, color, event.Kind, pretty.Reset, event.Unit, event.Detail)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVarP(&historyJsonOption, "json", "j", false, "Output events as JSON.")
	historyCmd.Flags().IntVarP(&historyLimitOption, "limit", "n", 0, "Maximum number of events to show (default from settings).")
}
