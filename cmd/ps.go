package cmd

import (
	"sort"
	"strings"

	ps "github.com/mitchellh/go-ps"
	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/pretty"
	"github.com/flightdeck-io/flightdeck/supervisor"
)

var (
	psAllOption    bool
	psFilterOption string
)

// defaultPsFilters matches the interpreters the launcher actually
// starts applications with.
var defaultPsFilters = []string{"python", "uv"}

var psCmd = &cobra.Command{
	Use:     "ps",
	Aliases: []string{"processes"},
	Short:   "List application processes and their child counts.",
	Long: `List operating system processes that look like launched applications,
with the number of direct children each one has. Useful for spotting
leftovers after an ungraceful stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		processes, err := ps.Processes()
		if err != nil {
			pretty.Exit(1, "Error: %v", err)
		}
		filters := defaultPsFilters
		if len(psFilterOption) > 0 {
			filters = strings.Split(strings.ToLower(psFilterOption), ",")
		}
		matched := []ps.Process{}
		for _, process := range processes {
			if psAllOption || matchesAny(process.Executable(), filters) {
				matched = append(matched, process)
			}
		}
		sort.Slice(matched, func(left, right int) bool {
			return matched[left].Pid() < matched[right].Pid()
		})
		if len(matched) == 0 {
			pretty.Note("No matching processes.")
			return nil
		}
		common.Stdout("%8s  %8s  %8s  %s\n", "Pid", "Parent", "Children", "Executable")
		for _, process := range matched {
			common.Stdout("%8d  %8d  %8d  %s\n",
				process.Pid(), process.PPid(),
				supervisor.ChildCount(process.Pid()),
				process.Executable())
		}
		return nil
	},
}

func matchesAny(executable string, filters []string) bool {
	lowered := strings.ToLower(executable)
	for _, filter := range filters {
		if len(filter) > 0 && strings.Contains(lowered, filter) {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(psCmd)
	psCmd.Flags().BoolVarP(&psAllOption, "all", "a", false, "List every process, not just interpreter lookalikes.")
	psCmd.Flags().StringVarP(&psFilterOption, "filter", "f", "", "Comma separated executable name fragments to match.")
}
