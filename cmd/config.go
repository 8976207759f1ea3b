package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/conf"
	"github.com/flightdeck-io/flightdeck/pretty"
	"github.com/flightdeck-io/flightdeck/wizard"
)

var (
	configFileOption  string
	configForceOption bool
)

// configStore opens the dotted-key store behind the --file flag, or
// the default config.json under the flightdeck home.
func configStore() *conf.Store {
	filename := configFileOption
	if len(filename) == 0 {
		filename = filepath.Join(common.Home(), "config.json")
	}
	return conf.NewStore(common.ExpandPath(filename))
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and modify the dotted-key configuration document.",
	Long: `Inspect and modify a JSON configuration document addressed by
dotted keys (for example 'server.port').`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <dotted.key>",
	Short: "Show the value behind one dotted key.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := configStore().Get(args[0], nil)
		if value == nil {
			pretty.Exit(1, "No value for key %q.", args[0])
		}
		common.Stdout("%v\n", value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <dotted.key> <value>",
	Short: "Set the value behind one dotted key and save.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := configStore()
		store.Set(args[0], coerce(args[1]))
		if err := store.Save(); err != nil {
			pretty.Exit(2, "Error: %v", err)
		}
		pretty.Ok()
		return nil
	},
}

var configDelCmd = &cobra.Command{
	Use:     "del <dotted.key>",
	Aliases: []string{"delete", "rm"},
	Short:   "Delete the value behind one dotted key and save.",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := configStore()
		if store.Get(args[0], nil) == nil {
			pretty.Note("No value for key %q, nothing to delete.", args[0])
			return nil
		}
		confirmed, err := wizard.Confirm(fmt.Sprintf("Delete configuration key %q?", args[0]), configForceOption)
		if err != nil {
			pretty.Exit(1, "Error: %v", err)
		}
		if !confirmed {
			pretty.Note("Keeping %q.", args[0])
			return nil
		}
		store.Delete(args[0])
		if err := store.Save(); err != nil {
			pretty.Exit(2, "Error: %v", err)
		}
		pretty.Ok()
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the whole configuration document.",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := json.MarshalIndent(configStore().AsMap(), "", "  ")
		if err != nil {
			return err
		}
		common.Stdout("%s\n", content)
		return nil
	},
}

// coerce keeps JSON scalars typed on the way in: numbers stay numbers
// and booleans stay booleans, everything else is a string.
func coerce(value string) interface{} {
	var parsed interface{}
	if err := json.Unmarshal([]byte(value), &parsed); err == nil {
		switch parsed.(type) {
		case float64, bool, nil:
			return parsed
		}
	}
	return value
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configDelCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.PersistentFlags().StringVarP(&configFileOption, "file", "f", "", "Configuration file to operate on (default: config.json under flightdeck home).")
	wizard.AddYesFlag(configDelCmd, &configForceOption)
}
