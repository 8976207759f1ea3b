package cmd

import (
	"github.com/spf13/cobra"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/pathlib"
	"github.com/flightdeck-io/flightdeck/pretty"
)

var hashAlgorithmOption string

var hashCmd = &cobra.Command{
	Use:   "hash <file> ...",
	Short: "Calculate content digests for the given files.",
	Long:  "Calculate content digests for the given files.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, filename := range args {
			digest, err := pathlib.FileHash(common.ExpandPath(filename), hashAlgorithmOption)
			if err != nil {
				pretty.Exit(1, "Error: %v", err)
			}
			common.Stdout("%s  %s\n", digest, filename)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
	hashCmd.Flags().StringVarP(&hashAlgorithmOption, "algorithm", "a", "sha256", "Digest algorithm to use (sha256, sha1, or md5).")
}
