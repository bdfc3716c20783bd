package cli

import (
	"github.com/spf13/cobra"
)

// version is stamped by the release build.
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("pinwall version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
