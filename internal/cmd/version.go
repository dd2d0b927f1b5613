package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release name, set at link time with
// -ldflags "-X github.com/db47h/bigfloat/internal/cmd.Version=...".
var Version = "v0.1.0-dev"

func init() {
	RootCmd.AddCommand(VersionCmd)
}

var VersionCmd = &cobra.Command{
	Use:          "version",
	Short:        "show version name",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}
