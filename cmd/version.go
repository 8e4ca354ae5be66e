// File: cmd/version.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"repotome/pkg/version"
)

// versionCmd prints the build metadata. --short emits the bare version
// string for use in scripts.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the repotome version",
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		info := version.Get()
		if short {
			fmt.Fprintln(cmd.OutOrStdout(), info.Version)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "print the version number only")
	RootCmd.AddCommand(versionCmd)
}
