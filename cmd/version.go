package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"golemstat/internal/command"
)

// newVersionCmd creates the Cobra command for displaying the version of
// golemstat itself and, optionally, of the companion binaries it
// drives.
func newVersionCmd() *cobra.Command {
	var nodeFlag bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of golemstat",
		Long:  `Prints the golemstat version. With --node, also queries the yagna daemon and the ya-provider agent for theirs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "golemstat version %s\n", rootCmd.Version)
			if !nodeFlag {
				return nil
			}

			set, err := command.Locate()
			if err != nil {
				return err
			}

			// Unlike the status aggregation these are direct queries, so
			// failures propagate instead of degrading a section.
			raw, err := set.Daemon().VersionRaw(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "yagna version %s%s\n", raw.Version, buildSuffix(raw.Build))

			raw, err = set.Provider().VersionRaw(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ya-provider version %s%s\n", raw.Version, buildSuffix(raw.Build))
			return nil
		},
	}

	cmd.Flags().BoolVar(&nodeFlag, "node", false, "also show companion binary versions")

	return cmd
}

func buildSuffix(build string) string {
	if build == "" {
		return ""
	}
	return " (build #" + build + ")"
}
