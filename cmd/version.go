package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/saltydk/fplot/cmd.Version=1.2.3".
var Version = "0.0.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fplot version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := buildVersion()
		if err != nil {
			log.WithError(err).Warnf("Version %q is not semver", Version)
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), v.String())
		return nil
	},
}

func buildVersion() (semver.Version, error) {
	return semver.ParseTolerant(Version)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
