package cli_cmds

import (
	"fmt"

	"github.com/ZanzyTHEbar/stockwallet-go/internal"
	"github.com/ZanzyTHEbar/stockwallet-go/internal/cli"
	"github.com/spf13/cobra"
)

// NewVersion creates a version command
func NewVersion(params *cli.CmdParams) *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of " + params.Use,
		Long:  `Print the version information including build details.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), internal.VersionInfo())
		},
	}

	return versionCmd
}
