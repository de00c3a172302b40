package cli_cmds

import (
	"github.com/ZanzyTHEbar/stockwallet-go/internal/cli"

	"github.com/spf13/cobra"
)

func GeneratePalette(params *cli.CmdParams) []*cobra.Command {

	// Global commands
	helpCmd := NewHelp(params)
	versionCmd := NewVersion(params)

	// Wallet commands
	executeCmd := NewExecute(params)

	// Utility commands
	configCmd := NewConfig(params)

	return []*cobra.Command{
		executeCmd,
		configCmd,
		helpCmd,
		versionCmd,
	}
}
