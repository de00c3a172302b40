package cli_cmds

import (
	"fmt"

	"github.com/ZanzyTHEbar/stockwallet-go/internal/cli"

	"github.com/spf13/cobra"
)

// NewHelp creates a detailed help command
func NewHelp(params *cli.CmdParams) *cobra.Command {
	var showAll bool

	helpCmd := &cobra.Command{
		Use:     "detailed_help",
		Aliases: []string{"h"},
		Short:   "Display detailed help with usage examples",
		Long:    `Display detailed help information including command hierarchy and usage examples.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if showAll {
				fmt.Fprintf(out, "%s - Complete Command Reference\n", params.Use)
				fmt.Fprintln(out, "==============================")
				fmt.Fprintln(out, "\nAvailable Commands:")
				for _, c := range cmd.Root().Commands() {
					fmt.Fprintf(out, "- %s: %s\n", c.Use, c.Short)
				}
				return
			}

			fmt.Fprintln(out, params.Short)
			fmt.Fprintln(out, "==============================")
			fmt.Fprintln(out, "\nMain Commands:")
			fmt.Fprintln(out, "  execute     Execute operations against the wallet")
			fmt.Fprintln(out, "  config      Inspect the loaded configuration")
			fmt.Fprintln(out, "\nExamples:")
			fmt.Fprintf(out, "  %s execute buy:7,sell:2\n", params.Use)
			fmt.Fprintf(out, "  %s execute buy:10 sell:4,sell:7 --history\n", params.Use)
			fmt.Fprintf(out, "\nUse '%s detailed_help --all' to see all available commands.\n", params.Use)
		},
	}

	helpCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all commands")

	return helpCmd
}
