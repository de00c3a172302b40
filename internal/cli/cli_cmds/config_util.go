package cli_cmds

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/stockwallet-go/internal/cli"
	"github.com/spf13/cobra"
)

// NewConfig creates a command to inspect the configuration
func NewConfig(params *cli.CmdParams) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the loaded configuration",
		Long:  `View the configuration after defaults, config file and environment overrides are applied.`,
	}

	configCmd.AddCommand(newConfigGet(params))
	configCmd.AddCommand(newConfigList(params))

	return configCmd
}

// newConfigGet creates a subcommand to get a specific config value
func newConfigGet(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Get a configuration value",
		Long:  `Retrieve a specific configuration value by its dotted key, e.g. wallet.name.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			value, ok := params.Config.AsMap()[key]
			if !ok {
				return fmt.Errorf("config key '%s' not found", key)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
			return nil
		},
	}
}

// newConfigList creates a subcommand to list all config values
func newConfigList(params *cli.CmdParams) *cobra.Command {
	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long:  `Display all current configuration values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configItems := params.Config.AsMap()
			out := cmd.OutOrStdout()

			switch strings.ToLower(format) {
			case "json":
				data, err := json.MarshalIndent(configItems, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
				fmt.Fprintln(out, string(data))

			case "text":
				keys := make([]string, 0, len(configItems))
				for k := range configItems {
					keys = append(keys, k)
				}
				slices.Sort(keys)

				fmt.Fprintln(out, "Current Configuration:")
				fmt.Fprintln(out, "======================")
				for _, k := range keys {
					fmt.Fprintf(out, "%s = %v\n", k, configItems[k])
				}

			default:
				return fmt.Errorf("unsupported format %q", format)
			}
			return nil
		},
	}

	listCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text or json)")

	return listCmd
}
