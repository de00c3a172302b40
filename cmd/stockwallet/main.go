package main

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/stockwallet-go/internal"
	"github.com/ZanzyTHEbar/stockwallet-go/internal/cli"
	"github.com/ZanzyTHEbar/stockwallet-go/internal/cli/cli_cmds"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defer internal.CloseLogger()

	// Setup the Root Command; config is loaded once flags are parsed
	rootParams := &cli.CmdParams{
		Use:   internal.DefaultAppName,
		Alias: internal.DefaultAppCMDShortCut,
		Short: "Stock Wallet",
		Long:  "Stock Wallet - apply buy and sell operations atomically to a stock position",
	}

	// Generate command palette
	palette := cli_cmds.GeneratePalette(rootParams)
	rootParams.Palette = palette

	// Create root command
	rootCmd := cli.NewRootCMD(rootParams)

	// Execute root command
	if err := rootCmd.Root.Execute(); err != nil {
		return fmt.Errorf("error executing root command: %w", err)
	}

	return nil
}
