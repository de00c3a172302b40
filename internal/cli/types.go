package cli

import (
	"github.com/ZanzyTHEbar/stockwallet-go/internal"
	"github.com/spf13/cobra"
)

// CmdParams holds all dependencies needed by command handlers
type CmdParams struct {
	// Config is populated by the root command before any subcommand runs
	Config     *internal.Config
	ConfigFile string
	Palette    []*cobra.Command
	Use        string
	Alias      string
	Short      string
	Long       string
}
