package cli_cmds

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/stockwallet-go/domain/models"
	"github.com/ZanzyTHEbar/stockwallet-go/interfaces"
	"github.com/ZanzyTHEbar/stockwallet-go/internal"
	"github.com/ZanzyTHEbar/stockwallet-go/internal/cli"
	"github.com/ZanzyTHEbar/stockwallet-go/services"
	"github.com/spf13/cobra"
)

// ErrOperationsRolledBack is returned by execute --strict when any operation failed
var ErrOperationsRolledBack = errors.New("one or more operations were rolled back")

type executeFlags struct {
	jsonOutput bool
	strict     bool
	history    bool
	status     bool
}

// NewExecute creates a command that runs operations against a wallet
func NewExecute(params *cli.CmdParams) *cobra.Command {
	var flags executeFlags

	executeCmd := &cobra.Command{
		Use:   "execute [operation...]",
		Short: "Execute operations against the wallet",
		Long: `Execute one or more operations, in order, against a wallet that starts empty.

Each argument is one operation: a comma separated list of transactions such as
"buy:7,sell:2". An operation either applies entirely or not at all.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operations := make([]models.Operation, 0, len(args))
			for i, arg := range args {
				op, err := models.ParseOperation(arg)
				if err != nil {
					return fmt.Errorf("operation %d: %w", i, err)
				}
				operations = append(operations, op)
			}

			return runExecute(cmd, params.Config, operations, flags)
		},
	}

	executeCmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Print operation events as JSON lines")
	executeCmd.Flags().BoolVar(&flags.strict, "strict", false, "Exit with an error if any operation is rolled back")
	executeCmd.Flags().BoolVar(&flags.history, "history", false, "Print the wallet's recorded operation history at the end")
	executeCmd.Flags().BoolVar(&flags.status, "status", false, "Print the wallet service status at the end")

	return executeCmd
}

func runExecute(cmd *cobra.Command, cfg *internal.Config, operations []models.Operation, flags executeFlags) error {
	logger := internal.ComponentLogger(internal.ComponentCLI)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	manager, err := services.NewActorServiceManager(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := manager.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("Failed to shut down services")
		}
	}()

	name := cfg.Wallet.Name
	if err := manager.RegisterWallet(name); err != nil {
		return fmt.Errorf("failed to register wallet %s: %w", name, err)
	}

	rolledBack := 0
	for _, op := range operations {
		resp, err := manager.ExecuteWithEvent(ctx, name, op)
		if err != nil {
			return fmt.Errorf("failed to execute %q: %w", op, err)
		}
		if resp.Err != nil {
			rolledBack++
		}
		if err := printEvent(out, resp.Event, flags.jsonOutput); err != nil {
			return err
		}
	}

	quantity, err := manager.Balance(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to read balance: %w", err)
	}
	if !flags.jsonOutput {
		fmt.Fprintf(out, "final quantity=%d\n", quantity)
	}

	if flags.history {
		events, err := manager.History(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		fmt.Fprintf(out, "history (%d):\n", len(events))
		for _, event := range events {
			if flags.jsonOutput {
				fmt.Fprintf(out, "  %s\n", event)
				continue
			}
			fmt.Fprintf(out, "  %s %s %s\n", event.ID, event.Timestamp.Format("2006-01-02 15:04:05"), event.Type)
		}
	}

	if flags.status {
		info, err := manager.GetServiceInfo(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "service %s: %s (handled=%d, errors=%d)\n", info.Name, info.Status, info.EventsHandled, info.ErrorCount)
		if info.LastError != "" {
			fmt.Fprintf(out, "  Last Error: %s\n", info.LastError)
		}
	}

	logger.Debug().Int("operations", len(operations)).Int("rolledBack", rolledBack).Msg("Execute finished")

	if flags.strict && rolledBack > 0 {
		return fmt.Errorf("%d of %d: %w", rolledBack, len(operations), ErrOperationsRolledBack)
	}
	return nil
}

func printEvent(out io.Writer, event *interfaces.Event, jsonOutput bool) error {
	if jsonOutput {
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if event.Committed() {
		fmt.Fprintf(out, "committed   [%s] quantity=%d\n", event.Operation, event.QuantityAfter)
		return nil
	}
	fmt.Fprintf(out, "rolled back [%s] quantity=%d error=%q\n", event.Operation, event.QuantityAfter, event.Error)
	return nil
}
