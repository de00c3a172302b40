package cli_cmds

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/stockwallet-go/domain/models"
	"github.com/ZanzyTHEbar/stockwallet-go/interfaces"
	"github.com/ZanzyTHEbar/stockwallet-go/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) *cli.RootCMD {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("STOCKWALLET_LOG_LEVEL", "error")

	params := &cli.CmdParams{
		Use:   "stockwallet",
		Alias: "sw",
		Short: "Stock Wallet",
	}
	params.Palette = GeneratePalette(params)
	return cli.NewRootCMD(params)
}

func TestExecute_CommitAndRollback(t *testing.T) {
	root := newTestRoot(t)

	output, err := cli.ExecuteCommand(root.Root, "execute", "buy:7,sell:2", "buy:5,sell:11", "sell:5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "committed   [buy:7,sell:2] quantity=5", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "rolled back [buy:5,sell:11] quantity=5 error="), lines[1])
	assert.Contains(t, lines[1], "insufficient stock")
	assert.Equal(t, "committed   [sell:5] quantity=0", lines[2])
	assert.Equal(t, "final quantity=0", lines[3])
}

func TestExecute_Strict(t *testing.T) {
	root := newTestRoot(t)

	_, err := cli.ExecuteCommand(root.Root, "execute", "--strict", "sell:1")
	assert.ErrorIs(t, err, ErrOperationsRolledBack)
}

func TestExecute_InvalidOperation(t *testing.T) {
	root := newTestRoot(t)

	_, err := cli.ExecuteCommand(root.Root, "execute", "buy:7", "short:3")
	assert.ErrorIs(t, err, models.ErrInvalidTransactionType)
}

func TestExecute_JSON(t *testing.T) {
	root := newTestRoot(t)

	output, err := cli.ExecuteCommand(root.Root, "execute", "--json", "buy:3", "sell:4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)

	var first, second interfaces.Event
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, interfaces.EventTypeOperationCommitted, first.Type)
	assert.Equal(t, models.Quantity(3), first.QuantityAfter)
	assert.Equal(t, []models.Transaction{models.Buy(3)}, first.Operation.Transactions())
	assert.Equal(t, interfaces.EventTypeOperationRolledBack, second.Type)
	assert.Equal(t, models.Quantity(3), second.QuantityAfter)
	assert.Equal(t, "default", second.Wallet)
}

func TestExecute_HistoryAndStatus(t *testing.T) {
	root := newTestRoot(t)

	output, err := cli.ExecuteCommand(root.Root, "execute", "--history", "--status", "buy:1", "sell:2")
	require.NoError(t, err)

	assert.Contains(t, output, "history (2):")
	assert.Contains(t, output, "service default: RUNNING (handled=2, errors=1)")
	assert.Contains(t, output, "Last Error: transaction 0 (sell:2): insufficient stock")
}

func TestExecute_ConfigFileWalletName(t *testing.T) {
	root := newTestRoot(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wallet:\n  name: portfolio\n"), 0644))

	output, err := cli.ExecuteCommand(root.Root, "--config", path, "execute", "--status", "buy:2")
	require.NoError(t, err)
	assert.Contains(t, output, "service portfolio: RUNNING")
}

func TestConfig_GetAndList(t *testing.T) {
	root := newTestRoot(t)

	output, err := cli.ExecuteCommand(root.Root, "config", "get", "wallet.history_size")
	require.NoError(t, err)
	assert.Equal(t, "wallet.history_size = 100\n", output)

	root = newTestRoot(t)
	_, err = cli.ExecuteCommand(root.Root, "config", "get", "nope")
	assert.Error(t, err)

	root = newTestRoot(t)
	output, err = cli.ExecuteCommand(root.Root, "config", "list", "--format", "json")
	require.NoError(t, err)

	var items map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &items))
	assert.Equal(t, "error", items["log.level"])
	assert.Equal(t, "5s", items["actor.request_timeout"])
}

func TestVersion(t *testing.T) {
	root := newTestRoot(t)

	output, err := cli.ExecuteCommand(root.Root, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "stockwallet v")
}

func TestExecute_JSONHistory(t *testing.T) {
	root := newTestRoot(t)

	output, err := cli.ExecuteCommand(root.Root, "execute", "--json", "--history", "buy:4", "sell:9")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "history (2):", lines[2])

	var recorded interfaces.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(lines[4])), &recorded))
	assert.Equal(t, interfaces.EventTypeOperationRolledBack, recorded.Type)
	assert.Equal(t, models.Quantity(4), recorded.QuantityAfter)
	assert.Equal(t, "default", recorded.Wallet)
}
