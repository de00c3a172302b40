package services

import (
	"time"

	"github.com/ZanzyTHEbar/stockwallet-go/domain/models"
	"github.com/ZanzyTHEbar/stockwallet-go/interfaces"
	"github.com/ZanzyTHEbar/stockwallet-go/internal"
	"github.com/anthdm/hollywood/actor"
)

// WalletActor is the single owner of a wallet. The actor mailbox processes one
// message at a time, so at most one Execute is ever in flight per wallet.
type WalletActor struct {
	BaseActor
	wallet      *models.Wallet
	historySize int

	stopped    bool
	history    []*interfaces.Event
	committed  int
	rolledBack int
	lastActive time.Time
	lastError  error
}

// ExecuteRequest asks the actor to execute an operation
type ExecuteRequest struct {
	Operation models.Operation
}

// ExecuteResponse is the response to an ExecuteRequest
type ExecuteResponse struct {
	Quantity models.Quantity
	Err      error
	Event    *interfaces.Event
}

// BalanceRequest asks the actor for the wallet's committed quantity
type BalanceRequest struct{}

// BalanceResponse is the response to a BalanceRequest
type BalanceResponse struct {
	Quantity models.Quantity
}

// HistoryRequest asks the actor for its most recent operation events
type HistoryRequest struct{}

// HistoryResponse is the response to a HistoryRequest, oldest first
type HistoryResponse struct {
	Events []*interfaces.Event
}

// NewWalletActor creates an actor owning a new empty wallet
func NewWalletActor(name string, historySize int) *WalletActor {
	if historySize <= 0 {
		historySize = 1
	}

	return &WalletActor{
		BaseActor:   NewBaseActor(name, internal.ComponentWallet),
		wallet:      models.NewWallet(),
		historySize: historySize,
	}
}

// Receive implements the actor.Receiver interface
func (a *WalletActor) Receive(ctx *actor.Context) {
	switch msg := ctx.Message().(type) {
	case actor.Started:
		a.logger.Debug().Msg("Wallet actor spawned")

	case actor.Stopped:
		a.logger.Debug().Int64("quantity", int64(a.wallet.Quantity())).Msg("Wallet actor poisoned")

	case StartMsg:
		a.stopped = false
		a.logger.Info().Msg("Wallet actor started")

	case StopMsg:
		a.stopped = true
		a.logger.Info().Msg("Wallet actor stopping")

	case ExecuteRequest:
		ctx.Respond(a.execute(msg.Operation))

	case BalanceRequest:
		ctx.Respond(BalanceResponse{Quantity: a.wallet.Quantity()})

	case HistoryRequest:
		events := make([]*interfaces.Event, len(a.history))
		copy(events, a.history)
		ctx.Respond(HistoryResponse{Events: events})

	case StatusRequestMsg:
		ctx.Respond(a.status())
	}
}

func (a *WalletActor) execute(operation models.Operation) ExecuteResponse {
	if a.stopped {
		return ExecuteResponse{Quantity: a.wallet.Quantity(), Err: ErrServiceStopped}
	}

	before := a.wallet.Quantity()
	quantity, err := a.wallet.Execute(operation)
	event := interfaces.NewOperationEvent(a.Name(), operation, before, quantity, err)
	a.record(event, err)

	if err != nil {
		a.logger.Warn().
			Err(err).
			Str("operation", operation.String()).
			Int64("quantity", int64(quantity)).
			Msg("Operation rolled back")
	} else {
		a.logger.Info().
			Str("operation", operation.String()).
			Int64("before", int64(before)).
			Int64("quantity", int64(quantity)).
			Msg("Operation committed")
	}

	return ExecuteResponse{Quantity: quantity, Err: err, Event: event}
}

func (a *WalletActor) record(event *interfaces.Event, err error) {
	a.lastActive = event.Timestamp
	if err != nil {
		a.rolledBack++
		a.lastError = err
	} else {
		a.committed++
	}

	a.history = append(a.history, event)
	if over := len(a.history) - a.historySize; over > 0 {
		a.history = append(a.history[:0:0], a.history[over:]...)
	}
}

func (a *WalletActor) status() StatusResponseMsg {
	status := interfaces.ServiceStatusRunning
	if a.stopped {
		status = interfaces.ServiceStatusStopped
	}

	return StatusResponseMsg{
		Status:     status,
		LastActive: a.lastActive,
		ErrorCount: a.rolledBack,
		LastError:  a.lastError,
		CustomStats: map[string]interface{}{
			"quantity":   int64(a.wallet.Quantity()),
			"committed":  a.committed,
			"rolledBack": a.rolledBack,
		},
	}
}
