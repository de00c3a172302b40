package interfaces

import (
	"encoding/json"
	"time"

	"github.com/ZanzyTHEbar/stockwallet-go/domain/models"
	"github.com/ZanzyTHEbar/stockwallet-go/internal"
)

type EventType string

const (
	// Operation events
	EventTypeOperationCommitted  EventType = "wallet.operation.committed"
	EventTypeOperationRolledBack EventType = "wallet.operation.rolled_back"
)

// Event records the outcome of one operation executed against a wallet
type Event struct {
	ID             string           `json:"id"`
	Type           EventType        `json:"type"`
	Wallet         string           `json:"wallet"`
	Timestamp      time.Time        `json:"timestamp"`
	Operation      models.Operation `json:"operation"`
	QuantityBefore models.Quantity  `json:"quantity_before"`
	QuantityAfter  models.Quantity  `json:"quantity_after"`
	Error          string           `json:"error,omitempty"`
}

func (e *Event) String() string {
	jsonData, err := json.Marshal(e)
	if err != nil {
		return "Error serializing event"
	}
	return string(jsonData)
}

// NewOperationEvent creates an event for an executed operation. A nil err
// marks the operation committed.
func NewOperationEvent(wallet string, operation models.Operation, before, after models.Quantity, err error) *Event {
	event := &Event{
		ID:             internal.GenerateUUID(),
		Type:           EventTypeOperationCommitted,
		Wallet:         wallet,
		Timestamp:      time.Now(),
		Operation:      operation,
		QuantityBefore: before,
		QuantityAfter:  after,
	}
	if err != nil {
		event.WithError(err)
	}
	return event
}

// WithError marks the event as rolled back and records err
func (e *Event) WithError(err error) *Event {
	e.Type = EventTypeOperationRolledBack
	e.Error = err.Error()
	return e
}

// Committed reports whether the operation was applied
func (e *Event) Committed() bool {
	return e.Type == EventTypeOperationCommitted
}
