package models

import (
	"fmt"
	"math"
)

// Quantity is the number of units held by a wallet. It is wide enough that
// any uint16 transaction quantity can be added or subtracted without the
// delta itself overflowing.
type Quantity int64

// Wallet holds a single stock position
type Wallet struct {
	quantity Quantity
}

// NewWallet creates a new empty wallet
func NewWallet() *Wallet {
	return &Wallet{}
}

// Quantity returns the current committed quantity
func (w *Wallet) Quantity() Quantity {
	return w.quantity
}

// Execute applies every transaction of the operation in order and returns the
// resulting quantity. The batch is all-or-nothing: the first failing
// transaction aborts the rest and the wallet keeps the quantity it had before
// the call.
//
// A Wallet is not safe for concurrent use. Callers sharing one must allow at
// most one Execute in flight, see services.WalletActor.
func (w *Wallet) Execute(operation Operation) (Quantity, error) {
	staged := w.quantity

	for i, tx := range operation.transactions {
		next, err := apply(staged, tx)
		if err != nil {
			return w.quantity, fmt.Errorf("transaction %d (%s): %w", i, tx, err)
		}
		staged = next
	}

	w.quantity = staged
	return w.quantity, nil
}

func apply(current Quantity, tx Transaction) (Quantity, error) {
	switch tx.Type {
	case TransactionTypeBuy:
		return buy(current, tx.Quantity)
	case TransactionTypeSell:
		return sell(current, tx.Quantity)
	default:
		return current, ErrInvalidTransactionType
	}
}

func buy(current Quantity, quantity uint16) (Quantity, error) {
	delta := Quantity(quantity)
	if current > math.MaxInt64-delta {
		return current, ErrQuantityOverflow
	}
	return current + delta, nil
}

// current is never negative here, so comparing against the widened quantity
// matches an unsigned comparison.
func sell(current Quantity, quantity uint16) (Quantity, error) {
	delta := Quantity(quantity)
	if delta > current {
		return current, ErrInsufficientStock
	}
	return current - delta, nil
}
