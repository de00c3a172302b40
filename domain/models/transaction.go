package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TransactionType defines the type of transaction
type TransactionType string

const (
	// TransactionTypeBuy adds stock to the wallet
	TransactionTypeBuy TransactionType = "buy"

	// TransactionTypeSell removes stock from the wallet
	TransactionTypeSell TransactionType = "sell"
)

// Transaction is a single buy or sell instruction. It is a value type and
// never changes once built.
type Transaction struct {
	Type     TransactionType `json:"type"`
	Quantity uint16          `json:"quantity"`
}

// Buy creates a buy transaction
func Buy(quantity uint16) Transaction {
	return Transaction{Type: TransactionTypeBuy, Quantity: quantity}
}

// Sell creates a sell transaction
func Sell(quantity uint16) Transaction {
	return Transaction{Type: TransactionTypeSell, Quantity: quantity}
}

// Validate checks if the transaction is valid
func (t Transaction) Validate() error {
	switch t.Type {
	case TransactionTypeBuy, TransactionTypeSell:
		return nil
	default:
		return ErrInvalidTransactionType
	}
}

// String renders the transaction in the same form ParseTransaction accepts.
func (t Transaction) String() string {
	return fmt.Sprintf("%s:%d", t.Type, t.Quantity)
}

// ParseTransaction parses a transaction written as "buy:7" or "sell:2".
func ParseTransaction(s string) (Transaction, error) {
	kind, qty, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return Transaction{}, fmt.Errorf("%q: %w", s, ErrInvalidTransactionFormat)
	}

	tx := Transaction{Type: TransactionType(strings.ToLower(strings.TrimSpace(kind)))}
	if err := tx.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("%q: %w", s, err)
	}

	n, err := strconv.ParseUint(strings.TrimSpace(qty), 10, 16)
	if err != nil {
		return Transaction{}, fmt.Errorf("%q: %w", s, ErrInvalidQuantity)
	}
	tx.Quantity = uint16(n)

	return tx, nil
}
