package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Operation is an ordered batch of transactions applied as one atomic unit.
// Transactions apply left to right.
type Operation struct {
	transactions []Transaction
}

// NewOperation creates an operation from the given transactions. The slice is
// copied so later changes by the caller are not visible.
func NewOperation(transactions ...Transaction) Operation {
	if len(transactions) == 0 {
		return Operation{}
	}

	txs := make([]Transaction, len(transactions))
	copy(txs, transactions)
	return Operation{transactions: txs}
}

// ParseOperation parses a comma separated list of transactions such as
// "buy:7,sell:2". An empty or blank string yields an empty operation.
func ParseOperation(s string) (Operation, error) {
	if strings.TrimSpace(s) == "" {
		return Operation{}, nil
	}

	parts := strings.Split(s, ",")
	txs := make([]Transaction, 0, len(parts))
	for i, part := range parts {
		tx, err := ParseTransaction(part)
		if err != nil {
			return Operation{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs = append(txs, tx)
	}

	return Operation{transactions: txs}, nil
}

// Transactions returns a copy of the operation's transactions
func (o Operation) Transactions() []Transaction {
	txs := make([]Transaction, len(o.transactions))
	copy(txs, o.transactions)
	return txs
}

// Len returns the number of transactions in the operation
func (o Operation) Len() int {
	return len(o.transactions)
}

func (o Operation) String() string {
	parts := make([]string, len(o.transactions))
	for i, tx := range o.transactions {
		parts[i] = tx.String()
	}
	return strings.Join(parts, ",")
}

// MarshalJSON encodes the operation as an array of transactions
func (o Operation) MarshalJSON() ([]byte, error) {
	if o.transactions == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(o.transactions)
}

// UnmarshalJSON decodes an array of transactions, rejecting unknown types
func (o *Operation) UnmarshalJSON(data []byte) error {
	var txs []Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return err
	}

	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}

	o.transactions = txs
	return nil
}
