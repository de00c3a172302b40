package models

import (
	"errors"
)

// Domain error types
var (
	// Wallet errors
	// ErrInsufficientStock is returned when a sell exceeds the quantity held at that point of the operation
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrQuantityOverflow is returned when a buy would push the quantity past its representable range
	ErrQuantityOverflow = errors.New("quantity overflow")

	// Transaction errors
	// ErrInvalidTransactionType is returned when a transaction is neither a buy nor a sell
	ErrInvalidTransactionType = errors.New("transaction type must be buy or sell")

	// ErrInvalidTransactionFormat is returned when a transaction string is not of the form kind:quantity
	ErrInvalidTransactionFormat = errors.New("transaction must be formatted as <buy|sell>:<quantity>")

	// ErrInvalidQuantity is returned when a transaction quantity is not an integer in 0..65535
	ErrInvalidQuantity = errors.New("transaction quantity must be an integer between 0 and 65535")
)
