package models

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func transactionGen() *rapid.Generator[Transaction] {
	return rapid.Custom(func(t *rapid.T) Transaction {
		quantity := rapid.Uint16Range(0, 500).Draw(t, "quantity")
		if rapid.Bool().Draw(t, "buy") {
			return Buy(quantity)
		}
		return Sell(quantity)
	})
}

func operationGen() *rapid.Generator[Operation] {
	return rapid.Custom(func(t *rapid.T) Operation {
		txs := rapid.SliceOfN(transactionGen(), 0, 12).Draw(t, "transactions")
		return NewOperation(txs...)
	})
}

// replay computes the expected outcome of an operation the slow way.
func replay(initial Quantity, operation Operation) (Quantity, bool) {
	running := initial
	for _, tx := range operation.Transactions() {
		switch tx.Type {
		case TransactionTypeBuy:
			running += Quantity(tx.Quantity)
		case TransactionTypeSell:
			running -= Quantity(tx.Quantity)
			if running < 0 {
				return initial, false
			}
		}
	}
	return running, true
}

func TestProperty_QuantityNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		wallet := NewWallet()
		operations := rapid.SliceOfN(operationGen(), 1, 20).Draw(t, "operations")

		for _, op := range operations {
			_, _ = wallet.Execute(op)
			if wallet.Quantity() < 0 {
				t.Fatalf("quantity went negative: %d after %s", wallet.Quantity(), op)
			}
		}
	})
}

func TestProperty_FailedOperationRollsBack(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		wallet := NewWallet()
		seed := rapid.Uint16Range(0, 200).Draw(t, "seed")
		if _, err := wallet.Execute(NewOperation(Buy(seed))); err != nil {
			t.Fatalf("seeding wallet: %v", err)
		}

		op := operationGen().Draw(t, "operation")
		before := wallet.Quantity()

		got, err := wallet.Execute(op)
		if err == nil {
			return
		}
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("unexpected error: %v", err)
		}
		if wallet.Quantity() != before || got != before {
			t.Fatalf("rollback failed: before=%d after=%d returned=%d", before, wallet.Quantity(), got)
		}
	})
}

func TestProperty_AdditivityMatchesReplay(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		wallet := NewWallet()
		operations := rapid.SliceOfN(operationGen(), 1, 10).Draw(t, "operations")

		for _, op := range operations {
			before := wallet.Quantity()
			want, ok := replay(before, op)

			got, err := wallet.Execute(op)
			if ok != (err == nil) {
				t.Fatalf("%s from %d: replay ok=%v, Execute err=%v", op, before, ok, err)
			}
			if got != want || wallet.Quantity() != want {
				t.Fatalf("%s from %d: want %d, got %d (wallet %d)", op, before, want, got, wallet.Quantity())
			}
		}
	})
}

func TestProperty_EmptyOperationIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		wallet := NewWallet()
		seed := rapid.Uint16().Draw(t, "seed")
		if _, err := wallet.Execute(NewOperation(Buy(seed))); err != nil {
			t.Fatalf("seeding wallet: %v", err)
		}

		got, err := wallet.Execute(NewOperation())
		if err != nil {
			t.Fatalf("empty operation failed: %v", err)
		}
		if got != Quantity(seed) {
			t.Fatalf("empty operation changed quantity: want %d, got %d", seed, got)
		}
	})
}
