package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name      string
		tx        Transaction
		expectErr bool
	}{
		{"Buy", Buy(1), false},
		{"Sell", Sell(0), false},
		{"Zero Value", Transaction{}, true},
		{"Unknown Type", Transaction{Type: "transfer", Quantity: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if (err != nil) != tt.expectErr {
				t.Errorf("Validate() error = %v, expectErr %v", err, tt.expectErr)
			}
			if tt.expectErr && err != ErrInvalidTransactionType {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidTransactionType)
			}
		})
	}
}

func TestParseTransaction(t *testing.T) {
	tests := []struct {
		input   string
		want    Transaction
		errType error
	}{
		{input: "buy:7", want: Buy(7)},
		{input: "SELL:2", want: Sell(2)},
		{input: " sell : 0 ", want: Sell(0)},
		{input: "buy:65535", want: Buy(65535)},
		{input: "buy:65536", errType: ErrInvalidQuantity},
		{input: "buy:-1", errType: ErrInvalidQuantity},
		{input: "buy:", errType: ErrInvalidQuantity},
		{input: "hold:3", errType: ErrInvalidTransactionType},
		{input: "buy7", errType: ErrInvalidTransactionFormat},
		{input: "", errType: ErrInvalidTransactionFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTransaction(tt.input)
			if tt.errType != nil {
				assert.ErrorIs(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("buy:7, sell:2")
	require.NoError(t, err)
	assert.Equal(t, []Transaction{Buy(7), Sell(2)}, op.Transactions())
	assert.Equal(t, "buy:7,sell:2", op.String())

	empty, err := ParseOperation("  ")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = ParseOperation("buy:1,,sell:1")
	assert.ErrorIs(t, err, ErrInvalidTransactionFormat)
}

func TestOperation_JSON(t *testing.T) {
	op := NewOperation(Buy(7), Sell(2))

	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"buy","quantity":7},{"type":"sell","quantity":2}]`, string(data))

	var decoded Operation
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, op.Transactions(), decoded.Transactions())

	data, err = json.Marshal(NewOperation())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	err = json.Unmarshal([]byte(`[{"type":"short","quantity":1}]`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidTransactionType)
}

func FuzzParseTransaction(f *testing.F) {
	f.Add("buy:7")
	f.Add("sell:0")
	f.Add("SELL:65535")
	f.Add("buy:65536")
	f.Add(":")

	f.Fuzz(func(t *testing.T, s string) {
		tx, err := ParseTransaction(s)
		if err != nil {
			return
		}
		if err := tx.Validate(); err != nil {
			t.Fatalf("parsed invalid transaction %q: %v", s, err)
		}
		again, err := ParseTransaction(tx.String())
		if err != nil || again != tx {
			t.Fatalf("round trip of %q: got %v, %v", s, again, err)
		}
	})
}
