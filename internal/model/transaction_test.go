package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionSignedAbs(t *testing.T) {
	tests := []struct {
		amount   int64
		wantSign string
		wantAbs  int64
	}{
		{5000000, "+", 5000000},
		{-25000, "-", 25000},
		{0, "-", 0},
		{MinAmount, "-", math.MaxInt64},
		{math.MinInt64, "-", math.MaxInt64},
	}
	for _, tt := range tests {
		txn := Transaction{Amount: tt.amount}
		sign, abs := txn.SignedAbs()
		assert.Equal(t, tt.wantSign, sign, "amount %d", tt.amount)
		assert.Equal(t, tt.wantAbs, abs, "amount %d", tt.amount)
	}
}

func TestTransactionIsIncome(t *testing.T) {
	assert.True(t, Transaction{Amount: 1}.IsIncome())
	assert.False(t, Transaction{Amount: 0}.IsIncome())
	assert.False(t, Transaction{Amount: -1}.IsIncome())
}
