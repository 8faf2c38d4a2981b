package model

import (
	"math"
	"time"
)

// MinAmount is the smallest amount a Transaction may carry. Its absolute
// value still fits in int64.
const MinAmount = math.MinInt64 + 1

// Transaction is one income or expense record.
type Transaction struct {
	Category  string
	Amount    int64 // minor currency units; negative = expense, positive = income
	Timestamp time.Time
}

// IsIncome reports whether the transaction adds to the balance.
func (t Transaction) IsIncome() bool {
	return t.Amount > 0
}

// SignedAbs returns the sign prefix and the absolute amount for display.
// Zero is shown as an expense, matching the list rendering. Amounts below
// MinAmount are clamped to it.
func (t Transaction) SignedAbs() (string, int64) {
	if t.Amount > 0 {
		return "+", t.Amount
	}
	if t.Amount < MinAmount {
		return "-", -MinAmount
	}
	return "-", -t.Amount
}
