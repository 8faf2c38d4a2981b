package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{Category: "Makan", Amount: "-25000", Date: "2024-05-01", Time: "12:30"}
}

func TestParseTransaction_Valid(t *testing.T) {
	txn, err := ParseTransaction(validInput(), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "Makan", txn.Category)
	assert.Equal(t, int64(-25000), txn.Amount)
	assert.True(t, txn.Timestamp.Equal(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)))
}

func TestParseTransaction_Seconds(t *testing.T) {
	in := validInput()
	in.Time = "08:05:09"
	txn, err := ParseTransaction(in, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 9, txn.Timestamp.Second())
}

func TestParseTransaction_ZeroAndPlusAmounts(t *testing.T) {
	for _, amount := range []string{"0", "+1500", " 42 ", "-9223372036854775807"} {
		in := validInput()
		in.Amount = amount
		_, err := ParseTransaction(in, time.UTC)
		assert.NoError(t, err, "amount %q", amount)
	}
}

func TestParseTransaction_Reasons(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		want   Reason
	}{
		{"blank category", func(in *Input) { in.Category = "   " }, ReasonBlankCategory},
		{"non-numeric amount", func(in *Input) { in.Amount = "abc" }, ReasonBadAmount},
		{"decimal amount", func(in *Input) { in.Amount = "12.50" }, ReasonBadAmount},
		{"empty amount", func(in *Input) { in.Amount = "" }, ReasonBadAmount},
		{"overflow amount", func(in *Input) { in.Amount = "99999999999999999999" }, ReasonBadAmount},
		{"amount without absolute value", func(in *Input) { in.Amount = "-9223372036854775808" }, ReasonBadAmount},
		{"impossible date", func(in *Input) { in.Date = "2024-13-40" }, ReasonBadDate},
		{"february 30", func(in *Input) { in.Date = "2024-02-30" }, ReasonBadDate},
		{"wrong date layout", func(in *Input) { in.Date = "01/05/2024" }, ReasonBadDate},
		{"hour out of range", func(in *Input) { in.Time = "25:00" }, ReasonBadTime},
		{"garbage time", func(in *Input) { in.Time = "noon" }, ReasonBadTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := ParseTransaction(in, time.UTC)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.True(t, verrs.Has(tt.want), "want %s in %v", tt.want, verrs)
			assert.Len(t, verrs, 1)
		})
	}
}

func TestParseTransaction_ReportsEveryField(t *testing.T) {
	_, errs := Validate(Input{Category: "", Amount: "abc", Date: "2024-13-40", Time: "x"}, time.UTC)
	require.Len(t, errs, 4)
	for _, r := range []Reason{ReasonBlankCategory, ReasonBadAmount, ReasonBadDate, ReasonBadTime} {
		assert.True(t, errs.Has(r), "missing %s", r)
	}
	assert.Contains(t, errs.Error(), "validation failed")
}

func TestValidationErrors_AsSingle(t *testing.T) {
	in := validInput()
	in.Amount = "abc"
	_, err := ParseTransaction(in, time.UTC)

	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, ReasonBadAmount, ve.Reason)
	assert.Equal(t, "amount", ve.Field)
	assert.Equal(t, "abc", ve.Value)
}

func TestFailedParseLeavesLedgerUnchanged(t *testing.T) {
	l := NewSeeded(base)
	before := l.Len()

	for _, in := range []Input{
		{Category: "Makan", Amount: "abc", Date: "2024-05-01", Time: "10:00"},
		{Category: "Makan", Amount: "100", Date: "2024-13-40", Time: "10:00"},
	} {
		txn, err := ParseTransaction(in, time.UTC)
		if err == nil {
			l.Prepend(txn)
		}
	}
	assert.Equal(t, before, l.Len())
}
