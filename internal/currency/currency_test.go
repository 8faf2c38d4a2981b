package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		amount, from, to string
		want             string
	}{
		{"10", "USD", "IDR", "162613.00"},
		{"1", "USD", "JPY", "142.63"},
		{"142.63", "JPY", "USD", "1.00"},
		{"16261.30", "IDR", "USD", "1.00"},
		{"1", "IDR", "USD", "0.00"},
		{"0", "USD", "IDR", "0.00"},
		{"5", "usd", "usd", "5.00"},
		{"-2", "USD", "JPY", "-285.26"},
	}
	for _, tt := range tests {
		d, err := ParseAmount(tt.amount)
		require.NoError(t, err)
		assert.Equal(t, tt.want, Format(Convert(d, tt.from, tt.to)), "%s %s->%s", tt.amount, tt.from, tt.to)
	}
}

func TestConvert_UnknownCodeUsesUnitRate(t *testing.T) {
	got := Convert(decimal.NewFromInt(3), "EUR", "IDR")
	assert.Equal(t, "48783.90", Format(got))
	assert.False(t, Known("EUR"))
	assert.True(t, Known("jpy"))
}

func TestParseAmount_Invalid(t *testing.T) {
	_, err := ParseAmount("ten")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "162613.00", Render("10", "USD", "IDR"))
	assert.Equal(t, InvalidInput, Render("abc", "USD", "IDR"))
	assert.Equal(t, InvalidInput, Render("", "USD", "IDR"))
}

func TestCodesHaveRates(t *testing.T) {
	for _, c := range Codes {
		assert.True(t, Known(c), c)
	}
	assert.Len(t, Rates, len(Codes))
}
