// Package currency converts between a fixed table of currencies.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InvalidInput is how a conversion failure is rendered to the user.
const InvalidInput = "Invalid input"

// ErrInvalidAmount is returned when the input amount is not a number.
var ErrInvalidAmount = errors.New("invalid amount")

// Rates holds units of each currency per one USD.
var Rates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"IDR": decimal.RequireFromString("16261.30"),
	"JPY": decimal.RequireFromString("142.63"),
}

// Codes lists the supported currencies in menu order.
var Codes = []string{"USD", "IDR", "JPY"}

// rate returns the rate for code, falling back to 1 for unknown codes.
func rate(code string) decimal.Decimal {
	if r, ok := Rates[strings.ToUpper(code)]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// Known reports whether code has a rate.
func Known(code string) bool {
	_, ok := Rates[strings.ToUpper(code)]
	return ok
}

// ParseAmount parses a user-entered amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// Convert returns amount in from converted to to, via USD.
func Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	return amount.Div(rate(from)).Mul(rate(to))
}

// Format renders a converted amount with two decimals.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Render parses, converts and formats in one step, as the converter field does.
func Render(amount, from, to string) string {
	d, err := ParseAmount(amount)
	if err != nil {
		return InvalidInput
	}
	return Format(Convert(d, from, to))
}
