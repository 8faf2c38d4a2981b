package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		op   Operator
		a, b string
		want int64
	}{
		{OpAdd, "2", "3", 5},
		{OpSub, "2", "3", -1},
		{OpMul, "-4", "6", -24},
		{OpDiv, "7", "2", 3},
		{OpDiv, "-7", "2", -3},
		{OpAdd, " 10 ", "0", 10},
	}
	for _, tt := range tests {
		got, err := Evaluate(tt.op, tt.a, tt.b)
		require.NoError(t, err, "%s %s %s", tt.op, tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%s %s %s", tt.op, tt.a, tt.b)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := Evaluate(OpDiv, "1", "0")
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Evaluate(OpAdd, "one", "2")
	assert.ErrorIs(t, err, ErrInvalidOperand)

	_, err = Evaluate(OpAdd, "1", "2.5")
	assert.ErrorIs(t, err, ErrInvalidOperand)

	_, err = Evaluate(Operator("pow"), "1", "2")
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "5", Render(OpAdd, "2", "3"))
	assert.Equal(t, InvalidInput, Render(OpDiv, "1", "0"))
	assert.Equal(t, InvalidInput, Render(OpMul, "", "3"))
}
