// Package calc evaluates two-operand integer arithmetic.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// InvalidInput is how every failure is rendered to the user.
const InvalidInput = "Invalid input"

// Operator is one of the four supported operations.
type Operator string

const (
	OpAdd Operator = "add"
	OpSub Operator = "sub"
	OpMul Operator = "mul"
	OpDiv Operator = "div"
)

var (
	ErrInvalidOperand  = errors.New("invalid operand")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnknownOperator = errors.New("unknown operator")
)

// Apply runs op on two integers. Division truncates toward zero.
func Apply(op Operator, a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}

// Evaluate parses both operands and applies op.
func Evaluate(op Operator, a, b string) (int64, error) {
	x, err := parseOperand(a)
	if err != nil {
		return 0, err
	}
	y, err := parseOperand(b)
	if err != nil {
		return 0, err
	}
	return Apply(op, x, y)
}

// Render evaluates and formats the result the way the result field shows it.
func Render(op Operator, a, b string) string {
	v, err := Evaluate(op, a, b)
	if err != nil {
		return InvalidInput
	}
	return strconv.FormatInt(v, 10)
}

func parseOperand(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, s)
	}
	return v, nil
}
