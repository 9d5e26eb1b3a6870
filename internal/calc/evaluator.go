// Package calc holds the arithmetic core of the calculator: operator
// dispatch, operand resolution and result formatting. Nothing here touches
// the UI or the filesystem.
package calc

import (
	"errors"
	"math"
)

// Operator identifies one of the calculator operations by its button label
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
	Power    Operator = "^"
	Sqrt     Operator = "√"
)

// Operators lists the operators in keypad order
var Operators = []Operator{Add, Subtract, Multiply, Divide, Power, Sqrt}

// Unary reports whether the operator ignores its second operand
func (op Operator) Unary() bool {
	return op == Sqrt
}

func (op Operator) String() string {
	return string(op)
}

var (
	ErrInvalidInput    = errors.New("Invalid input")
	ErrDivisionByZero  = errors.New("Cannot divide by zero")
	ErrNegativeSqrt    = errors.New("Cannot sqrt negative number")
	ErrUnknownOperator = errors.New("Unknown operator")
)

// Evaluate applies op to a and b. Power follows IEEE 754 and may return NaN
// or Inf; only division by zero and negative square roots are rejected.
func Evaluate(op Operator, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case Power:
		return math.Pow(a, b), nil
	case Sqrt:
		if a < 0 {
			return 0, ErrNegativeSqrt
		}
		return math.Sqrt(a), nil
	default:
		return 0, ErrUnknownOperator
	}
}
