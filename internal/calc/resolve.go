package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Operands are the parsed inputs of one evaluation
type Operands struct {
	First  float64
	Second float64
	// HasSecond is false when a unary operator was resolved without a usable second field
	HasSecond bool
}

// Resolve trims and parses both raw fields. A unary operator tolerates an
// unparsable second field; every other parse failure is ErrInvalidInput.
func Resolve(op Operator, raw1, raw2 string) (Operands, error) {
	first, err1 := ParseOperand(raw1)
	second, err2 := ParseOperand(raw2)

	switch {
	case err1 == nil && err2 == nil:
		return Operands{First: first, Second: second, HasSecond: true}, nil
	case err1 == nil && op.Unary():
		return Operands{First: first}, nil
	default:
		return Operands{}, ErrInvalidInput
	}
}

// Compute resolves the raw fields and evaluates op on them
func Compute(op Operator, raw1, raw2 string) (float64, error) {
	operands, err := Resolve(op, raw1, raw2)
	if err != nil {
		return 0, err
	}
	return Evaluate(op, operands.First, operands.Second)
}

// ParseOperand parses a trimmed operand as a 64-bit decimal float. Digit
// separators and hexadecimal forms are rejected; values beyond the float64
// range parse to ±inf.
func ParseOperand(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, "_") || hasHexPrefix(s) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// FormatResult renders a value in its shortest round-tripping decimal form,
// without exponent: 2 for 2.0, 0.5, inf, -inf and NaN.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatError renders an evaluation failure for the result display
func FormatError(err error) string {
	return "Error: " + err.Error()
}
