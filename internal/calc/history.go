package calc

import (
	"fmt"
	"strings"
)

// HistoryEntry formats one successful evaluation as a history line:
// "<op1> <operator> <op2> = <result>", with op2 left out for unary operators.
func HistoryEntry(op Operator, raw1, raw2, result string) string {
	first := strings.TrimSpace(raw1)
	if op.Unary() {
		return fmt.Sprintf("%s %s = %s", first, op, result)
	}
	return fmt.Sprintf("%s %s %s = %s", first, op, strings.TrimSpace(raw2), result)
}
